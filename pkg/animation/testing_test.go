package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// leaf returns a float animation from 0 to 10 lasting d.
func leaf(t *testing.T, d time.Duration) *FromToByAnimation[float32] {
	t.Helper()
	a := NewFromToByAnimation[float32](FloatTraits{})
	from, to := float32(0), float32(10)
	a.From, a.To = &from, &to
	require.NoError(t, a.SetDuration(d))
	return a
}

func ptr[T any](v T) *T {
	return &v
}
