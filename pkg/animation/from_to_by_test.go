package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

func TestFromToByDefaults(t *testing.T) {
	a := NewFromToByAnimation[float32](FloatTraits{})

	d, ok := a.Duration()
	assert.True(t, ok)
	assert.Equal(t, time.Second, d)

	total, err := a.TotalDuration()
	require.NoError(t, err)
	assert.Equal(t, time.Second, total)

	a.ClearDuration()
	total, err = a.TotalDuration()
	require.NoError(t, err)
	assert.Equal(t, DefaultFromToByDuration, total)
}

func TestFromToByCombinations(t *testing.T) {
	from, to, by := ptr(float32(10)), ptr(float32(20)), ptr(float32(4))

	tests := []struct {
		name       string
		from       *float32
		to         *float32
		by         *float32
		start, end float32
	}{
		{"from to", from, to, nil, 10, 20},
		{"from to ignores by", from, to, by, 10, 20},
		{"from by", from, nil, by, 10, 14},
		{"from", from, nil, nil, 10, 100},
		{"to", nil, to, nil, 1, 20},
		{"to by", nil, to, by, 1, 20},
		{"by", nil, nil, by, 1, 5},
		{"none", nil, nil, nil, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewFromToByAnimation[float32](FloatTraits{})
			a.From, a.To, a.By = tt.from, tt.to, tt.by

			assert.Equal(t, tt.start, floatValue(t, a, 0, 1, 100), "start")
			assert.Equal(t, tt.end, floatValue(t, a, time.Second, 1, 100), "end")
		})
	}
}

func TestFromToByEasing(t *testing.T) {
	a := leaf(t, time.Second)
	a.Easing = ease.InQuad

	assert.InDelta(t, 2.5, floatValue(t, a, 500*ms, 0, 0), 1e-5)
	assert.InDelta(t, 10, floatValue(t, a, time.Second, 0, 0), 1e-5)
}

func TestFromToByTiming(t *testing.T) {
	a := leaf(t, 2*time.Second)
	a.Delay = time.Second
	require.NoError(t, a.SetSpeed(2))

	total, err := a.TotalDuration()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, total)

	state, err := a.State(500 * ms)
	require.NoError(t, err)
	assert.Equal(t, StateDelayed, state)
	assert.Equal(t, float32(-1), floatValue(t, a, 500*ms, -1, 0))

	local, ok, err := a.AnimationTime(1500 * ms)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, time.Second, local)
	assert.Equal(t, float32(5), floatValue(t, a, 1500*ms, -1, 0))

	state, err = a.State(3 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, StateFilling, state)

	a.FillBehavior = FillStop
	_, ok, err = a.AnimationTime(3 * time.Second)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFromToByDegenerateDurations(t *testing.T) {
	a := leaf(t, 0)
	assert.Equal(t, float32(10), floatValue(t, a, 0, 0, 0), "zero duration jumps to the end")

	require.NoError(t, a.SetDuration(Infinite))
	assert.Equal(t, float32(0), floatValue(t, a, time.Hour, 0, 0), "infinite duration never progresses")
}

func TestFromToByAdditiveAliasing(t *testing.T) {
	a := NewFromToByAnimation[float32](FloatTraits{})
	a.From, a.By = ptr(float32(20)), ptr(float32(100))
	a.IsAdditive = true

	source, target, result := float32(5), float32(0), float32(0)
	require.NoError(t, a.Value(500*ms, &source, &target, &result))
	assert.Equal(t, float32(75), result)
	assert.Equal(t, float32(5), source)

	aliased := float32(5)
	require.NoError(t, a.Value(500*ms, &aliased, &target, &aliased))
	assert.Equal(t, result, aliased)
}

func TestFromToByAliasedDefaults(t *testing.T) {
	// By-only reads the source twice; result aliasing it must not matter.
	a := NewFromToByAnimation[float32](FloatTraits{})
	a.By = ptr(float32(10))

	v := float32(4)
	require.NoError(t, a.Value(500*ms, &v, &v, &v))
	assert.Equal(t, float32(9), v)
}

func TestFromToByInstance(t *testing.T) {
	a := leaf(t, time.Second)
	inst := a.CreateInstance()
	assert.Same(t, a, inst.Timeline)
	assert.Empty(t, inst.Children)
}
