package playback

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/midgard-anim/pkg/math"
)

func TestTransform(t *testing.T) {
	quarter := math.QuatFromAxisAngle(math.Vec3{Z: 1}, stdmath.Pi/2)
	point := math.Vec3{X: 1}

	check := func(m math.Mat4, ok bool, want math.Vec3) {
		t.Helper()
		require.True(t, ok)
		got := m.TransformVec3(point)
		assert.True(t, got.ApproxEqual(want, 1e-5), "got %+v, want %+v", got, want)
	}

	m, ok := Transform(math.Vec3{Y: 2})
	check(m, ok, math.Vec3{X: 1, Y: 2})

	m, ok = Transform(quarter)
	check(m, ok, math.Vec3{Y: 1})

	m, ok = Transform(math.Pose{Scale: math.Vec3{X: 2, Y: 1, Z: 1}, Rotation: quarter, Translation: math.Vec3{Z: 1}})
	check(m, ok, math.Vec3{Y: 2, Z: 1})

	m, ok = Transform(float32(3))
	assert.False(t, ok)
	assert.Equal(t, math.Identity(), m)
}
