package playback

import "github.com/Faultbox/midgard-anim/pkg/math"

// Transform returns the matrix a spatial track value stands for: a
// translation for math.Vec3, a rotation for math.Quat and T*R*S for
// math.Pose. Other values have no transform.
func Transform[T any](value T) (math.Mat4, bool) {
	switch v := any(value).(type) {
	case math.Vec3:
		return math.Translate(v.X, v.Y, v.Z), true
	case math.Quat:
		return v.ToMat4(), true
	case math.Pose:
		return v.ToMat4(), true
	}
	return math.Identity(), false
}
