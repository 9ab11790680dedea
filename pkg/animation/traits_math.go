package animation

import "github.com/Faultbox/midgard-anim/pkg/math"

// FloatTraits animates float32 values.
type FloatTraits struct{}

func (FloatTraits) Create(_, value *float32)       { *value = 0 }
func (FloatTraits) Recycle(*float32)               {}
func (FloatTraits) Copy(source, target *float32)   { *target = *source }
func (FloatTraits) SetIdentity(value *float32)     { *value = 0 }
func (FloatTraits) Invert(value, inverse *float32) { *inverse = -*value }

func (FloatTraits) Add(value0, value1, result *float32) {
	*result = *value0 + *value1
}

func (FloatTraits) Interpolate(source, target *float32, parameter float32, result *float32) {
	*result = math.Lerp(*source, *target, parameter)
}

// Vec2Traits animates 2D vectors.
type Vec2Traits struct{}

func (Vec2Traits) Create(_, value *math.Vec2)       { *value = math.Vec2{} }
func (Vec2Traits) Recycle(*math.Vec2)               {}
func (Vec2Traits) Copy(source, target *math.Vec2)   { *target = *source }
func (Vec2Traits) SetIdentity(value *math.Vec2)     { *value = math.Vec2{} }
func (Vec2Traits) Invert(value, inverse *math.Vec2) { *inverse = value.Negate() }

func (Vec2Traits) Add(value0, value1, result *math.Vec2) {
	*result = value0.Add(*value1)
}

func (Vec2Traits) Interpolate(source, target *math.Vec2, parameter float32, result *math.Vec2) {
	*result = source.Lerp(*target, parameter)
}

// Vec3Traits animates 3D vectors.
type Vec3Traits struct{}

func (Vec3Traits) Create(_, value *math.Vec3)       { *value = math.Vec3{} }
func (Vec3Traits) Recycle(*math.Vec3)               {}
func (Vec3Traits) Copy(source, target *math.Vec3)   { *target = *source }
func (Vec3Traits) SetIdentity(value *math.Vec3)     { *value = math.Vec3{} }
func (Vec3Traits) Invert(value, inverse *math.Vec3) { *inverse = value.Negate() }

func (Vec3Traits) Add(value0, value1, result *math.Vec3) {
	*result = value0.Add(*value1)
}

func (Vec3Traits) Interpolate(source, target *math.Vec3, parameter float32, result *math.Vec3) {
	*result = source.Lerp(*target, parameter)
}

// QuatTraits animates rotations. Add composes rotations (value0 first),
// which does not commute.
type QuatTraits struct{}

func (QuatTraits) Create(_, value *math.Quat)       { *value = math.QuatIdentity() }
func (QuatTraits) Recycle(*math.Quat)               {}
func (QuatTraits) Copy(source, target *math.Quat)   { *target = *source }
func (QuatTraits) SetIdentity(value *math.Quat)     { *value = math.QuatIdentity() }
func (QuatTraits) Invert(value, inverse *math.Quat) { *inverse = value.Inverse() }

func (QuatTraits) Add(value0, value1, result *math.Quat) {
	*result = value1.Mul(*value0)
}

func (QuatTraits) Interpolate(source, target *math.Quat, parameter float32, result *math.Quat) {
	*result = source.Slerp(*target, parameter)
}

// PoseTraits animates scale/rotation/translation poses.
type PoseTraits struct{}

func (PoseTraits) Create(_, value *math.Pose)       { *value = math.PoseIdentity() }
func (PoseTraits) Recycle(*math.Pose)               {}
func (PoseTraits) Copy(source, target *math.Pose)   { *target = *source }
func (PoseTraits) SetIdentity(value *math.Pose)     { *value = math.PoseIdentity() }
func (PoseTraits) Invert(value, inverse *math.Pose) { *inverse = value.Inverse() }

func (PoseTraits) Add(value0, value1, result *math.Pose) {
	*result = value0.Then(*value1)
}

func (PoseTraits) Interpolate(source, target *math.Pose, parameter float32, result *math.Pose) {
	*result = source.Interpolate(*target, parameter)
}

var (
	_ Traits[float32]   = FloatTraits{}
	_ Traits[math.Vec2] = Vec2Traits{}
	_ Traits[math.Vec3] = Vec3Traits{}
	_ Traits[math.Quat] = QuatTraits{}
	_ Traits[math.Pose] = PoseTraits{}
)
