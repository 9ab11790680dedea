package math

// Pose is a scale/rotation/translation transform, the usual animated value
// of a bone or scene node. A point p is transformed as
// Translation + Rotation.Rotate(Scale * p); see ToMat4.
type Pose struct {
	Scale       Vec3
	Rotation    Quat
	Translation Vec3
}

// PoseIdentity returns the pose that leaves every point unchanged.
func PoseIdentity() Pose {
	return Pose{Scale: Vec3One, Rotation: QuatIdentity()}
}

// Then returns the pose that applies p first and next afterwards.
// Non-uniform scale combined with rotation is approximated component-wise.
func (p Pose) Then(next Pose) Pose {
	return Pose{
		Scale:       p.Scale.Mul(next.Scale),
		Rotation:    next.Rotation.Mul(p.Rotation),
		Translation: next.Translation.Add(next.Rotation.Rotate(p.Translation.Mul(next.Scale))),
	}
}

// Inverse returns the pose that undoes p.
func (p Pose) Inverse() Pose {
	invRot := p.Rotation.Inverse()
	invScale := p.Scale.Reciprocal()
	return Pose{
		Scale:       invScale,
		Rotation:    invRot,
		Translation: invRot.Rotate(p.Translation).Mul(invScale).Negate(),
	}
}

// Interpolate blends the components: lerp for scale and translation,
// slerp for rotation.
func (p Pose) Interpolate(other Pose, t float32) Pose {
	return Pose{
		Scale:       p.Scale.Lerp(other.Scale, t),
		Rotation:    p.Rotation.Slerp(other.Rotation, t),
		Translation: p.Translation.Lerp(other.Translation, t),
	}
}

// ToMat4 returns the equivalent matrix T * R * S.
func (p Pose) ToMat4() Mat4 {
	return Translate(p.Translation.X, p.Translation.Y, p.Translation.Z).
		Mul(p.Rotation.ToMat4()).
		Mul(Scale(p.Scale.X, p.Scale.Y, p.Scale.Z))
}

// ApproxEqual reports whether all components are within epsilon.
func (p Pose) ApproxEqual(other Pose, epsilon float32) bool {
	return p.Scale.ApproxEqual(other.Scale, epsilon) &&
		p.Rotation.ApproxEqual(other.Rotation, epsilon) &&
		p.Translation.ApproxEqual(other.Translation, epsilon)
}
