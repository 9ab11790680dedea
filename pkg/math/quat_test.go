package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.LengthSquared())))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatInverse(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/3))
	got := q.Mul(q.Inverse())
	if !got.ApproxEqual(QuatIdentity(), 0.0001) {
		t.Errorf("q * q^-1 should be identity, got %+v", got)
	}

	if zero := (Quat{}).Inverse(); zero != QuatIdentity() {
		t.Errorf("inverse of zero quaternion should be identity, got %+v", zero)
	}
}

func TestQuatMulOrder(t *testing.T) {
	yaw := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))
	pitch := QuatFromAxisAngle(Vec3{X: 1, Y: 0, Z: 0}, float32(math.Pi/2))

	v := Vec3{X: 0, Y: 0, Z: 1}
	// pitch.Mul(yaw) rotates by yaw first.
	got := pitch.Mul(yaw).Rotate(v)
	want := pitch.Rotate(yaw.Rotate(v))
	if !got.ApproxEqual(want, 0.0001) {
		t.Errorf("composition: got %+v, want %+v", got, want)
	}

	if yaw.Mul(pitch).ApproxEqual(pitch.Mul(yaw), 0.0001) {
		t.Error("quaternion multiplication should not commute for these rotations")
	}
}

func TestQuatRotate(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 0, Z: 1}, float32(math.Pi/2))
	got := q.Rotate(Vec3{X: 1, Y: 0, Z: 0})
	want := Vec3{X: 0, Y: 1, Z: 0}
	if !got.ApproxEqual(want, 0.0001) {
		t.Errorf("Rotate: got %+v, want %+v", got, want)
	}
}

func TestQuatSlerp(t *testing.T) {
	q1 := QuatIdentity()
	q2 := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))

	result0 := q1.Slerp(q2, 0)
	if math.Abs(float64(result0.W-q1.W)) > 0.001 {
		t.Errorf("Slerp at t=0 should equal q1")
	}

	result1 := q1.Slerp(q2, 1)
	if math.Abs(float64(result1.W-q2.W)) > 0.001 {
		t.Errorf("Slerp at t=1 should equal q2")
	}

	// For a 90 degree rotation, halfway is 45 degrees.
	result5 := q1.Slerp(q2, 0.5)
	expectedW := float32(math.Cos(math.Pi / 8))
	if math.Abs(float64(result5.W-expectedW)) > 0.01 {
		t.Errorf("Slerp at t=0.5: expected W ~%v, got %v", expectedW, result5.W)
	}
}

func TestQuatLerpShortestPath(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, 0.2)
	neg := Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}

	got := QuatIdentity().Lerp(neg, 1)
	if !got.ApproxEqual(q, 0.0001) {
		t.Errorf("Lerp should follow the shorter arc, got %+v", got)
	}
}

func TestQuatToMat4(t *testing.T) {
	m := QuatIdentity().ToMat4()

	identity := Identity()
	for i := 0; i < 16; i++ {
		if math.Abs(float64(m[i]-identity[i])) > 0.0001 {
			t.Errorf("Identity quat should produce identity matrix, element %d: got %v, want %v", i, m[i], identity[i])
		}
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))

	expectedW := float32(math.Cos(math.Pi / 4))
	expectedY := float32(math.Sin(math.Pi / 4))

	if math.Abs(float64(q.W-expectedW)) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(float64(q.Y-expectedY)) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
}
