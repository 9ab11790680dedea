package animation

// Traits describes how the engine manipulates values of type T.
//
// Every pointer argument may alias every other one; implementations must
// read their inputs completely before writing the result.
//
// Create and Recycle bracket scratch storage: the engine calls Create to get
// a value shaped like reference (same length for slices, for example) and
// Recycle exactly once when it is done with it, on every return path.
type Traits[T any] interface {
	// Create initializes value as scratch storage compatible with reference.
	Create(reference, value *T)

	// Recycle releases storage obtained from Create.
	Recycle(value *T)

	// Copy copies source into target.
	Copy(source, target *T)

	// SetIdentity sets value to the neutral element of Add.
	SetIdentity(value *T)

	// Invert stores the inverse of value with respect to Add.
	Invert(value, inverse *T)

	// Add combines two values: value0 is applied first, then value1.
	// Add is not necessarily commutative (rotations are not).
	Add(value0, value1, result *T)

	// Interpolate blends from source (parameter 0) to target (parameter 1).
	Interpolate(source, target *T, parameter float32, result *T)
}

// multiply stores value added to itself n times (identity for n <= 0).
// It doubles instead of looping so that large cycle counts stay cheap.
func multiply[T any](traits Traits[T], value *T, n int64, result *T) {
	var acc, base T
	traits.Create(value, &acc)
	defer traits.Recycle(&acc)
	traits.Create(value, &base)
	defer traits.Recycle(&base)

	traits.SetIdentity(&acc)
	traits.Copy(value, &base)
	for n > 0 {
		if n&1 == 1 {
			traits.Add(&acc, &base, &acc)
		}
		n >>= 1
		if n > 0 {
			traits.Add(&base, &base, &base)
		}
	}
	traits.Copy(&acc, result)
}
