package animation

import (
	"sync"

	"github.com/Faultbox/midgard-anim/pkg/math"
)

var weightsPool = sync.Pool{
	New: func() any { return new([]float32) },
}

// WeightsTraits animates variable-length weight vectors such as morph
// target weights. Scratch slices come from a pool; all slices combined by
// one animation are expected to have the same length.
type WeightsTraits struct{}

func (WeightsTraits) Create(reference, value *[]float32) {
	n := len(*reference)
	buf := weightsPool.Get().(*[]float32)
	s := *buf
	if cap(s) < n {
		s = make([]float32, n)
	}
	s = s[:n]
	clear(s)
	*value = s
}

func (WeightsTraits) Recycle(value *[]float32) {
	if *value == nil {
		return
	}
	s := (*value)[:0]
	*value = nil
	weightsPool.Put(&s)
}

func (WeightsTraits) Copy(source, target *[]float32) {
	resize(target, len(*source))
	copy(*target, *source)
}

func (WeightsTraits) SetIdentity(value *[]float32) {
	clear(*value)
}

func (WeightsTraits) Invert(value, inverse *[]float32) {
	resize(inverse, len(*value))
	v, r := *value, *inverse
	for i := range r {
		r[i] = -v[i]
	}
}

func (WeightsTraits) Add(value0, value1, result *[]float32) {
	n := min(len(*value0), len(*value1))
	a, b := *value0, *value1
	resize(result, n)
	r := *result
	for i := range r {
		r[i] = a[i] + b[i]
	}
}

func (WeightsTraits) Interpolate(source, target *[]float32, parameter float32, result *[]float32) {
	n := min(len(*source), len(*target))
	a, b := *source, *target
	resize(result, n)
	r := *result
	for i := range r {
		r[i] = math.Lerp(a[i], b[i], parameter)
	}
}

// resize sets the length of *s to n, reusing capacity when possible.
func resize(s *[]float32, n int) {
	if len(*s) == n {
		return
	}
	if cap(*s) >= n {
		*s = (*s)[:n]
		return
	}
	grown := make([]float32, n)
	copy(grown, *s)
	*s = grown
}

var _ Traits[[]float32] = WeightsTraits{}
