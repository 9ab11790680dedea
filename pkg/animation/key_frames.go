package animation

import (
	"slices"
	"sort"
	"time"
)

// KeyFrame is a value at a point of an animation's local time.
type KeyFrame[T any] struct {
	Time  time.Duration
	Value T
}

// KeyFrameAnimation steps or interpolates through key frames sorted by
// time. Its natural duration is the time of the last key frame.
type KeyFrameAnimation[T any] struct {
	Timing

	// KeyFrames must be sorted by Time; see Sort.
	KeyFrames []KeyFrame[T]

	// EnableInterpolation blends between neighbouring key frames. When
	// false the value jumps at each key frame.
	EnableInterpolation bool

	// IsAdditive adds the animated value to the default source value.
	IsAdditive bool

	traits Traits[T]
}

// NewKeyFrameAnimation returns an interpolating key frame animation.
func NewKeyFrameAnimation[T any](traits Traits[T], frames ...KeyFrame[T]) *KeyFrameAnimation[T] {
	a := &KeyFrameAnimation[T]{KeyFrames: frames, EnableInterpolation: true, traits: traits}
	a.Sort()
	return a
}

// Sort orders the key frames by time, keeping the order of equal times.
func (a *KeyFrameAnimation[T]) Sort() {
	slices.SortStableFunc(a.KeyFrames, func(x, y KeyFrame[T]) int {
		switch {
		case x.Time < y.Time:
			return -1
		case x.Time > y.Time:
			return 1
		}
		return 0
	})
}

// Traits implements Animation.
func (a *KeyFrameAnimation[T]) Traits() Traits[T] {
	return a.traits
}

func (a *KeyFrameAnimation[T]) active() time.Duration {
	if len(a.KeyFrames) == 0 {
		return a.activeDuration(0)
	}
	return a.activeDuration(a.KeyFrames[len(a.KeyFrames)-1].Time)
}

// TotalDuration implements Timeline.
func (a *KeyFrameAnimation[T]) TotalDuration() (time.Duration, error) {
	return a.totalDuration(a.active()), nil
}

// State implements Timeline.
func (a *KeyFrameAnimation[T]) State(t time.Duration) (State, error) {
	state, _ := a.localTime(t, a.active())
	return state, nil
}

// AnimationTime returns the local time.
func (a *KeyFrameAnimation[T]) AnimationTime(t time.Duration) (time.Duration, bool, error) {
	state, local := a.localTime(t, a.active())
	if state == StateDelayed || state == StateStopped {
		return 0, false, nil
	}
	return local, true, nil
}

// CreateInstance implements Timeline.
func (a *KeyFrameAnimation[T]) CreateInstance() *Instance {
	return newInstance(a)
}

// Value implements Animation. Without key frames the default source is used.
func (a *KeyFrameAnimation[T]) Value(t time.Duration, defaultSource, defaultTarget, result *T) error {
	state, local := a.localTime(t, a.active())
	if state == StateDelayed || state == StateStopped || len(a.KeyFrames) == 0 {
		a.traits.Copy(defaultSource, result)
		return nil
	}

	if !a.IsAdditive {
		a.sample(local, result)
		return nil
	}

	var source T
	a.traits.Create(defaultSource, &source)
	defer a.traits.Recycle(&source)
	a.traits.Copy(defaultSource, &source)

	a.sample(local, result)
	a.traits.Add(result, &source, result)
	return nil
}

// sample finds the surrounding key frames and blends them.
func (a *KeyFrameAnimation[T]) sample(local time.Duration, result *T) {
	keys := a.KeyFrames
	// next is the first key frame after local.
	next := sort.Search(len(keys), func(i int) bool { return keys[i].Time > local })

	switch {
	case next == 0:
		a.traits.Copy(&keys[0].Value, result)
		return
	case next == len(keys):
		a.traits.Copy(&keys[len(keys)-1].Value, result)
		return
	}

	k0, k1 := &keys[next-1], &keys[next]
	if !a.EnableInterpolation || k1.Time == k0.Time {
		a.traits.Copy(&k0.Value, result)
		return
	}
	p := float32(float64(local-k0.Time) / float64(k1.Time-k0.Time))
	a.traits.Interpolate(&k0.Value, &k1.Value, p, result)
}

var _ Animation[float32] = (*KeyFrameAnimation[float32])(nil)
