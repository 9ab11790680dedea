package animation

import (
	"time"

	"github.com/tanema/gween/ease"
)

// DefaultFromToByDuration is the duration of a FromToByAnimation whose
// duration has been cleared.
const DefaultFromToByDuration = time.Second

// FromToByAnimation interpolates between a start and an end value. Which
// values are used depends on which of From, To and By are set:
//
//	From, To: From -> To
//	From, By: From -> From+By
//	From:     From -> defaultTarget
//	To:       defaultSource -> To
//	By:       defaultSource -> defaultSource+By
//	none:     defaultSource -> defaultTarget
type FromToByAnimation[T any] struct {
	Timing

	From *T
	To   *T
	By   *T

	// IsAdditive adds the animated value to the default source value.
	IsAdditive bool

	// Easing shapes the progress. nil means linear.
	Easing ease.TweenFunc

	traits Traits[T]
}

// NewFromToByAnimation returns an animation with a duration of one second.
func NewFromToByAnimation[T any](traits Traits[T]) *FromToByAnimation[T] {
	a := &FromToByAnimation[T]{traits: traits}
	a.duration, a.hasDuration = DefaultFromToByDuration, true
	return a
}

// Traits implements Animation.
func (a *FromToByAnimation[T]) Traits() Traits[T] {
	return a.traits
}

func (a *FromToByAnimation[T]) active() time.Duration {
	return a.activeDuration(DefaultFromToByDuration)
}

// TotalDuration implements Timeline.
func (a *FromToByAnimation[T]) TotalDuration() (time.Duration, error) {
	return a.totalDuration(a.active()), nil
}

// State implements Timeline.
func (a *FromToByAnimation[T]) State(t time.Duration) (State, error) {
	state, _ := a.localTime(t, a.active())
	return state, nil
}

// AnimationTime returns the local time in [0, Duration].
func (a *FromToByAnimation[T]) AnimationTime(t time.Duration) (time.Duration, bool, error) {
	state, local := a.localTime(t, a.active())
	if state == StateDelayed || state == StateStopped {
		return 0, false, nil
	}
	return local, true, nil
}

// CreateInstance implements Timeline.
func (a *FromToByAnimation[T]) CreateInstance() *Instance {
	return newInstance(a)
}

// Value implements Animation.
func (a *FromToByAnimation[T]) Value(t time.Duration, defaultSource, defaultTarget, result *T) error {
	active := a.active()
	state, local := a.localTime(t, active)
	if state == StateDelayed || state == StateStopped {
		a.traits.Copy(defaultSource, result)
		return nil
	}

	p := progress(local, active)
	if a.Easing != nil {
		p = a.Easing(p, 0, 1, 1)
	}

	if !a.IsAdditive {
		a.interpolate(p, defaultSource, defaultTarget, result)
		return nil
	}

	var source T
	a.traits.Create(defaultSource, &source)
	defer a.traits.Recycle(&source)
	a.traits.Copy(defaultSource, &source)

	a.interpolate(p, defaultSource, defaultTarget, result)
	a.traits.Add(result, &source, result)
	return nil
}

func (a *FromToByAnimation[T]) interpolate(p float32, defaultSource, defaultTarget, result *T) {
	var sum T
	a.traits.Create(defaultSource, &sum)
	defer a.traits.Recycle(&sum)

	from, to := defaultSource, defaultTarget
	switch {
	case a.From != nil && a.To != nil:
		from, to = a.From, a.To
	case a.From != nil && a.By != nil:
		a.traits.Add(a.From, a.By, &sum)
		from, to = a.From, &sum
	case a.From != nil:
		from = a.From
	case a.To != nil:
		to = a.To
	case a.By != nil:
		a.traits.Add(defaultSource, a.By, &sum)
		to = &sum
	}
	a.traits.Interpolate(from, to, p, result)
}

// progress maps local time to [0, 1]. An empty duration is complete at once;
// an infinite one never progresses.
func progress(local, active time.Duration) float32 {
	switch {
	case active == 0:
		return 1
	case active == Infinite:
		return 0
	}
	return float32(float64(local) / float64(active))
}

var _ Animation[float32] = (*FromToByAnimation[float32])(nil)
