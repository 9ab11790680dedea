package animation

import (
	"fmt"
	"time"
)

// AnimationClip is the typed counterpart of TimelineClip. Besides the time
// mapping it composes values: it supports LoopCycleOffset, which adds the
// value change of every completed cycle, and additive playback.
type AnimationClip[T any] struct {
	Timing
	ClipWindow

	// Animation is the wrapped animation.
	Animation Animation[T]

	// IsAdditive adds the clip's output to the default source value instead
	// of replacing it.
	IsAdditive bool

	loop LoopBehavior
}

// NewAnimationClip returns a clip wrapping animation with default settings.
func NewAnimationClip[T any](animation Animation[T]) *AnimationClip[T] {
	return &AnimationClip[T]{Animation: animation}
}

// LoopBehavior returns how time outside the clip window is folded.
func (c *AnimationClip[T]) LoopBehavior() LoopBehavior {
	return c.loop
}

// SetLoopBehavior sets the loop behavior.
func (c *AnimationClip[T]) SetLoopBehavior(loop LoopBehavior) error {
	if !loop.valid() {
		return fmt.Errorf("%w: unknown loop behavior %d", ErrInvalidArgument, int(loop))
	}
	c.loop = loop
	return nil
}

// Traits returns the traits of the wrapped animation, or nil for an empty clip.
func (c *AnimationClip[T]) Traits() Traits[T] {
	if c.Animation == nil {
		return nil
	}
	return c.Animation.Traits()
}

func (c *AnimationClip[T]) naturalDuration() (time.Duration, error) {
	if c.Animation == nil {
		return 0, nil
	}
	return c.Animation.TotalDuration()
}

func (c *AnimationClip[T]) evaluate(t time.Duration) (clipTime, error) {
	return evaluateClip(&c.Timing, &c.ClipWindow, c.loop, c.naturalDuration, t)
}

// TotalDuration implements Timeline.
func (c *AnimationClip[T]) TotalDuration() (time.Duration, error) {
	return clipTotalDuration(&c.Timing, &c.ClipWindow, c.naturalDuration)
}

// State implements Timeline.
func (c *AnimationClip[T]) State(t time.Duration) (State, error) {
	ct, err := c.evaluate(t)
	if err != nil {
		return StateStopped, err
	}
	return ct.state, nil
}

// AnimationTime returns the time to evaluate the wrapped animation at.
func (c *AnimationClip[T]) AnimationTime(t time.Duration) (time.Duration, bool, error) {
	ct, err := c.evaluate(t)
	if err != nil || !ct.active() {
		return 0, false, err
	}
	return ct.time, true, nil
}

// CreateInstance implements Timeline. It does not validate the clip.
func (c *AnimationClip[T]) CreateInstance() *Instance {
	return newInstance(c, c.Animation)
}

// Value implements Animation. While the clip is delayed or stopped the
// default source is copied to result.
func (c *AnimationClip[T]) Value(t time.Duration, defaultSource, defaultTarget, result *T) error {
	if c.Animation == nil {
		return fmt.Errorf("%w: animation clip has no animation", ErrEmptyAnimation)
	}
	traits := c.Animation.Traits()

	ct, err := c.evaluate(t)
	if err != nil {
		return err
	}
	if !ct.active() || ct.time < 0 {
		traits.Copy(defaultSource, result)
		return nil
	}

	if !c.IsAdditive {
		return c.valueCore(traits, ct, defaultSource, defaultTarget, result)
	}

	// result may alias defaultSource, so keep the base value aside.
	var source T
	traits.Create(defaultSource, &source)
	defer traits.Recycle(&source)
	traits.Copy(defaultSource, &source)

	if err := c.valueCore(traits, ct, defaultSource, defaultTarget, result); err != nil {
		return err
	}
	// The clip output is applied first, then the base value.
	traits.Add(result, &source, result)
	return nil
}

func (c *AnimationClip[T]) valueCore(traits Traits[T], ct clipTime, defaultSource, defaultTarget, result *T) error {
	if !ct.hasCycleOffset {
		return c.Animation.Value(ct.time, defaultSource, defaultTarget, result)
	}

	start, end := ct.window.start, ct.window.end
	if c.IsClipReversed {
		start, end = end, start
	}

	var startValue, endValue, offset T
	traits.Create(defaultSource, &startValue)
	defer traits.Recycle(&startValue)
	traits.Create(defaultSource, &endValue)
	defer traits.Recycle(&endValue)
	traits.Create(defaultSource, &offset)
	defer traits.Recycle(&offset)

	// Both boundary values read defaultSource, so they come before result
	// is written.
	if err := c.Animation.Value(start, defaultSource, defaultTarget, &startValue); err != nil {
		return err
	}
	if err := c.Animation.Value(end, defaultSource, defaultTarget, &endValue); err != nil {
		return err
	}
	CycleOffset(ct.raw, ct.window.start, ct.window.end, &startValue, &endValue, traits, c.loop, &offset)

	if err := c.Animation.Value(ct.time, defaultSource, defaultTarget, result); err != nil {
		return err
	}
	traits.Add(result, &offset, result)
	return nil
}

var (
	_ Animation[float32] = (*AnimationClip[float32])(nil)
)
