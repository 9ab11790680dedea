package animation

import (
	"fmt"
	"time"
)

// TimelineClip plays a window of another timeline with its own delay,
// speed, duration, fill and loop behavior. A nil Timeline makes an empty
// clip whose natural duration is zero.
type TimelineClip struct {
	Timing
	ClipWindow

	// Timeline is the wrapped timeline.
	Timeline Timeline

	loop LoopBehavior
}

// NewTimelineClip returns a clip wrapping timeline with default settings.
func NewTimelineClip(timeline Timeline) *TimelineClip {
	return &TimelineClip{Timeline: timeline}
}

// LoopBehavior returns how time outside the clip window is folded.
func (c *TimelineClip) LoopBehavior() LoopBehavior {
	return c.loop
}

// SetLoopBehavior sets the loop behavior. LoopCycleOffset is rejected
// because an untyped timeline has no values to offset.
func (c *TimelineClip) SetLoopBehavior(loop LoopBehavior) error {
	if loop == LoopCycleOffset {
		return fmt.Errorf("%w: %v is only supported by typed animation clips", ErrInvalidArgument, loop)
	}
	if !loop.valid() {
		return fmt.Errorf("%w: unknown loop behavior %d", ErrInvalidArgument, int(loop))
	}
	c.loop = loop
	return nil
}

func (c *TimelineClip) naturalDuration() (time.Duration, error) {
	if c.Timeline == nil {
		return 0, nil
	}
	return c.Timeline.TotalDuration()
}

// TotalDuration implements Timeline.
func (c *TimelineClip) TotalDuration() (time.Duration, error) {
	return clipTotalDuration(&c.Timing, &c.ClipWindow, c.naturalDuration)
}

// State implements Timeline.
func (c *TimelineClip) State(t time.Duration) (State, error) {
	ct, err := evaluateClip(&c.Timing, &c.ClipWindow, c.loop, c.naturalDuration, t)
	if err != nil {
		return StateStopped, err
	}
	return ct.state, nil
}

// AnimationTime returns the time to evaluate the wrapped timeline at.
func (c *TimelineClip) AnimationTime(t time.Duration) (time.Duration, bool, error) {
	ct, err := evaluateClip(&c.Timing, &c.ClipWindow, c.loop, c.naturalDuration, t)
	if err != nil || !ct.active() {
		return 0, false, err
	}
	return ct.time, true, nil
}

// CreateInstance implements Timeline. It does not validate the clip.
func (c *TimelineClip) CreateInstance() *Instance {
	return newInstance(c, c.Timeline)
}

var _ Timeline = (*TimelineClip)(nil)
