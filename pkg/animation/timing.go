package animation

import (
	"fmt"
	"math"
	"time"
)

// Timing holds the playback parameters shared by clips and leaf animations:
// when they start, how fast they run, how long they are active and what
// they report afterwards. The zero value starts immediately, runs at speed
// 1, uses the natural duration of its content and holds at the end.
type Timing struct {
	// Delay shifts the start on the caller's time axis. It may be negative.
	Delay time.Duration

	// FillBehavior decides what happens after the active duration.
	FillBehavior FillBehavior

	duration    time.Duration
	hasDuration bool

	speed    float64
	hasSpeed bool
}

// Duration returns the explicit active duration, if one is set.
// Infinite means the timeline stays active forever.
func (tm *Timing) Duration() (time.Duration, bool) {
	return tm.duration, tm.hasDuration
}

// SetDuration sets the active duration, measured in local (speed-scaled) time.
func (tm *Timing) SetDuration(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("%w: duration must not be negative, got %v", ErrInvalidArgument, d)
	}
	tm.duration, tm.hasDuration = d, true
	return nil
}

// ClearDuration reverts to the natural duration of the content.
func (tm *Timing) ClearDuration() {
	tm.duration, tm.hasDuration = 0, false
}

// Speed returns the playback speed (1 by default).
func (tm *Timing) Speed() float64 {
	if !tm.hasSpeed {
		return 1
	}
	return tm.speed
}

// SetSpeed sets the ratio of local time to caller time. Zero freezes the
// timeline, which then never finishes.
func (tm *Timing) SetSpeed(speed float64) error {
	if speed < 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
		return fmt.Errorf("%w: speed must be finite and non-negative, got %v", ErrInvalidArgument, speed)
	}
	tm.speed, tm.hasSpeed = speed, true
	return nil
}

// activeDuration is the explicit duration or, if unset, natural.
func (tm *Timing) activeDuration(natural time.Duration) time.Duration {
	if tm.hasDuration {
		return tm.duration
	}
	return natural
}

// totalDuration converts an active duration to the caller's time axis.
func (tm *Timing) totalDuration(active time.Duration) time.Duration {
	speed := tm.Speed()
	if speed == 0 || active == Infinite {
		return Infinite
	}
	total := addDurations(tm.Delay, divideDuration(active, speed))
	if total < 0 {
		return 0
	}
	return total
}

// localTime maps caller time t to the state and the local time in
// [0, active]. The local time is meaningless when the state is
// StateDelayed or StateStopped.
func (tm *Timing) localTime(t, active time.Duration) (State, time.Duration) {
	t = subDurations(t, tm.Delay)
	if t < 0 {
		return StateDelayed, 0
	}
	t = scaleDuration(t, tm.Speed())
	if active != Infinite && t >= active {
		if tm.FillBehavior == FillStop {
			return StateStopped, 0
		}
		return StateFilling, active
	}
	return StatePlaying, t
}
