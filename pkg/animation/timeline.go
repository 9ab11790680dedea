package animation

import "time"

// Timeline is anything that can be placed on a time axis.
type Timeline interface {
	// TotalDuration returns how long the timeline is active on the caller's
	// time axis, including its delay. Infinite means it never ends.
	TotalDuration() (time.Duration, error)

	// State returns the playback state at caller time t.
	State(t time.Duration) (State, error)

	// AnimationTime returns the time to feed into the wrapped content at
	// caller time t. The boolean is false while the timeline is delayed or
	// stopped.
	AnimationTime(t time.Duration) (time.Duration, bool, error)

	// CreateInstance builds the playback node tree for this timeline.
	CreateInstance() *Instance
}

// Animation is a timeline that produces values of type T.
type Animation[T any] interface {
	Timeline

	// Traits returns the value operations used by the animation.
	Traits() Traits[T]

	// Value stores the animated value at caller time t in result.
	// defaultSource and defaultTarget stand in for unspecified start and end
	// values; defaultSource is also the value reported while inactive.
	// The three pointers may alias.
	Value(t time.Duration, defaultSource, defaultTarget, result *T) error
}

type timed interface{ timingRef() *Timing }

type windowed interface{ windowRef() *ClipWindow }

type looped interface{ LoopBehavior() LoopBehavior }

func (tm *Timing) timingRef() *Timing { return tm }

func (cw *ClipWindow) windowRef() *ClipWindow { return cw }

// TimingOf returns the timing settings of clips and leaf animations.
func TimingOf(t Timeline) (*Timing, bool) {
	if n, ok := t.(timed); ok {
		return n.timingRef(), true
	}
	return nil, false
}

// ClipWindowOf returns the window of a clip.
func ClipWindowOf(t Timeline) (*ClipWindow, bool) {
	if n, ok := t.(windowed); ok {
		return n.windowRef(), true
	}
	return nil, false
}

// LoopBehaviorOf returns the loop behavior of a clip.
func LoopBehaviorOf(t Timeline) (LoopBehavior, bool) {
	if n, ok := t.(looped); ok {
		return n.LoopBehavior(), true
	}
	return LoopConstant, false
}
