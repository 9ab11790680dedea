package animation

import "time"

// Folding an unbounded window is not meaningful; windows longer than this
// are clamped instead of looped.
const maxLoopLength = Infinite / 2

// LoopParameter folds t into [start, end] according to loop.
//
// Times in [start, end) are returned unchanged. At end, the cycling
// behaviors have completed one cycle and return start; the others return
// end. A degenerate window (end <= start) always yields start. The boolean reports whether a
// LoopCycleOffset fold happened, i.e. whether the caller has to add the
// accumulated cycle offset.
func LoopParameter(t, start, end time.Duration, loop LoopBehavior) (time.Duration, bool) {
	length := spanLength(start, end)
	if length <= 0 {
		return start, false
	}
	if t >= start && t < end {
		return t, false
	}

	if length > maxLoopLength {
		loop = LoopConstant
	}

	switch loop {
	case LoopCycle, LoopCycleOffset:
		k := floorDiv(t-start, length)
		return t - time.Duration(k)*length, loop == LoopCycleOffset

	case LoopOscillate:
		period := 2 * length
		p := (t - start) % period
		if p < 0 {
			p += period
		}
		if p > length {
			p = period - p
		}
		return start + p, false

	default:
		if t < start {
			return start, false
		}
		return end, false
	}
}

// cycleCount returns the number of completed cycles of [start, end] at t,
// clamped to zero for times before the end of the window.
func cycleCount(t, start, end time.Duration) int64 {
	length := spanLength(start, end)
	if length <= 0 || length > maxLoopLength || t < end {
		return 0
	}
	return max(floorDiv(t-start, length), 0)
}

// CycleOffset stores the value offset accumulated by LoopCycleOffset at
// time t: the number of completed cycles times (endValue - startValue).
// For every other loop behavior the result is the identity.
func CycleOffset[T any](t, start, end time.Duration, startValue, endValue *T, traits Traits[T], loop LoopBehavior, result *T) {
	cycles := int64(0)
	if loop == LoopCycleOffset {
		cycles = cycleCount(t, start, end)
	}
	if cycles == 0 {
		traits.SetIdentity(result)
		return
	}

	var inverse, delta T
	traits.Create(startValue, &inverse)
	defer traits.Recycle(&inverse)
	traits.Create(startValue, &delta)
	defer traits.Recycle(&delta)

	// Undo the start value, then apply the end value.
	traits.Invert(startValue, &inverse)
	traits.Add(&inverse, endValue, &delta)
	multiply(traits, &delta, cycles, result)
}

// groupState combines the states of sibling timelines that share the
// caller's time axis.
func groupState(children []Timeline, t time.Duration) (State, error) {
	if t < 0 {
		return StateDelayed, nil
	}
	state := StateStopped
	for _, child := range children {
		s, err := child.State(t)
		if err != nil {
			return StateStopped, err
		}
		switch s {
		case StatePlaying, StateDelayed:
			return StatePlaying, nil
		case StateFilling:
			state = StateFilling
		}
	}
	return state, nil
}

// groupAnimationTime forwards t unchanged while any child is active.
func groupAnimationTime(children []Timeline, t time.Duration) (time.Duration, bool, error) {
	state, err := groupState(children, t)
	if err != nil {
		return 0, false, err
	}
	if state == StateDelayed || state == StateStopped {
		return 0, false, nil
	}
	return t, true, nil
}

// groupTotalDuration is the maximum total duration of the children.
func groupTotalDuration(children []Timeline) (time.Duration, error) {
	var total time.Duration
	for _, child := range children {
		d, err := child.TotalDuration()
		if err != nil {
			return 0, err
		}
		total = MaxDuration(total, d)
	}
	return total, nil
}
