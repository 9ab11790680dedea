package animation

import (
	"fmt"
	"time"
)

// ClipWindow selects the part of a wrapped timeline a clip plays.
// Its fields are not validated on assignment; a start after the end is
// reported by the first evaluation.
type ClipWindow struct {
	// ClipStart is where the window begins in the wrapped timeline.
	// nil means 0.
	ClipStart *time.Duration

	// ClipEnd is where the window ends in the wrapped timeline.
	// nil means the wrapped timeline's total duration.
	ClipEnd *time.Duration

	// ClipOffset shifts playback inside the window.
	ClipOffset time.Duration

	// IsClipReversed plays the window from end to start.
	IsClipReversed bool
}

// window is a resolved, validated ClipWindow.
type window struct {
	start, end time.Duration
}

func (w window) length() time.Duration {
	return spanLength(w.start, w.end)
}

// resolve applies the defaults and checks start <= end. natural is only
// consulted when ClipEnd is unset.
func (cw *ClipWindow) resolve(natural func() (time.Duration, error)) (window, error) {
	var w window
	if cw.ClipStart != nil {
		w.start = *cw.ClipStart
	}
	if cw.ClipEnd != nil {
		w.end = *cw.ClipEnd
	} else {
		d, err := natural()
		if err != nil {
			return window{}, err
		}
		w.end = d
	}
	if w.start > w.end {
		return window{}, fmt.Errorf("%w: clip start %v is after clip end %v", ErrInvalidAnimation, w.start, w.end)
	}
	return w, nil
}

// clipTime is the result of mapping caller time through a clip.
type clipTime struct {
	state  State
	window window

	// raw is the unfolded window position, time the folded (and possibly
	// reversed) one. Both are only set while playing or filling.
	raw  time.Duration
	time time.Duration

	hasCycleOffset bool
}

func (ct clipTime) active() bool {
	return ct.state == StatePlaying || ct.state == StateFilling
}

// evaluateClip runs caller time t through delay, speed, duration, fill,
// window, offset, loop and reversal.
func evaluateClip(tm *Timing, cw *ClipWindow, loop LoopBehavior, natural func() (time.Duration, error), t time.Duration) (clipTime, error) {
	w, err := cw.resolve(natural)
	if err != nil {
		return clipTime{}, err
	}

	state, local := tm.localTime(t, tm.activeDuration(w.length()))
	ct := clipTime{state: state, window: w}
	if !ct.active() {
		return ct, nil
	}

	ct.raw = addDurations(addDurations(w.start, cw.ClipOffset), local)
	ct.time, ct.hasCycleOffset = LoopParameter(ct.raw, w.start, w.end, loop)
	if cw.IsClipReversed && w.end != Infinite {
		ct.time = w.end - (ct.time - w.start)
	}
	return ct, nil
}

// clipTotalDuration resolves the window and converts its length.
func clipTotalDuration(tm *Timing, cw *ClipWindow, natural func() (time.Duration, error)) (time.Duration, error) {
	w, err := cw.resolve(natural)
	if err != nil {
		return 0, err
	}
	return tm.totalDuration(tm.activeDuration(w.length())), nil
}
