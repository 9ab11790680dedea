package animation

import (
	"fmt"
	"strings"
)

// State is the playback state of a timeline at a given time.
type State int

const (
	// StateDelayed means the timeline has not started yet.
	StateDelayed State = iota
	// StatePlaying means the timeline is active.
	StatePlaying
	// StateFilling means the active period is over and the final value is held.
	StateFilling
	// StateStopped means the timeline is inactive.
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateDelayed:
		return "delayed"
	case StatePlaying:
		return "playing"
	case StateFilling:
		return "filling"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// FillBehavior decides what a timeline reports after its duration has elapsed.
type FillBehavior int

const (
	// FillHold freezes the timeline at its final time.
	FillHold FillBehavior = iota
	// FillStop makes the timeline inactive.
	FillStop
)

func (f FillBehavior) String() string {
	switch f {
	case FillHold:
		return "hold"
	case FillStop:
		return "stop"
	default:
		return fmt.Sprintf("FillBehavior(%d)", int(f))
	}
}

// ParseFillBehavior converts "hold" or "stop" (case-insensitive).
func ParseFillBehavior(s string) (FillBehavior, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hold", "":
		return FillHold, nil
	case "stop":
		return FillStop, nil
	}
	return FillHold, fmt.Errorf("%w: unknown fill behavior %q", ErrInvalidArgument, s)
}

// MarshalText implements encoding.TextMarshaler.
func (f FillBehavior) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *FillBehavior) UnmarshalText(text []byte) error {
	v, err := ParseFillBehavior(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// LoopBehavior decides how time outside a clip window is folded back into it.
type LoopBehavior int

const (
	// LoopConstant clamps to the window boundaries.
	LoopConstant LoopBehavior = iota
	// LoopCycle repeats the window.
	LoopCycle
	// LoopCycleOffset repeats the window and accumulates the value change of
	// each completed cycle. Only typed clips support it.
	LoopCycleOffset
	// LoopOscillate plays the window forwards and backwards alternately.
	LoopOscillate
)

func (l LoopBehavior) String() string {
	switch l {
	case LoopConstant:
		return "constant"
	case LoopCycle:
		return "cycle"
	case LoopCycleOffset:
		return "cycle_offset"
	case LoopOscillate:
		return "oscillate"
	default:
		return fmt.Sprintf("LoopBehavior(%d)", int(l))
	}
}

// ParseLoopBehavior converts a loop behavior name (case-insensitive).
// "cycle_offset", "cycle-offset" and "cycleoffset" are accepted.
func ParseLoopBehavior(s string) (LoopBehavior, error) {
	name := strings.NewReplacer("_", "", "-", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch name {
	case "constant", "":
		return LoopConstant, nil
	case "cycle":
		return LoopCycle, nil
	case "cycleoffset":
		return LoopCycleOffset, nil
	case "oscillate":
		return LoopOscillate, nil
	}
	return LoopConstant, fmt.Errorf("%w: unknown loop behavior %q", ErrInvalidArgument, s)
}

// MarshalText implements encoding.TextMarshaler.
func (l LoopBehavior) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *LoopBehavior) UnmarshalText(text []byte) error {
	v, err := ParseLoopBehavior(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

func (l LoopBehavior) valid() bool {
	return l >= LoopConstant && l <= LoopOscillate
}
