package animation

import (
	"fmt"

	"go.uber.org/multierr"
)

// Validate evaluates every node of the timeline tree once and returns all
// failures combined. Hosts call it before playback instead of handling
// evaluation errors every frame.
func Validate(timeline Timeline) error {
	if timeline == nil {
		return fmt.Errorf("%w: nil timeline", ErrInvalidArgument)
	}

	var errs error
	index := 0
	_ = timeline.CreateInstance().Walk(func(inst *Instance, depth int) error {
		_, err := inst.Timeline.TotalDuration()
		if err == nil {
			_, _, err = inst.Timeline.AnimationTime(0)
		}
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("node %d (%T, depth %d): %w", index, inst.Timeline, depth, err))
		}
		index++
		return nil
	})
	return errs
}
