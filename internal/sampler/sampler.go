// Package sampler evaluates a timeline document at regular times.
package sampler

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-anim/internal/timelinefile"
	"github.com/Faultbox/midgard-anim/pkg/animation"
)

// MaxRows bounds a single sampling run.
const MaxRows = 100000

// Options selects the sampled times. End 0 means the total duration of the
// timeline, or Start plus Fallback when that is infinite.
type Options struct {
	Start     time.Duration
	End       time.Duration
	Step      time.Duration
	Precision int
	Fallback  time.Duration
}

// Row is the evaluation of the document at one time.
type Row struct {
	Time          time.Duration
	State         animation.State
	AnimationTime time.Duration
	Active        bool   // AnimationTime is meaningful
	Value         string // Empty when the document has no values
}

// Sampler evaluates documents and logs what it does.
type Sampler struct {
	log *zap.Logger
}

// New creates a sampler. A nil logger discards output.
func New(log *zap.Logger) *Sampler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sampler{log: log}
}

// Sample evaluates doc at Start, Start+Step, ... up to and including End.
func (s *Sampler) Sample(doc *timelinefile.Document, opts Options) ([]Row, error) {
	if opts.Step <= 0 {
		return nil, fmt.Errorf("sampler: step must be positive, got %v", opts.Step)
	}

	end, err := s.end(doc, opts)
	if err != nil {
		return nil, err
	}
	if end < opts.Start {
		return nil, fmt.Errorf("sampler: end %v is before start %v", end, opts.Start)
	}
	span := end - opts.Start
	if span < 0 {
		return nil, fmt.Errorf("sampler: range %v to %v is too long", opts.Start, end)
	}
	steps := int64(span / opts.Step)
	if steps >= MaxRows {
		return nil, fmt.Errorf("sampler: %v / %v samples exceed the limit of %d", span, opts.Step, MaxRows)
	}
	count := steps + 1

	s.log.Debug("sampling",
		zap.String("timeline", doc.Name),
		zap.Duration("start", opts.Start),
		zap.Duration("end", end),
		zap.Duration("step", opts.Step),
		zap.Int64("rows", count))

	rows := make([]Row, 0, count)
	for i := int64(0); i < count; i++ {
		t := opts.Start + time.Duration(i)*opts.Step
		row, err := s.row(doc, t, opts.Precision)
		if err != nil {
			return rows, fmt.Errorf("sampler: at %v: %w", t, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *Sampler) end(doc *timelinefile.Document, opts Options) (time.Duration, error) {
	if opts.End != 0 {
		return opts.End, nil
	}
	total, err := doc.Timeline.TotalDuration()
	if err != nil {
		return 0, err
	}
	if total == animation.Infinite {
		s.log.Info("timeline never ends, sampling a fixed window",
			zap.String("timeline", doc.Name),
			zap.Duration("window", opts.Fallback))
		return opts.Start + opts.Fallback, nil
	}
	return total, nil
}

func (s *Sampler) row(doc *timelinefile.Document, t time.Duration, precision int) (Row, error) {
	state, err := doc.Timeline.State(t)
	if err != nil {
		return Row{}, err
	}
	local, ok, err := doc.Timeline.AnimationTime(t)
	if err != nil {
		return Row{}, err
	}
	row := Row{Time: t, State: state, AnimationTime: local, Active: ok}

	value, err := doc.FormatValue(t, precision)
	switch {
	case errors.Is(err, timelinefile.ErrNoValues):
	case err != nil:
		return Row{}, err
	default:
		row.Value = value
	}
	return row, nil
}

// Write renders rows as an aligned table.
func Write(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tSTATE\tANIMATION TIME\tVALUE")
	for _, r := range rows {
		local := "-"
		if r.Active {
			local = r.AnimationTime.String()
		}
		value := r.Value
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(tw, "%v\t%v\t%s\t%s\n", r.Time, r.State, local, value)
	}
	return tw.Flush()
}
