package animation

import (
	"fmt"
	"iter"
	"time"
)

// TimelineGroup plays an ordered list of timelines in parallel on the same
// time axis. It has no timing of its own; each child applies its own delay
// and speed. The group must not be modified while it is being evaluated.
type TimelineGroup struct {
	children []Timeline
}

// NewTimelineGroup returns a group containing the given timelines.
func NewTimelineGroup(children ...Timeline) (*TimelineGroup, error) {
	g := &TimelineGroup{}
	for _, child := range children {
		if err := g.Add(child); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func checkChild(child Timeline) error {
	if child == nil {
		return fmt.Errorf("%w: timeline group children must not be nil", ErrInvalidArgument)
	}
	return nil
}

func (g *TimelineGroup) checkIndex(i, limit int) error {
	if i < 0 || i >= limit {
		return fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidArgument, i, limit)
	}
	return nil
}

// Len returns the number of children.
func (g *TimelineGroup) Len() int {
	return len(g.children)
}

// At returns the child at index i. It panics if i is out of range.
func (g *TimelineGroup) At(i int) Timeline {
	return g.children[i]
}

// Set replaces the child at index i.
func (g *TimelineGroup) Set(i int, child Timeline) error {
	if err := checkChild(child); err != nil {
		return err
	}
	if err := g.checkIndex(i, len(g.children)); err != nil {
		return err
	}
	g.children[i] = child
	return nil
}

// Add appends a child.
func (g *TimelineGroup) Add(child Timeline) error {
	if err := checkChild(child); err != nil {
		return err
	}
	g.children = append(g.children, child)
	return nil
}

// Insert inserts a child before index i. i may equal Len.
func (g *TimelineGroup) Insert(i int, child Timeline) error {
	if err := checkChild(child); err != nil {
		return err
	}
	if err := g.checkIndex(i, len(g.children)+1); err != nil {
		return err
	}
	g.children = append(g.children, nil)
	copy(g.children[i+1:], g.children[i:])
	g.children[i] = child
	return nil
}

// RemoveAt removes the child at index i.
func (g *TimelineGroup) RemoveAt(i int) error {
	if err := g.checkIndex(i, len(g.children)); err != nil {
		return err
	}
	copy(g.children[i:], g.children[i+1:])
	g.children[len(g.children)-1] = nil
	g.children = g.children[:len(g.children)-1]
	return nil
}

// Clear removes all children.
func (g *TimelineGroup) Clear() {
	clear(g.children)
	g.children = g.children[:0]
}

// IndexOf returns the index of the first occurrence of child, or -1.
func (g *TimelineGroup) IndexOf(child Timeline) int {
	for i, c := range g.children {
		if c == child {
			return i
		}
	}
	return -1
}

// Contains reports whether child is in the group.
func (g *TimelineGroup) Contains(child Timeline) bool {
	return g.IndexOf(child) >= 0
}

// All iterates over the children in order.
func (g *TimelineGroup) All() iter.Seq2[int, Timeline] {
	return func(yield func(int, Timeline) bool) {
		for i, c := range g.children {
			if !yield(i, c) {
				return
			}
		}
	}
}

// TotalDuration is the longest total duration of the children, 0 when empty.
func (g *TimelineGroup) TotalDuration() (time.Duration, error) {
	return groupTotalDuration(g.children)
}

// State is StatePlaying while any child is playing or still waiting for
// its delay, StateFilling while any child fills, else StateStopped.
func (g *TimelineGroup) State(t time.Duration) (State, error) {
	return groupState(g.children, t)
}

// AnimationTime forwards t unchanged while the group is active.
func (g *TimelineGroup) AnimationTime(t time.Duration) (time.Duration, bool, error) {
	return groupAnimationTime(g.children, t)
}

// CreateInstance implements Timeline.
func (g *TimelineGroup) CreateInstance() *Instance {
	return newInstance(g, g.children...)
}

var _ Timeline = (*TimelineGroup)(nil)
