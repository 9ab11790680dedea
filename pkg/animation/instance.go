package animation

import "time"

// Instance is the playback node of a timeline. CreateInstance builds one
// node per timeline node, so the instance tree mirrors the timeline tree.
// An instance holds the time of its timeline; children receive the time
// their parent feeds into them.
type Instance struct {
	Timeline Timeline
	Parent   *Instance
	Children []*Instance

	time    time.Duration
	hasTime bool
}

func newInstance(timeline Timeline, children ...Timeline) *Instance {
	inst := &Instance{Timeline: timeline}
	for _, child := range children {
		if child == nil {
			continue
		}
		c := child.CreateInstance()
		c.Parent = inst
		inst.Children = append(inst.Children, c)
	}
	return inst
}

// Time returns the current time of the instance. The boolean is false
// while the instance is not running.
func (i *Instance) Time() (time.Duration, bool) {
	return i.time, i.hasTime
}

// SetTime moves the instance to t and updates the subtree.
func (i *Instance) SetTime(t time.Duration) error {
	i.time, i.hasTime = t, true
	return i.propagate()
}

// AdvanceTime moves the instance forward by delta. A stopped instance
// starts from zero.
func (i *Instance) AdvanceTime(delta time.Duration) error {
	t := time.Duration(0)
	if i.hasTime {
		t = i.time
	}
	return i.SetTime(addDurations(t, delta))
}

// Stop clears the time of the instance and its subtree.
func (i *Instance) Stop() {
	i.time, i.hasTime = 0, false
	for _, c := range i.Children {
		c.Stop()
	}
}

// State returns the state of the timeline at the instance's time, or
// StateStopped if the instance is not running.
func (i *Instance) State() (State, error) {
	if !i.hasTime {
		return StateStopped, nil
	}
	return i.Timeline.State(i.time)
}

func (i *Instance) propagate() error {
	if len(i.Children) == 0 {
		return nil
	}
	var (
		childTime time.Duration
		ok        bool
	)
	if i.hasTime {
		var err error
		childTime, ok, err = i.Timeline.AnimationTime(i.time)
		if err != nil {
			return err
		}
	}
	for _, c := range i.Children {
		if !ok {
			c.Stop()
			continue
		}
		if err := c.SetTime(childTime); err != nil {
			return err
		}
	}
	return nil
}

// Walk calls fn for the instance and its descendants in depth-first
// pre-order, passing the depth (0 for i). It stops at the first error.
func (i *Instance) Walk(fn func(inst *Instance, depth int) error) error {
	return i.walk(fn, 0)
}

func (i *Instance) walk(fn func(*Instance, int) error, depth int) error {
	if err := fn(i, depth); err != nil {
		return err
	}
	for _, c := range i.Children {
		if err := c.walk(fn, depth+1); err != nil {
			return err
		}
	}
	return nil
}
