package animation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimelineGroupList(t *testing.T) {
	a, b, c := leaf(t, time.Second), leaf(t, 2*time.Second), leaf(t, 3*time.Second)

	g, err := NewTimelineGroup(a, c)
	require.NoError(t, err)
	require.NoError(t, g.Insert(1, b))
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, 1, g.IndexOf(b))
	assert.True(t, g.Contains(c))
	assert.Equal(t, -1, g.IndexOf(leaf(t, time.Second)))

	var order []Timeline
	for _, child := range g.All() {
		order = append(order, child)
	}
	assert.Equal(t, []Timeline{a, b, c}, order)

	require.NoError(t, g.RemoveAt(0))
	assert.Same(t, b, g.At(0))
	require.NoError(t, g.Set(1, a))
	assert.Same(t, a, g.At(1))

	g.Clear()
	assert.Zero(t, g.Len())
}

func TestTimelineGroupInvalidArguments(t *testing.T) {
	_, err := NewTimelineGroup(nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument), "got %v", err)

	g, err := NewTimelineGroup(leaf(t, time.Second))
	require.NoError(t, err)

	tests := []struct {
		name string
		fn   func() error
	}{
		{"add nil", func() error { return g.Add(nil) }},
		{"set nil", func() error { return g.Set(0, nil) }},
		{"insert nil", func() error { return g.Insert(0, nil) }},
		{"set out of range", func() error { return g.Set(1, leaf(t, 0)) }},
		{"insert out of range", func() error { return g.Insert(2, leaf(t, 0)) }},
		{"insert negative", func() error { return g.Insert(-1, leaf(t, 0)) }},
		{"remove out of range", func() error { return g.RemoveAt(1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.fn(), ErrInvalidArgument)
		})
	}
	assert.Equal(t, 1, g.Len())
	require.NoError(t, g.Insert(1, leaf(t, 0)))
}

func TestTimelineGroupEmpty(t *testing.T) {
	g, err := NewTimelineGroup()
	require.NoError(t, err)

	d, err := g.TotalDuration()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), d)

	state, err := g.State(0)
	require.NoError(t, err)
	assert.Equal(t, StateStopped, state)
}

func TestTimelineGroupTiming(t *testing.T) {
	short := leaf(t, time.Second)
	long := leaf(t, 2*time.Second)
	long.FillBehavior = FillStop
	late := leaf(t, time.Second)
	late.Delay = 5 * time.Second
	late.FillBehavior = FillStop

	g, err := NewTimelineGroup(short, long, late)
	require.NoError(t, err)

	total, err := g.TotalDuration()
	require.NoError(t, err)
	assert.Equal(t, 6*time.Second, total)

	tests := []struct {
		at    time.Duration
		state State
	}{
		{-time.Nanosecond, StateDelayed},
		{0, StatePlaying},
		{1500 * ms, StatePlaying},
		// short fills, long stopped, late still delayed.
		{3 * time.Second, StatePlaying},
		{5500 * ms, StatePlaying},
		{7 * time.Second, StateFilling},
	}
	for _, tt := range tests {
		state, err := g.State(tt.at)
		require.NoError(t, err)
		assert.Equal(t, tt.state, state, "at %v", tt.at)
	}

	local, ok, err := g.AnimationTime(7 * time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 7*time.Second, local)

	_, ok, err = g.AnimationTime(-time.Second)
	require.NoError(t, err)
	assert.False(t, ok)

	short.FillBehavior = FillStop
	state, err := g.State(7 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, StateStopped, state)
	_, ok, err = g.AnimationTime(7 * time.Second)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTimelineGroupInfiniteChild(t *testing.T) {
	clip := NewTimelineClip(leaf(t, time.Second))
	require.NoError(t, clip.SetDuration(Infinite))

	g, err := NewTimelineGroup(leaf(t, time.Second), clip)
	require.NoError(t, err)

	total, err := g.TotalDuration()
	require.NoError(t, err)
	assert.Equal(t, Infinite, total)
}

func TestTimelineGroupPropagatesErrors(t *testing.T) {
	bad := NewTimelineClip(leaf(t, time.Second))
	bad.ClipStart, bad.ClipEnd = Ref(2*time.Second), Ref(time.Second)

	// A playing child earlier in the list would short-circuit State.
	g, err := NewTimelineGroup(bad, leaf(t, time.Second))
	require.NoError(t, err)

	_, err = g.TotalDuration()
	assert.ErrorIs(t, err, ErrInvalidAnimation)
	_, err = g.State(0)
	assert.ErrorIs(t, err, ErrInvalidAnimation)
	_, _, err = g.AnimationTime(0)
	assert.ErrorIs(t, err, ErrInvalidAnimation)
}

func TestTimelineGroupInsideClip(t *testing.T) {
	g, err := NewTimelineGroup(leaf(t, time.Second), leaf(t, 2*time.Second))
	require.NoError(t, err)

	clip := NewTimelineClip(g)
	require.NoError(t, clip.SetLoopBehavior(LoopCycle))
	require.NoError(t, clip.SetDuration(10*time.Second))

	local, ok, err := clip.AnimationTime(5 * time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, time.Second, local)

	inst := clip.CreateInstance()
	require.NoError(t, inst.SetTime(5*time.Second))
	require.Len(t, inst.Children, 1)
	require.Len(t, inst.Children[0].Children, 2)

	got, ok := inst.Children[0].Children[1].Time()
	assert.True(t, ok)
	assert.Equal(t, time.Second, got)
}
