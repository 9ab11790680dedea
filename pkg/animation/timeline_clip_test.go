package animation

import (
	"errors"
	gomath "math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimelineClipEmpty(t *testing.T) {
	clip := NewTimelineClip(nil)

	d, err := clip.TotalDuration()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), d)

	_, err = clip.State(0)
	assert.NoError(t, err)
	_, _, err = clip.AnimationTime(0)
	assert.NoError(t, err)
	_, err = clip.State(time.Second)
	assert.NoError(t, err)

	assert.Empty(t, clip.CreateInstance().Children)
}

func TestTimelineClipTotalDuration(t *testing.T) {
	clip := NewTimelineClip(leaf(t, time.Second))
	clip.Delay = 10 * time.Second

	total := func() time.Duration {
		d, err := clip.TotalDuration()
		require.NoError(t, err)
		return d
	}

	assert.Equal(t, 11*time.Second, total())

	require.NoError(t, clip.SetDuration(5*time.Second))
	assert.Equal(t, 15*time.Second, total())

	require.NoError(t, clip.SetSpeed(2))
	assert.Equal(t, 12500*ms, total())

	clip.Delay = -time.Second
	assert.Equal(t, 1500*ms, total())

	require.NoError(t, clip.SetSpeed(0))
	assert.Equal(t, Infinite, total())
}

func TestTimelineClipInfiniteDuration(t *testing.T) {
	clip := NewTimelineClip(leaf(t, time.Second))
	require.NoError(t, clip.SetDuration(Infinite))
	require.NoError(t, clip.SetLoopBehavior(LoopCycle))

	d, err := clip.TotalDuration()
	require.NoError(t, err)
	assert.Equal(t, Infinite, d)

	state, err := clip.State(time.Hour + 250*ms)
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, state)

	at, ok, err := clip.AnimationTime(time.Hour + 250*ms)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 250*ms, at)

	for _, boundary := range []time.Duration{time.Second, 2 * time.Second, time.Hour} {
		at, ok, err = clip.AnimationTime(boundary)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, time.Duration(0), at, "boundary %v", boundary)
	}
}

func TestTimelineClipDurationMonotonic(t *testing.T) {
	clip := NewTimelineClip(leaf(t, 3*time.Second))
	clip.Delay = time.Second
	require.NoError(t, clip.SetDuration(2*time.Second))

	prev := Infinite
	for _, speed := range []float64{0.25, 0.5, 1, 1.5, 2, 8} {
		require.NoError(t, clip.SetSpeed(speed))
		d, err := clip.TotalDuration()
		require.NoError(t, err)
		assert.LessOrEqual(t, d, prev, "speed %v", speed)
		prev = d
	}
}

func TestTimelineClipInvalidWindow(t *testing.T) {
	a := leaf(t, time.Second)
	clip := NewTimelineClip(a)
	clip.ClipStart = Ref(750 * ms)
	clip.ClipEnd = Ref(250 * ms)

	_, err := clip.TotalDuration()
	assert.True(t, errors.Is(err, ErrInvalidAnimation), "TotalDuration: %v", err)

	_, err = clip.State(0)
	assert.True(t, errors.Is(err, ErrInvalidAnimation), "State: %v", err)

	_, _, err = clip.AnimationTime(0)
	assert.True(t, errors.Is(err, ErrInvalidAnimation), "AnimationTime: %v", err)

	// Instancing does not validate.
	inst := clip.CreateInstance()
	require.Len(t, inst.Children, 1)
	assert.Same(t, a, inst.Children[0].Timeline)
	assert.Same(t, inst, inst.Children[0].Parent)

	// Fixing one bound makes the clip valid again.
	clip.ClipEnd = nil
	_, err = clip.TotalDuration()
	assert.NoError(t, err)
}

func TestTimelineClipInvalidWindowFromChild(t *testing.T) {
	clip := NewTimelineClip(leaf(t, time.Second))
	clip.ClipStart = Ref(2 * time.Second)

	_, err := clip.TotalDuration()
	assert.ErrorIs(t, err, ErrInvalidAnimation)
}

func TestTimelineClipNested(t *testing.T) {
	inner := NewTimelineClip(leaf(t, 4*time.Second))
	inner.Delay = 10 * time.Second
	require.NoError(t, inner.SetSpeed(2))

	outer := NewTimelineClip(inner)
	outer.Delay = 100 * time.Second
	outer.ClipStart = Ref(10500 * ms)
	outer.ClipEnd = Ref(11500 * ms)
	outer.ClipOffset = -500 * ms
	require.NoError(t, outer.SetDuration(4*time.Second))
	require.NoError(t, outer.SetLoopBehavior(LoopOscillate))

	state, err := outer.State(100 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, state)
	at, ok, err := outer.AnimationTime(100 * time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 11*time.Second, at)

	state, err = outer.State(104500 * ms)
	require.NoError(t, err)
	assert.Equal(t, StateFilling, state)
	at, ok, err = outer.AnimationTime(104500 * ms)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 11*time.Second, at)

	outer.FillBehavior = FillStop
	state, err = outer.State(104500 * ms)
	require.NoError(t, err)
	assert.Equal(t, StateStopped, state)
	_, ok, err = outer.AnimationTime(104500 * ms)
	require.NoError(t, err)
	assert.False(t, ok)

	state, err = outer.State(99 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, StateDelayed, state)
	_, ok, err = outer.AnimationTime(99 * time.Second)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTimelineClipFillBoundary(t *testing.T) {
	clip := NewTimelineClip(leaf(t, 10*time.Second))
	clip.Delay = time.Second
	require.NoError(t, clip.SetDuration(2*time.Second))
	require.NoError(t, clip.SetSpeed(2))

	end := clip.Delay + 1*time.Second // Delay + D/Speed

	state, err := clip.State(end - ms)
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, state)

	state, err = clip.State(end)
	require.NoError(t, err)
	assert.Equal(t, StateFilling, state)
	at, ok, err := clip.AnimationTime(end)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2*time.Second, at)

	clip.FillBehavior = FillStop
	state, err = clip.State(end)
	require.NoError(t, err)
	assert.Equal(t, StateStopped, state)
	_, ok, err = clip.AnimationTime(end)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTimelineClipReversal(t *testing.T) {
	forward := NewTimelineClip(leaf(t, 2*time.Second))
	forward.ClipStart = Ref(500 * ms)
	forward.ClipEnd = Ref(1500 * ms)

	reversed := NewTimelineClip(forward.Timeline)
	reversed.ClipWindow = forward.ClipWindow
	reversed.IsClipReversed = true

	at := func(c *TimelineClip, tt time.Duration) time.Duration {
		v, ok, err := c.AnimationTime(tt)
		require.NoError(t, err)
		require.True(t, ok)
		return v
	}

	assert.Equal(t, at(forward, time.Second), at(reversed, 0))
	assert.Equal(t, at(forward, 0), at(reversed, time.Second))
	assert.Equal(t, 1500*ms, at(reversed, 0))
	assert.Equal(t, 1250*ms, at(reversed, 250*ms))
	assert.Equal(t, 750*ms, at(forward, 250*ms))
}

func TestTimelineClipLoop(t *testing.T) {
	tests := []struct {
		loop LoopBehavior
		time time.Duration
		want time.Duration
	}{
		{LoopConstant, 2250 * ms, time.Second},
		{LoopCycle, 2250 * ms, 250 * ms},
		{LoopOscillate, 1250 * ms, 750 * ms},
		{LoopOscillate, 2250 * ms, 250 * ms},
	}
	for _, tt := range tests {
		clip := NewTimelineClip(leaf(t, time.Second))
		require.NoError(t, clip.SetDuration(3*time.Second))
		require.NoError(t, clip.SetLoopBehavior(tt.loop))

		got, ok, err := clip.AnimationTime(tt.time)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, tt.want, got, "%v at %v", tt.loop, tt.time)
	}
}

func TestTimelineClipOffset(t *testing.T) {
	clip := NewTimelineClip(leaf(t, time.Second))
	clip.ClipOffset = 250 * ms
	require.NoError(t, clip.SetLoopBehavior(LoopCycle))

	got, ok, err := clip.AnimationTime(0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 250*ms, got)

	got, _, err = clip.AnimationTime(900 * ms)
	require.NoError(t, err)
	assert.Equal(t, 150*ms, got)
}

func TestTimelineClipFrozen(t *testing.T) {
	clip := NewTimelineClip(leaf(t, time.Second))
	clip.ClipStart = Ref(300 * ms)
	require.NoError(t, clip.SetSpeed(0))

	state, err := clip.State(time.Hour)
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, state)

	got, ok, err := clip.AnimationTime(time.Hour)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 300*ms, got)
}

func TestTimelineClipInvalidArguments(t *testing.T) {
	clip := NewTimelineClip(nil)

	assert.ErrorIs(t, clip.SetDuration(-time.Second), ErrInvalidArgument)
	assert.ErrorIs(t, clip.SetSpeed(-1), ErrInvalidArgument)
	assert.ErrorIs(t, clip.SetSpeed(gomath.NaN()), ErrInvalidArgument)
	assert.ErrorIs(t, clip.SetSpeed(gomath.Inf(1)), ErrInvalidArgument)
	assert.ErrorIs(t, clip.SetLoopBehavior(LoopCycleOffset), ErrInvalidArgument)
	assert.ErrorIs(t, clip.SetLoopBehavior(LoopBehavior(17)), ErrInvalidArgument)

	// Rejected values leave the previous settings in place.
	assert.Equal(t, 1.0, clip.Speed())
	_, ok := clip.Duration()
	assert.False(t, ok)
	assert.Equal(t, LoopConstant, clip.LoopBehavior())
}
