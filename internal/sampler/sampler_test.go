package sampler

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/midgard-anim/internal/timelinefile"
	"github.com/Faultbox/midgard-anim/pkg/animation"
)

const ms = time.Millisecond

func parse(t *testing.T, src string) *timelinefile.Document {
	t.Helper()
	doc, err := timelinefile.Parse([]byte(src))
	require.NoError(t, err)
	return doc
}

const ramp = `
name: ramp
timeline:
  clip:
    delay: 100ms
    child:
      from_to_by: {from: 0, to: 10, duration: 200ms}
`

func TestSample(t *testing.T) {
	doc := parse(t, ramp)

	rows, err := New(nil).Sample(doc, Options{Step: 100 * ms, Precision: 1})
	require.NoError(t, err)
	require.Len(t, rows, 4, "0 to the 300ms total inclusive")

	assert.Equal(t, animation.StateDelayed, rows[0].State)
	assert.False(t, rows[0].Active)
	assert.Equal(t, "0.0", rows[0].Value, "base value while delayed")

	assert.Equal(t, animation.StatePlaying, rows[2].State)
	assert.True(t, rows[2].Active)
	assert.Equal(t, 100*ms, rows[2].AnimationTime)
	assert.Equal(t, "5.0", rows[2].Value)

	assert.Equal(t, animation.StateFilling, rows[3].State)
	assert.Equal(t, "10.0", rows[3].Value)
}

func TestSampleRange(t *testing.T) {
	doc := parse(t, ramp)

	rows, err := New(nil).Sample(doc, Options{Start: 150 * ms, End: 250 * ms, Step: 50 * ms, Precision: 2})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []time.Duration{150 * ms, 200 * ms, 250 * ms}, []time.Duration{rows[0].Time, rows[1].Time, rows[2].Time})
	assert.Equal(t, "7.50", rows[2].Value)
}

func TestSampleGroup(t *testing.T) {
	doc := parse(t, `
timeline:
  group:
    children:
      - from_to_by: {duration: 1s}
`)
	rows, err := New(nil).Sample(doc, Options{Step: 500 * ms})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for _, r := range rows {
		assert.Empty(t, r.Value)
	}
}

func TestSampleInfinite(t *testing.T) {
	doc := parse(t, `
timeline:
  clip:
    duration: infinite
    loop: cycle
    child:
      from_to_by: {from: 0, to: 1}
`)
	core, logs := observer.New(zap.InfoLevel)

	rows, err := New(zap.New(core)).Sample(doc, Options{Step: 250 * ms, Fallback: 2 * time.Second})
	require.NoError(t, err)
	assert.Len(t, rows, 9)
	assert.Equal(t, 1, logs.FilterMessage("timeline never ends, sampling a fixed window").Len())
}

func TestSampleErrors(t *testing.T) {
	doc := parse(t, ramp)
	s := New(nil)

	_, err := s.Sample(doc, Options{})
	assert.ErrorContains(t, err, "step must be positive")

	_, err = s.Sample(doc, Options{Start: time.Second, End: 500 * ms, Step: ms})
	assert.ErrorContains(t, err, "before start")

	_, err = s.Sample(doc, Options{End: time.Hour, Step: time.Microsecond})
	assert.ErrorContains(t, err, "exceed the limit")

	_, err = s.Sample(doc, Options{Start: -(1 << 62), End: 1 << 62, Step: time.Second})
	assert.ErrorContains(t, err, "too long")

	_, err = s.Sample(doc, Options{End: math.MaxInt64, Step: 1})
	assert.ErrorContains(t, err, "exceed the limit")

	_, err = s.Sample(doc, Options{Start: math.MinInt64, End: math.MaxInt64, Step: time.Hour})
	assert.ErrorContains(t, err, "too long")

	bad := parse(t, `
timeline:
  clip:
    clip_start: 2s
    child:
      from_to_by: {}
`)
	_, err = s.Sample(bad, Options{Step: 100 * ms})
	assert.ErrorIs(t, err, animation.ErrInvalidAnimation)
}

func TestWrite(t *testing.T) {
	rows := []Row{
		{Time: 0, State: animation.StateDelayed, Value: "0.0"},
		{Time: 100 * ms, State: animation.StatePlaying, AnimationTime: 50 * ms, Active: true},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, rows))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "TIME"))
	assert.Equal(t, []string{"0s", "delayed", "-", "0.0"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"100ms", "playing", "50ms", "-"}, strings.Fields(lines[2]))
}
