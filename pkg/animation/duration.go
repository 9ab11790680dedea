package animation

import (
	"math"
	"time"
)

// Infinite is the duration of a timeline that never ends. It absorbs every
// addition and maximum.
const Infinite = time.Duration(math.MaxInt64)

const negInfinite = time.Duration(math.MinInt64)

// Ref returns a pointer to d, for optional fields such as ClipStart.
func Ref(d time.Duration) *time.Duration {
	return &d
}

// Seconds converts fractional seconds to a duration.
func Seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

// MaxDuration returns the larger of a and b; Infinite wins.
func MaxDuration(a, b time.Duration) time.Duration {
	if a == Infinite || b == Infinite {
		return Infinite
	}
	if a > b {
		return a
	}
	return b
}

// addDurations adds with saturation at Infinite and negInfinite.
func addDurations(a, b time.Duration) time.Duration {
	if a == Infinite || b == Infinite {
		return Infinite
	}
	sum := a + b
	if b > 0 && sum < a {
		return Infinite
	}
	if b < 0 && sum > a {
		return negInfinite
	}
	return sum
}

func subDurations(a, b time.Duration) time.Duration {
	if b == negInfinite {
		return Infinite
	}
	return addDurations(a, -b)
}

// scaleDuration multiplies in float64 and rounds to the nearest nanosecond.
func scaleDuration(d time.Duration, factor float64) time.Duration {
	if d == Infinite {
		if factor == 0 {
			return 0
		}
		return Infinite
	}
	return fromFloat(float64(d) * factor)
}

func divideDuration(d time.Duration, divisor float64) time.Duration {
	if d == Infinite {
		return Infinite
	}
	return fromFloat(float64(d) / divisor)
}

func fromFloat(v float64) time.Duration {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= float64(Infinite):
		return Infinite
	case v <= float64(negInfinite):
		return negInfinite
	}
	return time.Duration(math.Round(v))
}

// spanLength returns end - start, Infinite for unbounded spans.
func spanLength(start, end time.Duration) time.Duration {
	if end == Infinite {
		return Infinite
	}
	return subDurations(end, start)
}

// floorDiv divides rounding towards negative infinity.
func floorDiv(a, b time.Duration) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return int64(q)
}
