package timelinefile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tanema/gween/ease"
)

var easings = map[string]ease.TweenFunc{
	"linear":        ease.Linear,
	"in_quad":       ease.InQuad,
	"out_quad":      ease.OutQuad,
	"in_out_quad":   ease.InOutQuad,
	"in_cubic":      ease.InCubic,
	"out_cubic":     ease.OutCubic,
	"in_out_cubic":  ease.InOutCubic,
	"in_sine":       ease.InSine,
	"out_sine":      ease.OutSine,
	"in_out_sine":   ease.InOutSine,
	"in_expo":       ease.InExpo,
	"out_expo":      ease.OutExpo,
	"in_out_expo":   ease.InOutExpo,
	"in_back":       ease.InBack,
	"out_back":      ease.OutBack,
	"in_elastic":    ease.InElastic,
	"out_elastic":   ease.OutElastic,
	"in_bounce":     ease.InBounce,
	"out_bounce":    ease.OutBounce,
	"in_out_bounce": ease.InOutBounce,
}

// Easing returns the easing function registered under name. The empty name
// means linear and yields nil.
func Easing(name string) (ease.TweenFunc, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if key == "" {
		return nil, nil
	}
	fn, ok := easings[key]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", name)
	}
	return fn, nil
}

// EasingNames lists the registered easing names in order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
