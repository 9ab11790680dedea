package animation

import "errors"

var (
	// ErrInvalidArgument is returned when a property is assigned an
	// out-of-domain value.
	ErrInvalidArgument = errors.New("animation: invalid argument")

	// ErrInvalidAnimation is returned by evaluation when a timeline is
	// inconsistent, e.g. its clip start lies after its clip end.
	ErrInvalidAnimation = errors.New("animation: invalid animation")

	// ErrEmptyAnimation is returned when a clip without a wrapped animation
	// is asked for a value.
	ErrEmptyAnimation = errors.New("animation: empty animation")
)
