// Package animation evaluates composable animation timelines.
//
// A Timeline maps an outer (caller) time to a playback State and to the
// inner time that is fed into whatever it wraps. TimelineClip and
// AnimationClip apply delay, speed, duration, fill behavior, a clip window,
// offset, reversal and looping on top of a wrapped timeline; TimelineGroup
// plays several timelines side by side. Leaf animations (FromToByAnimation,
// KeyFrameAnimation) turn their local time into values.
//
// Values of any type are handled through Traits, which supply the
// create/copy/add/interpolate/recycle operations. All value buffers passed
// to Value may alias each other.
//
// Timelines carry no playback state. Per-playback state lives in the
// Instance tree returned by CreateInstance. Nothing in this package is
// synchronized: a timeline must not be mutated while it is being evaluated.
package animation
