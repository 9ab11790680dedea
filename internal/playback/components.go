// Package playback drives animation tracks stored in a donburi world.
package playback

import (
	"github.com/yohamta/donburi"

	"github.com/Faultbox/midgard-anim/pkg/animation"
	"github.com/Faultbox/midgard-anim/pkg/math"
)

// TrackData is the component of an animated value. The player advances
// Instance every frame and writes the evaluated value to Value.
type TrackData[T any] struct {
	Name      string
	Animation animation.Animation[T]
	Instance  *animation.Instance

	Base   T // Default source and the value while not animating
	Target T // Default target

	Value T
	State animation.State
	Done  bool
}

var (
	FloatTrack = donburi.NewComponentType[TrackData[float32]]()
	Vec2Track  = donburi.NewComponentType[TrackData[math.Vec2]]()
	Vec3Track  = donburi.NewComponentType[TrackData[math.Vec3]]()
	QuatTrack  = donburi.NewComponentType[TrackData[math.Quat]]()
	PoseTrack  = donburi.NewComponentType[TrackData[math.Pose]]()
)
