// Package timelinefile loads animation timelines from YAML documents.
//
// A document names the animated value type and describes a tree of nodes:
//
//	name: bob
//	type: vec3
//	base: [0, 0, 0]
//	timeline:
//	  clip:
//	    duration: 10s
//	    loop: oscillate
//	    child:
//	      from_to_by:
//	        by: [0, 1, 0]
//	        duration: 500ms
//	        easing: in_out_sine
//
// Groups become TimelineGroups. A clip becomes an AnimationClip when its
// child produces values and a TimelineClip when the child is a group.
package timelinefile

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-anim/pkg/animation"
)

// File is the raw YAML document.
type File struct {
	Name     string     `yaml:"name"`
	Type     ValueType  `yaml:"type"`
	Base     *yaml.Node `yaml:"base"`   // Default source value
	Target   *yaml.Node `yaml:"target"` // Default target value
	Timeline Node       `yaml:"timeline"`
}

// Node is one timeline node. Exactly one field must be set.
type Node struct {
	Clip      *ClipNode      `yaml:"clip"`
	Group     *GroupNode     `yaml:"group"`
	FromToBy  *FromToByNode  `yaml:"from_to_by"`
	KeyFrames *KeyFramesNode `yaml:"key_frames"`
}

// TimingNode holds the timing fields shared by clips and leaves.
type TimingNode struct {
	Delay    Duration               `yaml:"delay"`
	Duration *Duration              `yaml:"duration"`
	Speed    *float64               `yaml:"speed"`
	Fill     animation.FillBehavior `yaml:"fill"`
}

// ClipNode describes a clip around a child node.
type ClipNode struct {
	TimingNode `yaml:",inline"`

	Loop       animation.LoopBehavior `yaml:"loop"`
	ClipStart  *Duration              `yaml:"clip_start"`
	ClipEnd    *Duration              `yaml:"clip_end"`
	ClipOffset Duration               `yaml:"clip_offset"`
	Reversed   bool                   `yaml:"reversed"`
	Additive   bool                   `yaml:"additive"`
	Child      *Node                  `yaml:"child"`
}

// GroupNode plays its children in parallel.
type GroupNode struct {
	Children []Node `yaml:"children"`
}

// FromToByNode describes a from/to/by leaf animation.
type FromToByNode struct {
	TimingNode `yaml:",inline"`

	From     *yaml.Node `yaml:"from"`
	To       *yaml.Node `yaml:"to"`
	By       *yaml.Node `yaml:"by"`
	Easing   string     `yaml:"easing"`
	Additive bool       `yaml:"additive"`
}

// KeyFramesNode describes a key frame leaf animation.
type KeyFramesNode struct {
	TimingNode `yaml:",inline"`

	Frames   []KeyFrameNode `yaml:"frames"`
	Step     bool           `yaml:"step"` // Jump between frames instead of blending
	Additive bool           `yaml:"additive"`
}

// KeyFrameNode is a single key frame.
type KeyFrameNode struct {
	Time  Duration  `yaml:"time"`
	Value yaml.Node `yaml:"value"`
}

// Duration is a time.Duration that also accepts plain seconds ("1.5") and
// "infinite".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", value.Line)
	}
	s := strings.TrimSpace(value.Value)
	switch strings.ToLower(s) {
	case "inf", "infinite", "forever":
		*d = Duration(animation.Infinite)
		return nil
	}
	if parsed, err := time.ParseDuration(s); err == nil {
		*d = Duration(parsed)
		return nil
	}
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("line %d: invalid duration %q", value.Line, s)
	}
	*d = Duration(animation.Seconds(secs))
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	if time.Duration(d) == animation.Infinite {
		return "infinite", nil
	}
	return time.Duration(d).String(), nil
}

// ValueType names the type of the animated value.
type ValueType string

const (
	TypeFloat ValueType = "float"
	TypeVec2  ValueType = "vec2"
	TypeVec3  ValueType = "vec3"
	TypeQuat  ValueType = "quat"
	TypePose  ValueType = "pose"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *ValueType) UnmarshalText(text []byte) error {
	switch t := ValueType(strings.ToLower(string(text))); t {
	case TypeFloat, TypeVec2, TypeVec3, TypeQuat, TypePose:
		*v = t
		return nil
	case "":
		*v = TypeFloat
		return nil
	}
	return fmt.Errorf("unknown value type %q", text)
}
