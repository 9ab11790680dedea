package timelinefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-anim/pkg/animation"
	"github.com/Faultbox/midgard-anim/pkg/math"
)

// ErrNoValues is returned when values are requested from a document whose
// root only carries time, such as a group.
var ErrNoValues = errors.New("timelinefile: timeline does not produce values")

// Track is a typed animation together with the default values it is
// evaluated against.
type Track[T any] struct {
	Animation animation.Animation[T]
	Base      T // Default source
	Target    T // Default target

	format func(T, int) string
}

// Value evaluates the animation at t.
func (tr *Track[T]) Value(t time.Duration) (T, error) {
	var result T
	err := tr.Animation.Value(t, &tr.Base, &tr.Target, &result)
	return result, err
}

// Format renders a value with the given number of decimals.
func (tr *Track[T]) Format(v T, precision int) string {
	return tr.format(v, precision)
}

// Document is a loaded timeline. Exactly one of the typed tracks is set
// when the root node produces values.
type Document struct {
	Name     string
	Type     ValueType
	Timeline animation.Timeline

	Float *Track[float32]
	Vec2  *Track[math.Vec2]
	Vec3  *Track[math.Vec3]
	Quat  *Track[math.Quat]
	Pose  *Track[math.Pose]
}

// HasValues reports whether the root node produces values.
func (d *Document) HasValues() bool {
	return d.Float != nil || d.Vec2 != nil || d.Vec3 != nil || d.Quat != nil || d.Pose != nil
}

// FormatValue evaluates the document at t and renders the value.
func (d *Document) FormatValue(t time.Duration, precision int) (string, error) {
	switch {
	case d.Float != nil:
		return formatTrack(d.Float, t, precision)
	case d.Vec2 != nil:
		return formatTrack(d.Vec2, t, precision)
	case d.Vec3 != nil:
		return formatTrack(d.Vec3, t, precision)
	case d.Quat != nil:
		return formatTrack(d.Quat, t, precision)
	case d.Pose != nil:
		return formatTrack(d.Pose, t, precision)
	}
	return "", ErrNoValues
}

func formatTrack[T any](tr *Track[T], t time.Duration, precision int) (string, error) {
	v, err := tr.Value(t)
	if err != nil {
		return "", err
	}
	return tr.Format(v, precision), nil
}

// Load reads and builds the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc.Name == "" {
		doc.Name = path
	}
	return doc, nil
}

// Parse builds a document from YAML. All node errors are reported
// together. Parse does not evaluate the timeline; see animation.Validate.
func Parse(data []byte) (*Document, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}
	if f.Type == "" {
		f.Type = TypeFloat
	}

	doc := &Document{Name: f.Name, Type: f.Type}
	var err error
	switch f.Type {
	case TypeFloat:
		doc.Float, err = build(doc, &f, floatCodec)
	case TypeVec2:
		doc.Vec2, err = build(doc, &f, vec2Codec)
	case TypeVec3:
		doc.Vec3, err = build(doc, &f, vec3Codec)
	case TypeQuat:
		doc.Quat, err = build(doc, &f, quatCodec)
	case TypePose:
		doc.Pose, err = build(doc, &f, poseCodec)
	default:
		err = fmt.Errorf("unknown value type %q", f.Type)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// build sets doc.Timeline and returns the typed track, or nil when the
// root does not produce values.
func build[T any](doc *Document, f *File, c codec[T]) (*Track[T], error) {
	b := &builder[T]{codec: c}
	root := b.node(&f.Timeline, "timeline")

	base, err := c.value(f.Base)
	if err != nil {
		b.fail("base", err)
	}
	target, err := c.value(f.Target)
	if err != nil {
		b.fail("target", err)
	}
	if b.errs != nil {
		return nil, b.errs
	}

	doc.Timeline = root
	typed, ok := root.(animation.Animation[T])
	if !ok {
		return nil, nil
	}
	return &Track[T]{Animation: typed, Base: base, Target: target, format: c.format}, nil
}
