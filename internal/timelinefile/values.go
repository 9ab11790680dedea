package timelinefile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-anim/pkg/animation"
	"github.com/Faultbox/midgard-anim/pkg/math"
)

// codec decodes and formats the values of one ValueType.
type codec[T any] struct {
	traits animation.Traits[T]
	decode func(*yaml.Node) (T, error)
	format func(v T, precision int) string
}

var (
	floatCodec = codec[float32]{
		traits: animation.FloatTraits{},
		decode: func(n *yaml.Node) (float32, error) {
			var f float32
			err := n.Decode(&f)
			return f, err
		},
		format: func(v float32, prec int) string { return formatFloats(prec, v) },
	}

	vec2Codec = codec[math.Vec2]{
		traits: animation.Vec2Traits{},
		decode: func(n *yaml.Node) (math.Vec2, error) {
			c, err := components(n, 2)
			if err != nil {
				return math.Vec2{}, err
			}
			return math.Vec2{X: c[0], Y: c[1]}, nil
		},
		format: func(v math.Vec2, prec int) string { return formatFloats(prec, v.X, v.Y) },
	}

	vec3Codec = codec[math.Vec3]{
		traits: animation.Vec3Traits{},
		decode: func(n *yaml.Node) (math.Vec3, error) {
			c, err := components(n, 3)
			if err != nil {
				return math.Vec3{}, err
			}
			return math.Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
		},
		format: func(v math.Vec3, prec int) string { return formatFloats(prec, v.X, v.Y, v.Z) },
	}

	quatCodec = codec[math.Quat]{
		traits: animation.QuatTraits{},
		decode: decodeQuat,
		format: func(v math.Quat, prec int) string { return formatFloats(prec, v.X, v.Y, v.Z, v.W) },
	}

	poseCodec = codec[math.Pose]{
		traits: animation.PoseTraits{},
		decode: decodePose,
		format: func(v math.Pose, prec int) string {
			return "s=" + formatFloats(prec, v.Scale.X, v.Scale.Y, v.Scale.Z) +
				" r=" + formatFloats(prec, v.Rotation.X, v.Rotation.Y, v.Rotation.Z, v.Rotation.W) +
				" t=" + formatFloats(prec, v.Translation.X, v.Translation.Y, v.Translation.Z)
		},
	}
)

// value decodes n, or returns the identity when n is absent.
func (c codec[T]) value(n *yaml.Node) (T, error) {
	var v T
	if n == nil || n.Kind == 0 {
		c.traits.SetIdentity(&v)
		return v, nil
	}
	v, err := c.decode(n)
	if err != nil {
		return v, fmt.Errorf("line %d: %w", n.Line, err)
	}
	return v, nil
}

// optional decodes n into a new value, or returns nil when n is absent.
func (c codec[T]) optional(n *yaml.Node) (*T, error) {
	if n == nil || n.Kind == 0 {
		return nil, nil
	}
	v, err := c.value(n)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func components(n *yaml.Node, count int) ([]float32, error) {
	var c []float32
	if err := n.Decode(&c); err != nil {
		return nil, err
	}
	if len(c) != count {
		return nil, fmt.Errorf("expected %d components, got %d", count, len(c))
	}
	return c, nil
}

// quatAxisAngle is the readable form of a rotation. Angle is in degrees.
type quatAxisAngle struct {
	Axis  []float32 `yaml:"axis"`
	Angle float32   `yaml:"angle"`
}

// decodeQuat accepts [x, y, z, w] or {axis: [x, y, z], angle: degrees}.
func decodeQuat(n *yaml.Node) (math.Quat, error) {
	if n.Kind == yaml.MappingNode {
		var aa quatAxisAngle
		if err := n.Decode(&aa); err != nil {
			return math.Quat{}, err
		}
		if len(aa.Axis) != 3 {
			return math.Quat{}, fmt.Errorf("axis needs 3 components, got %d", len(aa.Axis))
		}
		axis := math.Vec3{X: aa.Axis[0], Y: aa.Axis[1], Z: aa.Axis[2]}
		if axis.Length() == 0 {
			return math.Quat{}, fmt.Errorf("axis must not be zero")
		}
		return math.QuatFromAxisAngle(axis.Normalize(), aa.Angle*math32.Pi/180), nil
	}

	c, err := components(n, 4)
	if err != nil {
		return math.Quat{}, err
	}
	q := math.Quat{X: c[0], Y: c[1], Z: c[2], W: c[3]}
	if q.LengthSquared() == 0 {
		return math.Quat{}, fmt.Errorf("quaternion must not be zero")
	}
	return q.Normalize(), nil
}

// poseFields is the YAML form of a pose. Missing parts are identity.
type poseFields struct {
	Scale       yaml.Node `yaml:"scale"`
	Rotation    yaml.Node `yaml:"rotation"`
	Translation yaml.Node `yaml:"translation"`
}

// decodePose accepts {scale: [x, y, z], rotation: <quat>, translation: [x, y, z]}.
func decodePose(n *yaml.Node) (math.Pose, error) {
	if n.Kind != yaml.MappingNode {
		return math.Pose{}, fmt.Errorf("pose must be a mapping")
	}
	var f poseFields
	if err := n.Decode(&f); err != nil {
		return math.Pose{}, err
	}

	p := math.PoseIdentity()
	var err error
	if f.Scale.Kind != 0 {
		if p.Scale, err = vec3Codec.decode(&f.Scale); err != nil {
			return p, fmt.Errorf("scale: %w", err)
		}
	}
	if f.Rotation.Kind != 0 {
		if p.Rotation, err = decodeQuat(&f.Rotation); err != nil {
			return p, fmt.Errorf("rotation: %w", err)
		}
	}
	if f.Translation.Kind != 0 {
		if p.Translation, err = vec3Codec.decode(&f.Translation); err != nil {
			return p, fmt.Errorf("translation: %w", err)
		}
	}
	return p, nil
}

func formatFloats(precision int, values ...float32) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(float64(v), 'f', precision, 32)
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
