package main

import (
	"flag"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/chewxy/math32"
	"github.com/yohamta/donburi"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-anim/internal/logger"
	"github.com/Faultbox/midgard-anim/internal/playback"
	"github.com/Faultbox/midgard-anim/internal/sampler"
	"github.com/Faultbox/midgard-anim/internal/timelinefile"
	"github.com/Faultbox/midgard-anim/pkg/animation"
	"github.com/Faultbox/midgard-anim/pkg/math"
)

func cmdInfo(args []string, stdout, stderr io.Writer) error {
	_, fs, err := setup("info", args, stderr, nil)
	if err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: animtool info <file.yaml>", errUsage)
	}

	doc, err := timelinefile.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	total, err := doc.Timeline.TotalDuration()
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Timeline: %s\n", doc.Name)
	fmt.Fprintf(stdout, "Type:     %s\n", doc.Type)
	fmt.Fprintf(stdout, "Duration: %s\n", formatDuration(total))
	fmt.Fprintf(stdout, "Values:   %t\n", doc.HasValues())
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Nodes:")

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	err = doc.Timeline.CreateInstance().Walk(func(inst *animation.Instance, depth int) error {
		d, err := inst.Timeline.TotalDuration()
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "  %s%s\t%s\t%s\n", strings.Repeat("  ", depth), nodeName(inst.Timeline), formatDuration(d), describe(inst.Timeline))
		return nil
	})
	if err != nil {
		return err
	}
	return tw.Flush()
}

func cmdValidate(args []string, stdout, stderr io.Writer) error {
	_, fs, err := setup("validate", args, stderr, nil)
	if err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("%w: animtool validate <file.yaml>...", errUsage)
	}

	log := logger.Named("validate")
	var errs error
	for _, path := range fs.Args() {
		doc, err := timelinefile.Load(path)
		if err == nil {
			err = animation.Validate(doc.Timeline)
		}
		if err != nil {
			fmt.Fprintf(stdout, "FAIL %s\n", path)
			for _, e := range multierr.Errors(err) {
				fmt.Fprintf(stdout, "  %v\n", e)
			}
			errs = multierr.Append(errs, fmt.Errorf("%s is invalid", path))
			continue
		}
		log.Debug("valid", zap.String("path", path))
		fmt.Fprintf(stdout, "ok   %s\n", path)
	}
	return errs
}

func cmdSample(args []string, stdout, stderr io.Writer) error {
	cfg, fs, err := setup("sample", args, stderr, nil)
	if err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: animtool sample [-start d] [-end d] [-step d] <file.yaml>", errUsage)
	}

	doc, err := timelinefile.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	rows, err := sampler.New(logger.Named("sampler")).Sample(doc, sampler.Options{
		Start:     cfg.Sampling.Start,
		End:       cfg.Sampling.End,
		Step:      cfg.Sampling.Step,
		Precision: cfg.Sampling.Precision,
		Fallback:  cfg.Playback.Limit,
	})
	if err != nil {
		return err
	}
	return sampler.Write(stdout, rows)
}

func cmdPlay(args []string, stdout, stderr io.Writer) error {
	var (
		every int
		out   trackOutput
		point string
	)
	cfg, fs, err := setup("play", args, stderr, func(fs *flag.FlagSet) {
		fs.IntVar(&every, "every", 0, "Print track values every N frames (0 = only at the end)")
		fs.BoolVar(&out.matrix, "matrix", false, "Print the matrix of vec3, quat and pose tracks")
		fs.StringVar(&point, "point", "", "Print where a point x,y,z lands under each spatial track")
	})
	if err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("%w: animtool play [-fps n] [-every n] [-matrix] [-point x,y,z] <file.yaml>...", errUsage)
	}
	if point != "" {
		p, err := parseVec3(point)
		if err != nil {
			return fmt.Errorf("%w: -point: %v", errUsage, err)
		}
		out.point = &p
	}
	out.precision = cfg.Sampling.Precision

	player := playback.NewPlayer(donburi.NewWorld(), cfg.Playback, logger.Named("playback"))
	for _, path := range fs.Args() {
		doc, err := timelinefile.Load(path)
		if err != nil {
			return err
		}
		if _, err := player.AddDocument(doc); err != nil {
			return err
		}
	}

	err = player.Run(func(p *playback.Player) error {
		if every > 0 && p.Frames()%every == 0 {
			return printTracks(stdout, p, out)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return printTracks(stdout, player, out)
}

// trackOutput selects the extra lines printed under spatial tracks.
type trackOutput struct {
	matrix    bool
	point     *math.Vec3
	precision int
}

// printTracks prints the current value of every track in the world.
func printTracks(w io.Writer, p *playback.Player, out trackOutput) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "-- %s (frame %d)\n", p.Elapsed(), p.Frames())
	world := p.World()
	printComponent(tw, world, playback.FloatTrack, out)
	printComponent(tw, world, playback.Vec2Track, out)
	printComponent(tw, world, playback.Vec3Track, out)
	printComponent(tw, world, playback.QuatTrack, out)
	printComponent(tw, world, playback.PoseTrack, out)
	return tw.Flush()
}

func printComponent[T any](w io.Writer, world donburi.World, component *donburi.ComponentType[playback.TrackData[T]], out trackOutput) {
	component.Each(world, func(entry *donburi.Entry) {
		track := component.Get(entry)
		fmt.Fprintf(w, "%s\t%s\t%+v\n", track.Name, track.State, track.Value)

		m, ok := playback.Transform(track.Value)
		if !ok {
			return
		}
		if out.matrix {
			for row := 0; row < 4; row++ {
				fmt.Fprintf(w, "\t\t[%s]\n", out.floats(" ", m[row], m[4+row], m[8+row], m[12+row]))
			}
		}
		if out.point != nil {
			p := m.TransformVec3(*out.point)
			fmt.Fprintf(w, "\t\tpoint (%s)\n", out.floats(", ", p.X, p.Y, p.Z))
		}
	})
}

// floats formats values with the output precision. Rounding noise such as
// -1e-8 prints as zero.
func (out trackOutput) floats(sep string, values ...float32) string {
	scale := math32.Pow(10, float32(out.precision))
	parts := make([]string, len(values))
	for i, v := range values {
		v = math32.Round(v*scale)/scale + 0
		parts[i] = strconv.FormatFloat(float64(v), 'f', out.precision, 32)
	}
	return strings.Join(parts, sep)
}

// parseVec3 reads "x,y,z".
func parseVec3(s string) (math.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return math.Vec3{}, fmt.Errorf("expected x,y,z, got %q", s)
	}
	var c [3]float32
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return math.Vec3{}, err
		}
		c[i] = float32(f)
	}
	return math.Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}

func formatDuration(d time.Duration) string {
	if d == animation.Infinite {
		return "infinite"
	}
	return d.String()
}

// nodeName returns the type name without package path and type arguments
// spelled out by the runtime.
func nodeName(t animation.Timeline) string {
	typ := reflect.TypeOf(t)
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	name := typ.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		args := name[i+1 : len(name)-1]
		if j := strings.LastIndexByte(args, '.'); j >= 0 {
			args = args[j+1:]
		}
		name = name[:i] + "[" + args + "]"
	}
	return name
}

// describe summarizes the settings of a node that differ from the defaults.
func describe(t animation.Timeline) string {
	var parts []string
	if g, ok := t.(*animation.TimelineGroup); ok {
		parts = append(parts, fmt.Sprintf("children=%d", g.Len()))
	}
	if tm, ok := animation.TimingOf(t); ok {
		if tm.Delay != 0 {
			parts = append(parts, "delay="+tm.Delay.String())
		}
		if s := tm.Speed(); s != 1 {
			parts = append(parts, fmt.Sprintf("speed=%g", s))
		}
		if d, ok := tm.Duration(); ok {
			parts = append(parts, "duration="+formatDuration(d))
		}
		if tm.FillBehavior != animation.FillHold {
			parts = append(parts, "fill="+tm.FillBehavior.String())
		}
	}
	if l, ok := animation.LoopBehaviorOf(t); ok && l != animation.LoopConstant {
		parts = append(parts, "loop="+l.String())
	}
	if cw, ok := animation.ClipWindowOf(t); ok {
		if cw.ClipStart != nil {
			parts = append(parts, "clip_start="+cw.ClipStart.String())
		}
		if cw.ClipEnd != nil {
			parts = append(parts, "clip_end="+cw.ClipEnd.String())
		}
		if cw.ClipOffset != 0 {
			parts = append(parts, "clip_offset="+cw.ClipOffset.String())
		}
		if cw.IsClipReversed {
			parts = append(parts, "reversed")
		}
	}
	return strings.Join(parts, " ")
}
