package playback

import (
	"fmt"
	"time"

	"github.com/yohamta/donburi"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-anim/internal/config"
	"github.com/Faultbox/midgard-anim/internal/timelinefile"
	"github.com/Faultbox/midgard-anim/pkg/animation"
)

// Player advances every track in a world. It is not safe for concurrent
// use; the goroutine running the frame loop owns it and the world.
type Player struct {
	world donburi.World
	cfg   config.PlaybackConfig
	log   *zap.Logger

	elapsed time.Duration
	frames  int
}

// NewPlayer creates a player for world. A nil logger discards output.
func NewPlayer(world donburi.World, cfg config.PlaybackConfig, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{world: world, cfg: cfg, log: log}
}

// World returns the world the player updates.
func (p *Player) World() donburi.World {
	return p.world
}

// Elapsed returns the total time passed to Update.
func (p *Player) Elapsed() time.Duration {
	return p.elapsed
}

// Frames returns the number of Update calls.
func (p *Player) Frames() int {
	return p.frames
}

// AddTrack creates an entity animating a value of type T. The animation is
// validated first so evaluation errors surface before playback.
func AddTrack[T any](p *Player, component *donburi.ComponentType[TrackData[T]], name string, a animation.Animation[T], base, target T) (donburi.Entity, error) {
	var none donburi.Entity
	if a == nil {
		return none, fmt.Errorf("track %s: nil animation", name)
	}
	if err := animation.Validate(a); err != nil {
		return none, fmt.Errorf("track %s: %w", name, err)
	}

	entity := p.world.Create(component)
	entry := p.world.Entry(entity)
	component.Set(entry, &TrackData[T]{
		Name:      name,
		Animation: a,
		Instance:  a.CreateInstance(),
		Base:      base,
		Target:    target,
		Value:     base,
		State:     animation.StateStopped,
	})

	p.log.Debug("track added", zap.String("track", name))
	return entity, nil
}

// AddDocument adds the typed track of a loaded document.
func (p *Player) AddDocument(doc *timelinefile.Document) (donburi.Entity, error) {
	switch {
	case doc.Float != nil:
		return AddTrack(p, FloatTrack, doc.Name, doc.Float.Animation, doc.Float.Base, doc.Float.Target)
	case doc.Vec2 != nil:
		return AddTrack(p, Vec2Track, doc.Name, doc.Vec2.Animation, doc.Vec2.Base, doc.Vec2.Target)
	case doc.Vec3 != nil:
		return AddTrack(p, Vec3Track, doc.Name, doc.Vec3.Animation, doc.Vec3.Base, doc.Vec3.Target)
	case doc.Quat != nil:
		return AddTrack(p, QuatTrack, doc.Name, doc.Quat.Animation, doc.Quat.Base, doc.Quat.Target)
	case doc.Pose != nil:
		return AddTrack(p, PoseTrack, doc.Name, doc.Pose.Animation, doc.Pose.Base, doc.Pose.Target)
	}
	var none donburi.Entity
	return none, fmt.Errorf("track %s: %w", doc.Name, timelinefile.ErrNoValues)
}

// Update advances all tracks by dt, clamped to the configured maximum
// frame time. Tracks that fail are marked done and reported together.
func (p *Player) Update(dt time.Duration) error {
	if dt < 0 {
		return fmt.Errorf("playback: negative frame time %v", dt)
	}
	if p.cfg.MaxFrameTime > 0 && dt > p.cfg.MaxFrameTime {
		p.log.Debug("frame time clamped", zap.Duration("dt", dt), zap.Duration("max", p.cfg.MaxFrameTime))
		dt = p.cfg.MaxFrameTime
	}
	p.elapsed += dt
	p.frames++

	var errs error
	var finished []donburi.Entity
	errs = multierr.Append(errs, update(p, FloatTrack, dt, &finished))
	errs = multierr.Append(errs, update(p, Vec2Track, dt, &finished))
	errs = multierr.Append(errs, update(p, Vec3Track, dt, &finished))
	errs = multierr.Append(errs, update(p, QuatTrack, dt, &finished))
	errs = multierr.Append(errs, update(p, PoseTrack, dt, &finished))

	// Entities are removed after iterating so queries stay consistent.
	if p.cfg.PruneStopped {
		for _, e := range finished {
			if p.world.Valid(e) {
				p.world.Remove(e)
			}
		}
	}
	return errs
}

func update[T any](p *Player, component *donburi.ComponentType[TrackData[T]], dt time.Duration, finished *[]donburi.Entity) error {
	var errs error
	component.Each(p.world, func(entry *donburi.Entry) {
		track := component.Get(entry)
		if track.Done {
			return
		}
		if err := step(track, dt); err != nil {
			track.Done = true
			p.log.Error("track failed", zap.String("track", track.Name), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("track %s: %w", track.Name, err))
			*finished = append(*finished, entry.Entity())
			return
		}
		if track.State == animation.StateStopped {
			track.Done = true
			p.log.Info("track finished", zap.String("track", track.Name), zap.Duration("elapsed", p.elapsed))
			*finished = append(*finished, entry.Entity())
		}
	})
	return errs
}

// step advances one track and evaluates its value.
func step[T any](track *TrackData[T], dt time.Duration) error {
	if err := track.Instance.AdvanceTime(dt); err != nil {
		return err
	}
	state, err := track.Instance.State()
	if err != nil {
		return err
	}
	track.State = state

	t, _ := track.Instance.Time()
	return track.Animation.Value(t, &track.Base, &track.Target, &track.Value)
}

// Active returns the number of tracks that are still animating.
func (p *Player) Active() int {
	return active(p, FloatTrack) + active(p, Vec2Track) + active(p, Vec3Track) +
		active(p, QuatTrack) + active(p, PoseTrack)
}

func active[T any](p *Player, component *donburi.ComponentType[TrackData[T]]) int {
	n := 0
	component.Each(p.world, func(entry *donburi.Entry) {
		if !component.Get(entry).Done {
			n++
		}
	})
	return n
}

// Run calls Update at the configured frame rate until every track is done
// or the configured limit is reached. It simulates time; it does not sleep.
// onFrame, if not nil, is called after each frame.
func (p *Player) Run(onFrame func(*Player) error) error {
	frame := p.cfg.FrameTime()
	if frame <= 0 {
		return fmt.Errorf("playback: frame rate must be positive, got %d", p.cfg.FrameRate)
	}

	p.log.Info("playback started",
		zap.Int("tracks", p.Active()),
		zap.Int("fps", p.cfg.FrameRate),
		zap.Duration("limit", p.cfg.Limit))

	for p.Active() > 0 && (p.cfg.Limit <= 0 || p.elapsed < p.cfg.Limit) {
		if err := p.Update(frame); err != nil {
			return err
		}
		if onFrame != nil {
			if err := onFrame(p); err != nil {
				return err
			}
		}
	}

	p.log.Info("playback stopped",
		zap.Int("frames", p.frames),
		zap.Duration("elapsed", p.elapsed),
		zap.Int("active", p.Active()))
	return nil
}
