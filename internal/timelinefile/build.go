package timelinefile

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/multierr"

	"github.com/Faultbox/midgard-anim/pkg/animation"
)

// builder turns nodes into timelines for one value type. It keeps going
// after errors so one parse reports every bad node.
type builder[T any] struct {
	codec codec[T]
	errs  error
}

func (b *builder[T]) fail(path string, err error) {
	b.errs = multierr.Append(b.errs, fmt.Errorf("%s: %w", path, err))
}

func (b *builder[T]) node(n *Node, path string) animation.Timeline {
	if n == nil {
		b.fail(path, errors.New("missing node"))
		return nil
	}

	set := 0
	for _, present := range []bool{n.Clip != nil, n.Group != nil, n.FromToBy != nil, n.KeyFrames != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		b.fail(path, errors.New("node needs exactly one of clip, group, from_to_by, key_frames"))
		return nil
	}

	switch {
	case n.Clip != nil:
		return b.clip(n.Clip, path+".clip")
	case n.Group != nil:
		return b.group(n.Group, path+".group")
	case n.FromToBy != nil:
		return b.fromToBy(n.FromToBy, path+".from_to_by")
	default:
		return b.keyFrames(n.KeyFrames, path+".key_frames")
	}
}

func (b *builder[T]) timing(tm *animation.Timing, src *TimingNode, path string) {
	tm.Delay = time.Duration(src.Delay)
	tm.FillBehavior = src.Fill
	if src.Duration != nil {
		if err := tm.SetDuration(time.Duration(*src.Duration)); err != nil {
			b.fail(path+".duration", err)
		}
	}
	if src.Speed != nil {
		if err := tm.SetSpeed(*src.Speed); err != nil {
			b.fail(path+".speed", err)
		}
	}
}

func window(cw *animation.ClipWindow, src *ClipNode) {
	if src.ClipStart != nil {
		cw.ClipStart = animation.Ref(time.Duration(*src.ClipStart))
	}
	if src.ClipEnd != nil {
		cw.ClipEnd = animation.Ref(time.Duration(*src.ClipEnd))
	}
	cw.ClipOffset = time.Duration(src.ClipOffset)
	cw.IsClipReversed = src.Reversed
}

func (b *builder[T]) clip(src *ClipNode, path string) animation.Timeline {
	child := b.node(src.Child, path+".child")

	// A typed child keeps the values flowing; anything else only has time.
	if typed, ok := child.(animation.Animation[T]); ok {
		c := animation.NewAnimationClip[T](typed)
		b.timing(&c.Timing, &src.TimingNode, path)
		window(&c.ClipWindow, src)
		c.IsAdditive = src.Additive
		if err := c.SetLoopBehavior(src.Loop); err != nil {
			b.fail(path+".loop", err)
		}
		return c
	}

	c := animation.NewTimelineClip(child)
	b.timing(&c.Timing, &src.TimingNode, path)
	window(&c.ClipWindow, src)
	if src.Additive {
		b.fail(path+".additive", errors.New("additive clips need a child that produces values"))
	}
	if err := c.SetLoopBehavior(src.Loop); err != nil {
		b.fail(path+".loop", err)
	}
	return c
}

func (b *builder[T]) group(src *GroupNode, path string) animation.Timeline {
	g, _ := animation.NewTimelineGroup()
	for i := range src.Children {
		child := b.node(&src.Children[i], fmt.Sprintf("%s.children[%d]", path, i))
		if child == nil {
			continue
		}
		if err := g.Add(child); err != nil {
			b.fail(path, err)
		}
	}
	return g
}

func (b *builder[T]) fromToBy(src *FromToByNode, path string) animation.Timeline {
	a := animation.NewFromToByAnimation[T](b.codec.traits)
	b.timing(&a.Timing, &src.TimingNode, path)
	a.IsAdditive = src.Additive

	var err error
	if a.From, err = b.codec.optional(src.From); err != nil {
		b.fail(path+".from", err)
	}
	if a.To, err = b.codec.optional(src.To); err != nil {
		b.fail(path+".to", err)
	}
	if a.By, err = b.codec.optional(src.By); err != nil {
		b.fail(path+".by", err)
	}
	if a.Easing, err = Easing(src.Easing); err != nil {
		b.fail(path+".easing", err)
	}
	return a
}

func (b *builder[T]) keyFrames(src *KeyFramesNode, path string) animation.Timeline {
	frames := make([]animation.KeyFrame[T], 0, len(src.Frames))
	for i := range src.Frames {
		f := &src.Frames[i]
		if f.Value.Kind == 0 {
			b.fail(fmt.Sprintf("%s.frames[%d]", path, i), errors.New("missing value"))
			continue
		}
		v, err := b.codec.value(&f.Value)
		if err != nil {
			b.fail(fmt.Sprintf("%s.frames[%d].value", path, i), err)
			continue
		}
		if f.Time < 0 {
			b.fail(fmt.Sprintf("%s.frames[%d].time", path, i), fmt.Errorf("negative time %v", time.Duration(f.Time)))
			continue
		}
		frames = append(frames, animation.KeyFrame[T]{Time: time.Duration(f.Time), Value: v})
	}

	a := animation.NewKeyFrameAnimation[T](b.codec.traits, frames...)
	b.timing(&a.Timing, &src.TimingNode, path)
	a.EnableInterpolation = !src.Step
	a.IsAdditive = src.Additive
	return a
}
