// Package scene implements the scene/layer lifecycle and the scene
// manager: a scene owns an ordered list of blended layers and a duration;
// the manager owns the current scene and a provider, advancing and
// swapping scenes each frame and publishing the composited ColourMap.
package scene

import (
	"github.com/lixenwraith/polarshader/fixed"
	"github.com/lixenwraith/polarshader/palette"
	"github.com/lixenwraith/polarshader/pipeline"
)

// Layer owns a built pipeline ColourMap, an alpha, and a blend mode against
// the scene's accumulating base color.
type Layer struct {
	Pipeline *pipeline.Pipeline
	Palette  palette.Palette
	Context  *pipeline.Context
	Alpha    fixed.FracQ0_16
	Blend    palette.BlendMode

	colourMap pipeline.ColourMap
}

// AdvanceFrame ticks this layer's pipeline and rebuilds its ColourMap for
// this frame. progress is the scene's normalized [0,1) progress; transforms
// bound to the scene's time domain read it via signals driven by elapsed.
func (l *Layer) AdvanceFrame(progress fixed.FracQ0_16, elapsed fixed.TimeMillis) {
	l.Pipeline.AdvanceFrame(elapsed)
	l.colourMap = l.Pipeline.Build(l.Palette, l.Context)
}

func (l *Layer) sample(angle fixed.BoundedAngle, r fixed.FracQ0_16) fixed.RGB8 {
	return l.colourMap(angle, r)
}

// Scene owns its layers and a duration; duration 0 means it never expires.
type Scene struct {
	Layers     []*Layer
	DurationMs fixed.TimeMillis

	startTime fixed.TimeMillis
	started   bool
}

// New builds a Scene from its layers and duration.
func New(duration fixed.TimeMillis, layers ...*Layer) *Scene {
	return &Scene{Layers: layers, DurationMs: duration}
}

// Start records the scene's start time; called once by the manager when
// the scene becomes current.
func (s *Scene) Start(now fixed.TimeMillis) {
	s.startTime = now
	s.started = true
}

// Elapsed returns how much time has passed since Start, as a two's
// complement difference (so a time regression doesn't explode).
func (s *Scene) Elapsed(now fixed.TimeMillis) fixed.TimeMillis {
	return fixed.TimeMillis(int64(now) - int64(s.startTime))
}

// Expired reports whether the scene has run its full duration. A zero
// duration never expires.
func (s *Scene) Expired(now fixed.TimeMillis) bool {
	if s.DurationMs == 0 {
		return false
	}
	return s.Elapsed(now) >= s.DurationMs
}

// Progress returns the normalized [0, 1) progress for the given time,
// clamped at the scene's duration.
func (s *Scene) Progress(now fixed.TimeMillis) fixed.FracQ0_16 {
	if s.DurationMs == 0 {
		return 0
	}
	elapsed := s.Elapsed(now)
	if elapsed > s.DurationMs {
		elapsed = s.DurationMs
	}
	p := (uint64(elapsed) << 16) / uint64(s.DurationMs)
	if p > 0xFFFF {
		p = 0xFFFF
	}
	return fixed.FracQ0_16(p)
}

// AdvanceFrame ticks every layer with the scene's current progress/elapsed.
func (s *Scene) AdvanceFrame(now fixed.TimeMillis) {
	progress := s.Progress(now)
	elapsed := s.Elapsed(now)
	for _, l := range s.Layers {
		l.AdvanceFrame(progress, elapsed)
	}
}

// Build composites every layer's color at (angle, r) in registration order
// starting from black, per each layer's blend mode and alpha (testable
// properties 17/18).
func (s *Scene) Build() pipeline.ColourMap {
	layers := s.Layers
	return func(angle fixed.BoundedAngle, r fixed.FracQ0_16) fixed.RGB8 {
		base := fixed.RGB8Black
		for _, l := range layers {
			if l.Alpha == 0 {
				continue
			}
			c := l.sample(angle, r)
			base = palette.Composite(base, c, l.Blend, l.Alpha)
		}
		return base
	}
}
