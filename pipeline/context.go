package pipeline

import "github.com/lixenwraith/polarshader/fixed"

// Context is the only mutable state shared among the transforms of a single
// layer. Transforms write during AdvanceFrame and read during Apply (at
// sample time); the pipeline's ordering guarantee (advance every transform
// in registration order before any sampling) makes this race-free under the
// single-threaded render loop.
type Context struct {
	// ZoomNormalized is published by ZoomTransform and read by
	// TranslationTransform to scale its smoothing alpha.
	ZoomNormalized fixed.FracQ0_16
	// ZoomScale is the raw smoothed zoom scale published by ZoomTransform,
	// ahead of normalization.
	ZoomScale fixed.SFracQ0_16
	// PaletteOffset is written by PaletteTransform and consumed by the
	// pipeline's final palette lookup.
	PaletteOffset uint8
}

// NewContext returns a Context in its initial state: zoom normalized at its
// maximum (so TranslationTransform's smoothing starts fully responsive),
// zoom scale at identity (1.0), and a zero palette offset.
func NewContext() *Context {
	return &Context{ZoomNormalized: fixed.FracQ0_16Max, ZoomScale: fixed.SFracOne}
}
