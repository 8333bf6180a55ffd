// Package renderer ties a display geometry to a scene manager: each frame
// it advances the manager and samples the composited ColourMap once per
// pixel into a flat output buffer, grounded on PolarRenderer's render loop.
package renderer

import (
	"github.com/lixenwraith/polarshader/display"
	"github.com/lixenwraith/polarshader/fixed"
	"github.com/lixenwraith/polarshader/scene"
)

// Renderer owns a display spec, a scene manager, and a preallocated output
// buffer sized to the display's LED count. It never touches the hardware
// driver; the caller hands the filled buffer to one after each Render call.
type Renderer struct {
	spec    display.Spec
	manager *scene.Manager
	output  []fixed.RGB8
}

// New builds a Renderer for the given display and preallocates its output
// buffer; allocation happens once here, never on the render path.
func New(spec display.Spec, manager *scene.Manager) *Renderer {
	return &Renderer{
		spec:    spec,
		manager: manager,
		output:  make([]fixed.RGB8, spec.NLeds()),
	}
}

// Render advances the scene manager to t, builds its ColourMap, and samples
// it once per pixel via the display spec's angle/radius mapping.
func (r *Renderer) Render(t fixed.TimeMillis) []fixed.RGB8 {
	r.manager.AdvanceFrame(t)
	colourMap := r.manager.Build()
	for i := range r.output {
		angle, radius := r.spec.ToPolar(uint16(i))
		r.output[i] = colourMap(angle, radius)
	}
	return r.output
}

// Output returns the renderer's preallocated buffer without re-rendering.
func (r *Renderer) Output() []fixed.RGB8 { return r.output }

// NLeds reports the display's LED count, the invariant length of Output().
func (r *Renderer) NLeds() uint16 { return r.spec.NLeds() }
