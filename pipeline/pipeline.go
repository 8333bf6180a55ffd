package pipeline

import (
	"fmt"
	"log"

	"github.com/pkg/errors"

	"github.com/lixenwraith/polarshader/fixed"
	"github.com/lixenwraith/polarshader/palette"
	"github.com/lixenwraith/polarshader/trig"
)

// domain identifies which coordinate system the layer under construction is
// currently expressed in, as Pipeline.Build walks its steps.
type domain uint8

const (
	domainCartesian domain = iota
	domainPolar
	domainUV
)

func (d domain) String() string {
	switch d {
	case domainCartesian:
		return "cartesian"
	case domainPolar:
		return "polar"
	case domainUV:
		return "uv"
	default:
		return "unknown"
	}
}

type stepKind uint8

const (
	stepCartesian stepKind = iota
	stepPolar
	stepUV
	stepToCartesian
	stepToPolar
	stepPalette
)

// Step is one entry in a Pipeline's ordered step list.
type Step struct {
	kind  stepKind
	cart  CartesianTransform
	polar PolarTransform
	uv    UVTransform
	pal   PaletteTransform
}

func CartesianStep(t CartesianTransform) Step { return Step{kind: stepCartesian, cart: t} }
func PolarStep(t PolarTransform) Step         { return Step{kind: stepPolar, polar: t} }
func UVStep(t UVTransform) Step               { return Step{kind: stepUV, uv: t} }
func PaletteStep(t PaletteTransform) Step     { return Step{kind: stepPalette, pal: t} }
func ToCartesianStep() Step                   { return Step{kind: stepToCartesian} }
func ToPolarStep() Step                       { return Step{kind: stepToPolar} }

// Pipeline is a source plus an ordered sequence of steps, compiled by
// Build into a single ColourMap. Grounded on the teacher's component
// registration pattern (render in registration order, tick before sample).
type Pipeline struct {
	source NoiseFunc
	steps  []Step

	diagnostics []error
}

// New builds a Pipeline from a noise source and its ordered steps.
func New(source NoiseFunc, steps ...Step) *Pipeline {
	return &Pipeline{source: source, steps: steps}
}

// AdvanceFrame ticks every transform in registration order, including
// Palette steps. Order matters: callers are responsible for registering
// ZoomTransform before TranslationTransform (so translation's smoothing
// reads the just-updated zoom) and PaletteTransform last (so its offset is
// the one the final lookup samples this frame).
func (p *Pipeline) AdvanceFrame(t fixed.TimeMillis) {
	for _, step := range p.steps {
		switch step.kind {
		case stepCartesian:
			step.cart.AdvanceFrame(t)
		case stepPolar:
			step.polar.AdvanceFrame(t)
		case stepUV:
			step.uv.AdvanceFrame(t)
		case stepPalette:
			step.pal.AdvanceFrame(t)
		}
	}
}

// Diagnostics returns the structural-misuse error recorded by the most
// recent Build call; Build stops at the first mismatch, so the slice holds
// at most one error (none after a clean build). Never consulted by the render
// path itself; it exists for operators/tests to inspect why a pipeline
// went black.
func (p *Pipeline) Diagnostics() []error { return p.diagnostics }

// Build walks the steps in order starting from the Cartesian source. A
// domain mismatch substitutes the well-known black ColourMap and logs the
// reason; it never panics. At the end the current layer must be Polar; if
// it is not, Build substitutes black as well (S1).
func (p *Pipeline) Build(pal palette.Palette, ctx *Context) ColourMap {
	p.diagnostics = nil

	cur := domainCartesian
	var cartLayer CartesianLayer = sourceLayer(p.source)
	var polarLayer PolarLayer
	var uvLayer UVLayer

	fail := func(reason string, args ...any) ColourMap {
		err := errors.Wrap(fmt.Errorf(reason, args...), "pipeline build")
		p.diagnostics = append(p.diagnostics, err)
		log.Printf("pipeline: %v", err)
		return blackColourMap
	}

	for i, step := range p.steps {
		switch step.kind {
		case stepCartesian:
			if cur != domainCartesian {
				return fail("step %d: cartesian transform requires cartesian layer, got %s", i, cur)
			}
			cartLayer = step.cart.ApplyCartesian(cartLayer)
		case stepPolar:
			if cur != domainPolar {
				return fail("step %d: polar transform requires polar layer, got %s", i, cur)
			}
			polarLayer = step.polar.ApplyPolar(polarLayer)
		case stepUV:
			if cur != domainUV {
				return fail("step %d: uv transform requires uv layer, got %s", i, cur)
			}
			uvLayer = step.uv.ApplyUV(uvLayer)
		case stepToCartesian:
			if cur != domainPolar {
				return fail("step %d: ToCartesian requires polar layer, got %s", i, cur)
			}
			cartLayer = polarToCartesianAdapter(polarLayer)
			cur = domainCartesian
		case stepToPolar:
			if cur != domainCartesian {
				return fail("step %d: ToPolar requires cartesian layer, got %s", i, cur)
			}
			polarLayer = cartesianToPolarAdapter(cartLayer)
			cur = domainPolar
		case stepPalette:
			// Side-effect only; contributes nothing to the layer chain at
			// build time (its AdvanceFrame mutation is what matters).
		}
	}

	if cur != domainPolar {
		return fail("pipeline must terminate on a polar layer, ended on %s", cur)
	}

	final := polarLayer
	return func(angle fixed.BoundedAngle, r fixed.FracQ0_16) fixed.RGB8 {
		raw := final(angle, r)
		index := uint8(uint16(raw)>>8) + ctx.PaletteOffset
		return pal.Lookup(index)
	}
}

// polarToCartesianAdapter performs the Polar -> Cartesian coordinate
// conversion at sample time: each Cartesian point is converted to
// (angle, radius) and the polar layer is sampled there. It adds no offset;
// the shift into the noise function's unsigned sample domain happens once,
// in sourceLayer.
func polarToCartesianAdapter(inner PolarLayer) CartesianLayer {
	return func(x, y fixed.CartQ24_8) fixed.PatternNormU16 {
		angle, r := trig.CartesianToPolar(x, y)
		return inner(angle, r)
	}
}

// cartesianToPolarAdapter performs the Cartesian -> Polar conversion at
// sample time, using polar_to_cartesian so the wrapped Cartesian layer
// receives signed Cartesian coordinates; the noise-domain offset is added
// by sourceLayer, not here.
func cartesianToPolarAdapter(inner CartesianLayer) PolarLayer {
	return func(angle fixed.BoundedAngle, r fixed.FracQ0_16) fixed.PatternNormU16 {
		phase := fixed.AngleToPhase(angle)
		x, y := trig.PolarToCartesian(phase, r)
		return inner(x, y)
	}
}
