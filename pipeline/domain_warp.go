package pipeline

import (
	"github.com/lixenwraith/polarshader/fixed"
	"github.com/lixenwraith/polarshader/modulate"
	"github.com/lixenwraith/polarshader/ranges"
	"github.com/lixenwraith/polarshader/signal"
	"github.com/lixenwraith/polarshader/trig"
)

// DomainWarpKind selects how DomainWarpTransform derives its offset vector
// field from noise.
type DomainWarpKind uint8

const (
	WarpBasic DomainWarpKind = iota
	WarpFBM
	WarpNested
	WarpCurl
	WarpPolar
	WarpDirectional
)

// DomainWarpTransform warps (x, y) by a vector field derived from 2D noise.
type DomainWarpTransform struct {
	kind     DomainWarpKind
	phase    *modulate.PhaseAccumulator
	amp      ranges.MappedSignal[fixed.FracQ0_16]
	warpScl  fixed.CartQ24_8 // Q24.8 spatial frequency of the warp field
	maxOff   fixed.CartQ24_8 // Q24.8 maximum displacement
	octaves  int
	flowDir  ranges.MappedSignal[fixed.FracQ0_16]
	flowAmp  ranges.MappedSignal[fixed.FracQ0_16]
	hasFlow  bool
	currentT fixed.TimeMillis
}

// NewDomainWarpTransform builds a warp of the given kind. phaseVelocity
// drives the noise field's time evolution (turns/sec); amplitude scales
// maxOffset (Q24.8) to produce the final displacement.
func NewDomainWarpTransform(kind DomainWarpKind, phaseVelocity, amplitude signal.Signal[fixed.SFracQ0_16], warpScale, maxOffset fixed.CartQ24_8, octaves int) *DomainWarpTransform {
	speed := ranges.NewMappedSignal[fixed.FracQ16_16](phaseVelocity, ranges.NewDepthRange(-fixed.FracQ16_16One*4, fixed.FracQ16_16One*4))
	return &DomainWarpTransform{
		kind:    kind,
		phase:   modulate.NewPhaseAccumulator(speed),
		amp:     ranges.NewMappedSignal[fixed.FracQ0_16](amplitude, ranges.NewFracQ0_16Range(0, 0xFFFF, ranges.UnsignedFromSigned)),
		warpScl: warpScale,
		maxOff:  maxOffset,
		octaves: maxInt(1, octaves),
	}
}

// WithFlow adds a directional drift to the Directional variant.
func (d *DomainWarpTransform) WithFlow(direction, strength signal.Signal[fixed.SFracQ0_16]) *DomainWarpTransform {
	d.flowDir = ranges.NewMappedSignal[fixed.FracQ0_16](direction, ranges.NewPolarRange(0, 0xFFFF))
	d.flowAmp = ranges.NewMappedSignal[fixed.FracQ0_16](strength, ranges.NewFracQ0_16Range(0, 0xFFFF, ranges.UnsignedFromSigned))
	d.hasFlow = true
	return d
}

func (d *DomainWarpTransform) AdvanceFrame(t fixed.TimeMillis) {
	d.phase.Advance(t)
	d.currentT = t
}

func (d *DomainWarpTransform) ApplyCartesian(inner CartesianLayer) CartesianLayer {
	return func(x, y fixed.CartQ24_8) fixed.PatternNormU16 {
		ox, oy := d.offset(x, y)
		return inner(x+ox, y+oy)
	}
}

// offset computes the warp's displacement at (x, y) per its kind.
func (d *DomainWarpTransform) offset(x, y fixed.CartQ24_8) (fixed.CartQ24_8, fixed.CartQ24_8) {
	t := d.currentT
	timeShift := fixed.CartQ24_8(int32(d.phase.Phase()) >> 16 << fixed.CartesianFracBits)
	sx := fixed.CartQ24_8((int64(x) * int64(d.warpScl)) >> fixed.CartesianFracBits)
	sy := fixed.CartQ24_8((int64(y) * int64(d.warpScl)) >> fixed.CartesianFracBits)

	sampleAt := func(jx, jy fixed.CartQ24_8) (fixed.CartQ24_8, fixed.CartQ24_8) {
		n1 := trig.Noise2DOffset(jx+timeShift, jy)
		n2 := trig.Noise2DOffset(jx, jy+timeShift)
		amp := d.amp.Sample(t)
		ox := scaleOffsetByNoise(n1, amp, d.maxOff)
		oy := scaleOffsetByNoise(n2, amp, d.maxOff)
		return ox, oy
	}

	switch d.kind {
	case WarpFBM, WarpNested:
		var ox, oy int64
		scale := int64(1)
		for i := 0; i < d.octaves; i++ {
			jx := fixed.CartQ24_8(int64(sx) * scale)
			jy := fixed.CartQ24_8(int64(sy) * scale)
			cx, cy := sampleAt(jx, jy)
			ox += int64(cx) / scale
			oy += int64(cy) / scale
			scale *= 2
		}
		return fixed.CartQ24_8(ox), fixed.CartQ24_8(oy)
	case WarpCurl:
		// Approximate curl by swapping and negating one axis of the
		// gradient, which yields a divergence-free-looking field without
		// an explicit derivative.
		cx, cy := sampleAt(sx, sy)
		return -cy, cx
	case WarpPolar:
		angle, r := trig.CartesianToPolar(x, y)
		phase := fixed.AngleToPhase(angle)
		rx, ry := trig.PolarToCartesian(phase, r)
		return sampleAt(fixed.CartQ24_8((int64(rx)*int64(d.warpScl))>>fixed.CartesianFracBits), fixed.CartQ24_8((int64(ry)*int64(d.warpScl))>>fixed.CartesianFracBits))
	case WarpDirectional:
		ox, oy := sampleAt(sx, sy)
		if d.hasFlow {
			angle := fixed.BoundedAngle(uint16(d.flowDir.Sample(t)))
			cos := trig.CosQ1_15(angle)
			sin := trig.SinQ1_15(angle)
			strength := int64(d.flowAmp.Sample(t))
			fx := (strength * int64(cos) * int64(d.maxOff)) >> (15 + 16)
			fy := (strength * int64(sin) * int64(d.maxOff)) >> (15 + 16)
			ox += fixed.CartQ24_8(fx)
			oy += fixed.CartQ24_8(fy)
		}
		return ox, oy
	default: // WarpBasic
		return sampleAt(sx, sy)
	}
}

func scaleOffsetByNoise(n fixed.NoiseRawU16, amp fixed.FracQ0_16, maxOff fixed.CartQ24_8) fixed.CartQ24_8 {
	norm := int32(trig.NormalizeNoise(n)) - 0x8000 // centered, [-32768, 32767]
	scaled := (int64(norm) * int64(amp)) >> 16      // still centered Q0.16-ish
	return fixed.CartQ24_8((scaled * int64(maxOff)) >> 15)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
