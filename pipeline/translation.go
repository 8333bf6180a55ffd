package pipeline

import (
	"github.com/lixenwraith/polarshader/fixed"
	"github.com/lixenwraith/polarshader/modulate"
	"github.com/lixenwraith/polarshader/ranges"
	"github.com/lixenwraith/polarshader/signal"
)

// TranslationTransform integrates a CartesianMotionAccumulator and adds the
// resulting offset to a Cartesian or UV layer's coordinates. Its smoothing
// alpha depends on Context.ZoomNormalized: zoomed out, motion is damped so
// the pattern doesn't streak.
type TranslationTransform struct {
	acc      *modulate.CartesianMotionAccumulator
	ctx      *Context
	offX     fixed.FracQ16_16
	offY     fixed.FracQ16_16
	smoothX  fixed.FracQ16_16
	smoothY  fixed.FracQ16_16
	started  bool
}

func NewTranslationTransform(direction, velocity signal.Signal[fixed.SFracQ0_16], ctx *Context) *TranslationTransform {
	dir := ranges.NewMappedSignal[fixed.FracQ0_16](direction, ranges.NewPolarRange(0, 0xFFFF))
	spd := ranges.NewMappedSignal[int32](velocity, ranges.NewInt32Range(-4096, 4096, ranges.SignedDirect))
	return &TranslationTransform{acc: modulate.NewCartesianMotionAccumulator(dir, spd), ctx: ctx}
}

func (tr *TranslationTransform) AdvanceFrame(t fixed.TimeMillis) {
	x, y := tr.acc.Advance(t)
	tr.offX, tr.offY = x, y
	alpha := tr.alpha()
	if !tr.started {
		tr.started = true
		tr.smoothX, tr.smoothY = x, y
		return
	}
	tr.smoothX = fixed.FracQ16_16(int64(tr.smoothX) + ((int64(x)-int64(tr.smoothX))*int64(alpha))>>16)
	tr.smoothY = fixed.FracQ16_16(int64(tr.smoothY) + ((int64(y)-int64(tr.smoothY))*int64(alpha))>>16)
}

func (tr *TranslationTransform) alpha() fixed.FracQ0_16 {
	// Reads the zoom transform's normalized output, if one ran earlier this
	// frame; defaults to full responsiveness otherwise.
	norm := tr.ctx.ZoomNormalized
	if norm == 0 {
		norm = fixed.FracQ0_16Max
	}
	const minA, maxA = int64(minSmoothAlpha), int64(maxSmoothAlpha)
	return fixed.FracQ0_16(minA + (int64(norm)*(maxA-minA))>>16)
}

func (tr *TranslationTransform) ApplyCartesian(inner CartesianLayer) CartesianLayer {
	return func(x, y fixed.CartQ24_8) fixed.PatternNormU16 {
		nx := fixed.CartQ24_8(int32(x) + int32(tr.smoothX>>8))
		ny := fixed.CartQ24_8(int32(y) + int32(tr.smoothY>>8))
		return inner(nx, ny)
	}
}

func (tr *TranslationTransform) ApplyUV(inner UVLayer) UVLayer {
	return func(u, v fixed.FracQ16_16) fixed.PatternNormU16 {
		return inner(u+tr.smoothX, v+tr.smoothY)
	}
}
