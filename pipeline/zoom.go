package pipeline

import (
	"github.com/lixenwraith/polarshader/fixed"
	"github.com/lixenwraith/polarshader/ranges"
	"github.com/lixenwraith/polarshader/signal"
)

// minSmoothAlpha and maxSmoothAlpha bound the IIR smoothing alpha (Q0.16):
// smaller alpha means slower, gentler tracking. Zoomed way out (low
// normalized zoom) uses a smaller alpha to tame the high-frequency jitter
// that a fast-changing zoom would otherwise inject into the noise field.
const (
	minSmoothAlpha = fixed.FracQ0_16(0x0800) // ~3%
	maxSmoothAlpha = fixed.FracQ0_16(0x4000) // 25%
)

// ZoomAnchor selects how the signal's normalized [0, 1) input maps onto the
// [ZoomMin, ZoomMax] span. Floor is the spec's default (0 -> min, 1 -> max);
// Ceiling and MidPoint are carried from the original's ZoomTransform for
// presets that want the span traversed from the other end or centered.
type ZoomAnchor int

const (
	ZoomFloor ZoomAnchor = iota
	ZoomCeiling
	ZoomMidPoint
)

// ZoomTransform scales a Cartesian or UV layer's coordinates toward the
// origin, smoothing its target scale with a zoom-dependent IIR alpha and
// publishing the normalized result to Context.ZoomNormalized.
type ZoomTransform struct {
	input    signal.Signal[fixed.SFracQ0_16]
	anchor   ZoomAnchor
	ctx      *Context
	smoothed fixed.FracQ16_16
	started  bool
}

func NewZoomTransform(scale signal.Signal[fixed.SFracQ0_16], ctx *Context) *ZoomTransform {
	return &ZoomTransform{
		input:    scale,
		anchor:   ZoomFloor,
		ctx:      ctx,
		smoothed: fixed.FracQ16_16One,
	}
}

// WithAnchor selects a non-default ZoomAnchor.
func (z *ZoomTransform) WithAnchor(anchor ZoomAnchor) *ZoomTransform {
	z.anchor = anchor
	return z
}

func (z *ZoomTransform) AdvanceFrame(t fixed.TimeMillis) {
	target := z.targetFor(t)
	if !z.started {
		z.started = true
		z.smoothed = target
	} else {
		alpha := z.currentAlpha()
		delta := int64(target) - int64(z.smoothed)
		z.smoothed = fixed.FracQ16_16(int64(z.smoothed) + (delta*int64(alpha))>>16)
	}
	z.ctx.ZoomNormalized = z.normalized()
	z.ctx.ZoomScale = z.scaleAsSFrac()
}

// targetFor maps the raw signal sample into the zoom span per the selected
// anchor. t, the sample clamped into [0, SFracOne], is treated as an
// unsigned fraction of the span regardless of anchor.
func (z *ZoomTransform) targetFor(now fixed.TimeMillis) fixed.FracQ16_16 {
	raw := int64(z.input.Sample(now))
	if raw < 0 {
		raw = 0
	}
	if raw > int64(fixed.SFracOne) {
		raw = int64(fixed.SFracOne)
	}
	span := int64(ranges.ZoomMax) - int64(ranges.ZoomMin)
	offset := (raw * span) >> 16

	var target int64
	switch z.anchor {
	case ZoomCeiling:
		target = int64(ranges.ZoomMax) - offset
	default: // ZoomFloor, ZoomMidPoint (linear-in-t, coincides with Floor)
		target = int64(ranges.ZoomMin) + offset
	}
	if target < int64(ranges.ZoomMin) {
		target = int64(ranges.ZoomMin)
	}
	if target > int64(ranges.ZoomMax) {
		target = int64(ranges.ZoomMax)
	}
	return fixed.FracQ16_16(target)
}

// scaleAsSFrac reinterprets the smoothed Q16.16 zoom scale as an
// SFracQ0_16 for publication on Context.ZoomScale; both types share the
// same ONE = 1<<16 scale, zoom's span simply exceeds the canonical [-1, 1]
// signal range.
func (z *ZoomTransform) scaleAsSFrac() fixed.SFracQ0_16 {
	return fixed.SFracQ0_16(z.smoothed)
}

func (z *ZoomTransform) normalized() fixed.FracQ0_16 {
	span := int64(ranges.ZoomMax) - int64(ranges.ZoomMin)
	n := ((int64(z.smoothed) - int64(ranges.ZoomMin)) * 0xFFFF) / span
	if n < 0 {
		n = 0
	}
	if n > 0xFFFF {
		n = 0xFFFF
	}
	return fixed.FracQ0_16(n)
}

func (z *ZoomTransform) currentAlpha() fixed.FracQ0_16 {
	norm := int64(z.normalized())
	span := int64(maxSmoothAlpha) - int64(minSmoothAlpha)
	return fixed.FracQ0_16(int64(minSmoothAlpha) + (norm*span)>>16)
}

func (z *ZoomTransform) ApplyCartesian(inner CartesianLayer) CartesianLayer {
	return func(x, y fixed.CartQ24_8) fixed.PatternNormU16 {
		sx := fixed.CartQ24_8((int64(x) * int64(z.smoothed)) >> 16)
		sy := fixed.CartQ24_8((int64(y) * int64(z.smoothed)) >> 16)
		return inner(sx, sy)
	}
}

func (z *ZoomTransform) ApplyUV(inner UVLayer) UVLayer {
	return func(u, v fixed.FracQ16_16) fixed.PatternNormU16 {
		su := fixed.FracQ16_16((int64(u) * int64(z.smoothed)) >> 16)
		sv := fixed.FracQ16_16((int64(v) * int64(z.smoothed)) >> 16)
		return inner(su, sv)
	}
}
