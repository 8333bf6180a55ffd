// Package ranges implements the Range[T] mapping abstraction: total,
// never-failing functions from a canonical SFracQ0_16 signal sample to a
// domain-specific output (a scalar, a cartesian vector, an angle, a
// palette index, ...). Mapping either clamps or wraps, per domain; it
// never panics and never returns an error.
package ranges

import "github.com/lixenwraith/polarshader/fixed"

// Range is the common interface every single-input range variant
// implements. CartesianRange is deliberately not a Range[T]: it consumes
// two inputs (direction, velocity), per its spec.
type Range[T any] interface {
	Map(v fixed.SFracQ0_16) T
}

// LinearMode controls how a LinearRange interprets its [-1, 1] input.
type LinearMode uint8

const (
	Auto LinearMode = iota
	SignedDirect
	UnsignedFromSigned
)

func (m LinearMode) resolve(min int64) LinearMode {
	if m != Auto {
		return m
	}
	if min < 0 {
		return SignedDirect
	}
	return UnsignedFromSigned
}

// LinearRange maps the signed unit input onto [min, max] per mode, clamping.
// Auto picks SignedDirect when min < 0, else UnsignedFromSigned (testable
// property 7).
type LinearRange struct {
	min, max int64
	mode     LinearMode
}

func NewLinearRange(min, max int64, mode LinearMode) LinearRange {
	return LinearRange{min: min, max: max, mode: mode}
}

// mapRaw produces the mapped value as an int64 before any output-type
// clamp/cast; shared by the typed Map* accessors below.
func (r LinearRange) mapRaw(v fixed.SFracQ0_16) int64 {
	span := r.max - r.min
	switch r.mode.resolve(r.min) {
	case SignedDirect:
		t := int64(v) - int64(fixed.SFracMin) // 0 .. 2*ONE
		return r.min + (t*span)/(2*int64(fixed.SFracOne))
	default: // UnsignedFromSigned
		mag := int64(v)
		if mag < 0 {
			mag = -mag
		}
		return r.min + (mag*span)/int64(fixed.SFracOne)
	}
}

// MapInt32 maps onto an int32-valued range (e.g. pixel offsets), clamped.
func (r LinearRange) MapInt32(v fixed.SFracQ0_16) int32 {
	return int32(fixed.ClampI32(int32(clampInt64(r.mapRaw(v), -1<<31, 1<<31-1)), -1<<31, 1<<31-1))
}

// MapFracQ16_16 maps onto a Q16.16 range, clamped.
func (r LinearRange) MapFracQ16_16(v fixed.SFracQ0_16) fixed.FracQ16_16 {
	return fixed.FracQ16_16(clampInt64(r.mapRaw(v), -1<<31, 1<<31-1))
}

// MapFracQ0_16 maps onto an unsigned Q0.16 range, clamped to [0, 0xFFFF].
func (r LinearRange) MapFracQ0_16(v fixed.SFracQ0_16) fixed.FracQ0_16 {
	return fixed.FracQ0_16(clampInt64(r.mapRaw(v), 0, 0xFFFF))
}

func clampInt64(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Int32Range adapts a LinearRange to the Range[int32] interface, for
// MappedSignal[int32] consumers (e.g. CartesianMotionAccumulator's speed
// input).
type Int32Range struct{ LinearRange }

func NewInt32Range(min, max int64, mode LinearMode) Int32Range {
	return Int32Range{LinearRange: NewLinearRange(min, max, mode)}
}

func (r Int32Range) Map(v fixed.SFracQ0_16) int32 { return r.MapInt32(v) }

// FracQ0_16Range adapts a LinearRange to the Range[fixed.FracQ0_16]
// interface.
type FracQ0_16Range struct{ LinearRange }

func NewFracQ0_16Range(min, max int64, mode LinearMode) FracQ0_16Range {
	return FracQ0_16Range{LinearRange: NewLinearRange(min, max, mode)}
}

func (r FracQ0_16Range) Map(v fixed.SFracQ0_16) fixed.FracQ0_16 { return r.MapFracQ0_16(v) }

// PolarRange maps the signed unit input circularly onto the arc from min to
// max (both FracQ0_16 turn fractions), wrapping at 2^16. min may exceed max
// to select the arc that runs through the 0/1 seam; t=0 yields min, t=1
// yields max, t=0.5 yields the arc's midpoint (testable property 6).
type PolarRange struct {
	min, max fixed.FracQ0_16
}

func NewPolarRange(min, max fixed.FracQ0_16) PolarRange {
	return PolarRange{min: min, max: max}
}

func (r PolarRange) Map(v fixed.SFracQ0_16) fixed.FracQ0_16 {
	t := int64(v) - int64(fixed.SFracMin) // 0 .. 2*ONE, linear in [0,1]
	const fullTurn = int64(1) << 16
	minRaw := int64(r.min)
	maxRaw := int64(r.max)
	var span int64
	if maxRaw > minRaw {
		span = maxRaw - minRaw
	} else {
		span = (fullTurn - minRaw) + maxRaw
	}
	delta := (t * span) / (2 * int64(fixed.SFracOne))
	return fixed.FracQ0_16(uint16((minRaw + delta) & (fullTurn - 1)))
}

// UVRange maps the signed unit input onto a [min, max] UV-space extent per
// axis, clamped.
type UVRange struct {
	min, max fixed.FracQ16_16
}

func NewUVRange(min, max fixed.FracQ16_16) UVRange {
	return UVRange{min: min, max: max}
}

func (r UVRange) Map(v fixed.SFracQ0_16) fixed.FracQ16_16 {
	lr := NewLinearRange(int64(r.min), int64(r.max), Auto)
	return lr.MapFracQ16_16(v)
}

// CartesianRange decomposes a (direction, velocity) pair into a 2D point at
// the configured maximum radius: (x, y) = (v*r*cos(theta), v*r*sin(theta)).
// It intentionally does not implement Range[T]: the source spec gives it
// two inputs, not one.
type CartesianRange struct {
	maxRadius fixed.FracQ0_16
}

func NewCartesianRange(maxRadius fixed.FracQ0_16) CartesianRange {
	return CartesianRange{maxRadius: maxRadius}
}

func (r CartesianRange) Map(direction, velocity fixed.SFracQ0_16, cosFn, sinFn func(fixed.BoundedAngle) fixed.TrigQ1_15) (fixed.CartQ24_8, fixed.CartQ24_8) {
	angle := fixed.PhaseToAngle(fixed.AngleToPhase(fixed.BoundedAngle(uint16(int32(direction)))))
	cos := cosFn(angle)
	sin := sinFn(angle)
	vMag := int64(velocity)
	if vMag < 0 {
		vMag = -vMag
	}
	rv := (vMag * int64(r.maxRadius)) >> 16 // velocity fraction of max radius, Q0.16
	x := fixed.ScaleI32ByBounded(int32(cos), fixed.FracQ0_16(clampInt64(rv, 0, 0xFFFF)))
	y := fixed.ScaleI32ByBounded(int32(sin), fixed.FracQ0_16(clampInt64(rv, 0, 0xFFFF)))
	return fixed.CartQ24_8(x), fixed.CartQ24_8(y)
}

// PaletteRange maps the signed unit input onto a palette index in [0, 255],
// clamped.
type PaletteRange struct{ lr LinearRange }

func NewPaletteRange() PaletteRange { return PaletteRange{lr: NewLinearRange(0, 255, UnsignedFromSigned)} }

func (r PaletteRange) Map(v fixed.SFracQ0_16) uint8 {
	return uint8(clampInt64(r.lr.mapRaw(v), 0, 255))
}

// PatternRange maps the signed unit input onto a PatternNormU16 intensity,
// folding (wrapping) overflow rather than clamping.
type PatternRange struct{ min, max fixed.PatternNormU16 }

func NewPatternRange(min, max fixed.PatternNormU16) PatternRange {
	return PatternRange{min: min, max: max}
}

func (r PatternRange) Map(v fixed.SFracQ0_16) fixed.PatternNormU16 {
	t := int64(v) - int64(fixed.SFracMin)
	span := int64(r.max) - int64(r.min)
	raw := int64(r.min) + (t*span)/(2*int64(fixed.SFracOne))
	return fixed.PatternNormU16(uint16(raw)) // uint16 cast folds over/underflow
}

// TimeRange maps the signed unit input onto a [min, max] TimeMillis span,
// clamped.
type TimeRange struct{ min, max fixed.TimeMillis }

func NewTimeRange(min, max fixed.TimeMillis) TimeRange { return TimeRange{min: min, max: max} }

func (r TimeRange) Map(v fixed.SFracQ0_16) fixed.TimeMillis {
	lr := NewLinearRange(int64(r.min), int64(r.max), Auto)
	return fixed.TimeMillis(clampInt64(lr.mapRaw(v), 0, int64(^fixed.TimeMillis(0))))
}

// ZoomRange maps the signed unit input onto a zoom scale in [1/160, 4]
// (Q16.16), clamped. Values below 1 zoom out (reveal more of the noise
// domain); values above 1 zoom in.
type ZoomRange struct{ lr LinearRange }

const (
	ZoomMin = fixed.FracQ16_16(65536 / 160)
	ZoomMax = fixed.FracQ16_16(65536 * 4)
)

func NewZoomRange() ZoomRange {
	return ZoomRange{lr: NewLinearRange(int64(ZoomMin), int64(ZoomMax), UnsignedFromSigned)}
}

func (r ZoomRange) Map(v fixed.SFracQ0_16) fixed.FracQ16_16 { return r.lr.MapFracQ16_16(v) }

// DepthRange maps the signed unit input onto a [min, max] Q16.16 depth
// value, clamped. Used by perspective-style presets.
type DepthRange struct{ lr LinearRange }

func NewDepthRange(min, max fixed.FracQ16_16) DepthRange {
	return DepthRange{lr: NewLinearRange(int64(min), int64(max), Auto)}
}

func (r DepthRange) Map(v fixed.SFracQ0_16) fixed.FracQ16_16 { return r.lr.MapFracQ16_16(v) }

// SFracRange re-scales the canonical [-1, 1] input onto an arbitrary
// [min, max] SFracQ0_16 sub-range, clamped. Used where a transform wants a
// narrower swing than the full signed unit range.
type SFracRange struct{ lr LinearRange }

func NewSFracRange(min, max fixed.SFracQ0_16) SFracRange {
	return SFracRange{lr: NewLinearRange(int64(min), int64(max), SignedDirect)}
}

func (r SFracRange) Map(v fixed.SFracQ0_16) fixed.SFracQ0_16 {
	return fixed.SFracQ0_16(clampInt64(r.lr.mapRaw(v), int64(fixed.SFracMin), int64(fixed.SFracMax)))
}
