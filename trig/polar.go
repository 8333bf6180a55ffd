package trig

import "github.com/lixenwraith/polarshader/fixed"

// PolarToCartesian converts a phase/radius pair into Cartesian coordinates.
// phase must already be promoted from a BoundedAngle via fixed.AngleToPhase;
// passing a raw phase of 0 without that promotion silently collapses the
// angle, so callers are responsible for promoting first.
func PolarToCartesian(phase fixed.UnboundedAngle, r fixed.FracQ0_16) (fixed.CartQ24_8, fixed.CartQ24_8) {
	angle := fixed.PhaseToAngle(phase)
	cos := CosQ1_15(angle)
	sin := SinQ1_15(angle)
	x := fixed.ScaleI32ByBounded(int32(cos), r)
	y := fixed.ScaleI32ByBounded(int32(sin), r)
	return fixed.CartQ24_8(x), fixed.CartQ24_8(y)
}

// CartesianToPolar converts Cartesian coordinates into phase/radius. x and y
// are clamped to the int16 range before the atan2 approximation is applied,
// matching the original's int16-domain atan2 table.
func CartesianToPolar(x, y fixed.CartQ24_8) (fixed.UnboundedAngle, fixed.FracQ0_16) {
	x16 := clampToInt16(int32(x))
	y16 := clampToInt16(int32(y))

	angle := Atan2TurnsApprox(y16, x16)
	phase := fixed.AngleToPhase(angle)

	dx := int64(x16)
	dy := int64(y16)
	magSq := uint64(dx*dx + dy*dy)
	magnitude := fixed.SqrtU32(uint32(magSq))

	radiusQ16 := (uint64(magnitude) << 16) / uint64(fixed.TrigQ1_15Max)
	if radiusQ16 > 0xFFFF {
		radiusQ16 = 0xFFFF
	}
	return phase, fixed.FracQ0_16(radiusQ16)
}

func clampToInt16(v int32) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}
