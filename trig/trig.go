package trig

import "github.com/lixenwraith/polarshader/fixed"

// lutIndex maps a 16-bit BoundedAngle down to the lutSize-entry table.
func lutIndex(a fixed.BoundedAngle) int {
	return int(uint16(a)>>(16-10)) & lutMask
}

// SinQ1_15 samples sine at a bounded angle, result in [-1, 1].
func SinQ1_15(a fixed.BoundedAngle) fixed.TrigQ1_15 {
	return fixed.TrigQ1_15(sinLUT[lutIndex(a)])
}

// CosQ1_15 samples cosine at a bounded angle, result in [-1, 1].
func CosQ1_15(a fixed.BoundedAngle) fixed.TrigQ1_15 {
	return fixed.TrigQ1_15(cosLUT[lutIndex(a)])
}

// atan2 constants: A is 0.125 turns Q0.16, B is the rational correction
// term from the piecewise-rational approximation (spec.md 4.1).
const (
	atan2A uint32 = 8192
	atan2B uint32 = 2847
)

// Atan2TurnsApprox is a piecewise-rational atan2 approximation returning a
// turn fraction in [0, 1). Accurate to within a few hundredths of a turn;
// adequate for visual rotation, not for geometry.
//
// Grounded on original_source/src/renderer/pipeline/maths/AngleMaths.cpp's
// angleAtan2TurnsApprox.
func Atan2TurnsApprox(y, x int16) fixed.BoundedAngle {
	if x == 0 && y == 0 {
		return 0
	}

	absX := abs16(x)
	absY := abs16(y)

	maxVal, minVal := absX, absY
	if absY > absX {
		maxVal, minVal = absY, absX
	}

	z := (uint32(minVal) << 16) / uint32(maxVal)
	oneMinusZ := uint32(0x10000) - z

	inner := atan2A + ((atan2B * oneMinusZ) >> 16)
	base := (z * inner) >> 16 // 0..0.125 turns

	var angle uint32
	if absX >= absY {
		angle = base
	} else {
		angle = 0x4000 - base // reflect into the adjacent octant (quarter turn = 0x4000)
	}
	if x < 0 {
		angle = 0x8000 - angle
	}
	if y < 0 {
		angle = 0x10000 - angle
	}
	return fixed.BoundedAngle(uint16(angle & 0xFFFF))
}

func abs16(v int16) uint16 {
	if v < 0 {
		return uint16(-int32(v))
	}
	return uint16(v)
}
