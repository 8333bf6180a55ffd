package display

import (
	"github.com/lixenwraith/polarshader/fixed"
	"github.com/lixenwraith/polarshader/trig"
)

// diagonalScaleQ0_16 is 1/sqrt(2) in Q0.16, the factor that makes the
// inscribed unit circle's diameter equal the matrix's diagonal.
const diagonalScaleQ0_16 = 46341

// MatrixSpec is a rectangular HUB75-style panel, up to 128x128 physical
// pixels, optionally subsampled to a coarser logical grid (e.g. a 128x128
// panel driven at half resolution reports a 64x64 logical matrix).
type MatrixSpec struct {
	width, height uint16
	subsample     uint16
}

// NewMatrixSpec builds a matrix spec for a panel of the given physical
// dimensions, logically subsampled by the given factor (1 = no subsampling).
func NewMatrixSpec(width, height, subsample uint16) MatrixSpec {
	if subsample == 0 {
		subsample = 1
	}
	return MatrixSpec{width: width, height: height, subsample: subsample}
}

func (m MatrixSpec) logicalWidth() uint16  { return m.width / m.subsample }
func (m MatrixSpec) logicalHeight() uint16 { return m.height / m.subsample }

func (m MatrixSpec) NLeds() uint16 { return m.logicalWidth() * m.logicalHeight() }

func (m MatrixSpec) NSegments() uint16 { return m.logicalHeight() }

func (m MatrixSpec) SegmentSize(segmentIndex uint16) uint16 { return m.logicalWidth() }

// ToPolar remaps the centered square [-1, 1]^2 (scaled by 1/sqrt(2) so the
// matrix diagonal equals the unit circle's diameter) into polar coordinates.
func (m MatrixSpec) ToPolar(pixelIndex uint16) (fixed.BoundedAngle, fixed.FracQ0_16) {
	mw, mh := m.logicalWidth(), m.logicalHeight()
	if mw == 0 || mh == 0 || pixelIndex >= mw*mh {
		return 0, 0
	}
	x := pixelIndex % mw
	y := pixelIndex / mw

	centeredX := int64(x)*2 - int64(mw-1)
	centeredY := int64(mh-1-y)*2 - int64(mh-1)

	denomX := int64(mw - 1)
	if denomX < 1 {
		denomX = 1
	}
	denomY := int64(mh - 1)
	if denomY < 1 {
		denomY = 1
	}

	xQ := centeredX * int64(fixed.SFracOne) / denomX
	yQ := centeredY * int64(fixed.SFracOne) / denomY

	scaledX := satMulQ0_16(xQ, diagonalScaleQ0_16)
	scaledY := satMulQ0_16(yQ, diagonalScaleQ0_16)

	// Demote the signed Q0.16 [-1, 1] coordinate into the same Q1.15-ish
	// magnitude (TrigQ1_15Max ~= 32767) that cartesian_to_polar expects.
	cartX := fixed.CartQ24_8(clampToInt16(scaledX >> 1))
	cartY := fixed.CartQ24_8(clampToInt16(scaledY >> 1))

	phase, radius := trig.CartesianToPolar(cartX, cartY)
	return fixed.PhaseToAngle(phase), radius
}

func satMulQ0_16(v, scale int64) int64 {
	return (v * scale) >> 16
}

func clampToInt16(v int64) int32 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int32(v)
}
