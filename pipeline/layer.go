package pipeline

import "github.com/lixenwraith/polarshader/fixed"

// CartesianLayer is a pure function from a Cartesian coordinate to a
// normalized pattern intensity.
type CartesianLayer func(x, y fixed.CartQ24_8) fixed.PatternNormU16

// PolarLayer is a pure function from a polar coordinate to a normalized
// pattern intensity.
type PolarLayer func(angle fixed.BoundedAngle, r fixed.FracQ0_16) fixed.PatternNormU16

// UVLayer is a pure function from a UV coordinate to a normalized pattern
// intensity.
type UVLayer func(u, v fixed.FracQ16_16) fixed.PatternNormU16

// ColourMap is the fully-built pipeline output: a pure function from a
// pixel's polar coordinate to a color. Safe to evaluate many times within a
// frame without further state change; all mutation happens in AdvanceFrame.
type ColourMap func(angle fixed.BoundedAngle, r fixed.FracQ0_16) fixed.RGB8

// blackColourMap is the well-known substitution used when Pipeline.Build
// encounters structural misuse: it never fails visibly, it goes black.
func blackColourMap(fixed.BoundedAngle, fixed.FracQ0_16) fixed.RGB8 {
	return fixed.RGB8Black
}

// NoiseFunc is the external noise source a Source step wraps: a pure
// fn(x, y) -> PatternNormU16 over unsigned coordinates.
type NoiseFunc func(x, y uint32) fixed.PatternNormU16

// noiseDomainOffset shifts a signed Cartesian coordinate into the noise
// function's unsigned domain via wraparound, so negative coordinates don't
// need special-casing in the noise kernel itself.
const noiseDomainOffset = uint32(1) << 20

func sourceLayer(noise NoiseFunc) CartesianLayer {
	return func(x, y fixed.CartQ24_8) fixed.PatternNormU16 {
		ux := uint32(int32(x)) + noiseDomainOffset
		uy := uint32(int32(y)) + noiseDomainOffset
		return noise(ux, uy)
	}
}
