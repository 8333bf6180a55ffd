package trig

import "github.com/lixenwraith/polarshader/fixed"

// hash32 is a cheap integer hash (xorshift-style avalanche), used as the
// value-noise lattice generator. No floating point involved.
func hash32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x7feb352d
	x ^= x >> 15
	x *= 0x846ca68b
	x ^= x >> 16
	return x
}

func hash2D(x, y uint32) uint32 {
	return hash32(x*0x9E3779B1 ^ hash32(y*0x85EBCA77))
}

// lattice16 returns a hash reduced to the empirical [12000, 54000] band this
// sampler was calibrated against (see NormalizeNoise). A reimplementer
// swapping in a different noise kernel must recalibrate those constants by
// sampling their own function's output distribution.
func lattice16(h uint32) uint16 {
	return uint16(12000 + (h % 42001))
}

func smoothstepQ16(t uint16) uint16 {
	// 3t^2 - 2t^3 in Q0.16, computed with 64-bit intermediates.
	tt := uint64(t)
	t2 := (tt * tt) >> 16
	t3 := (t2 * tt) >> 16
	return uint16(fixed.ClampI32(int32(3*t2-2*t3), 0, 0xFFFF))
}

func lerpU16(a, b uint16, t uint16) uint16 {
	delta := int32(b) - int32(a)
	return uint16(int32(a) + ((delta * int32(t)) >> 16))
}

// Noise1D samples 1D value noise at a Q16.16 coordinate, returning the raw
// (unnormalized) lattice-interpolated value.
func Noise1D(x fixed.FracQ16_16) fixed.NoiseRawU16 {
	xi := uint32(int32(x)) >> 16
	xf := uint16(uint32(x) & 0xFFFF)
	a := lattice16(hash32(xi))
	b := lattice16(hash32(xi + 1))
	return fixed.NoiseRawU16(lerpU16(a, b, smoothstepQ16(xf)))
}

// noiseDomainOffset shifts negative input coordinates into the noise
// function's unsigned domain via wraparound, per spec.md 4.5's Source step.
const noiseDomainOffset = uint32(1) << 20

// Noise2D samples 2D value noise at unsigned Cartesian coordinates (already
// in the noise function's native domain; see noiseDomainOffset for how
// pipeline sources translate signed coordinates into it).
func Noise2D(x, y fixed.CartUQ24_8) fixed.NoiseRawU16 {
	xi := uint32(x) >> fixed.CartesianFracBits
	yi := uint32(y) >> fixed.CartesianFracBits
	xf := uint16((uint32(x) & 0xFF) << 8)
	yf := uint16((uint32(y) & 0xFF) << 8)

	h00 := lattice16(hash2D(xi, yi))
	h10 := lattice16(hash2D(xi+1, yi))
	h01 := lattice16(hash2D(xi, yi+1))
	h11 := lattice16(hash2D(xi+1, yi+1))

	top := lerpU16(h00, h10, smoothstepQ16(xf))
	bottom := lerpU16(h01, h11, smoothstepQ16(xf))
	return fixed.NoiseRawU16(lerpU16(top, bottom, smoothstepQ16(yf)))
}

// Noise2DOffset applies the fixed domain offset to signed coordinates and
// samples 2D noise, matching the Source pipeline step's wrap-into-positive
// behavior described in spec.md 4.5.
func Noise2DOffset(x, y fixed.CartQ24_8) fixed.NoiseRawU16 {
	ux := fixed.CartUQ24_8(uint32(int32(x)) + noiseDomainOffset)
	uy := fixed.CartUQ24_8(uint32(int32(y)) + noiseDomainOffset)
	return Noise2D(ux, uy)
}

// Calibration constants for this sampler's empirical output range; see
// NormalizeNoise.
const (
	noiseFloor = 12000
	noiseSpan  = 42000
)

// NormalizeNoise stretches this sampler's empirical [~12000, ~54000] range
// linearly onto the full 0..=0xFFFF band, clamping values outside it. A
// reimplementation swapping noise kernels must recalibrate noiseFloor and
// noiseSpan by measuring its own function's observed range.
func NormalizeNoise(v fixed.NoiseRawU16) fixed.PatternNormU16 {
	centered := int32(v) - noiseFloor
	scaled := (int64(centered) * 65535) / noiseSpan
	if scaled < 0 {
		scaled = 0
	}
	if scaled > 0xFFFF {
		scaled = 0xFFFF
	}
	return fixed.PatternNormU16(scaled)
}
