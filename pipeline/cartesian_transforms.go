package pipeline

import (
	"github.com/lixenwraith/polarshader/fixed"
	"github.com/lixenwraith/polarshader/ranges"
	"github.com/lixenwraith/polarshader/signal"
	"github.com/lixenwraith/polarshader/trig"
)

// TilingTransform wraps x (and/or y) into [0, tileX) / [0, tileY), signed
// safe: negative inputs wrap up rather than truncating toward zero. A zero
// tile size leaves that axis unchanged.
type TilingTransform struct {
	tileX, tileY fixed.CartQ24_8
}

func NewTilingTransform(tileX, tileY fixed.CartQ24_8) *TilingTransform {
	return &TilingTransform{tileX: tileX, tileY: tileY}
}

func (*TilingTransform) AdvanceFrame(fixed.TimeMillis) {}

func (t *TilingTransform) ApplyCartesian(inner CartesianLayer) CartesianLayer {
	return func(x, y fixed.CartQ24_8) fixed.PatternNormU16 {
		return inner(wrapTile(x, t.tileX), wrapTile(y, t.tileY))
	}
}

func wrapTile(v, tile fixed.CartQ24_8) fixed.CartQ24_8 {
	if tile == 0 {
		return v
	}
	m := int32(v) % int32(tile)
	if m < 0 {
		m += int32(tile)
	}
	return fixed.CartQ24_8(m)
}

// MirrorTransform folds an axis onto its positive half when enabled.
// math.MinInt32 saturates to math.MaxInt32 rather than overflowing on
// negation.
type MirrorTransform struct {
	mx, my bool
}

func NewMirrorTransform(mx, my bool) *MirrorTransform { return &MirrorTransform{mx: mx, my: my} }

func (*MirrorTransform) AdvanceFrame(fixed.TimeMillis) {}

func (m *MirrorTransform) ApplyCartesian(inner CartesianLayer) CartesianLayer {
	return func(x, y fixed.CartQ24_8) fixed.PatternNormU16 {
		if m.mx {
			x = absCart(x)
		}
		if m.my {
			y = absCart(y)
		}
		return inner(x, y)
	}
}

func absCart(v fixed.CartQ24_8) fixed.CartQ24_8 {
	if int32(v) == -1<<31 {
		return 1<<31 - 1
	}
	if int32(v) < 0 {
		return -v
	}
	return v
}

// ShearTransform applies a Q16.16 shear: x' = x + kx*y, y' = y + ky*x,
// wrapping on overflow.
type ShearTransform struct {
	kx, ky fixed.FracQ16_16
}

func NewShearTransform(kx, ky fixed.FracQ16_16) *ShearTransform {
	return &ShearTransform{kx: kx, ky: ky}
}

func (*ShearTransform) AdvanceFrame(fixed.TimeMillis) {}

func (s *ShearTransform) ApplyCartesian(inner CartesianLayer) CartesianLayer {
	return func(x, y fixed.CartQ24_8) fixed.PatternNormU16 {
		xp := fixed.CartQ24_8(uint32(int32(x)) + uint32((int64(s.kx)*int64(y))>>16))
		yp := fixed.CartQ24_8(uint32(int32(y)) + uint32((int64(s.ky)*int64(x))>>16))
		return inner(xp, yp)
	}
}

// BendTransform applies a quadratic warp: x' = x + kx*y^2, y' = y + ky*x^2.
// Squaring is done in a 64-bit intermediate clamped before the final
// multiply to avoid undefined overflow behavior.
type BendTransform struct {
	kx, ky fixed.FracQ16_16
}

func NewBendTransform(kx, ky fixed.FracQ16_16) *BendTransform {
	return &BendTransform{kx: kx, ky: ky}
}

func (*BendTransform) AdvanceFrame(fixed.TimeMillis) {}

func (b *BendTransform) ApplyCartesian(inner CartesianLayer) CartesianLayer {
	return func(x, y fixed.CartQ24_8) fixed.PatternNormU16 {
		y2 := clampSquare(int64(y))
		x2 := clampSquare(int64(x))
		xp := fixed.CartQ24_8(int32(x) + int32((int64(b.kx)*y2)>>(16+fixed.CartesianFracBits)))
		yp := fixed.CartQ24_8(int32(y) + int32((int64(b.ky)*x2)>>(16+fixed.CartesianFracBits)))
		return inner(xp, yp)
	}
}

func clampSquare(v int64) int64 {
	const limit = 1 << 30
	if v > limit {
		v = limit
	}
	if v < -limit {
		v = -limit
	}
	return v * v
}

// AnisotropicScaleTransform scales (x, y) independently by Q16.16 factors,
// wrapping on overflow.
type AnisotropicScaleTransform struct {
	sx, sy fixed.FracQ16_16
}

func NewAnisotropicScaleTransform(sx, sy fixed.FracQ16_16) *AnisotropicScaleTransform {
	return &AnisotropicScaleTransform{sx: sx, sy: sy}
}

func (*AnisotropicScaleTransform) AdvanceFrame(fixed.TimeMillis) {}

func (a *AnisotropicScaleTransform) ApplyCartesian(inner CartesianLayer) CartesianLayer {
	return func(x, y fixed.CartQ24_8) fixed.PatternNormU16 {
		xp := fixed.CartQ24_8(uint32((int64(x) * int64(a.sx)) >> 16))
		yp := fixed.CartQ24_8(uint32((int64(y) * int64(a.sy)) >> 16))
		return inner(xp, yp)
	}
}

// PerspectiveWarpTransform divides (x, y) by (1 + k*y), clamping the
// denominator away from zero.
type PerspectiveWarpTransform struct {
	k fixed.FracQ16_16
}

func NewPerspectiveWarpTransform(k fixed.FracQ16_16) *PerspectiveWarpTransform {
	return &PerspectiveWarpTransform{k: k}
}

func (*PerspectiveWarpTransform) AdvanceFrame(fixed.TimeMillis) {}

// denomEpsilon is the smallest magnitude the denominator is allowed to
// collapse to, per the division-by-zero handling in the error model.
const denomEpsilon = 64

func (p *PerspectiveWarpTransform) ApplyCartesian(inner CartesianLayer) CartesianLayer {
	return func(x, y fixed.CartQ24_8) fixed.PatternNormU16 {
		denom := int64(fixed.FracQ16_16One) + (int64(p.k)*int64(y))>>fixed.CartesianFracBits
		if denom >= 0 && denom < denomEpsilon {
			denom = denomEpsilon
		}
		if denom < 0 && denom > -denomEpsilon {
			denom = -denomEpsilon
		}
		xp := fixed.CartQ24_8((int64(x) << 16) / denom)
		yp := fixed.CartQ24_8((int64(y) << 16) / denom)
		return inner(xp, yp)
	}
}

// NoiseWarpTransform offsets (x, y) by the noise value itself (centered
// around the midpoint), scaled by kx/ky.
type NoiseWarpTransform struct {
	kx, ky fixed.FracQ16_16
}

func NewNoiseWarpTransform(kx, ky fixed.FracQ16_16) *NoiseWarpTransform {
	return &NoiseWarpTransform{kx: kx, ky: ky}
}

func (*NoiseWarpTransform) AdvanceFrame(fixed.TimeMillis) {}

func (n *NoiseWarpTransform) ApplyCartesian(inner CartesianLayer) CartesianLayer {
	return func(x, y fixed.CartQ24_8) fixed.PatternNormU16 {
		raw := trig.Noise2DOffset(x, y)
		centered := int64(trig.NormalizeNoise(raw)) - 0x8000
		ox := fixed.CartQ24_8((centered * int64(n.kx)) >> (16 + 8))
		oy := fixed.CartQ24_8((centered * int64(n.ky)) >> (16 + 8))
		return inner(x+ox, y+oy)
	}
}

// TileJitterTransform floor-divides into a tile grid, hashes the tile
// index via noise, and offsets within the tile by the hashed jitter.
type TileJitterTransform struct {
	tileX, tileY fixed.CartQ24_8
	amplitude    ranges.MappedSignal[fixed.FracQ0_16]
	currentAmp   fixed.FracQ0_16
}

func NewTileJitterTransform(tileX, tileY fixed.CartQ24_8, amplitude signal.Signal[fixed.SFracQ0_16]) *TileJitterTransform {
	return &TileJitterTransform{
		tileX: tileX, tileY: tileY,
		amplitude: ranges.NewMappedSignal[fixed.FracQ0_16](amplitude, ranges.NewFracQ0_16Range(0, 0xFFFF, ranges.UnsignedFromSigned)),
	}
}

func (j *TileJitterTransform) AdvanceFrame(t fixed.TimeMillis) {
	j.currentAmp = j.amplitude.Sample(t)
}

func (j *TileJitterTransform) ApplyCartesian(inner CartesianLayer) CartesianLayer {
	return func(x, y fixed.CartQ24_8) fixed.PatternNormU16 {
		ix := floorDiv(int32(x), int32(j.tileX))
		iy := floorDiv(int32(y), int32(j.tileY))
		n := trig.Noise2D(fixed.CartUQ24_8(uint32(ix)), fixed.CartUQ24_8(uint32(iy)))
		jx := int32(trig.NormalizeNoise(n)) - 0x8000
		n2 := trig.Noise2D(fixed.CartUQ24_8(uint32(ix+1)), fixed.CartUQ24_8(uint32(iy+1)))
		jy := int32(trig.NormalizeNoise(n2)) - 0x8000
		amp := int64(j.currentAmp)
		ox := fixed.CartQ24_8((int64(jx) * amp) >> (16 + 15))
		oy := fixed.CartQ24_8((int64(jy) * amp) >> (16 + 15))
		return inner(x+ox, y+oy)
	}
}

func floorDiv(v, div int32) int32 {
	if div == 0 {
		return v
	}
	q := v / div
	if (v%div != 0) && ((v < 0) != (div < 0)) {
		q--
	}
	return q
}

// CurlFlowTransform approximates the curl of a noise field for
// divergence-free advection: the displacement at (x, y) is derived from
// the noise field's finite-difference gradient, rotated 90 degrees.
type CurlFlowTransform struct {
	amplitude   fixed.FracQ16_16
	sampleShift fixed.CartQ24_8
}

func NewCurlFlowTransform(amplitude fixed.FracQ16_16, sampleShift fixed.CartQ24_8) *CurlFlowTransform {
	return &CurlFlowTransform{amplitude: amplitude, sampleShift: sampleShift}
}

func (*CurlFlowTransform) AdvanceFrame(fixed.TimeMillis) {}

func (c *CurlFlowTransform) ApplyCartesian(inner CartesianLayer) CartesianLayer {
	return func(x, y fixed.CartQ24_8) fixed.PatternNormU16 {
		n1 := trig.Noise2DOffset(x, y+c.sampleShift)
		n2 := trig.Noise2DOffset(x, y-c.sampleShift)
		n3 := trig.Noise2DOffset(x+c.sampleShift, y)
		n4 := trig.Noise2DOffset(x-c.sampleShift, y)
		dNdy := int64(trig.NormalizeNoise(n1)) - int64(trig.NormalizeNoise(n2))
		dNdx := int64(trig.NormalizeNoise(n3)) - int64(trig.NormalizeNoise(n4))
		// Curl of a scalar field in 2D: (dN/dy, -dN/dx).
		ox := fixed.CartQ24_8((dNdy * int64(c.amplitude)) >> (16 + 8))
		oy := fixed.CartQ24_8((-dNdx * int64(c.amplitude)) >> (16 + 8))
		return inner(x+ox, y+oy)
	}
}
