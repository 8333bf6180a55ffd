// Package fixed implements the strong Q-format numeric types the shader
// pipeline is built on. Every type wraps a primitive integer; arithmetic
// between mismatched types is not defined by the Go type system and must go
// through the named helpers in arith.go.
package fixed

// FracQ0_16 is an unsigned fraction in [0, 1), used for angles (wrapping at
// 2^16), alpha values and unsigned scale factors.
type FracQ0_16 uint16

// FracQ0_16Max is the largest representable value, just under 1.0.
const FracQ0_16Max FracQ0_16 = 0xFFFF

// FracQ0_16One is the raw value most call sites treat as "1.0" for scaling
// purposes; it saturates scale_i32_by_bounded's fast path.
const FracQ0_16One FracQ0_16 = 0xFFFF

// Frac builds a FracQ0_16 from a rational numerator/denominator without
// floating point, clamping to FracQ0_16Max on overflow.
func Frac(numerator, denominator uint32) FracQ0_16 {
	if numerator == 0 || denominator == 0 {
		return 0
	}
	raw := (uint64(FracQ0_16Max) * uint64(numerator)) / uint64(denominator)
	if raw > uint64(FracQ0_16Max) {
		raw = uint64(FracQ0_16Max)
	}
	return FracQ0_16(raw)
}

// PerMil builds a FracQ0_16 equal to n/1000.
func PerMil(n uint16) FracQ0_16 {
	if n == 0 {
		return 0
	}
	raw := (uint64(FracQ0_16Max) * uint64(n)) / 1000
	if raw > uint64(FracQ0_16Max) {
		raw = uint64(FracQ0_16Max)
	}
	return FracQ0_16(raw)
}

func (f FracQ0_16) Raw() uint16 { return uint16(f) }

// SFracQ0_16 is the canonical signed signal value, nominally in [-1, 1].
// Stored with 16 fractional bits; ONE = 65536. Intermediate arithmetic may
// exceed the nominal range before a saturating clamp is applied.
type SFracQ0_16 int32

const (
	SFracOne SFracQ0_16 = 1 << 16
	SFracMin SFracQ0_16 = -SFracOne
	SFracMax SFracQ0_16 = SFracOne
)

func SFracFromRaw(raw int32) SFracQ0_16 { return SFracQ0_16(raw) }
func (s SFracQ0_16) Raw() int32         { return int32(s) }

// SFrac builds an SFracQ0_16 from a rational numerator/denominator,
// clamping to SFracOne on overflow.
func SFrac(numerator, denominator uint32) SFracQ0_16 {
	if numerator == 0 || denominator == 0 {
		return 0
	}
	raw := (uint64(SFracOne) * uint64(numerator)) / uint64(denominator)
	if raw > uint64(SFracOne) {
		raw = uint64(SFracOne)
	}
	return SFracQ0_16(raw)
}

// FracQ16_16 is a signed Q16.16 value used for UV coordinates that may tile
// or zoom past the unit range.
type FracQ16_16 int32

const FracQ16_16One FracQ16_16 = 1 << 16

func FracQ16_16FromRaw(raw int32) FracQ16_16 { return FracQ16_16(raw) }
func (f FracQ16_16) Raw() int32              { return int32(f) }
func FracQ16_16FromInt(i int) FracQ16_16     { return FracQ16_16(int32(i) << 16) }

// BoundedAngle is an angle expressed in turns, Q0.16, wrapping at 2^16
// (one full turn).
type BoundedAngle uint16

const (
	AngleZero    BoundedAngle = 0
	AngleQuarter BoundedAngle = 1 << 14
	AngleHalf    BoundedAngle = 1 << 15
)

func (a BoundedAngle) Raw() uint16 { return uint16(a) }

// UnboundedAngle is a phase accumulator value, Q16.16 turns, wrapping at
// 2^32. The high 16 bits are a BoundedAngle.
type UnboundedAngle uint32

func (p UnboundedAngle) Raw() uint32 { return uint32(p) }

// AngleToPhase promotes a BoundedAngle to an UnboundedAngle phase by
// left-shifting into the high 16 bits. This is the only defined promotion.
func AngleToPhase(a BoundedAngle) UnboundedAngle {
	return UnboundedAngle(uint32(a) << 16)
}

// PhaseToAngle demotes an UnboundedAngle phase to a BoundedAngle by taking
// the high 16 bits. This is the only defined demotion.
func PhaseToAngle(p UnboundedAngle) BoundedAngle {
	return BoundedAngle(uint32(p) >> 16)
}

// TrigQ1_15 is the output range of sin/cos: signed, one integer bit, 15
// fractional bits, spanning [-1, 1].
type TrigQ1_15 int16

const TrigQ1_15Max TrigQ1_15 = 32767

func (t TrigQ1_15) Raw() int16 { return int16(t) }

// CartQ24_8 is a Cartesian coordinate: 24 integer bits, 8 fractional bits.
type CartQ24_8 int32

const CartesianFracBits = 8

func CartQ24_8FromInt(i int) CartQ24_8 { return CartQ24_8(int32(i) << CartesianFracBits) }
func (c CartQ24_8) Raw() int32         { return int32(c) }

// CartUQ24_8 is the unsigned counterpart used when sampling noise, defined
// modulo 2^32.
type CartUQ24_8 uint32

func (c CartUQ24_8) Raw() uint32 { return uint32(c) }

// NoiseRawU16 is the raw output of the value-noise sampler, before
// normalization.
type NoiseRawU16 uint16

// PatternNormU16 is normalized pattern intensity spanning the full 0..0xFFFF
// range after NormalizeNoise.
type PatternNormU16 uint16

// TimeMillis is a monotonic wall-clock timestamp in milliseconds since boot.
// Wrap is accepted if unavoidable; all deltas are computed as two's
// complement differences.
type TimeMillis uint32

// UV is a 2D spatial coordinate used for pattern evaluation in UV space.
type UV struct {
	U, V FracQ16_16
}

// RGB8 is a final 8-bit-per-channel color, the renderer's output unit.
type RGB8 struct {
	R, G, B uint8
}

var RGB8Black = RGB8{}
