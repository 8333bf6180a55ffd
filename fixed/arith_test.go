package fixed

import "testing"

func TestScaleI32ByBoundedIdentity(t *testing.T) {
	vals := []int32{0, 1, -1, 1234, -1234, 1 << 20, -(1 << 20)}
	for _, v := range vals {
		got := ScaleI32ByBounded(v, FracQ0_16Max)
		if got != v {
			t.Errorf("ScaleI32ByBounded(%d, ONE) = %d, want %d", v, got, v)
		}
	}
}

func TestScaleI32ByBoundedSymmetricRounding(t *testing.T) {
	scales := []FracQ0_16{0, 1, 100, 0x8000, 0xFFFE}
	vals := []int32{0, 7, 1000, 123456}
	for _, s := range scales {
		for _, v := range vals {
			pos := ScaleI32ByBounded(v, s)
			neg := ScaleI32ByBounded(-v, s)
			if pos != -neg {
				t.Errorf("scale(%d,%d)=%d, scale(%d,%d)=%d: not symmetric", v, s, pos, -v, s, neg)
			}
		}
	}
}

func TestMulQ16_16WrapVsSat(t *testing.T) {
	a := SFracOne
	b := SFracOne
	sat := MulQ16_16Sat(a, b)
	if sat != SFracOne {
		t.Errorf("1.0 * 1.0 sat = %d, want %d", sat, SFracOne)
	}
	wrap := MulQ16_16Wrap(a, b)
	if wrap != sat {
		t.Errorf("in-range wrap and sat should agree: wrap=%d sat=%d", wrap, sat)
	}
}

func TestAddWrapQ16_16Wraps(t *testing.T) {
	got := AddWrapQ16_16(SFracQ0_16(1<<31-1), SFracQ0_16(1))
	want := SFracQ0_16(-1 << 31) // MaxInt32 + 1 wraps to MinInt32
	if got != want {
		t.Errorf("AddWrapQ16_16 overflow = %d, want %d", got, want)
	}
}

func TestSqrtU32(t *testing.T) {
	cases := map[uint32]uint32{
		0:    0,
		1:    1,
		4:    2,
		9:    3,
		1000: 31, // floor(sqrt(1000)) == 31
		65536: 256,
	}
	for in, want := range cases {
		got := SqrtU32(in)
		if got != want {
			t.Errorf("SqrtU32(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestFracConstructors(t *testing.T) {
	if Frac(1, 2) != FracQ0_16Max/2 && Frac(1, 2) != FracQ0_16Max/2+1 {
		t.Errorf("Frac(1,2) = %d, want ~half of %d", Frac(1, 2), FracQ0_16Max)
	}
	if PerMil(1000) != FracQ0_16Max {
		t.Errorf("PerMil(1000) = %d, want %d", PerMil(1000), FracQ0_16Max)
	}
	if PerMil(0) != 0 {
		t.Errorf("PerMil(0) = %d, want 0", PerMil(0))
	}
}

func TestAnglePromotionDemotionLossless(t *testing.T) {
	angles := []BoundedAngle{0, 1, 1000, AngleQuarter, AngleHalf, 0xFFFF}
	for _, a := range angles {
		got := PhaseToAngle(AngleToPhase(a))
		if got != a {
			t.Errorf("round trip angle %d -> %d", a, got)
		}
	}
}

func TestLerpQ16_16Bounds(t *testing.T) {
	a := FracQ16_16FromInt(0)
	b := FracQ16_16FromInt(10)
	if got := LerpQ16_16(a, b, 0); got != a {
		t.Errorf("Lerp at t=0 = %d, want %d", got, a)
	}
	if got := LerpQ16_16(a, b, FracQ16_16One); got != b {
		t.Errorf("Lerp at t=ONE = %d, want %d", got, b)
	}
}
