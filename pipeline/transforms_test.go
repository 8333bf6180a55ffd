package pipeline

import (
	"testing"

	"github.com/lixenwraith/polarshader/fixed"
)

func recordingCartesianLayer() (CartesianLayer, *[]fixed.CartQ24_8) {
	var calls []fixed.CartQ24_8
	layer := func(x, y fixed.CartQ24_8) fixed.PatternNormU16 {
		calls = append(calls, x, y)
		return fixed.PatternNormU16(uint16(x) ^ uint16(y))
	}
	return layer, &calls
}

func TestZoomScaleOneIsIdentity(t *testing.T) {
	inner, _ := recordingCartesianLayer()
	zt := &ZoomTransform{smoothed: fixed.FracQ16_16One}
	wrapped := zt.ApplyCartesian(inner)
	for _, coord := range []fixed.CartQ24_8{0, 100, -500, 12345} {
		got := wrapped(coord, coord)
		want := inner(coord, coord)
		if got != want {
			t.Errorf("Zoom(1.0) not identity at %d: got %d want %d", coord, got, want)
		}
	}
}

func TestRotationZeroIsIdentity(t *testing.T) {
	inner := func(angle fixed.BoundedAngle, r fixed.FracQ0_16) fixed.PatternNormU16 {
		return fixed.PatternNormU16(uint16(angle) ^ uint16(r))
	}
	rt := &RotationTransform{current: 0}
	wrapped := rt.ApplyPolar(inner)
	for _, a := range []fixed.BoundedAngle{0, 1000, 0x8000, 0xFFFF} {
		if got, want := wrapped(a, 1000), inner(a, 1000); got != want {
			t.Errorf("Rotation(0) not identity at angle %d: got %d want %d", a, got, want)
		}
	}
}

func TestKaleidoscopeFacetsOneIsIdentity(t *testing.T) {
	inner := func(angle fixed.BoundedAngle, r fixed.FracQ0_16) fixed.PatternNormU16 {
		return fixed.PatternNormU16(angle)
	}
	k := NewKaleidoscopeTransform(1, false)
	wrapped := k.ApplyPolar(inner)
	for _, a := range []fixed.BoundedAngle{0, 1234, 0x8000, 0xFFFF} {
		if got, want := wrapped(a, 0), inner(a, 0); got != want {
			t.Errorf("Kaleidoscope(1,false) not identity at %d: got %d want %d", a, got, want)
		}
	}
}

func TestKaleidoscopePeriodicWithoutMirror(t *testing.T) {
	inner := func(angle fixed.BoundedAngle, r fixed.FracQ0_16) fixed.PatternNormU16 {
		return fixed.PatternNormU16(angle)
	}
	const facets = 4
	k := NewKaleidoscopeTransform(facets, false)
	wrapped := k.ApplyPolar(inner)
	period := uint32(0x10000) / facets
	for base := uint32(0); base < period; base += 997 {
		a0 := wrapped(fixed.BoundedAngle(base), 0)
		a1 := wrapped(fixed.BoundedAngle(base+period), 0)
		if a0 != a1 {
			t.Errorf("Kaleidoscope(4,false) not periodic at %d: %d != %d", base, a0, a1)
		}
	}
}

func TestKaleidoscopeMirrorSymmetric(t *testing.T) {
	inner := func(angle fixed.BoundedAngle, r fixed.FracQ0_16) fixed.PatternNormU16 {
		return fixed.PatternNormU16(angle)
	}
	const facets = 4
	k := NewKaleidoscopeTransform(facets, true)
	wrapped := k.ApplyPolar(inner)
	segment := uint32(0x10000) / facets
	for within := uint32(0); within < segment; within += 503 {
		a := wrapped(fixed.BoundedAngle(within), 0)
		mirrored := wrapped(fixed.BoundedAngle(segment+within), 0)
		expectedMirror := fixed.PatternNormU16(segment - 1 - within)
		if mirrored != expectedMirror {
			t.Errorf("Kaleidoscope mirror at wedge 1, within=%d: got %d, want %d", within, mirrored, expectedMirror)
		}
		_ = a
	}
}

func TestTilingPeriodicBothAxes(t *testing.T) {
	inner, _ := recordingCartesianLayer()
	const T = fixed.CartQ24_8(2560) // 10.0 in Q24.8
	tiling := NewTilingTransform(T, T)
	wrapped := tiling.ApplyCartesian(inner)
	for _, x := range []fixed.CartQ24_8{0, 100, 2000, -500} {
		a := wrapped(x, 0)
		b := wrapped(x+T, 0)
		if a != b {
			t.Errorf("Tiling not periodic in x at %d: %d != %d", x, a, b)
		}
		c := wrapped(0, x)
		d := wrapped(0, x+T)
		if c != d {
			t.Errorf("Tiling not periodic in y at %d: %d != %d", x, c, d)
		}
	}
}

func TestTilingNegativeWrapsIntoRange(t *testing.T) {
	const T = fixed.CartQ24_8(2560)
	got := wrapTile(-100, T)
	if got < 0 || got >= T {
		t.Errorf("wrapTile(-100, %d) = %d, want in [0, %d)", T, got, T)
	}
}
