package ranges

import (
	"testing"

	"github.com/lixenwraith/polarshader/fixed"
)

func TestLinearRangeAutoMode(t *testing.T) {
	signedSpan := NewLinearRange(-100, 100, Auto)
	if signedSpan.mode.resolve(signedSpan.min) != SignedDirect {
		t.Errorf("Auto with min<0 should resolve to SignedDirect")
	}
	unsignedSpan := NewLinearRange(0, 100, Auto)
	if unsignedSpan.mode.resolve(unsignedSpan.min) != UnsignedFromSigned {
		t.Errorf("Auto with min>=0 should resolve to UnsignedFromSigned")
	}
}

func TestLinearRangeSignedDirectEndpoints(t *testing.T) {
	r := NewLinearRange(-100, 100, SignedDirect)
	if got := r.MapInt32(fixed.SFracMin); got != -100 {
		t.Errorf("MapInt32(SFracMin) = %d, want -100", got)
	}
	if got := r.MapInt32(fixed.SFracMax); got < 99 || got > 100 {
		t.Errorf("MapInt32(SFracMax) = %d, want ~100", got)
	}
	if got := r.MapInt32(0); got < -1 || got > 1 {
		t.Errorf("MapInt32(0) = %d, want ~0", got)
	}
}

func TestPolarRangeSeamWrap(t *testing.T) {
	// min > max selects the short arc through the 0/1 seam.
	r := NewPolarRange(0xF000, 0x1000)
	atMin := r.Map(fixed.SFracMin)
	atMax := r.Map(fixed.SFracMax)
	if atMin != 0xF000 {
		t.Errorf("PolarRange at t=0 = %d, want 0xF000", atMin)
	}
	if atMax != 0x1000 {
		t.Errorf("PolarRange at t=1 = %d, want 0x1000", atMax)
	}
	// t=0.5 must cross the seam forward (0xF000 -> 0x0000 -> 0x1000), not
	// take the long way back through 0x8000.
	atMid := r.Map(0)
	if atMid != 0x0000 {
		t.Errorf("PolarRange at t=0.5 = %#x, want seam midpoint 0x0000", atMid)
	}
}

func TestPaletteRangeClampsToByte(t *testing.T) {
	r := NewPaletteRange()
	if got := r.Map(fixed.SFracMin); got != 255 && got != 0 {
		t.Errorf("PaletteRange endpoint out of [0,255]: %d", got)
	}
	if got := r.Map(fixed.SFracMax); got > 255 {
		t.Errorf("PaletteRange(max) = %d exceeds byte range", got)
	}
}

func TestZoomRangeBounds(t *testing.T) {
	r := NewZoomRange()
	lo := r.Map(0)
	hi := r.Map(fixed.SFracMax)
	if lo < ZoomMin || lo > ZoomMax {
		t.Errorf("ZoomRange(0) = %d out of bounds", lo)
	}
	if hi != ZoomMax {
		t.Errorf("ZoomRange(max) = %d, want %d", hi, ZoomMax)
	}
}
