package palette

import (
	"testing"

	"github.com/lixenwraith/polarshader/fixed"
)

func testPalette() Palette {
	var entries [Entries]fixed.RGB8
	for i := range entries {
		v := uint8(i * 16)
		entries[i] = fixed.RGB8{R: v, G: v, B: v}
	}
	return New(entries)
}

func TestLookupExactEntries(t *testing.T) {
	p := testPalette()
	for i := 0; i < Entries; i++ {
		got := p.Lookup(uint8(i * 16))
		want := uint8(i * 16)
		if got.R != want || got.G != want || got.B != want {
			t.Errorf("Lookup(%d) = %+v, want gray %d", i*16, got, want)
		}
	}
}

func TestLookupInterpolatesBetweenEntries(t *testing.T) {
	p := testPalette()
	mid := p.Lookup(8) // halfway between entry 0 (0) and entry 1 (16)
	if mid.R < 4 || mid.R > 12 {
		t.Errorf("Lookup(8) = %+v, want a mid-gray between 0 and 16", mid)
	}
}

func TestCompositeZeroAlphaIsNoop(t *testing.T) {
	base := fixed.RGB8{R: 10, G: 20, B: 30}
	src := fixed.RGB8{R: 200, G: 200, B: 200}
	got := Composite(base, src, Normal, 0)
	if got != base {
		t.Errorf("Composite with alpha=0 = %+v, want base %+v", got, base)
	}
}

func TestCompositeNormalFullAlphaIsSrc(t *testing.T) {
	base := fixed.RGB8{R: 10, G: 20, B: 30}
	src := fixed.RGB8{R: 200, G: 150, B: 100}
	got := Composite(base, src, Normal, fixed.FracQ0_16Max)
	if got.R < 195 || got.G < 145 || got.B < 95 {
		t.Errorf("Composite with full alpha = %+v, want ~src %+v", got, src)
	}
}

func TestCompositeAddSaturates(t *testing.T) {
	base := fixed.RGB8{R: 200, G: 200, B: 200}
	src := fixed.RGB8{R: 200, G: 200, B: 200}
	got := Composite(base, src, Add, fixed.FracQ0_16Max)
	if got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("Composite Add with saturating channels = %+v, want 255,255,255", got)
	}
}
