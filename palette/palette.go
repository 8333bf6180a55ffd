// Package palette implements the 16-entry RGB lookup table the pipeline's
// final stage samples, its blend-mode compositing arithmetic, and a
// perceptual-space authoring helper built on go-colorful. Authoring runs
// once at scene-construction time; the lookup itself is pure integer math
// suitable for the per-pixel render path.
package palette

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/polarshader/fixed"
)

const Entries = 16

// Palette is a fixed-size RGB lookup table. Lookup interpolates linearly
// between adjacent entries using the low 4 bits of an 8-bit index.
type Palette struct {
	entries [Entries]fixed.RGB8
}

// New builds a Palette from exactly Entries colors.
func New(colors [Entries]fixed.RGB8) Palette {
	return Palette{entries: colors}
}

// Lookup samples the palette at an 8-bit index, blending linearly between
// the two entries it falls between.
func (p Palette) Lookup(index uint8) fixed.RGB8 {
	i0 := index >> 4
	frac := index & 0x0F
	i1 := (i0 + 1) % Entries
	a, b := p.entries[i0], p.entries[i1]
	return fixed.RGB8{
		R: lerp8(a.R, b.R, frac),
		G: lerp8(a.G, b.G, frac),
		B: lerp8(a.B, b.B, frac),
	}
}

func lerp8(a, b uint8, frac uint8) uint8 {
	delta := int(b) - int(a)
	return uint8(int(a) + (delta*int(frac))/16)
}

// Rainbow authors a 16-entry palette by sweeping hue through a full turn in
// the perceptually-uniform HSLuv space, then converting to 8-bit sRGB. This
// runs once, at scene setup, never on the per-pixel path.
func Rainbow(saturation, lightness float64) Palette {
	var out [Entries]fixed.RGB8
	for i := 0; i < Entries; i++ {
		hue := 360.0 * float64(i) / float64(Entries)
		c := colorful.Hsluv(hue, saturation, lightness)
		r, g, b := c.Clamped().RGB255()
		out[i] = fixed.RGB8{R: r, G: g, B: b}
	}
	return New(out)
}

// FromStops authors a palette by interpolating perceptually (Lab space)
// between an arbitrary number of color stops spaced evenly around the
// table, wrapping back to the first stop.
func FromStops(stops []colorful.Color) Palette {
	var out [Entries]fixed.RGB8
	n := len(stops)
	if n == 0 {
		return Palette{}
	}
	for i := 0; i < Entries; i++ {
		pos := float64(i) / float64(Entries) * float64(n)
		i0 := int(pos) % n
		i1 := (i0 + 1) % n
		t := pos - float64(int(pos))
		c := stops[i0].BlendLab(stops[i1], t).Clamped()
		r, g, b := c.RGB255()
		out[i] = fixed.RGB8{R: r, G: g, B: b}
	}
	return New(out)
}
