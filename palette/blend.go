package palette

import "github.com/lixenwraith/polarshader/fixed"

// BlendMode selects the per-channel compositing operation a Layer uses
// against the scene's accumulated base color. Grounded on the teacher's
// render.BlendMode/render/rgb.go functions, reworked from float64 alpha
// onto the renderer's integer RGB8/FracQ0_16 types (no floats on the
// render path).
type BlendMode uint8

const (
	Normal BlendMode = iota
	Add
	Multiply
	Screen
)

// fastDiv255 approximates x/255 with integer math, avoiding a division in
// the per-pixel compositing loop.
func fastDiv255(x int) int { return (x + (x >> 8) + 1) >> 8 }

func addChannel(a, b uint8) uint8 {
	sum := int(a) + int(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

// scaleChannel scales an 8-bit channel by an alpha fraction given as the
// upper byte of a Q0.16 value.
func scaleChannel(c uint8, alpha8 uint8) uint8 {
	return uint8(fastDiv255(int(c) * int(alpha8)))
}

// alphaBlendChannel is the standard 8-bit lerp: base*(1-a) + src*a.
func alphaBlendChannel(base, src, alpha8 uint8) uint8 {
	inv := 255 - int(alpha8)
	return uint8(fastDiv255(int(src)*int(alpha8) + int(base)*inv))
}

func multiplyChannel(base, src uint8) uint8 {
	return uint8(fastDiv255(int(base) * int(src)))
}

func screenChannel(base, src uint8) uint8 {
	return uint8(255 - fastDiv255((255-int(base))*(255-int(src))))
}

// Composite blends src over base under mode with alpha (Q0.16). A zero
// alpha always reproduces base unchanged (the layer is skipped).
func Composite(base, src fixed.RGB8, mode BlendMode, alpha fixed.FracQ0_16) fixed.RGB8 {
	if alpha == 0 {
		return base
	}
	alpha8 := uint8(uint16(alpha) >> 8)

	switch mode {
	case Add:
		return fixed.RGB8{
			R: addChannel(base.R, scaleChannel(src.R, alpha8)),
			G: addChannel(base.G, scaleChannel(src.G, alpha8)),
			B: addChannel(base.B, scaleChannel(src.B, alpha8)),
		}
	case Multiply:
		scaled := fixed.RGB8{
			R: scaleChannel(src.R, alpha8),
			G: scaleChannel(src.G, alpha8),
			B: scaleChannel(src.B, alpha8),
		}
		return fixed.RGB8{
			R: multiplyChannel(base.R, scaled.R),
			G: multiplyChannel(base.G, scaled.G),
			B: multiplyChannel(base.B, scaled.B),
		}
	case Screen:
		scaled := fixed.RGB8{
			R: scaleChannel(src.R, alpha8),
			G: scaleChannel(src.G, alpha8),
			B: scaleChannel(src.B, alpha8),
		}
		return fixed.RGB8{
			R: screenChannel(base.R, scaled.R),
			G: screenChannel(base.G, scaled.G),
			B: screenChannel(base.B, scaled.B),
		}
	default: // Normal
		return fixed.RGB8{
			R: alphaBlendChannel(base.R, src.R, alpha8),
			G: alphaBlendChannel(base.G, src.G, alpha8),
			B: alphaBlendChannel(base.B, src.B, alpha8),
		}
	}
}
