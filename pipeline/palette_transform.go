package pipeline

import (
	"github.com/lixenwraith/polarshader/fixed"
	"github.com/lixenwraith/polarshader/ranges"
	"github.com/lixenwraith/polarshader/signal"
)

// BrightnessMode selects whether PaletteTransform's optional clip envelope
// is applied: BrightnessNone disables it, while BrightnessClip and
// BrightnessFeather both apply it and behave identically.
type BrightnessMode uint8

const (
	BrightnessNone BrightnessMode = iota
	BrightnessClip
	BrightnessFeather
)

// paletteOffsetTransform writes Context.PaletteOffset each frame, mapped
// into [0, 255] from its offset signal. An optional clip signal and feather
// power produce a brightness envelope that further attenuates the offset
// written (e.g. to fade the palette index toward 0 at scene edges).
type paletteOffsetTransform struct {
	offset     ranges.MappedSignal[uint8]
	clip       ranges.MappedSignal[fixed.FracQ0_16]
	hasClip    bool
	clipPower  int
	mode       BrightnessMode
	ctx        *Context
}

// NewPaletteTransform builds a PaletteTransform writing context.PaletteOffset
// = mapped(offset) each frame.
func NewPaletteTransform(offset signal.Signal[fixed.SFracQ0_16], ctx *Context) *paletteOffsetTransform {
	return &paletteOffsetTransform{
		offset: ranges.NewMappedSignal[uint8](offset, ranges.NewPaletteRange()),
		ctx:    ctx,
	}
}

// WithClip adds a clip/feather brightness envelope, applied multiplicatively
// to the palette offset before it's written to Context.
func (p *paletteOffsetTransform) WithClip(clip signal.Signal[fixed.SFracQ0_16], power int, mode BrightnessMode) *paletteOffsetTransform {
	p.clip = ranges.NewMappedSignal[fixed.FracQ0_16](clip, ranges.NewFracQ0_16Range(0, 0xFFFF, ranges.UnsignedFromSigned))
	p.hasClip = true
	p.clipPower = power
	p.mode = mode
	return p
}

func (p *paletteOffsetTransform) AdvanceFrame(t fixed.TimeMillis) {
	offset := p.offset.Sample(t)
	if p.hasClip && p.mode != BrightnessNone {
		envelope := p.clip.Sample(t)
		for i := 1; i < p.clipPower; i++ {
			envelope = fixed.FracQ0_16((uint32(envelope) * uint32(envelope)) >> 16)
		}
		offset = uint8((uint32(offset) * uint32(envelope)) >> 16)
	}
	p.ctx.PaletteOffset = offset
}
