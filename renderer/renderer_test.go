package renderer

import (
	"testing"

	"github.com/lixenwraith/polarshader/display"
	"github.com/lixenwraith/polarshader/fixed"
	"github.com/lixenwraith/polarshader/palette"
	"github.com/lixenwraith/polarshader/pipeline"
	"github.com/lixenwraith/polarshader/scene"
)

func rainbow() palette.Palette {
	var entries [palette.Entries]fixed.RGB8
	for i := range entries {
		entries[i] = fixed.RGB8{R: uint8(i * 16), G: 0, B: 0}
	}
	return palette.New(entries)
}

func constScene() *scene.Scene {
	p := pipeline.New(func(x, y uint32) fixed.PatternNormU16 { return fixed.PatternNormU16(x) }, pipeline.ToPolarStep())
	layer := &scene.Layer{Pipeline: p, Palette: rainbow(), Context: pipeline.NewContext(), Alpha: fixed.FracQ0_16Max, Blend: palette.Normal}
	return scene.New(0, layer)
}

// 20: the renderer's output buffer length always equals the display spec's
// LED count, for both display geometries and across repeated frames.
func TestOutputBufferLengthMatchesNLeds(t *testing.T) {
	for _, spec := range []display.Spec{display.NewDiscSpec(), display.NewMatrixSpec(16, 16, 1)} {
		provider := scene.NewDefaultProvider(constScene)
		r := New(spec, scene.NewManager(provider))
		for _, t0 := range []fixed.TimeMillis{0, 33, 66, 10000} {
			out := r.Render(t0)
			if uint16(len(out)) != spec.NLeds() {
				t.Errorf("Render(%d) buffer length = %d, want %d", t0, len(out), spec.NLeds())
			}
		}
		if uint16(len(r.Output())) != spec.NLeds() {
			t.Errorf("Output() length = %d, want %d", len(r.Output()), spec.NLeds())
		}
	}
}

func TestDiscRendererOutputHas241Pixels(t *testing.T) {
	provider := scene.NewDefaultProvider(constScene)
	r := New(display.NewDiscSpec(), scene.NewManager(provider))
	out := r.Render(0)
	if len(out) != 241 {
		t.Fatalf("disc renderer output length = %d, want 241", len(out))
	}
}
