package pipeline

import (
	"testing"

	"github.com/lixenwraith/polarshader/fixed"
	"github.com/lixenwraith/polarshader/ranges"
	"github.com/lixenwraith/polarshader/signal"
)

func TestZoomFloorAnchorMapsLowToHigh(t *testing.T) {
	z := NewZoomTransform(signal.Constant(0), NewContext())
	z.AdvanceFrame(0) // first call just seeds smoothed at target
	if z.smoothed != ranges.ZoomMin {
		t.Errorf("Floor anchor at input 0 = %d, want ZoomMin %d", z.smoothed, ranges.ZoomMin)
	}

	zHigh := NewZoomTransform(signal.Constant(fixed.SFracOne), NewContext())
	zHigh.AdvanceFrame(0)
	if zHigh.smoothed != ranges.ZoomMax {
		t.Errorf("Floor anchor at input max = %d, want ZoomMax %d", zHigh.smoothed, ranges.ZoomMax)
	}
}

func TestZoomCeilingAnchorInvertsMapping(t *testing.T) {
	z := NewZoomTransform(signal.Constant(0), NewContext()).WithAnchor(ZoomCeiling)
	z.AdvanceFrame(0)
	if z.smoothed != ranges.ZoomMax {
		t.Errorf("Ceiling anchor at input 0 = %d, want ZoomMax %d", z.smoothed, ranges.ZoomMax)
	}

	zHigh := NewZoomTransform(signal.Constant(fixed.SFracOne), NewContext()).WithAnchor(ZoomCeiling)
	zHigh.AdvanceFrame(0)
	if zHigh.smoothed != ranges.ZoomMin {
		t.Errorf("Ceiling anchor at input max = %d, want ZoomMin %d", zHigh.smoothed, ranges.ZoomMin)
	}
}
