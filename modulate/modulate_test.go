package modulate

import (
	"testing"

	"github.com/lixenwraith/polarshader/fixed"
	"github.com/lixenwraith/polarshader/ranges"
	"github.com/lixenwraith/polarshader/signal"
)

func constSpeedHz(hz float64) ranges.MappedSignal[fixed.FracQ16_16] {
	s := signal.Constant(fixed.SFracMax)
	return ranges.NewMappedSignal[fixed.FracQ16_16](s, constRange{v: fixed.FracQ16_16(hz * 65536)})
}

type constRange struct{ v fixed.FracQ16_16 }

func (c constRange) Map(fixed.SFracQ0_16) fixed.FracQ16_16 { return c.v }

func TestPhaseAccumulatorFirstCallRecordsOnly(t *testing.T) {
	acc := NewPhaseAccumulator(constSpeedHz(1.0))
	if got := acc.Advance(1000); got != 0 {
		t.Errorf("first Advance() = %d, want 0 (no integration before a prior sample)", got)
	}
}

func TestPhaseAccumulatorSameTimeIdempotent(t *testing.T) {
	acc := NewPhaseAccumulator(constSpeedHz(1.0))
	acc.Advance(0)
	a := acc.Advance(500)
	b := acc.Advance(500)
	if a != b {
		t.Errorf("resampling at the same t changed phase: %d != %d", a, b)
	}
}

func TestPhaseAccumulatorClampStability(t *testing.T) {
	fine := NewPhaseAccumulator(constSpeedHz(1.0))
	coarse := NewPhaseAccumulator(constSpeedHz(1.0))

	fine.Advance(0)
	var finePhase fixed.UnboundedAngle
	for tm := fixed.TimeMillis(5); tm <= 1000; tm += 5 {
		finePhase = fine.Advance(tm)
	}

	coarse.Advance(0)
	coarsePhase := coarse.Advance(1000)

	// The single 1000ms jump clamps to 200ms of integration, so it must
	// diverge sharply from the finely-stepped accumulation of the same
	// wall-clock interval (testable property 12, observed at the public
	// modulate.PhaseAccumulator rather than the internal waveform driver).
	diff := int64(finePhase) - int64(coarsePhase)
	if diff < 0 {
		diff = -diff
	}
	if diff < int64(fixed.SFracOne) {
		t.Errorf("expected clamped jump to diverge from fine accumulation: fine=%d coarse=%d", finePhase, coarsePhase)
	}
}

func TestAngularModulatorStaysBounded(t *testing.T) {
	acc := NewPhaseAccumulator(constSpeedHz(10.0))
	mod := NewAngularModulator(acc, 0)
	mod.Advance(0)
	for tm := fixed.TimeMillis(10); tm <= 5000; tm += 10 {
		a := mod.Advance(tm)
		_ = a // BoundedAngle is a uint16; any value is in [0, 1) turns by construction.
	}
}

func TestScalarMotionTracksSignal(t *testing.T) {
	s := signal.Constant(fixed.SFracMax)
	ms := ranges.NewMappedSignal[fixed.SFracQ0_16](s, identityRange{})
	sm := NewScalarMotion(ms)
	if got := sm.Advance(0); got != fixed.SFracMax {
		t.Errorf("ScalarMotion.Advance = %d, want %d", got, fixed.SFracMax)
	}
	if got := sm.Current(); got != fixed.SFracMax {
		t.Errorf("ScalarMotion.Current = %d, want %d", got, fixed.SFracMax)
	}
}

type identityRange struct{}

func (identityRange) Map(v fixed.SFracQ0_16) fixed.SFracQ0_16 { return v }
