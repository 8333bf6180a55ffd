// Package modulate implements the stateful per-frame accumulators that
// drive transform parameters: phase accumulators, angular and linear motion
// integrators, and a plain scalar re-sampler. All of them share the same
// delta-time clamping discipline (MaxDeltaTimeMs) so that a stalled render
// loop degrades gracefully instead of teleporting the animation forward.
package modulate

import (
	"github.com/lixenwraith/polarshader/fixed"
	"github.com/lixenwraith/polarshader/ranges"
)

// MaxDeltaTimeMs bounds how much wall-clock time a single advance() call may
// integrate, both forward and backward. Sized to absorb a dropped frame or
// two at ~30ms/frame without a visible jump; set to 0 to disable.
const MaxDeltaTimeMs fixed.TimeMillis = 200

// clampDelta clamps a signed millisecond delta to ±MaxDeltaTimeMs.
func clampDelta(dt int64) int64 {
	if MaxDeltaTimeMs == 0 {
		return dt
	}
	max := int64(MaxDeltaTimeMs)
	if dt > max {
		return max
	}
	if dt < -max {
		return -max
	}
	return dt
}

// PhaseAccumulator holds a Q16.16-turn phase driven by a MappedSignal whose
// value is interpreted as turns-per-second. Grounded on
// original_source/pipeline/signals/Fluctuation.h's PhaseAccumulator.
type PhaseAccumulator struct {
	phase    fixed.UnboundedAngle
	lastTime fixed.TimeMillis
	started  bool
	speed    ranges.MappedSignal[fixed.FracQ16_16]
}

// NewPhaseAccumulator builds a PhaseAccumulator driven by speed, a
// turns-per-second signal.
func NewPhaseAccumulator(speed ranges.MappedSignal[fixed.FracQ16_16]) *PhaseAccumulator {
	return &PhaseAccumulator{speed: speed}
}

// Advance integrates the accumulator to t and returns the resulting phase.
// The first call records t without integrating (there is no prior sample to
// integrate from). A zero delta is a documented no-op, making same-time
// resampling idempotent.
func (p *PhaseAccumulator) Advance(t fixed.TimeMillis) fixed.UnboundedAngle {
	if !p.started {
		p.started = true
		p.lastTime = t
		return p.phase
	}
	dt := clampDelta(int64(t) - int64(p.lastTime))
	p.lastTime = t
	if dt == 0 {
		return p.phase
	}
	speed := int64(p.speed.Sample(t)) // Q16.16 turns/sec
	advance := roundDiv(speed*dt<<16, 1000)
	p.phase = fixed.UnboundedAngle(uint32(int64(p.phase) + advance))
	return p.phase
}

// Phase returns the current accumulated phase without advancing it.
func (p *PhaseAccumulator) Phase() fixed.UnboundedAngle { return p.phase }

func roundDiv(num, den int64) int64 {
	if den < 0 {
		num, den = -num, -den
	}
	if num >= 0 {
		return (num + den/2) / den
	}
	return -((-num + den/2) / den)
}
