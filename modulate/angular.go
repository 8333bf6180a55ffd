package modulate

import "github.com/lixenwraith/polarshader/fixed"

// AngularModulator wraps a PhaseAccumulator plus an initial angular offset,
// sampling as a BoundedAngle (the phase's upper 16 bits). Output is always
// in [0, 1) turns.
type AngularModulator struct {
	acc     *PhaseAccumulator
	initial fixed.BoundedAngle
}

func NewAngularModulator(acc *PhaseAccumulator, initial fixed.BoundedAngle) *AngularModulator {
	return &AngularModulator{acc: acc, initial: initial}
}

// Advance integrates the underlying phase accumulator and returns the
// resulting bounded angle, offset by the modulator's initial angle.
func (m *AngularModulator) Advance(t fixed.TimeMillis) fixed.BoundedAngle {
	phase := m.acc.Advance(t)
	return fixed.PhaseToAngle(phase) + m.initial
}

// Angle returns the current angle without advancing.
func (m *AngularModulator) Angle() fixed.BoundedAngle {
	return fixed.PhaseToAngle(m.acc.Phase()) + m.initial
}
