package modulate

import (
	"github.com/lixenwraith/polarshader/fixed"
	"github.com/lixenwraith/polarshader/ranges"
	"github.com/lixenwraith/polarshader/trig"
)

// CartesianMotionAccumulator is an alternative to LinearMotion for the case
// where the motion's velocity vector is itself already range-mapped: it is
// driven directly by a direction signal (FracQ0_16 turn fraction) and a
// speed signal (int32 units/sec), rather than an AngularModulator.
type CartesianMotionAccumulator struct {
	x, y     fixed.FracQ16_16
	lastTime fixed.TimeMillis
	started  bool

	direction ranges.MappedSignal[fixed.FracQ0_16]
	speed     ranges.MappedSignal[int32]
}

func NewCartesianMotionAccumulator(direction ranges.MappedSignal[fixed.FracQ0_16], speed ranges.MappedSignal[int32]) *CartesianMotionAccumulator {
	return &CartesianMotionAccumulator{direction: direction, speed: speed}
}

func (m *CartesianMotionAccumulator) Advance(t fixed.TimeMillis) (fixed.FracQ16_16, fixed.FracQ16_16) {
	if !m.started {
		m.started = true
		m.lastTime = t
		return m.x, m.y
	}
	dt := clampDelta(int64(t) - int64(m.lastTime))
	m.lastTime = t
	if dt == 0 {
		return m.x, m.y
	}

	dirTurns := m.direction.Sample(t)
	angle := fixed.BoundedAngle(uint16(dirTurns))
	cos := trig.CosQ1_15(angle)
	sin := trig.SinQ1_15(angle)

	speed := int64(m.speed.Sample(t))
	distance := (speed * dt << 16) / 1000 // Q16.16

	dx := (distance * int64(cos)) >> 15
	dy := (distance * int64(sin)) >> 15

	m.x = fixed.FracQ16_16(uint32(int64(m.x) + dx))
	m.y = fixed.FracQ16_16(uint32(int64(m.y) + dy))
	return m.x, m.y
}
