package modulate

import (
	"github.com/lixenwraith/polarshader/fixed"
	"github.com/lixenwraith/polarshader/ranges"
	"github.com/lixenwraith/polarshader/trig"
)

// LinearMotion integrates a 2D position driven by a non-negative scalar
// speed (units/sec) and a direction modulator. In bounded mode the position
// is clamped to a circular radius after each integration step by uniform
// rescaling; in unbounded mode the position wraps (two's-complement add).
type LinearMotion struct {
	x, y     fixed.FracQ16_16
	lastTime fixed.TimeMillis
	started  bool

	speed     ranges.MappedSignal[fixed.FracQ16_16] // units/sec, Q16.16
	direction *AngularModulator

	bounded bool
	maxR    fixed.FracQ16_16
}

func NewLinearMotion(speed ranges.MappedSignal[fixed.FracQ16_16], direction *AngularModulator) *LinearMotion {
	return &LinearMotion{speed: speed, direction: direction}
}

// WithBounds enables bounded mode, clamping the integrated position to a
// circle of radius maxR.
func (m *LinearMotion) WithBounds(maxR fixed.FracQ16_16) *LinearMotion {
	m.bounded = true
	m.maxR = maxR
	return m
}

func (m *LinearMotion) Advance(t fixed.TimeMillis) (fixed.FracQ16_16, fixed.FracQ16_16) {
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

	speed := int64(m.speed.Sample(t))
	if speed < 0 {
		speed = 0
	}
	distance := satMulI64(speed, dt, 1000) // Q16.16 units, saturating

	angle := m.direction.Advance(t)
	cos := trig.CosQ1_15(angle)
	sin := trig.SinQ1_15(angle)
	// distance is Q16.16, cos/sin are Q1.15; the product demotes by 15 frac
	// bits to land back in Q16.16.
	dx := (distance * int64(cos)) >> 15
	dy := (distance * int64(sin)) >> 15

	if m.bounded {
		nx := clampToInt32(int64(m.x) + dx)
		ny := clampToInt32(int64(m.y) + dy)
		m.x, m.y = fixed.FracQ16_16(nx), fixed.FracQ16_16(ny)
		m.clampToRadius()
	} else {
		m.x = fixed.FracQ16_16(uint32(int64(m.x) + dx))
		m.y = fixed.FracQ16_16(uint32(int64(m.y) + dy))
	}
	return m.x, m.y
}

func (m *LinearMotion) clampToRadius() {
	xx := int64(m.x) * int64(m.x)
	yy := int64(m.y) * int64(m.y)
	// x, y are Q16.16 raw values; sqrt(x^2+y^2) of the raw integers yields
	// the magnitude already scaled as a Q16.16 raw value.
	mag := fixed.SqrtU64(uint64(xx + yy))
	maxR := uint64(m.maxR)
	if mag <= maxR || mag == 0 {
		return
	}
	scale := (maxR << 16) / mag // Q16.16 scale factor < 1
	m.x = fixed.FracQ16_16((int64(m.x) * int64(scale)) >> 16)
	m.y = fixed.FracQ16_16((int64(m.y) * int64(scale)) >> 16)
}

func satMulI64(a, b, div int64) int64 {
	product := (a * b) / div
	return clampToInt32Range(product)
}

func clampToInt32Range(v int64) int64 {
	if v > 1<<31-1 {
		return 1<<31 - 1
	}
	if v < -(1 << 31) {
		return -(1 << 31)
	}
	return v
}

func clampToInt32(v int64) int32 { return int32(clampToInt32Range(v)) }
