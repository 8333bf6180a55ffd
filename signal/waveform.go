package signal

import (
	"github.com/lixenwraith/polarshader/fixed"
	"github.com/lixenwraith/polarshader/trig"
)

// Constant returns v for all time.
func Constant(v fixed.SFracQ0_16) Signal[fixed.SFracQ0_16] {
	return New(func(fixed.TimeMillis) fixed.SFracQ0_16 { return v })
}

// Floor, Midpoint and Ceiling are the three fixed reference waveforms.
func Floor() Signal[fixed.SFracQ0_16]    { return Constant(fixed.SFracMin) }
func Midpoint() Signal[fixed.SFracQ0_16] { return Constant(0) }
func Ceiling() Signal[fixed.SFracQ0_16]  { return Constant(fixed.SFracMax) }

// Linear maps elapsed t in [0, duration) to a signed unit ramp, -1 at t=0 to
// +1 at t=duration, honoring loop. A Once signal saturates at +1 once
// elapsed time reaches the duration.
func Linear(duration fixed.TimeMillis, loop LoopPolicy) Signal[fixed.SFracQ0_16] {
	return NewAperiodic(duration, loop, func(t fixed.TimeMillis) fixed.SFracQ0_16 {
		local, _ := loopedElapsed(t, duration, loop)
		ratio := (int64(local) * int64(fixed.SFracOne) * 2) / int64(duration)
		return fixed.SFracQ0_16(int64(fixed.SFracMin) + ratio)
	})
}

// easeFn applies a normalized-progress easing curve (p in [0, ONE]) to
// produce an eased progress in the same domain.
type easeFn func(p int64) int64

func quadIn(p int64) int64  { return (p * p) >> 16 }
func quadOut(p int64) int64 { inv := int64(fixed.SFracOne) - p; return int64(fixed.SFracOne) - ((inv * inv) >> 16) }
func quadInOut(p int64) int64 {
	half := int64(fixed.SFracOne) / 2
	if p < half {
		return (quadIn(p*2) + 1) / 2
	}
	return half + quadOut((p-half)*2)/2
}

func quadratic(duration fixed.TimeMillis, loop LoopPolicy, ease easeFn) Signal[fixed.SFracQ0_16] {
	return NewAperiodic(duration, loop, func(t fixed.TimeMillis) fixed.SFracQ0_16 {
		local, _ := loopedElapsed(t, duration, loop)
		progress := (int64(local) * int64(fixed.SFracOne)) / int64(duration)
		eased := ease(progress)
		return fixed.SFracQ0_16(int64(fixed.SFracMin) + eased*2)
	})
}

func QuadraticIn(duration fixed.TimeMillis, loop LoopPolicy) Signal[fixed.SFracQ0_16] {
	return quadratic(duration, loop, quadIn)
}
func QuadraticOut(duration fixed.TimeMillis, loop LoopPolicy) Signal[fixed.SFracQ0_16] {
	return quadratic(duration, loop, quadOut)
}
func QuadraticInOut(duration fixed.TimeMillis, loop LoopPolicy) Signal[fixed.SFracQ0_16] {
	return quadratic(duration, loop, quadInOut)
}

// phaseIntegrator is the internal phase accumulator shared by the periodic
// waveform generators (sine/noise/pulse). It is exclusively owned by the
// closure that captures it, per the Signal ownership contract.
//
// Grounded on original_source/pipeline/signals/Fluctuation.h's
// PhaseAccumulator: dt is clamped to maxDeltaTimeMs and the same-time resample
// is a documented no-op.
type phaseIntegrator struct {
	phase    fixed.UnboundedAngle
	lastTime fixed.TimeMillis
	started  bool
	speed    fixed.FracQ16_16 // turns per second, Q16.16
}

const maxDeltaTimeMs fixed.TimeMillis = 200

func (p *phaseIntegrator) advance(t fixed.TimeMillis) fixed.UnboundedAngle {
	if !p.started {
		p.started = true
		p.lastTime = t
		return p.phase
	}
	dt := int64(t) - int64(p.lastTime)
	p.lastTime = t
	if dt == 0 {
		return p.phase
	}
	if dt > int64(maxDeltaTimeMs) {
		dt = int64(maxDeltaTimeMs)
	}
	if dt < -int64(maxDeltaTimeMs) {
		dt = -int64(maxDeltaTimeMs)
	}
	// turns = speed * dt_ms / 1000, promoted to Q16.16 phase units (<<16).
	advance := (int64(p.speed) * dt << 16) / 1000
	advance = roundHalfAway(advance, 65536)
	p.phase = fixed.UnboundedAngle(uint32(int64(p.phase) + advance))
	return p.phase
}

func roundHalfAway(v, unit int64) int64 {
	if v >= 0 {
		return ((v + unit/2) / unit) * unit
	}
	return -(((-v + unit/2) / unit) * unit)
}

// speedTurnsPerSec is a plain Q16.16 constant used by the periodic waveform
// generators below; dynamic speed is out of scope for the base waveform
// library (transforms that need a time-varying phase velocity compose a
// modulate.PhaseAccumulator directly, see modulate.AngularModulator).
func speedTurnsPerSec(hz float64) fixed.FracQ16_16 {
	return fixed.FracQ16_16(int32(hz * 65536))
}

// SpeedHz is the exported constructor for a constant turns-per-second rate,
// used by Sine/NoiseWave/Pulse below.
func SpeedHz(hz float64) fixed.FracQ16_16 { return speedTurnsPerSec(hz) }

// periodicWaveform derives a signed unit value from a phase and a shaping
// function over the bounded angle it demotes to.
func periodicWaveform(
	speed fixed.FracQ16_16,
	amplitude, offset, phaseOffset Signal[fixed.SFracQ0_16],
	shape func(angle fixed.BoundedAngle) int32,
) Signal[fixed.SFracQ0_16] {
	acc := &phaseIntegrator{speed: speed}
	return New(func(t fixed.TimeMillis) fixed.SFracQ0_16 {
		phase := acc.advance(t)
		// A signal value of SFracOne (one full turn) wraps back to angle 0,
		// which is the correct identity offset.
		offsetAngle := fixed.BoundedAngle(uint16(int32(phaseOffset.Sample(t))))
		angle := fixed.PhaseToAngle(phase) + offsetAngle
		raw := shape(angle)
		amp := int64(amplitude.Sample(t))
		scaled := (int64(raw) * amp) >> 16
		sum := scaled + int64(offset.Sample(t))
		if sum > int64(fixed.SFracMax) {
			sum = int64(fixed.SFracMax)
		}
		if sum < int64(fixed.SFracMin) {
			sum = int64(fixed.SFracMin)
		}
		return fixed.SFracQ0_16(sum)
	})
}

// Sine samples a sine wave whose phase is driven by a PhaseAccumulator at
// the given turns-per-second speed: output = offset + amplitude*sin(phase +
// phaseOffset).
func Sine(speed fixed.FracQ16_16, amplitude, offset, phaseOffset Signal[fixed.SFracQ0_16]) Signal[fixed.SFracQ0_16] {
	return periodicWaveform(speed, amplitude, offset, phaseOffset, func(angle fixed.BoundedAngle) int32 {
		return int32(trig.SinQ1_15(angle)) << 1 // TrigQ1_15 (15 frac bits) -> Q0.16-ish unit
	})
}

// NoiseWave samples 1D value noise at the accumulated phase, shaped the same
// way as Sine.
func NoiseWave(speed fixed.FracQ16_16, amplitude, offset, phaseOffset Signal[fixed.SFracQ0_16]) Signal[fixed.SFracQ0_16] {
	return periodicWaveform(speed, amplitude, offset, phaseOffset, func(angle fixed.BoundedAngle) int32 {
		raw := trig.Noise1D(fixed.FracQ16_16(uint32(angle) << 16))
		norm := trig.NormalizeNoise(raw)
		return int32(norm) - 0x8000
	})
}

// Pulse samples a symmetric triangle wave (saw-up then saw-down) at the
// accumulated phase, shaped the same way as Sine.
func Pulse(speed fixed.FracQ16_16, amplitude, offset, phaseOffset Signal[fixed.SFracQ0_16]) Signal[fixed.SFracQ0_16] {
	return periodicWaveform(speed, amplitude, offset, phaseOffset, func(angle fixed.BoundedAngle) int32 {
		a := uint16(angle)
		var tri uint16
		if a < 0x8000 {
			tri = a << 1
		} else {
			tri = (0xFFFF - a) << 1
		}
		return int32(tri) - 0x8000
	})
}

// Scale multiplies a signal's sample by an unsigned saturating Q0.16 factor,
// inheriting the input signal's Kind/loop/duration metadata.
func Scale(s Signal[fixed.SFracQ0_16], factor fixed.FracQ0_16) Signal[fixed.SFracQ0_16] {
	scaled := Signal[fixed.SFracQ0_16]{kind: s.kind, loop: s.loop, duration: s.duration}
	scaled.fn = func(t fixed.TimeMillis) fixed.SFracQ0_16 {
		v := s.Sample(t)
		return fixed.SFracQ0_16(fixed.ScaleI32ByBounded(int32(v), factor))
	}
	return scaled
}
