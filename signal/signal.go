// Package signal implements the time-indexed Signal[T] abstraction and the
// waveform library built on it. A Signal is a pure function of a time input;
// any internal accumulator state lives in a value the signal's closure
// captures exclusively (see modulate.PhaseAccumulator), never shared.
package signal

import "github.com/lixenwraith/polarshader/fixed"

// Kind distinguishes signals with no inherent duration (Periodic, e.g. a
// sine wave) from signals whose domain is a fixed window (Aperiodic, e.g. a
// one-shot ramp).
type Kind uint8

const (
	Periodic Kind = iota
	Aperiodic
)

// LoopPolicy controls how an Aperiodic signal's input time maps back into
// its [0, duration) domain once time exceeds that window.
type LoopPolicy uint8

const (
	Once LoopPolicy = iota
	Repeat
	PingPong
)

// Signal is a callable fn(TimeMillis) -> T carrying metadata about its
// temporal shape. Sampling is the only operation; a signal is responsible
// for its own time mapping.
type Signal[T any] struct {
	kind     Kind
	loop     LoopPolicy
	duration fixed.TimeMillis
	fn       func(fixed.TimeMillis) T
}

// New wraps a plain periodic sampling function as a Signal.
func New[T any](fn func(fixed.TimeMillis) T) Signal[T] {
	return Signal[T]{kind: Periodic, fn: fn}
}

// NewAperiodic wraps a sampling function together with its duration and
// loop policy.
func NewAperiodic[T any](duration fixed.TimeMillis, loop LoopPolicy, fn func(fixed.TimeMillis) T) Signal[T] {
	return Signal[T]{kind: Aperiodic, loop: loop, duration: duration, fn: fn}
}

func (s Signal[T]) Sample(t fixed.TimeMillis) T { return s.fn(t) }
func (s Signal[T]) Kind() Kind                  { return s.kind }
func (s Signal[T]) Loop() LoopPolicy            { return s.loop }
func (s Signal[T]) Duration() fixed.TimeMillis  { return s.duration }

// loopedElapsed maps an absolute elapsed time into a signal's [0, duration)
// local domain per its loop policy. atEnd reports whether a Once signal has
// reached or passed its terminal sample.
func loopedElapsed(t, duration fixed.TimeMillis, loop LoopPolicy) (local fixed.TimeMillis, atEnd bool) {
	if duration == 0 {
		return 0, true
	}
	switch loop {
	case Repeat:
		return t % duration, false
	case PingPong:
		cycle := t % (2 * duration)
		if cycle < duration {
			return cycle, false
		}
		return 2*duration - cycle, false
	default: // Once
		if t >= duration {
			return duration, true
		}
		return t, false
	}
}
