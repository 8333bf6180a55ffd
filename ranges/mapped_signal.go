package ranges

import (
	"github.com/lixenwraith/polarshader/fixed"
	"github.com/lixenwraith/polarshader/signal"
)

// MappedSignal is the common adapter transforms consume for their
// time-varying parameters: it owns a Signal[SFracQ0_16] and a Range[T], and
// samples as range.Map(signal.Sample(t)).
type MappedSignal[T any] struct {
	sig Signal
	rng Range[T]
}

// Signal is the narrow interface MappedSignal needs from signal.Signal,
// letting this package avoid depending on signal.Signal's full generic
// instantiation machinery.
type Signal interface {
	Sample(t fixed.TimeMillis) fixed.SFracQ0_16
}

// signalAdapter lets a concrete signal.Signal[fixed.SFracQ0_16] satisfy
// Signal without an import cycle or reflection.
type signalAdapter struct {
	s signal.Signal[fixed.SFracQ0_16]
}

func (a signalAdapter) Sample(t fixed.TimeMillis) fixed.SFracQ0_16 { return a.s.Sample(t) }

// NewMappedSignal adapts a concrete SFracQ0_16 signal and a range into a
// MappedSignal[T].
func NewMappedSignal[T any](s signal.Signal[fixed.SFracQ0_16], rng Range[T]) MappedSignal[T] {
	return MappedSignal[T]{sig: signalAdapter{s: s}, rng: rng}
}

func (m MappedSignal[T]) Sample(t fixed.TimeMillis) T {
	return m.rng.Map(m.sig.Sample(t))
}
