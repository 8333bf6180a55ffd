package modulate

import (
	"github.com/lixenwraith/polarshader/fixed"
	"github.com/lixenwraith/polarshader/ranges"
)

// ScalarMotion re-samples a MappedSignal each frame into a plain current
// value a transform can read without itself tracking time. It carries no
// integration state beyond the last sample.
type ScalarMotion[T any] struct {
	src     ranges.MappedSignal[T]
	current T
}

func NewScalarMotion[T any](src ranges.MappedSignal[T]) *ScalarMotion[T] {
	return &ScalarMotion[T]{src: src}
}

func (m *ScalarMotion[T]) Advance(t fixed.TimeMillis) T {
	m.current = m.src.Sample(t)
	return m.current
}

func (m *ScalarMotion[T]) Current() T { return m.current }
