package pipeline

import "github.com/lixenwraith/polarshader/fixed"

// Transform is the common lifecycle every transform family shares: tick
// internal signals/accumulators once per frame, possibly mutating Context.
type Transform interface {
	AdvanceFrame(t fixed.TimeMillis)
}

// CartesianTransform wraps a Cartesian layer with a new Cartesian layer.
type CartesianTransform interface {
	Transform
	ApplyCartesian(inner CartesianLayer) CartesianLayer
}

// PolarTransform wraps a Polar layer with a new Polar layer.
type PolarTransform interface {
	Transform
	ApplyPolar(inner PolarLayer) PolarLayer
}

// UVTransform wraps a UV layer with a new UV layer.
type UVTransform interface {
	Transform
	ApplyUV(inner UVLayer) UVLayer
}

// PaletteTransform has no effect on the layer; it only mutates
// Context.PaletteOffset during AdvanceFrame.
type PaletteTransform interface {
	Transform
}
