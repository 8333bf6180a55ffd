package pipeline

import (
	"github.com/lixenwraith/polarshader/fixed"
	"github.com/lixenwraith/polarshader/ranges"
	"github.com/lixenwraith/polarshader/signal"
)

// RotationTransform adds an angular offset to the input angle, wrapping
// mod 2^16. An offset of 0 is the identity (testable property 14).
type RotationTransform struct {
	offset  ranges.MappedSignal[fixed.FracQ0_16]
	current fixed.FracQ0_16
}

func NewRotationTransform(angle signal.Signal[fixed.SFracQ0_16]) *RotationTransform {
	return &RotationTransform{offset: ranges.NewMappedSignal[fixed.FracQ0_16](angle, ranges.NewPolarRange(0, 0xFFFF))}
}

func (r *RotationTransform) AdvanceFrame(t fixed.TimeMillis) { r.current = r.offset.Sample(t) }

func (r *RotationTransform) ApplyPolar(inner PolarLayer) PolarLayer {
	return func(angle fixed.BoundedAngle, radius fixed.FracQ0_16) fixed.PatternNormU16 {
		return inner(angle+fixed.BoundedAngle(r.current), radius)
	}
}

// maxFacets bounds KaleidoscopeTransform's facet count.
const maxFacets = 8

// KaleidoscopeTransform folds [0, 1) into `facets` wedges, optionally
// mirroring alternate wedges; Mandala multiplies the angle by facets
// instead of folding, for a spinning multi-armed effect.
type KaleidoscopeTransform struct {
	facets  uint16
	mirror  bool
	mandala bool
}

func NewKaleidoscopeTransform(facets uint16, mirror bool) *KaleidoscopeTransform {
	if facets < 1 {
		facets = 1
	}
	if facets > maxFacets {
		facets = maxFacets
	}
	return &KaleidoscopeTransform{facets: facets, mirror: mirror}
}

// WithMandala switches to the supplemented mandala mode: a′ = a × facets
// mod 2^32 (demoted back to BoundedAngle), rather than folding into wedges.
func (k *KaleidoscopeTransform) WithMandala() *KaleidoscopeTransform {
	k.mandala = true
	return k
}

func (*KaleidoscopeTransform) AdvanceFrame(fixed.TimeMillis) {}

func (k *KaleidoscopeTransform) ApplyPolar(inner PolarLayer) PolarLayer {
	return func(angle fixed.BoundedAngle, radius fixed.FracQ0_16) fixed.PatternNormU16 {
		if k.facets <= 1 && !k.mandala {
			return inner(angle, radius)
		}
		if k.mandala {
			wrapped := uint32(angle) * uint32(k.facets)
			return inner(fixed.BoundedAngle(uint16(wrapped)), radius)
		}
		segment := uint32(0x10000) / uint32(k.facets)
		a := uint32(angle)
		wedgeIdx := a / segment
		within := a % segment
		if k.mirror && wedgeIdx%2 == 1 {
			within = segment - 1 - within
		}
		return inner(fixed.BoundedAngle(uint16(within)), radius)
	}
}

// VortexTransform applies an angular offset proportional to radius,
// strength clamped to ±1 turn to avoid multi-turn wraparound.
type VortexTransform struct {
	strength ranges.MappedSignal[fixed.SFracQ0_16]
	current  fixed.SFracQ0_16
}

func NewVortexTransform(strength signal.Signal[fixed.SFracQ0_16]) *VortexTransform {
	return &VortexTransform{strength: ranges.NewMappedSignal[fixed.SFracQ0_16](strength, ranges.NewSFracRange(fixed.SFracMin, fixed.SFracMax))}
}

func (v *VortexTransform) AdvanceFrame(t fixed.TimeMillis) { v.current = v.strength.Sample(t) }

func (v *VortexTransform) ApplyPolar(inner PolarLayer) PolarLayer {
	return func(angle fixed.BoundedAngle, radius fixed.FracQ0_16) fixed.PatternNormU16 {
		delta := (int64(v.current) * int64(radius)) >> 16
		return inner(angle+fixed.BoundedAngle(uint16(delta)), radius)
	}
}

// LensDistortionTransform applies a barrel/pincushion curve to radius:
// r′ = clamp(r × (1 + k × r), 0, 1).
type LensDistortionTransform struct {
	k       ranges.MappedSignal[fixed.SFracQ0_16]
	current fixed.SFracQ0_16
}

func NewLensDistortionTransform(k signal.Signal[fixed.SFracQ0_16]) *LensDistortionTransform {
	return &LensDistortionTransform{k: ranges.NewMappedSignal[fixed.SFracQ0_16](k, identityRange{})}
}

func (l *LensDistortionTransform) AdvanceFrame(t fixed.TimeMillis) { l.current = l.k.Sample(t) }

func (l *LensDistortionTransform) ApplyPolar(inner PolarLayer) PolarLayer {
	return func(angle fixed.BoundedAngle, radius fixed.FracQ0_16) fixed.PatternNormU16 {
		k := int64(l.current)
		factor := int64(fixed.SFracOne) + (k*int64(radius))>>16
		rp := (int64(radius) * factor) >> 16
		return inner(angle, clampFrac(rp))
	}
}

// RadialScaleTransform applies r′ = clamp(r + k × r, 0, 1).
type RadialScaleTransform struct {
	k       ranges.MappedSignal[fixed.SFracQ0_16]
	current fixed.SFracQ0_16
}

func NewRadialScaleTransform(k signal.Signal[fixed.SFracQ0_16]) *RadialScaleTransform {
	return &RadialScaleTransform{k: ranges.NewMappedSignal[fixed.SFracQ0_16](k, identityRange{})}
}

func (s *RadialScaleTransform) AdvanceFrame(t fixed.TimeMillis) { s.current = s.k.Sample(t) }

func (s *RadialScaleTransform) ApplyPolar(inner PolarLayer) PolarLayer {
	return func(angle fixed.BoundedAngle, radius fixed.FracQ0_16) fixed.PatternNormU16 {
		k := int64(s.current)
		rp := int64(radius) + (k*int64(radius))>>16
		return inner(angle, clampFrac(rp))
	}
}

func clampFrac(v int64) fixed.FracQ0_16 {
	if v < 0 {
		return 0
	}
	if v > 0xFFFF {
		return 0xFFFF
	}
	return fixed.FracQ0_16(v)
}

// PosterizePolarTransform snaps angle and radius to discrete bins.
type PosterizePolarTransform struct {
	angleBins, radiusBins uint16
}

func NewPosterizePolarTransform(angleBins, radiusBins uint16) *PosterizePolarTransform {
	return &PosterizePolarTransform{angleBins: angleBins, radiusBins: radiusBins}
}

func (*PosterizePolarTransform) AdvanceFrame(fixed.TimeMillis) {}

func (p *PosterizePolarTransform) ApplyPolar(inner PolarLayer) PolarLayer {
	return func(angle fixed.BoundedAngle, radius fixed.FracQ0_16) fixed.PatternNormU16 {
		a := angle
		if p.angleBins > 0 {
			step := uint32(0x10000) / uint32(p.angleBins)
			a = fixed.BoundedAngle((uint32(angle) / step) * step)
		}
		r := radius
		if p.radiusBins > 0 {
			step := uint32(0x10000) / uint32(p.radiusBins)
			r = fixed.FracQ0_16((uint32(radius) / step) * step)
		}
		return inner(a, r)
	}
}

// identityRange passes SFracQ0_16 samples through unmodified, used where a
// transform's parameter is consumed directly in its native signed-unit
// domain rather than remapped.
type identityRange struct{}

func (identityRange) Map(v fixed.SFracQ0_16) fixed.SFracQ0_16 { return v }
