package display

import "github.com/lixenwraith/polarshader/fixed"

// discRingSizes is the pixel count of each concentric ring, center first,
// outermost last: a 241-pixel disc built from a 1-pixel center and eight
// rings of {8, 12, 16, 24, 32, 40, 48, 60} pixels.
var discRingSizes = [9]uint16{1, 8, 12, 16, 24, 32, 40, 48, 60}

// DiscSpec is the 241-pixel concentric-ring disc display.
type DiscSpec struct{}

func NewDiscSpec() DiscSpec { return DiscSpec{} }

func (DiscSpec) NLeds() uint16 {
	var total uint16
	for _, s := range discRingSizes {
		total += s
	}
	return total
}

func (DiscSpec) NSegments() uint16 { return uint16(len(discRingSizes)) }

func (DiscSpec) SegmentSize(segmentIndex uint16) uint16 {
	if int(segmentIndex) >= len(discRingSizes) {
		return 0
	}
	return discRingSizes[segmentIndex]
}

// ToPolar locates the ring containing pixelIndex and returns the pixel's
// proportional position within it as an angle, and the ring's radius as a
// fraction of the outermost ring. The center pixel (ring 0, size 1) always
// reports angle=0, radius=0.
func (d DiscSpec) ToPolar(pixelIndex uint16) (fixed.BoundedAngle, fixed.FracQ0_16) {
	var cumulative uint16
	nRings := uint16(len(discRingSizes))
	for ring, size := range discRingSizes {
		if pixelIndex < cumulative+size {
			pixelInRing := pixelIndex - cumulative
			var angleRaw uint32
			if size > 1 {
				angleStep := uint32(0x10000) / uint32(size)
				angleRaw = (uint32(pixelInRing) * angleStep) & 0xFFFF
			}
			radius := ringRadius(uint16(ring), nRings)
			return fixed.BoundedAngle(angleRaw), radius
		}
		cumulative += size
	}
	return 0, 0
}

// ringRadius computes round(ringIndex * 65535 / (nRings-1)) without floats.
func ringRadius(ringIndex, nRings uint16) fixed.FracQ0_16 {
	denom := nRings - 1
	if denom == 0 {
		denom = 1
	}
	num := uint64(ringIndex) * 65535
	raw := (num + uint64(denom)/2) / uint64(denom)
	if raw > 0xFFFF {
		raw = 0xFFFF
	}
	return fixed.FracQ0_16(raw)
}
