// Package display provides the pixel-geometry contract the renderer samples
// against: a flat pixel index maps to a polar coordinate, independent of the
// physical arrangement (a ring of LEDs, a rectangular matrix, ...).
package display

import "github.com/lixenwraith/polarshader/fixed"

// Spec describes a physical display's pixel layout. NSegments/SegmentSize
// expose the layout for callers that want to reason about rings directly
// (e.g. a driver painting ring-by-ring); ToPolar is the renderer's only
// required entry point.
type Spec interface {
	NLeds() uint16
	NSegments() uint16
	SegmentSize(segmentIndex uint16) uint16
	ToPolar(pixelIndex uint16) (fixed.BoundedAngle, fixed.FracQ0_16)
}
