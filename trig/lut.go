// Package trig provides trigonometry over the strong BoundedAngle type,
// atan2 and polar<->Cartesian conversion, and the value-noise sampler used
// by the signal and transform layers.
package trig

import "math"

// lutSize controls the resolution of the sin/cos lookup tables; grounded on
// vmath's 1024-entry Q32.32 LUT pattern (vmath/lut.go), scaled down to the
// TrigQ1_15 output range this pipeline targets.
const (
	lutSize = 1024
	lutMask = lutSize - 1
)

var sinLUT [lutSize]int16
var cosLUT [lutSize]int16

func init() {
	for i := 0; i < lutSize; i++ {
		rad := 2.0 * math.Pi * float64(i) / lutSize
		sinLUT[i] = int16(math.Round(math.Sin(rad) * 32767))
		cosLUT[i] = int16(math.Round(math.Cos(rad) * 32767))
	}
}
