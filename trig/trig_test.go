package trig

import (
	"math"
	"testing"

	"github.com/lixenwraith/polarshader/fixed"
)

func TestAtan2MonotonicWithinOctant(t *testing.T) {
	x := int16(1000)
	var prev fixed.BoundedAngle
	first := true
	// The sweep crosses angle 0 (negative y lands just below a full turn), so
	// angles are compared as signed turn fractions.
	for y := -500; y <= 500; y += 10 {
		a := Atan2TurnsApprox(int16(y), x)
		if !first && int16(a) < int16(prev) {
			t.Errorf("atan2 not monotonic at y=%d: got %d after %d", y, a, prev)
		}
		prev = a
		first = false
	}
}

func TestAtan2Cardinals(t *testing.T) {
	cases := []struct {
		y, x int16
		want float64 // expected turn fraction
	}{
		{0, 1000, 0},
		{1000, 0, 0.25},
		{0, -1000, 0.5},
		{-1000, 0, 0.75},
	}
	for _, c := range cases {
		got := Atan2TurnsApprox(c.y, c.x)
		gotFrac := float64(got) / 65536
		diff := math.Abs(gotFrac - c.want)
		if diff > 0.01 && diff < 0.99 { // allow wraparound near 0/1
			t.Errorf("atan2(%d,%d) = %v turns, want ~%v", c.y, c.x, gotFrac, c.want)
		}
	}
}

func TestAtan2ZeroZero(t *testing.T) {
	if got := Atan2TurnsApprox(0, 0); got != 0 {
		t.Errorf("atan2(0,0) = %d, want 0", got)
	}
}

func TestPolarRoundTrip(t *testing.T) {
	radii := []fixed.FracQ0_16{6554, 32768, 58982} // ~0.1, 0.5, 0.9
	for angleRaw := 0; angleRaw < 0x10000; angleRaw += 4096 {
		angle := fixed.BoundedAngle(angleRaw)
		phase := fixed.AngleToPhase(angle)
		for _, r := range radii {
			x, y := PolarToCartesian(phase, r)
			gotPhase, gotR := CartesianToPolar(x, y)
			gotAngle := fixed.PhaseToAngle(gotPhase)

			angErr := angleDelta(angle, gotAngle)
			if angErr > 655 { // 0.01 turn
				t.Errorf("angle %d r=%d: round trip angle err %d (0.01 turn = 655)", angle, r, angErr)
			}
			rDiff := int32(gotR) - int32(r)
			if rDiff < 0 {
				rDiff = -rDiff
			}
			if float64(rDiff) > float64(r)*0.05+2000 {
				t.Errorf("angle %d r=%d: round trip radius %d, diff %d too large", angle, r, gotR, rDiff)
			}
		}
	}
}

func angleDelta(a, b fixed.BoundedAngle) uint16 {
	d := int32(a) - int32(b)
	if d < 0 {
		d = -d
	}
	wrapped := int32(0x10000) - d
	if wrapped < d {
		return uint16(wrapped)
	}
	return uint16(d)
}

func TestNormalizeNoiseFullRange(t *testing.T) {
	if got := NormalizeNoise(0); got != 0 {
		t.Errorf("NormalizeNoise(0) = %d, want 0", got)
	}
	if got := NormalizeNoise(65535); got != 0xFFFF {
		t.Errorf("NormalizeNoise(max) = %d, want 0xFFFF", got)
	}
	if got := NormalizeNoise(noiseFloor + noiseSpan/2); got < 0x7000 || got > 0x9000 {
		t.Errorf("NormalizeNoise(mid) = %d, want near midpoint", got)
	}
}

func TestNoise2DDeterministic(t *testing.T) {
	a := Noise2D(100, 200)
	b := Noise2D(100, 200)
	if a != b {
		t.Errorf("Noise2D not deterministic: %d != %d", a, b)
	}
}
