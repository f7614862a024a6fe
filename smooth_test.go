package glide

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestFactorClamps(t *testing.T) {
	tests := []struct {
		name           string
		elapsed, speed float64
		want           float64
	}{
		{"inside", 0.25, 2, 0.5},
		{"saturated", 2, 1, 1},
		{"exactly one", 0.5, 2, 1},
		{"negative elapsed", -1, 1, 0},
		{"negative speed", 1, -3, 0},
		{"zero elapsed", 0, 5, 0},
		{"zero speed", 5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Factor(tt.elapsed, tt.speed); got != tt.want {
				t.Errorf("Factor(%v, %v) = %v, want %v", tt.elapsed, tt.speed, got, tt.want)
			}
		})
	}
}

func TestSmoothScenarios(t *testing.T) {
	tests := []struct {
		name                     string
		from, to, elapsed, speed float64
		want                     float64
	}{
		{"tenth of the way", 0, 10, 0.1, 1, 1},
		{"half way down", 10, 0, 0.5, 1, 5},
		{"snaps on long stall", 0, 10, 2, 1, 10},
		{"fast speed snaps", 3, -7, 0.2, 50, -7},
		{"zero elapsed no-op", 4, 9, 0, 1, 4},
		{"zero speed no-op", 4, 9, 1, 0, 4},
		{"negative elapsed no-op", 4, 9, -0.5, 1, 4},
		{"already on target", 7, 7, 0.3, 1, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Smooth(tt.from, tt.to, tt.elapsed, tt.speed)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Smooth(%v, %v, %v, %v) = %v, want %v",
					tt.from, tt.to, tt.elapsed, tt.speed, got, tt.want)
			}
		})
	}
}

func TestSmoothSaturationIsExact(t *testing.T) {
	// 0.1 + (0.3-0.1)*1 is not 0.3 in float64; a saturated factor must still
	// land on the target bit for bit.
	if got := Smooth(0.1, 0.3, 1, 1); got != 0.3 {
		t.Errorf("Smooth(0.1, 0.3, 1, 1) = %v, want exactly 0.3", got)
	}
	if got := Smooth(1e300, -1e-300, 10, 10); got != -1e-300 {
		t.Errorf("got %v, want exact target", got)
	}
}

func TestSmoothIdempotentAtZeroElapsed(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 1000; i++ {
		x := (r.Float64() - 0.5) * 1e6
		y := (r.Float64() - 0.5) * 1e6
		s := r.Float64() * 100
		if got := Smooth(x, y, 0, s); got != x {
			t.Fatalf("Smooth(%v, %v, 0, %v) = %v, want %v", x, y, s, got, x)
		}
	}
}

func TestSmoothNeverOvershoots(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 5000; i++ {
		from := (r.Float64() - 0.5) * 1e4
		to := (r.Float64() - 0.5) * 1e4
		elapsed := r.Float64() * 2
		speed := r.Float64() * 4

		got := Smooth(from, to, elapsed, speed)
		lo, hi := math.Min(from, to), math.Max(from, to)
		if got < lo || got > hi {
			t.Fatalf("Smooth(%v, %v, %v, %v) = %v, outside [%v, %v]",
				from, to, elapsed, speed, got, lo, hi)
		}
	}
}

func TestSmoothApproachesMonotonically(t *testing.T) {
	for _, pair := range [][2]float64{{0, 10}, {10, -3}, {-2.5, 1e3}} {
		from, to := pair[0], pair[1]
		prev := math.Abs(to - from)
		for e := 0.0; e <= 1.2; e += 0.05 {
			d := math.Abs(to - Smooth(from, to, e, 1))
			if d > prev {
				t.Fatalf("from %v to %v: distance grew from %v to %v at elapsed %v",
					from, to, prev, d, e)
			}
			prev = d
		}
		if prev != 0 {
			t.Errorf("from %v to %v: did not reach target after saturation, distance %v", from, to, prev)
		}
	}
}

func TestSmoothConvergesAfterCumulativeSaturation(t *testing.T) {
	// Once a single step saturates the factor the value sits exactly on target.
	v := 0.0
	for _, dt := range []float64{0.2, 0.3, 0.1, 1.5} {
		v = Smooth(v, 42, dt, 1)
	}
	if v != 42 {
		t.Errorf("v = %v, want exactly 42", v)
	}
}

func TestSmoothPropagatesNaN(t *testing.T) {
	if got := Smooth(0, math.NaN(), 0.5, 1); !math.IsNaN(got) {
		t.Errorf("NaN target: got %v, want NaN", got)
	}
	if got := Smooth(0, 1, 0.5, math.NaN()); !math.IsNaN(got) {
		t.Errorf("NaN speed: got %v, want NaN", got)
	}
}
