package glide

import (
	"testing"
	"time"
)

// setupBenchScheduler creates a manual Scheduler with n scalars, each heading
// toward a distinct target.
func setupBenchScheduler(n int) *Scheduler {
	s := NewScheduler(WithFrameSource(nil))
	for i := 0; i < n; i++ {
		v, _ := s.Float(0, WithSpeed(4))
		v.Target = float64(i%100) * 40
	}
	return s
}

// --- Tick Benchmarks ---

func BenchmarkTick_10000Scalars(b *testing.B) {
	s := setupBenchScheduler(10000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.Tick(1.0 / 60)
	}
}

func BenchmarkTick_10000Scalars_HalfPaused(b *testing.B) {
	s := setupBenchScheduler(10000)
	for i := 0; i < 10000; i += 2 {
		s.values[i].SetPaused(true)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.Tick(1.0 / 60)
	}
}

func BenchmarkTick_1000Sequences(b *testing.B) {
	s := NewScheduler(WithFrameSource(nil))
	for i := 0; i < 1000; i++ {
		v, _ := s.Floats([]float64{0, 0, 0, 0})
		v.Target = []float64{1, 0.5, 0.25, 1}
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.Tick(1.0 / 60)
	}
}

func BenchmarkTick_1000Records(b *testing.B) {
	s := NewScheduler(WithFrameSource(nil))
	for i := 0; i < 1000; i++ {
		v, _ := s.Fields(map[string]float64{"x": 0, "y": 0, "alpha": 1})
		v.Set("x", 100)
		v.Set("y", 50)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.Tick(1.0 / 60)
	}
}

// --- Self-driving Benchmarks ---

func BenchmarkSelfDriving_1000Scalars(b *testing.B) {
	var now time.Duration
	q := NewFrameQueue(func() time.Duration { return now })
	s := NewScheduler(WithFrameSource(q), WithAutoUpdate(true))
	for i := 0; i < 1000; i++ {
		v, _ := s.Float(0)
		v.Target = 1
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		now += time.Second / 60
		q.Pump()
	}
}

func BenchmarkSmooth(b *testing.B) {
	v := 0.0
	for i := 0; i < b.N; i++ {
		v = Smooth(v, 100, 0.016, 2)
	}
	_ = v
}
