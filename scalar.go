package glide

// Scalar smooths a single float64 toward Target.
type Scalar struct {
	valueState

	// Target is the value the scalar converges to. Assign it at any time.
	Target float64
	// OnChange is called after every tick with the new current value.
	OnChange func(v float64)

	current float64
	write   func(v float64)
}

// NewScalar creates a Scalar at rest on initial. It is not attached to any
// scheduler; call Tick directly or use Scheduler.Float.
func NewScalar(initial float64, opts ...ValueOption) *Scalar {
	c := applyValueOptions(opts...)
	return &Scalar{
		valueState: c.state(),
		Target:     initial,
		current:    initial,
	}
}

// Value returns the current smoothed value.
func (s *Scalar) Value() float64 {
	return s.current
}

// Tick moves the current value toward Target. It never fails.
func (s *Scalar) Tick(elapsed float64) error {
	s.current = Smooth(s.current, s.Target, elapsed, s.speed)
	s.notify()
	return nil
}

// Snap jumps straight to Target and fires the change callback.
func (s *Scalar) Snap() {
	s.current = s.Target
	s.notify()
}

// Settled reports whether the current value is within epsilon of Target.
func (s *Scalar) Settled(epsilon float64) bool {
	return within(s.current, s.Target, epsilon)
}

func (s *Scalar) notify() {
	if s.write != nil {
		s.write(s.current)
	}
	if s.OnChange != nil {
		s.OnChange(s.current)
	}
}
