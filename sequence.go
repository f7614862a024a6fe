package glide

// Sequence smooths a fixed-length slice of float64, element by element.
type Sequence struct {
	valueState

	// Target must always have the same length as the current value.
	Target []float64
	// OnChange is called once per tick with the full current slice. The slice
	// is owned by the Sequence; copy it to keep it past the callback.
	OnChange func(v []float64)

	current []float64
	write   func(v []float64)
}

// NewSequence creates a Sequence at rest on a copy of initial.
func NewSequence(initial []float64, opts ...ValueOption) *Sequence {
	c := applyValueOptions(opts...)
	return &Sequence{
		valueState: c.state(),
		Target:     append([]float64(nil), initial...),
		current:    append([]float64(nil), initial...),
	}
}

// Value returns the current slice. It is mutated by Tick.
func (s *Sequence) Value() []float64 {
	return s.current
}

// Len returns the number of smoothed elements.
func (s *Sequence) Len() int {
	return len(s.current)
}

// Tick moves each element toward the matching Target element. A Target of
// a different length fails with ErrShapeMismatch and leaves the value as is.
func (s *Sequence) Tick(elapsed float64) error {
	if err := s.check(); err != nil {
		return err
	}
	for i := range s.current {
		s.current[i] = Smooth(s.current[i], s.Target[i], elapsed, s.speed)
	}
	s.notify()
	return nil
}

// Snap copies Target into the current value and fires the change callback.
func (s *Sequence) Snap() error {
	if err := s.check(); err != nil {
		return err
	}
	copy(s.current, s.Target)
	s.notify()
	return nil
}

// Settled reports whether every element is within epsilon of its target.
// A mismatched Target is never settled.
func (s *Sequence) Settled(epsilon float64) bool {
	if len(s.Target) != len(s.current) {
		return false
	}
	for i, v := range s.current {
		if !within(v, s.Target[i], epsilon) {
			return false
		}
	}
	return true
}

func (s *Sequence) check() error {
	if len(s.Target) != len(s.current) {
		return &ShapeError{Len: len(s.current), TargetLen: len(s.Target), err: ErrShapeMismatch}
	}
	return nil
}

func (s *Sequence) notify() {
	if s.write != nil {
		s.write(s.current)
	}
	if s.OnChange != nil {
		s.OnChange(s.current)
	}
}
