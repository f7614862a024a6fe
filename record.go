package glide

import (
	"maps"
	"slices"
)

// Record smooths a set of named float64 fields. Only the names listed in
// Fields are touched; other keys ride along unchanged.
type Record struct {
	valueState

	// Target holds the goal for each tracked field.
	Target map[string]float64
	// Fields lists the tracked names in the order they are updated.
	Fields []string
	// OnChange is called once per tick with the full current map.
	OnChange func(v map[string]float64)

	current map[string]float64
}

// NewRecord creates a Record at rest on a copy of initial. Without
// WithFields every key of initial is tracked, in sorted order.
func NewRecord(initial map[string]float64, opts ...ValueOption) *Record {
	c := applyValueOptions(opts...)
	fields := c.fields
	if fields == nil {
		fields = slices.Sorted(maps.Keys(initial))
	}
	current := maps.Clone(initial)
	if current == nil {
		current = make(map[string]float64)
	}
	target := maps.Clone(current)
	return &Record{
		valueState: c.state(),
		Target:     target,
		Fields:     fields,
		current:    current,
	}
}

// Value returns the current map. It is mutated by Tick.
func (r *Record) Value() map[string]float64 {
	return r.current
}

// Get returns the current value of one field.
func (r *Record) Get(name string) (float64, bool) {
	v, ok := r.current[name]
	return v, ok
}

// Set assigns the target of one field.
func (r *Record) Set(name string, target float64) {
	if r.Target == nil {
		r.Target = make(map[string]float64)
	}
	r.Target[name] = target
}

// Tick moves every tracked field toward its target. A tracked field missing
// from the current value or the target fails with ErrMissingField and leaves
// the value as is.
func (r *Record) Tick(elapsed float64) error {
	if err := r.check(); err != nil {
		return err
	}
	for _, name := range r.Fields {
		r.current[name] = Smooth(r.current[name], r.Target[name], elapsed, r.speed)
	}
	r.notify()
	return nil
}

// Snap copies every tracked target into the current value.
func (r *Record) Snap() error {
	if err := r.check(); err != nil {
		return err
	}
	for _, name := range r.Fields {
		r.current[name] = r.Target[name]
	}
	r.notify()
	return nil
}

// Settled reports whether every tracked field is within epsilon of its
// target. A record with a missing field is never settled.
func (r *Record) Settled(epsilon float64) bool {
	if r.check() != nil {
		return false
	}
	for _, name := range r.Fields {
		if !within(r.current[name], r.Target[name], epsilon) {
			return false
		}
	}
	return true
}

func (r *Record) check() error {
	for _, name := range r.Fields {
		if _, ok := r.current[name]; !ok {
			return &ShapeError{Field: name, err: ErrMissingField}
		}
		if _, ok := r.Target[name]; !ok {
			return &ShapeError{Field: name, err: ErrMissingField}
		}
	}
	return nil
}

func (r *Record) notify() {
	if r.OnChange != nil {
		r.OnChange(r.current)
	}
}
