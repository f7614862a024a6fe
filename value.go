package glide

// defaultSpeed is the decay rate used when no WithSpeed option is given.
const defaultSpeed = 1.0

// Value is a smoothed value driven by a Scheduler. The set of implementations
// is closed: *Scalar, *Sequence and *Record.
type Value interface {
	// Tick advances the current value toward its target by elapsed seconds
	// and fires the change callback.
	Tick(elapsed float64) error
	// Kill marks the value dead. A scheduler drops it on its next tick.
	Kill()
	// Alive reports whether Kill has not been called yet.
	Alive() bool
	// Paused reports whether scheduler ticks are currently suppressed.
	Paused() bool
	// SetPaused suppresses or resumes scheduler ticks.
	SetPaused(paused bool)
	// Speed returns the decay rate coefficient.
	Speed() float64
	// SetSpeed changes the decay rate coefficient.
	SetSpeed(speed float64)

	state() *valueState
}

// valueState is the lifecycle shared by every variant.
type valueState struct {
	speed  float64
	dead   bool
	paused bool
}

func (v *valueState) Kill()                  { v.dead = true }
func (v *valueState) Alive() bool            { return !v.dead }
func (v *valueState) Paused() bool           { return v.paused }
func (v *valueState) SetPaused(paused bool)  { v.paused = paused }
func (v *valueState) Speed() float64         { return v.speed }
func (v *valueState) SetSpeed(speed float64) { v.speed = speed }
func (v *valueState) state() *valueState     { return v }

// valueConfig holds the settings a ValueOption can change.
type valueConfig struct {
	speed  float64
	paused bool
	fields []string
}

// ValueOption configures a value at creation time.
type ValueOption func(*valueConfig)

// WithSpeed sets the decay rate coefficient. Larger values converge faster;
// 0 freezes the value. Default is 1.
func WithSpeed(speed float64) ValueOption {
	return func(c *valueConfig) { c.speed = speed }
}

// WithPaused creates the value already paused.
func WithPaused(paused bool) ValueOption {
	return func(c *valueConfig) { c.paused = paused }
}

// WithFields restricts a Record to the named fields. Other keys of the
// initial map are carried along but never touched. Ignored by other variants.
func WithFields(names ...string) ValueOption {
	return func(c *valueConfig) { c.fields = append([]string(nil), names...) }
}

func applyValueOptions(opts ...ValueOption) valueConfig {
	c := valueConfig{speed: defaultSpeed}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c valueConfig) state() valueState {
	return valueState{speed: c.speed, paused: c.paused}
}

// within reports whether a and b differ by at most epsilon.
func within(a, b, epsilon float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= epsilon
}
