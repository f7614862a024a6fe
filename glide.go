package glide

// The default scheduler behind the package-level functions. It is created on
// first use, self-driving from DefaultFrames, and torn down by Shutdown.
var (
	defaultFrames    = NewFrameQueue(nil)
	defaultScheduler *Scheduler
)

// DefaultFrames returns the process-wide frame queue the default scheduler
// drives itself from. Pump it once per display refresh:
//
//	func (g *Game) Update() error {
//		glide.DefaultFrames().Pump()
//		return nil
//	}
func DefaultFrames() *FrameQueue {
	return defaultFrames
}

func std() *Scheduler {
	if defaultScheduler == nil {
		defaultScheduler = NewScheduler(WithFrameSource(defaultFrames), WithAutoUpdate(true))
	}
	return defaultScheduler
}

// Float creates a Scalar on the default scheduler.
func Float(initial float64, opts ...ValueOption) (*Scalar, error) {
	return std().Float(initial, opts...)
}

// Floats creates a Sequence on the default scheduler.
func Floats(initial []float64, opts ...ValueOption) (*Sequence, error) {
	return std().Floats(initial, opts...)
}

// Fields creates a Record on the default scheduler.
func Fields(initial map[string]float64, opts ...ValueOption) (*Record, error) {
	return std().Fields(initial, opts...)
}

// Create creates a value of the variant matching initial on the default
// scheduler.
func Create(initial any, opts ...ValueOption) (Value, error) {
	return std().Create(initial, opts...)
}

// Bind manages *field on the default scheduler.
func Bind(field *float64, opts ...ValueOption) (*Scalar, error) {
	return std().Bind(field, opts...)
}

// BindFunc manages a host value through set on the default scheduler.
func BindFunc(initial float64, set func(v float64), opts ...ValueOption) (*Scalar, error) {
	return std().BindFunc(initial, set, opts...)
}

// BindFloats manages *field on the default scheduler.
func BindFloats(field *[]float64, opts ...ValueOption) (*Sequence, error) {
	return std().BindFloats(field, opts...)
}

// Kill marks v dead.
func Kill(v Value) {
	std().Kill(v)
}

// KillAll kills and drops every value on the default scheduler.
func KillAll() {
	std().KillAll()
}

// SetAutoUpdate starts or stops the default scheduler's self-driving.
func SetAutoUpdate(enabled bool) error {
	return std().SetAutoUpdate(enabled)
}

// Tick advances the default scheduler manually.
func Tick(elapsed float64) error {
	return std().Tick(elapsed)
}

// Shutdown destroys the default scheduler. The next package-level call
// creates a fresh one.
func Shutdown() {
	if defaultScheduler != nil {
		defaultScheduler.Destroy()
		defaultScheduler = nil
	}
}
