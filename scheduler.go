package glide

import (
	"fmt"
	"io"
	"slices"
	"time"
)

// Scheduler owns a collection of smoothed values and advances them all once
// per Tick. It can drive itself from a FrameSource (see SetAutoUpdate) or be
// ticked manually by the host loop.
//
// A Scheduler is not safe for concurrent use. Create values, kill them, tick
// and pump its frame source from one goroutine.
type Scheduler struct {
	values []Value

	frames       FrameSource
	frameFn      func(now time.Duration)
	handle       FrameHandle
	autoUpdating bool
	lastTick     time.Duration

	// epoch changes whenever the collection is cleared, so a Tick in
	// progress knows to stop walking it.
	epoch     uint64
	destroyed bool

	debug       bool
	debugWriter io.Writer
	onError     func(error)
}

// NewScheduler creates a scheduler. With WithAutoUpdate(true) it immediately
// registers with its frame source; the option is ignored when the source is
// nil.
func NewScheduler(opts ...Option) *Scheduler {
	c := applyOptions(opts...)
	s := &Scheduler{
		frames:      c.frames,
		debug:       c.debug,
		debugWriter: c.debugWriter,
		onError:     c.onError,
	}
	s.frameFn = s.frame
	if c.autoUpdate && s.frames != nil {
		_ = s.SetAutoUpdate(true)
	}
	return s
}

// Float creates a Scalar at rest on initial and starts managing it.
func (s *Scheduler) Float(initial float64, opts ...ValueOption) (*Scalar, error) {
	if s.destroyed {
		return nil, ErrDestroyed
	}
	v := NewScalar(initial, opts...)
	s.values = append(s.values, v)
	return v, nil
}

// Floats creates a Sequence at rest on a copy of initial and starts managing
// it.
func (s *Scheduler) Floats(initial []float64, opts ...ValueOption) (*Sequence, error) {
	if s.destroyed {
		return nil, ErrDestroyed
	}
	v := NewSequence(initial, opts...)
	s.values = append(s.values, v)
	return v, nil
}

// Fields creates a Record at rest on a copy of initial and starts managing
// it. Use WithFields to track only some of the keys.
func (s *Scheduler) Fields(initial map[string]float64, opts ...ValueOption) (*Record, error) {
	if s.destroyed {
		return nil, ErrDestroyed
	}
	v := NewRecord(initial, opts...)
	s.values = append(s.values, v)
	return v, nil
}

// Create picks the variant from the shape of initial: a number gives a
// *Scalar, a []float64 a *Sequence and a map[string]float64 a *Record.
// Anything else fails with ErrUnsupportedShape.
func (s *Scheduler) Create(initial any, opts ...ValueOption) (Value, error) {
	var (
		v   Value
		err error
	)
	switch x := initial.(type) {
	case float64:
		v, err = s.Float(x, opts...)
	case float32:
		v, err = s.Float(float64(x), opts...)
	case int:
		v, err = s.Float(float64(x), opts...)
	case int64:
		v, err = s.Float(float64(x), opts...)
	case []float64:
		v, err = s.Floats(x, opts...)
	case map[string]float64:
		v, err = s.Fields(x, opts...)
	default:
		return nil, fmt.Errorf("create %T: %w", initial, ErrUnsupportedShape)
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Bind manages the float64 that field points to: the scalar starts at
// *field, and every tick writes the new value back to *field before calling
// OnChange.
func (s *Scheduler) Bind(field *float64, opts ...ValueOption) (*Scalar, error) {
	return s.BindFunc(*field, func(v float64) { *field = v }, opts...)
}

// BindFunc manages a host value through a setter. set receives every new
// value before OnChange does.
func (s *Scheduler) BindFunc(initial float64, set func(v float64), opts ...ValueOption) (*Scalar, error) {
	v, err := s.Float(initial, opts...)
	if err != nil {
		return nil, err
	}
	v.write = set
	return v, nil
}

// BindFloats manages the slice that field points to. Every tick copies the
// new values into *field before calling OnChange.
func (s *Scheduler) BindFloats(field *[]float64, opts ...ValueOption) (*Sequence, error) {
	v, err := s.Floats(*field, opts...)
	if err != nil {
		return nil, err
	}
	v.write = func(cur []float64) { *field = append((*field)[:0], cur...) }
	return v, nil
}

// Tick advances every managed value by elapsed seconds. Paused values are
// skipped and kept. Dead values are dropped without being ticked. The first
// shape error stops the pass and is returned.
func (s *Scheduler) Tick(elapsed float64) error {
	if s.destroyed {
		return ErrDestroyed
	}

	var stats tickStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	epoch := s.epoch
	// Walk backward so removal never shifts an unvisited value. Values
	// created by callbacks land past i and wait for the next tick.
	for i := len(s.values) - 1; i >= 0; i-- {
		if s.epoch != epoch {
			break
		}
		v := s.values[i]
		st := v.state()
		if st.paused {
			stats.paused++
			continue
		}
		if st.dead {
			s.values = slices.Delete(s.values, i, i+1)
			stats.removed++
			continue
		}
		if err := v.Tick(elapsed); err != nil {
			return fmt.Errorf("tick: %w", err)
		}
		stats.ticked++
	}

	if s.debug {
		stats.active = len(s.values)
		stats.tickTime = time.Since(t0)
		s.debugLog(stats)
	}
	return nil
}

// Kill marks v dead. It stays in the collection until the next Tick.
// Killing a dead or unmanaged value is a no-op.
func (s *Scheduler) Kill(v Value) {
	if v != nil {
		v.Kill()
	}
}

// KillAll marks every managed value dead and empties the collection at once.
// No callback of a previously managed value fires after KillAll returns.
func (s *Scheduler) KillAll() {
	for _, v := range s.values {
		v.Kill()
	}
	clear(s.values)
	s.values = s.values[:0]
	s.epoch++
}

// SetAutoUpdate starts or stops self-driving. Enabling registers one frame
// request with the frame source and takes the source's current time as the
// baseline for the first elapsed interval; enabling again while active is a
// no-op. Disabling cancels the pending request. Manual Tick calls keep
// working either way.
func (s *Scheduler) SetAutoUpdate(enabled bool) error {
	if !enabled {
		s.autoUpdating = false
		s.cancelFrame()
		return nil
	}
	if s.destroyed {
		return ErrDestroyed
	}
	if s.frames == nil {
		return ErrNoFrameSource
	}
	if s.autoUpdating {
		return nil
	}
	s.autoUpdating = true
	s.lastTick = s.frames.Now()
	if s.handle == 0 {
		s.handle = s.frames.RequestFrame(s.frameFn)
	}
	return nil
}

// AutoUpdating reports whether the scheduler is self-driving.
func (s *Scheduler) AutoUpdating() bool {
	return s.autoUpdating
}

// Destroy kills every value, stops self-driving and cancels any pending frame
// request. Later factory, Tick and SetAutoUpdate(true) calls fail with
// ErrDestroyed. Destroying twice is a no-op.
func (s *Scheduler) Destroy() {
	if s.destroyed {
		return
	}
	s.KillAll()
	s.destroyed = true
	s.autoUpdating = false
	s.cancelFrame()
}

// Destroyed reports whether Destroy has been called.
func (s *Scheduler) Destroyed() bool {
	return s.destroyed
}

// Len returns the number of managed values, dead ones not yet dropped
// included.
func (s *Scheduler) Len() int {
	return len(s.values)
}

// Contains reports whether v is still in the managed collection.
func (s *Scheduler) Contains(v Value) bool {
	for _, x := range s.values {
		if x == v {
			return true
		}
	}
	return false
}

// SetDebugMode enables or disables per-tick stats lines.
func (s *Scheduler) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// frame is the self-driving callback: tick by the time since the previous
// frame, then re-arm while still auto-updating.
func (s *Scheduler) frame(now time.Duration) {
	s.handle = 0
	elapsed := (now - s.lastTick).Seconds()
	s.lastTick = now

	if err := s.Tick(elapsed); err != nil {
		s.onError(err)
	}

	if s.autoUpdating && !s.destroyed && s.handle == 0 {
		s.handle = s.frames.RequestFrame(s.frameFn)
	}
}

func (s *Scheduler) cancelFrame() {
	if s.handle != 0 && s.frames != nil {
		s.frames.CancelFrame(s.handle)
	}
	s.handle = 0
}
