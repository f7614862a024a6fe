package glide

import "time"

// FrameHandle identifies a pending frame request. The zero handle is never
// issued, so it can mean "nothing pending".
type FrameHandle uint64

// FrameSource delivers "next display refresh" callbacks. Each request fires
// at most once; callers that want every frame request again from inside the
// callback.
type FrameSource interface {
	// RequestFrame schedules fn for the next frame and returns a handle that
	// can cancel it.
	RequestFrame(fn func(now time.Duration)) FrameHandle
	// CancelFrame drops a pending request. Unknown or already fired handles
	// are ignored.
	CancelFrame(h FrameHandle)
	// Now returns the current time on the source's monotonic timebase, the
	// same one passed to frame callbacks.
	Now() time.Duration
}

// processStart anchors the default monotonic clock.
var processStart = time.Now()

// monotonic returns the time elapsed since the package was loaded.
func monotonic() time.Duration {
	return time.Since(processStart)
}

type frameRequest struct {
	handle FrameHandle
	fn     func(now time.Duration)
}

// FrameQueue is a FrameSource pumped by its host, typically once per display
// refresh from the host's game loop. It does no work between pumps.
//
// FrameQueue is not safe for concurrent use; pump it from the goroutine that
// owns the schedulers registered on it.
type FrameQueue struct {
	clock   func() time.Duration
	last    FrameHandle
	pending []frameRequest
	running []frameRequest
}

// NewFrameQueue creates a FrameQueue that reads time from clock. A nil clock
// uses the process monotonic clock.
func NewFrameQueue(clock func() time.Duration) *FrameQueue {
	if clock == nil {
		clock = monotonic
	}
	return &FrameQueue{clock: clock}
}

// Now returns the queue's current time.
func (q *FrameQueue) Now() time.Duration {
	return q.clock()
}

// RequestFrame queues fn for the next pump.
func (q *FrameQueue) RequestFrame(fn func(now time.Duration)) FrameHandle {
	q.last++
	q.pending = append(q.pending, frameRequest{handle: q.last, fn: fn})
	return q.last
}

// CancelFrame drops the request for h, including one waiting later in the
// batch currently being pumped.
func (q *FrameQueue) CancelFrame(h FrameHandle) {
	if h == 0 {
		return
	}
	for i := range q.pending {
		if q.pending[i].handle == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	for i := range q.running {
		if q.running[i].handle == h {
			q.running[i].fn = nil
			return
		}
	}
}

// Pending returns the number of requests waiting for the next pump.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Pump runs every pending request with Now() and returns how many ran.
func (q *FrameQueue) Pump() int {
	return q.PumpAt(q.clock())
}

// PumpAt runs every request made before the call with the given timestamp.
// Requests made by the callbacks wait for the next pump.
func (q *FrameQueue) PumpAt(now time.Duration) int {
	if len(q.pending) == 0 {
		return 0
	}
	q.running, q.pending = q.pending, nil
	n := 0
	for i := range q.running {
		fn := q.running[i].fn
		if fn == nil {
			continue
		}
		q.running[i].fn = nil
		fn(now)
		n++
	}
	q.running = q.running[:0]
	return n
}
