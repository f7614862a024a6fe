package glide

import (
	"fmt"
	"time"
)

// tickStats holds per-tick counts and timing.
// Only populated when the scheduler is in debug mode.
type tickStats struct {
	tickTime time.Duration
	active   int
	ticked   int
	paused   int
	removed  int
}

// debugLog prints tick stats to the debug writer.
func (s *Scheduler) debugLog(stats tickStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(s.debugWriter,
		"[glide] tick: %v | active: %d | ticked: %d | paused: %d | removed: %d\n",
		stats.tickTime, stats.active, stats.ticked, stats.paused, stats.removed)
}
