package glide

import (
	"fmt"
	"io"
	"os"
)

// config holds the settings of a Scheduler. It is configured via Option when
// calling NewScheduler.
type config struct {
	frames      FrameSource
	autoUpdate  bool
	debug       bool
	debugWriter io.Writer
	onError     func(error)
}

// Option configures a Scheduler at construction. Use WithFrameSource,
// WithAutoUpdate, WithDebug, WithDebugWriter and WithErrorHandler.
type Option func(*config)

// WithFrameSource sets the frame source the scheduler self-drives from.
// A nil source disables self-driving entirely. Default is DefaultFrames().
func WithFrameSource(fs FrameSource) Option {
	return func(c *config) { c.frames = fs }
}

// WithAutoUpdate starts the scheduler self-driving from its frame source.
// Default is false; the caller ticks manually.
func WithAutoUpdate(enabled bool) Option {
	return func(c *config) { c.autoUpdate = enabled }
}

// WithDebug enables per-tick stats lines on the debug writer.
func WithDebug(enabled bool) Option {
	return func(c *config) { c.debug = enabled }
}

// WithDebugWriter sets where debug lines go. Default is os.Stderr.
func WithDebugWriter(w io.Writer) Option {
	return func(c *config) { c.debugWriter = w }
}

// WithErrorHandler receives tick errors raised while self-driving, where no
// caller is there to return them to. The default prints them to stderr.
func WithErrorHandler(fn func(error)) Option {
	return func(c *config) { c.onError = fn }
}

// applyOptions applies opts over the defaults. Nil writers and handlers fall
// back to the defaults so downstream code can use the fields directly.
func applyOptions(opts ...Option) config {
	c := config{
		frames: DefaultFrames(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.debugWriter == nil {
		c.debugWriter = os.Stderr
	}
	if c.onError == nil {
		c.onError = printError
	}
	return c
}

func printError(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "[glide] %v\n", err)
}
