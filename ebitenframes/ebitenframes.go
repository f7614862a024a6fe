// Package ebitenframes drives glide schedulers from an Ebitengine game loop.
//
// Ebitengine calls Update at a fixed rate (TPS) rather than once per display
// refresh, so Source keeps a virtual clock that advances by exactly 1/TPS per
// Update. Animations stay deterministic however late a frame is delivered.
package ebitenframes

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/glide"
)

// Source is a glide.FrameSource pumped from ebiten's Update.
type Source struct {
	*glide.FrameQueue
	now time.Duration
}

// New creates a Source whose clock starts at zero.
func New() *Source {
	s := &Source{}
	s.FrameQueue = glide.NewFrameQueue(s.clock)
	return s
}

func (s *Source) clock() time.Duration {
	return s.now
}

// Update advances the clock by one tick and runs pending frame requests.
// Call it once from ebiten.Game.Update.
func (s *Source) Update() {
	s.now += TickDuration()
	s.Pump()
}

// TickDuration returns the length of one ebiten tick at the current TPS.
// Under ebiten.SyncWithFPS the default TPS is assumed.
func TickDuration() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

// Game wraps an ebiten.Game and pumps frames before each of its updates.
// With a nil Frames it pumps glide.DefaultFrames() on the real clock, which
// is what the package-level glide functions drive from.
type Game struct {
	ebiten.Game
	Frames *Source
}

// Update pumps frames, then updates the wrapped game.
func (g *Game) Update() error {
	if g.Frames != nil {
		g.Frames.Update()
	} else {
		glide.DefaultFrames().Pump()
	}
	return g.Game.Update()
}

// RunConfig holds window settings for Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// Frames, if set, is pumped instead of glide.DefaultFrames().
	Frames *Source
}

// Run opens a window and runs game wrapped in a Game.
func Run(game ebiten.Game, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	return ebiten.RunGame(&Game{Game: game, Frames: cfg.Frames})
}
