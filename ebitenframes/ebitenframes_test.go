package ebitenframes

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/glide"
)

func TestSourceAdvancesOneTickPerUpdate(t *testing.T) {
	src := New()
	if src.Now() != 0 {
		t.Fatalf("Now = %v, want 0", src.Now())
	}
	src.Update()
	src.Update()
	if want := 2 * TickDuration(); src.Now() != want {
		t.Errorf("Now = %v, want %v", src.Now(), want)
	}
}

func TestTickDurationMatchesTPS(t *testing.T) {
	want := time.Second / time.Duration(ebiten.TPS())
	if got := TickDuration(); got != want {
		t.Errorf("TickDuration = %v, want %v", got, want)
	}
}

func TestSourceDrivesScheduler(t *testing.T) {
	src := New()
	s := glide.NewScheduler(glide.WithFrameSource(src), glide.WithAutoUpdate(true))
	v, err := s.Float(0, glide.WithSpeed(1))
	if err != nil {
		t.Fatal(err)
	}
	v.Target = 100

	const frames = 6
	for i := 0; i < frames; i++ {
		src.Update()
	}

	// Each frame covers one tick's fraction of the remaining distance.
	f := TickDuration().Seconds()
	want := 100 * (1 - math.Pow(1-f, frames))
	if math.Abs(v.Value()-want) > 1e-9 {
		t.Errorf("value = %v, want %v", v.Value(), want)
	}
	if src.Pending() != 1 {
		t.Errorf("pending = %d, want 1", src.Pending())
	}
}

// stubGame records calls from the Game wrapper.
type stubGame struct {
	updates int
	err     error
}

func (g *stubGame) Update() error              { g.updates++; return g.err }
func (g *stubGame) Draw(*ebiten.Image)         {}
func (g *stubGame) Layout(w, h int) (int, int) { return w / 2, h / 2 }

func TestGamePumpsBeforeUpdate(t *testing.T) {
	src := New()
	inner := &stubGame{}
	g := &Game{Game: inner, Frames: src}

	pumped := false
	src.RequestFrame(func(time.Duration) {
		if inner.updates != 0 {
			t.Error("frames pumped after the wrapped update")
		}
		pumped = true
	})

	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if !pumped || inner.updates != 1 {
		t.Errorf("pumped=%v updates=%d", pumped, inner.updates)
	}
	if w, h := g.Layout(640, 480); w != 320 || h != 240 {
		t.Errorf("Layout = %d,%d, want delegated 320,240", w, h)
	}
}

func TestGamePropagatesUpdateError(t *testing.T) {
	boom := errors.New("boom")
	g := &Game{Game: &stubGame{err: boom}, Frames: New()}
	if err := g.Update(); !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
}

func TestGameDefaultFrames(t *testing.T) {
	glide.Shutdown()
	t.Cleanup(glide.Shutdown)

	ran := false
	glide.DefaultFrames().RequestFrame(func(time.Duration) { ran = true })

	g := &Game{Game: &stubGame{}}
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if !ran {
		t.Error("Game without Frames did not pump glide.DefaultFrames()")
	}
}
