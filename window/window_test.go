package window

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/lgl"
)

func TestNew(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scale = 0
	cfg.TPS = 0
	w, err := New(cfg, func(*lgl.Surface, time.Duration) error { return nil })
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	fb := w.Framebuffer()
	if fb.Width() != 320 || fb.Height() != 240 || fb.Format() != lgl.FormatABGR8888 {
		t.Errorf("framebuffer = %v, want 320x240 ABGR8888", fb)
	}
	if got := fb.ColorAt(0, 0); got != lgl.Black {
		t.Errorf("initial framebuffer color = %v, want black", got)
	}
	if c := w.Config(); c.Scale != 1 || c.TPS != ebiten.DefaultTPS {
		t.Errorf("Config() = %+v, want Scale 1 and default TPS", c)
	}
	if gw, gh := w.Layout(1000, 1000); gw != 320 || gh != 240 {
		t.Errorf("Layout() = %dx%d, want 320x240", gw, gh)
	}
}

func TestNewErrors(t *testing.T) {
	frame := func(*lgl.Surface, time.Duration) error { return nil }
	if _, err := New(DefaultConfig(), nil); !errors.Is(err, lgl.ErrInvalidParams) {
		t.Errorf("New(nil frame) error = %v, want ErrInvalidParams", err)
	}
	cfg := DefaultConfig()
	cfg.Width = 0
	if _, err := New(cfg, frame); !errors.Is(err, lgl.ErrInvalidParams) {
		t.Errorf("New(width 0) error = %v, want ErrInvalidParams", err)
	}
}

func TestUpdate(t *testing.T) {
	var calls []time.Duration
	boom := errors.New("boom")
	w, err := New(Config{Width: 4, Height: 4}, func(fb *lgl.Surface, dt time.Duration) error {
		calls = append(calls, dt)
		fb.Fill(lgl.Red)
		if len(calls) == 3 {
			return boom
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	quit := false
	w.quit = func() bool { return quit }

	for i := 0; i < 2; i++ {
		if err := w.Update(); err != nil {
			t.Fatalf("Update() #%d error = %v", i, err)
		}
	}
	if calls[0] != 0 {
		t.Errorf("first dt = %v, want 0", calls[0])
	}
	if w.Framebuffer().ColorAt(3, 3) != lgl.Red {
		t.Error("frame callback did not draw into the framebuffer")
	}
	if err := w.Update(); !errors.Is(err, boom) {
		t.Errorf("Update() error = %v, want callback error", err)
	}

	quit = true
	if err := w.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() after Escape = %v, want ebiten.Termination", err)
	}
	if len(calls) != 3 {
		t.Errorf("frame called %d times, want 3", len(calls))
	}
}

func TestFrameTiming(t *testing.T) {
	var dts []time.Duration
	w, err := New(Config{Width: 2, Height: 2}, func(_ *lgl.Surface, dt time.Duration) error {
		dts = append(dts, dt)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return clock }
	w.quit = func() bool { return false }

	if w.Time() != 0 || w.FrameTime() != 0 {
		t.Errorf("before first frame: Time() = %v, FrameTime() = %v, want 0", w.Time(), w.FrameTime())
	}
	for _, step := range []time.Duration{0, 16 * time.Millisecond, 20 * time.Millisecond} {
		clock = clock.Add(step)
		if err := w.Update(); err != nil {
			t.Fatal(err)
		}
	}
	want := []time.Duration{0, 16 * time.Millisecond, 20 * time.Millisecond}
	for i := range want {
		if dts[i] != want[i] {
			t.Errorf("dt #%d = %v, want %v", i, dts[i], want[i])
		}
	}
	if got := w.FrameTime(); got != 20*time.Millisecond {
		t.Errorf("FrameTime() = %v, want 20ms", got)
	}
	clock = clock.Add(4 * time.Millisecond)
	if got := w.Time(); got != 40*time.Millisecond {
		t.Errorf("Time() = %v, want 40ms", got)
	}
}

func TestPremultiply(t *testing.T) {
	fb := lgl.Must(lgl.NewSurface(2, 2, lgl.FormatABGR8888))
	fb.SetColor(0, 0, lgl.RGBA(200, 100, 50, 255))
	fb.SetColor(1, 0, lgl.RGBA(200, 100, 50, 128))
	fb.SetColor(0, 1, lgl.RGBA(200, 100, 50, 0))

	got := premultiply(make([]byte, 16), fb)
	want := []byte{
		200, 100, 50, 255, 100, 50, 25, 128,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("premultiply() = %v, want %v", got, want)
		}
	}

	// Views with padded rows are packed tightly.
	sub, err := fb.SubSurface(lgl.Rect{X: 1, Y: 0, Width: 1, Height: 2})
	if err != nil {
		t.Fatal(err)
	}
	if got := premultiply(make([]byte, 8), sub); got[0] != 100 || got[3] != 128 || len(got) != 8 {
		t.Errorf("premultiply(view) = %v", got)
	}
}
