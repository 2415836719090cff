// Package window presents an lgl surface in a desktop window using Ebiten.
//
// The window owns one framebuffer surface in lgl.FormatABGR8888, whose byte
// order (R, G, B, A) is what Ebiten uploads. Each tick the frame callback
// draws into the framebuffer; each frame the buffer is uploaded to the
// screen, which Ebiten scales to the window. Keyboard and mouse state is
// polled through the Window from inside the callback.
//
//	w, err := window.New(window.DefaultConfig(), func(fb *lgl.Surface, dt time.Duration) error {
//		fb.Fill(lgl.Black)
//		fb.DrawCircle(160, 120, 50, lgl.Red)
//		return nil
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := w.Run(); err != nil {
//		log.Fatal(err)
//	}
package window

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/lgl"
)

// Config describes the window.
type Config struct {
	// Title is the window title.
	Title string
	// Width and Height are the framebuffer size in pixels.
	Width, Height int
	// Scale multiplies the initial window size. Values below 1 mean 1.
	Scale int
	// TPS is the number of frame callbacks per second. Zero selects
	// ebiten.DefaultTPS.
	TPS int
}

// DefaultConfig returns a 320x240 window shown at twice its size.
func DefaultConfig() Config {
	return Config{
		Title:  "lgl",
		Width:  320,
		Height: 240,
		Scale:  2,
		TPS:    ebiten.DefaultTPS,
	}
}

// FrameFunc draws one frame into fb. dt is the time since the previous
// call. Returning an error stops the window and makes Run return it.
type FrameFunc func(fb *lgl.Surface, dt time.Duration) error

// Key identifies a keyboard key, e.g. ebiten.KeyR.
type Key = ebiten.Key

// MouseButton identifies a mouse button, e.g. ebiten.MouseButtonLeft.
type MouseButton = ebiten.MouseButton

// Window implements ebiten.Game around a framebuffer surface.
type Window struct {
	config Config
	frame  FrameFunc
	fb     *lgl.Surface

	screen  *ebiten.Image
	scratch []byte
	start   time.Time
	last    time.Time
	dt      time.Duration
	now     func() time.Time
	quit    func() bool
}

// New creates a window and its framebuffer. The window is not shown until
// Run is called.
func New(cfg Config, frame FrameFunc) (*Window, error) {
	if frame == nil {
		return nil, fmt.Errorf("window: nil frame callback: %w", lgl.ErrInvalidParams)
	}
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	if cfg.TPS <= 0 {
		cfg.TPS = ebiten.DefaultTPS
	}
	fb, err := lgl.NewSurface(cfg.Width, cfg.Height, lgl.FormatABGR8888)
	if err != nil {
		return nil, fmt.Errorf("window: framebuffer: %w", err)
	}
	fb.Fill(lgl.Black)

	return &Window{
		config:  cfg,
		frame:   frame,
		fb:      fb,
		scratch: make([]byte, cfg.Width*cfg.Height*4),
		now:     time.Now,
		quit:    escapePressed,
	}, nil
}

func escapePressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyEscape)
}

// Framebuffer returns the surface presented by the window.
func (w *Window) Framebuffer() *lgl.Surface { return w.fb }

// Config returns the window configuration after defaults were applied.
func (w *Window) Config() Config { return w.config }

// SetTitle changes the window title.
func (w *Window) SetTitle(title string) {
	w.config.Title = title
	ebiten.SetWindowTitle(title)
}

// FrameTime returns the time between the last two frame callbacks.
func (w *Window) FrameTime() time.Duration { return w.dt }

// Time returns the time since the first frame callback.
func (w *Window) Time() time.Duration {
	if w.start.IsZero() {
		return 0
	}
	return w.now().Sub(w.start)
}

// KeyPressed reports whether k is held down.
func (w *Window) KeyPressed(k Key) bool { return ebiten.IsKeyPressed(k) }

// KeyJustPressed reports whether k went down during the current tick.
func (w *Window) KeyJustPressed(k Key) bool { return inpututil.IsKeyJustPressed(k) }

// MousePosition returns the cursor position in framebuffer pixels.
func (w *Window) MousePosition() (x, y int) { return ebiten.CursorPosition() }

// MouseButtonPressed reports whether b is held down.
func (w *Window) MouseButtonPressed(b MouseButton) bool { return ebiten.IsMouseButtonPressed(b) }

// Update implements ebiten.Game.Update. It runs the frame callback.
func (w *Window) Update() error {
	if w.quit() {
		return ebiten.Termination
	}
	now := w.now()
	w.dt = 0
	if w.last.IsZero() {
		w.start = now
	} else {
		w.dt = now.Sub(w.last)
	}
	w.last = now
	return w.frame(w.fb, w.dt)
}

// Draw implements ebiten.Game.Draw. It uploads the framebuffer.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.screen == nil {
		w.screen = ebiten.NewImage(w.fb.Width(), w.fb.Height())
	}
	w.screen.WritePixels(premultiply(w.scratch, w.fb))
	screen.DrawImage(w.screen, nil)
}

// Layout implements ebiten.Game.Layout. The logical screen is always the
// framebuffer size; Ebiten scales it to the window.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.fb.Width(), w.fb.Height()
}

// Run opens the window and blocks until it is closed, Escape is pressed
// or the frame callback fails.
func (w *Window) Run() error {
	ebiten.SetWindowSize(w.config.Width*w.config.Scale, w.config.Height*w.config.Scale)
	ebiten.SetWindowTitle(w.config.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.config.TPS)

	log := lgl.Logger()
	log.Info("window: open", "title", w.config.Title, "width", w.config.Width, "height", w.config.Height)
	err := ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	log.Info("window: closed", "err", err)
	return err
}

// premultiply copies the tightly packed rows of fb into dst, converting
// straight alpha to the premultiplied form Ebiten expects.
func premultiply(dst []byte, fb *lgl.Surface) []byte {
	rowBytes := fb.Width() * 4
	dst = dst[:rowBytes*fb.Height()]
	pix, stride := fb.Pixels(), fb.Stride()
	for y := 0; y < fb.Height(); y++ {
		d := dst[y*rowBytes : (y+1)*rowBytes]
		copy(d, pix[y*stride:y*stride+rowBytes])
		for i := 0; i < len(d); i += 4 {
			a := uint32(d[i+3])
			if a == 255 {
				continue
			}
			d[i+0] = uint8(uint32(d[i+0]) * a / 255)
			d[i+1] = uint8(uint32(d[i+1]) * a / 255)
			d[i+2] = uint8(uint32(d[i+2]) * a / 255)
		}
	}
	return dst
}
