// Command lglview shows an image file in a window and reloads it whenever
// the file changes. R and L rotate the image, S toggles Scale2x and Escape
// quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/lgl"
	"github.com/gogpu/lgl/imageio"
	"github.com/gogpu/lgl/window"
)

type options struct {
	scale2x bool
	rotate  int
}

// prepare applies the requested transforms to a freshly loaded image.
func (o options) prepare(s *lgl.Surface) (*lgl.Surface, error) {
	if o.scale2x {
		big, err := s.Scale2x()
		if err != nil {
			return nil, err
		}
		s = big
	}
	if o.rotate%360 != 0 {
		r, err := s.Rotate(o.rotate)
		if err != nil {
			return nil, err
		}
		s = r
	}
	return s, nil
}

// viewer holds the image shown in the window. The watcher replaces it from
// its own goroutine.
type viewer struct {
	mu   sync.Mutex
	opts options
	src  *lgl.Surface // as loaded
	img  *lgl.Surface // src after opts
}

// set shows src with the current options applied.
func (v *viewer) set(src *lgl.Surface) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	img, err := v.opts.prepare(src)
	if err != nil {
		return err
	}
	v.src, v.img = src, img
	return nil
}

// update changes the options and re-applies them to the loaded image.
func (v *viewer) update(fn func(*options)) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	opts := v.opts
	fn(&opts)
	if v.src != nil {
		img, err := opts.prepare(v.src)
		if err != nil {
			return err
		}
		v.img = img
	}
	v.opts = opts
	return nil
}

type keyboard interface {
	KeyJustPressed(k window.Key) bool
}

// handleKeys applies the viewer key bindings: R and L rotate by 90 degrees,
// S toggles Scale2x.
func (v *viewer) handleKeys(kb keyboard) error {
	switch {
	case kb.KeyJustPressed(ebiten.KeyR):
		return v.update(func(o *options) { o.rotate = (o.rotate + 90) % 360 })
	case kb.KeyJustPressed(ebiten.KeyL):
		return v.update(func(o *options) { o.rotate = (o.rotate + 270) % 360 })
	case kb.KeyJustPressed(ebiten.KeyS):
		return v.update(func(o *options) { o.scale2x = !o.scale2x })
	}
	return nil
}

func (v *viewer) frame(fb *lgl.Surface, _ time.Duration) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	fb.Fill(lgl.RGB(32, 32, 32))
	if v.img != nil {
		fb.Blit(v.img, (fb.Width()-v.img.Width())/2, (fb.Height()-v.img.Height())/2)
	}
	return nil
}

func main() {
	var (
		scale   = flag.Int("scale", 1, "window scale factor")
		scale2x = flag.Bool("scale2x", false, "enlarge the image with Scale2x")
		rotate  = flag.Int("rotate", 0, "rotate the image clockwise by this many degrees")
		watch   = flag.Bool("watch", true, "reload the image when the file changes")
		verbose = flag.Bool("v", false, "log debug messages")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: lglview [flags] image\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	lgl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	src, err := imageio.Load(path)
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}
	v := &viewer{opts: options{scale2x: *scale2x, rotate: *rotate}}
	if err := v.set(src); err != nil {
		log.Fatalf("Failed to transform: %v", err)
	}

	// Square so that the image still fits after a quarter turn.
	side := max(src.Width(), src.Height())
	if *scale2x {
		side *= 2
	}
	cfg := window.DefaultConfig()
	cfg.Title = "lglview - " + path
	cfg.Width, cfg.Height = side, side
	cfg.Scale = *scale

	var w *window.Window
	w, err = window.New(cfg, func(fb *lgl.Surface, dt time.Duration) error {
		if err := v.handleKeys(w); err != nil {
			log.Printf("Transform failed: %v", err)
		}
		return v.frame(fb, dt)
	})
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}

	if *watch {
		watcher, err := imageio.NewWatcher(path, func(s *lgl.Surface) {
			if err := v.set(s); err != nil {
				log.Printf("Reload failed: %v", err)
				return
			}
			w.SetTitle(fmt.Sprintf("lglview - %s (%dx%d)", path, s.Width(), s.Height()))
			lgl.Logger().Info("lglview: reloaded", "path", path, "size", s.Rect())
		})
		if err != nil {
			log.Fatalf("Failed to watch: %v", err)
		}
		watcher.Start()
		defer watcher.Stop()
	}

	if err := w.Run(); err != nil {
		log.Printf("Window: %v", err)
	}
}
