// Command lgldemo renders a tour of the lgl software rasterizer to an image
// file.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/lgl"
	"github.com/gogpu/lgl/imageio"
	"github.com/gogpu/lgl/text"
)

func main() {
	var (
		width   = flag.Int("width", 640, "image width")
		height  = flag.Int("height", 480, "image height")
		format  = flag.String("format", "XRGB8888", "pixel format of the canvas (e.g. RGB565, RGB332)")
		output  = flag.String("output", "demo.png", "output file (.png, .jpg, .bmp)")
		verbose = flag.Bool("v", false, "log debug messages")
	)
	flag.Parse()

	if *verbose {
		lgl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	pf, err := lgl.FormatByName(*format)
	if err != nil {
		log.Fatalf("Bad format: %v", err)
	}
	canvas, err := lgl.NewSurface(*width, *height, pf)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}
	defer canvas.Destroy()

	drawBackground(canvas)
	drawShapesDemo(canvas)
	if err := drawSpriteDemo(canvas); err != nil {
		log.Fatalf("Sprite demo: %v", err)
	}
	if err := drawTextDemo(canvas); err != nil {
		log.Fatalf("Text demo: %v", err)
	}

	if err := imageio.Save(*output, canvas); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d %v)\n", *output, *width, *height, pf)
}

func drawBackground(s *lgl.Surface) {
	const steps = 32
	h := s.Height()
	for i := 0; i < steps; i++ {
		t := float64(i) / steps
		c := lgl.HSL(220+t*40, 0.5, 0.15+t*0.2)
		y := h * i / steps
		s.FillRect(lgl.R(0, y, s.Width(), h/steps+1), c)
	}
}

func drawShapesDemo(s *lgl.Surface) {
	// Overlapping translucent circles blend with the background.
	s.DrawCircle(100, 110, 50, lgl.RGBA(255, 80, 80, 200))
	s.DrawCircle(140, 110, 50, lgl.RGBA(80, 255, 80, 160))
	s.DrawCircle(120, 145, 50, lgl.RGBA(80, 80, 255, 120))

	s.FillRect(lgl.R(220, 60, 120, 80), lgl.Hex("#ffcc00"))
	s.BlendFillRect(lgl.R(260, 90, 120, 80), lgl.RGBA(255, 255, 255, 96))
	s.DrawRect(lgl.R(220, 60, 160, 110), lgl.White)

	s.DrawTriangle(430, 170, 500, 50, 570, 170, lgl.Cyan)
	s.DrawTriangle(450, 160, 500, 80, 550, 160, lgl.RGBA(0, 0, 0, 128))

	for i := 0; i < 12; i++ {
		s.DrawLine(20, 200+i*4, 620, 200+i*12, lgl.HSL(float64(i)*30, 1, 0.5))
	}
}

// drawSpriteDemo builds a small color-keyed sprite in another format and
// blits transformed copies of it onto s.
func drawSpriteDemo(s *lgl.Surface) error {
	sprite, err := lgl.NewSurface(24, 24, lgl.FormatRGB565)
	if err != nil {
		return err
	}
	defer sprite.Destroy()

	sprite.Fill(lgl.Magenta)
	sprite.DrawCircle(12, 12, 10, lgl.Yellow)
	sprite.FillRect(lgl.R(7, 7, 3, 4), lgl.Black)
	sprite.FillRect(lgl.R(14, 7, 3, 4), lgl.Black)
	sprite.DrawLine(7, 16, 16, 16, lgl.Black)
	sprite.SetColorKey(lgl.Magenta)

	x := 20
	y := s.Height() - 140
	s.Blit(sprite, x, y)
	x += 40

	big, err := sprite.Scale2x()
	if err != nil {
		return err
	}
	defer big.Destroy()
	s.Blit(big, x, y)
	x += 64

	wide, err := sprite.Scale(72, 36)
	if err != nil {
		return err
	}
	defer wide.Destroy()
	s.Blit(wide, x, y)
	x += 88

	for _, deg := range []int{30, 90, 135} {
		r, err := big.Rotate(deg)
		if err != nil {
			return err
		}
		s.Blit(r, x, y)
		x += r.Width() + 8
		r.Destroy()
	}

	flipped, err := big.Copy()
	if err != nil {
		return err
	}
	defer flipped.Destroy()
	flipped.FlipY()
	s.Blit(flipped, x, y)
	return nil
}

func drawTextDemo(s *lgl.Surface) error {
	y := s.Height() - 60
	text.DrawBitmapText(s, 20, y, "lgl: software raster core\n8x8 bitmap font", nil, lgl.White)

	face, err := text.GoRegular(22)
	if err != nil {
		return err
	}
	msg := "TrueType via x/image + HarfBuzz"
	x := s.Width() - text.MeasureString(face, msg) - 20
	text.DrawString(s, x, y-8, msg, face, lgl.RGBA(255, 255, 255, 230))
	return nil
}
