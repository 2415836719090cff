package lgl

import (
	"errors"
	"image/color"
	"testing"
)

func TestBlendColors(t *testing.T) {
	tests := []struct {
		name     string
		src, dst Color
		policy   AlphaPolicy
		want     Color
	}{
		{"half red over blue, opaque", RGBA(255, 0, 0, 128), RGB(0, 0, 255), AlphaOpaque, Color{128, 0, 127, 255}},
		{"half red over blue, accumulate", RGBA(255, 0, 0, 128), RGB(0, 0, 255), AlphaAccumulate, Color{128, 0, 127, 255}},
		{"over transparent, accumulate", RGBA(200, 100, 50, 64), Transparent, AlphaAccumulate, Color{50, 25, 12, 64}},
		{"over transparent, opaque", RGBA(200, 100, 50, 64), Transparent, AlphaOpaque, Color{50, 25, 12, 255}},
		{"accumulate partial", RGBA(0, 0, 0, 100), RGBA(255, 255, 255, 100), AlphaAccumulate, Color{155, 155, 155, 160}},
		{"full alpha replaces", RGBA(10, 20, 30, 255), RGB(200, 200, 200), AlphaAccumulate, Color{10, 20, 30, 255}},
		{"zero alpha keeps color", RGBA(10, 20, 30, 0), RGBA(200, 150, 100, 80), AlphaAccumulate, Color{200, 150, 100, 80}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BlendColors(tt.src, tt.dst, tt.policy); got != tt.want {
				t.Errorf("BlendColors() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#F00", RGB(255, 0, 0)},
		{"0f08", RGBA(0, 255, 0, 136)},
		{"#336699", RGB(0x33, 0x66, 0x99)},
		{"00FF0080", RGBA(0, 255, 0, 128)},
		{"nope", Black},
		{"", Black},
	}
	for _, tt := range tests {
		if got := Hex(tt.in); got != tt.want {
			t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseHex("#12345G"); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("ParseHex(bad digit) error = %v, want ErrInvalidParams", err)
	}
}

func TestColorInterop(t *testing.T) {
	c := RGBA(10, 20, 30, 40)
	if got := FromColor(c.NRGBA()); got != c {
		t.Errorf("FromColor(NRGBA()) = %v, want %v", got, c)
	}
	if got := FromColor(color.RGBA{R: 128, A: 255}); got != RGB(128, 0, 0) {
		t.Errorf("FromColor(RGBA) = %v", got)
	}
	if got := FromColor(color.Gray{Y: 77}); got != RGB(77, 77, 77) {
		t.Errorf("FromColor(Gray) = %v", got)
	}
	if got := c.String(); got != "#0A141E28" {
		t.Errorf("String() = %q", got)
	}
	if got := HSL(120, 1, 0.5); got != Green {
		t.Errorf("HSL(120,1,0.5) = %v, want %v", got, Green)
	}
}
