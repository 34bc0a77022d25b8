package blend

import (
	"math"
	"testing"

	"github.com/gogpu/haircolor/internal/color"
)

func near(a, b color.ColorF32) bool {
	const eps = 1e-5
	return math.Abs(float64(a.R-b.R)) < eps &&
		math.Abs(float64(a.G-b.G)) < eps &&
		math.Abs(float64(a.B-b.B)) < eps &&
		math.Abs(float64(a.A-b.A)) < eps
}

func TestBlend(t *testing.T) {
	red := color.ColorF32{R: 1, A: 1}
	blue := color.ColorF32{B: 1, A: 1}
	halfRed := color.ColorF32{R: 1, A: 0.5}
	clear := color.ColorF32{}

	tests := []struct {
		name     string
		src, dst color.ColorF32
		mode     Mode
		want     color.ColorF32
	}{
		{"over opaque", red, blue, ModeSourceOver, red},
		{"over transparent src", clear, blue, ModeSourceOver, blue},
		{"over half", halfRed, blue, ModeSourceOver, color.ColorF32{R: 0.5, B: 0.5, A: 1}},
		{"over both clear", clear, clear, ModeSourceOver, clear},
		{"copy", halfRed, blue, ModeSourceCopy, halfRed},
		{"in opaque dst", halfRed, blue, ModeSourceIn, halfRed},
		{"in clear dst", red, clear, ModeSourceIn, clear},
		{"in half dst", red, color.ColorF32{G: 1, A: 0.5}, ModeSourceIn, color.ColorF32{R: 1, A: 0.5}},
		{"unknown mode", red, blue, Mode(99), red},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blend(tt.src, tt.dst, tt.mode); !near(got, tt.want) {
				t.Errorf("Blend(%v, %v, %v) = %v, want %v", tt.src, tt.dst, tt.mode, got, tt.want)
			}
		})
	}
}

func TestBlendU8FastPaths(t *testing.T) {
	dst := color.ColorU8{R: 10, G: 20, B: 30, A: 255}
	if got := BlendU8(color.ColorU8{R: 200}, dst, ModeSourceOver); got != dst {
		t.Errorf("transparent source: got %v, want %v", got, dst)
	}
	src := color.ColorU8{R: 200, G: 100, B: 50, A: 255}
	if got := BlendU8(src, dst, ModeSourceOver); got != src {
		t.Errorf("opaque source: got %v, want %v", got, src)
	}
	got := BlendU8(color.ColorU8{R: 255, A: 128}, color.ColorU8{A: 255}, ModeSourceOver)
	if got.A != 255 || got.R < 127 || got.R > 129 {
		t.Errorf("half source: got %v", got)
	}
}

func TestModeString(t *testing.T) {
	if ModeSourceIn.String() != "SourceIn" || Mode(42).String() != "Unknown" {
		t.Error("unexpected Mode names")
	}
}
