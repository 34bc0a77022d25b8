package haircolor

import (
	"image/color"
	"math"
	"testing"
)

// tolerance for floating point comparisons
const colorEpsilon = 0.01

func colorsEqual(c1, c2 RGBA, epsilon float64) bool {
	return math.Abs(c1.R-c2.R) < epsilon &&
		math.Abs(c1.G-c2.G) < epsilon &&
		math.Abs(c1.B-c2.B) < epsilon &&
		math.Abs(c1.A-c2.A) < epsilon
}

func TestFromColorUnpremultiplies(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want RGBA
	}{
		{"opaque", color.RGBA{R: 255, G: 128, A: 255}, RGBA{R: 1, G: 128.0 / 255, A: 1}},
		{"half premultiplied", color.RGBA{R: 128, A: 128}, RGBA{R: 1, A: 128.0 / 255}},
		{"nrgba", color.NRGBA{G: 255, A: 64}, RGBA{G: 1, A: 64.0 / 255}},
		{"gray", color.Gray{Y: 51}, RGBA{R: 0.2, G: 0.2, B: 0.2, A: 1}},
		{"transparent", color.RGBA{}, Transparent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColor(tt.in); !colorsEqual(got, tt.want, colorEpsilon) {
				t.Errorf("FromColor(%v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorRoundTrip(t *testing.T) {
	c := RGBA{R: 0.2, G: 0.4, B: 0.6, A: 0.8}
	if got := FromColor(c.Color()); !colorsEqual(got, c, colorEpsilon) {
		t.Errorf("round trip = %+v, want %+v", got, c)
	}
}

func TestClamp(t *testing.T) {
	got := RGBA{R: -0.5, G: 1.5, B: 0.5, A: 2}.Clamp()
	want := RGBA{R: 0, G: 1, B: 0.5, A: 1}
	if got != want {
		t.Errorf("Clamp() = %+v, want %+v", got, want)
	}
}

func TestLerp(t *testing.T) {
	got := Black.Lerp(White, 0.25)
	if !colorsEqual(got, RGB(0.25, 0.25, 0.25), 1e-9) {
		t.Errorf("Lerp = %+v", got)
	}
}

func TestEqual(t *testing.T) {
	if !RGB(0.5, 0.5, 0.5).Equal(RGB(0.501, 0.5, 0.5)) {
		t.Error("colors within one 8-bit step should be equal")
	}
	if RGB(0.5, 0.5, 0.5).Equal(RGB(0.52, 0.5, 0.5)) {
		t.Error("colors several steps apart should differ")
	}
}
