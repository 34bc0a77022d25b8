package haircolor

import (
	"image"
	"math"
	"testing"
)

func TestResizeToMatch(t *testing.T) {
	tests := []struct {
		name         string
		photo, matte image.Point
		wantW, wantH int
	}{
		{"downscale", image.Pt(1000, 2000), image.Pt(300, 500), 250, 500},
		{"upscale", image.Pt(40, 30), image.Pt(10, 60), 80, 60},
		{"same size", image.Pt(64, 48), image.Pt(64, 48), 64, 48},
		{"landscape to portrait matte", image.Pt(400, 300), image.Pt(225, 400), 533, 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			photo := NewPixmap(tt.photo.X, tt.photo.Y)
			photo.Clear(RGB(0.3, 0.6, 0.9))
			matte := NewMatte(tt.matte.X, tt.matte.Y)

			got, ok := ResizeToMatch(photo, matte)
			if !ok {
				t.Fatal("ResizeToMatch returned no result")
			}
			if got.Height() != matte.Height() {
				t.Errorf("height = %d, want %d", got.Height(), matte.Height())
			}
			if got.Width() != tt.wantW {
				t.Errorf("width = %d, want %d", got.Width(), tt.wantW)
			}
			srcAspect := float64(tt.photo.X) / float64(tt.photo.Y)
			gotAspect := float64(got.Width()) / float64(got.Height())
			if math.Abs(srcAspect-gotAspect) > 1/float64(got.Height()) {
				t.Errorf("aspect = %v, want %v", gotAspect, srcAspect)
			}
			// A flat photo stays flat through Lanczos resampling.
			if c := got.GetPixel(got.Width()/2, got.Height()/2); !colorsEqual(c, RGB(0.3, 0.6, 0.9), colorEpsilon) {
				t.Errorf("center pixel = %+v", c)
			}
		})
	}
}

func TestResizeToMatchMissing(t *testing.T) {
	photo := NewPixmap(10, 10)
	var nilMatte *Matte
	tests := []struct {
		name       string
		photo, ref image.Image
	}{
		{"nil photo", nil, NewMatte(5, 5)},
		{"nil ref", photo, nil},
		{"nil matte pointer", photo, nilMatte},
		{"empty ref", photo, NewMatte(0, 0)},
		{"empty photo", NewPixmap(0, 0), NewMatte(5, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := ResizeToMatch(tt.photo, tt.ref); ok || got != nil {
				t.Errorf("ResizeToMatch = (%v, %v), want (nil, false)", got, ok)
			}
		})
	}
}
