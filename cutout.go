package haircolor

import (
	"github.com/gogpu/haircolor/internal/blend"
	icolor "github.com/gogpu/haircolor/internal/color"
)

// MaskToAlpha converts a matte into a white image whose alpha is the matte
// value. The result has the matte's extent.
func MaskToAlpha(matte *Matte) *Pixmap {
	if matte.Empty() {
		return NewPixmap(0, 0)
	}
	out := NewPixmap(matte.width, matte.height)
	for i, v := range matte.data {
		if v == 0 {
			continue
		}
		o := i * 4
		out.data[o+0] = 255
		out.data[o+1] = 255
		out.data[o+2] = 255
		out.data[o+3] = v
	}
	return out
}

// Composite applies a Porter-Duff operator pixel by pixel. src is placed at
// dst's origin; the result has dst's extent and src pixels outside their own
// extent read as transparent.
func Composite(src, dst *Pixmap, mode blend.Mode) *Pixmap {
	out := NewPixmap(dst.width, dst.height)
	for y := 0; y < dst.height; y++ {
		for x := 0; x < dst.width; x++ {
			var s icolor.ColorU8
			if src.inBounds(x, y) {
				s = src.pixelU8(x, y)
			}
			out.setPixelU8(x, y, blend.BlendU8(s, dst.pixelU8(x, y), mode))
		}
	}
	return out
}

// FalseColorGray remaps every pixel along a black-to-white ramp keyed on its
// Rec. 709 luminance: R, G and B all become the luminance, alpha is kept.
func FalseColorGray(src *Pixmap) *Pixmap {
	out := NewPixmap(src.width, src.height)
	for i := 0; i < len(src.data); i += 4 {
		a := src.data[i+3]
		if a == 0 {
			continue
		}
		l := icolor.LuminanceU8(src.data[i], src.data[i+1], src.data[i+2])
		out.data[i+0] = l
		out.data[i+1] = l
		out.data[i+2] = l
		out.data[i+3] = a
	}
	return out
}

// CutoutGray isolates the matte region of photo and converts it to
// luminance. Pixels where the matte is zero, or that fall outside the matte,
// are transparent black, so they never reach the lightness statistics.
//
// The second result is false when either input is missing or empty.
func CutoutGray(photo *Pixmap, matte *Matte) (*Pixmap, bool) {
	if photo.Empty() || matte.Empty() {
		return nil, false
	}
	cut := Composite(photo, MaskToAlpha(matte), blend.ModeSourceIn)
	if cut.width != photo.width || cut.height != photo.height {
		// Keep the photo's extent; the matte only decides coverage.
		cut = Composite(cut, NewPixmap(photo.width, photo.height), blend.ModeSourceCopy)
	}
	return FalseColorGray(cut), true
}
