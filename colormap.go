package haircolor

import (
	"github.com/gogpu/haircolor/internal/blend"
	icolor "github.com/gogpu/haircolor/internal/color"
)

// LUT maps an 8-bit lightness level to a color.
type LUT [256]icolor.ColorU8

// NewLUT samples the gradient at every lightness level.
func NewLUT(g Gradient) *LUT {
	var lut LUT
	for i := range lut {
		// #nosec G115 -- i indexes a [256] array
		lut[i] = g.LevelColor(uint8(i)).u8()
	}
	return &lut
}

// ColorMap recolors a grayscale image through lut. Each pixel's lightness
// (its red channel) is the lookup index; the pixel's alpha scales the
// looked-up alpha, so transparent pixels stay transparent.
func ColorMap(gray *Pixmap, lut *LUT) *Pixmap {
	out := NewPixmap(gray.width, gray.height)
	for i := 0; i < len(gray.data); i += 4 {
		a := gray.data[i+3]
		if a == 0 {
			continue
		}
		c := lut[gray.data[i]]
		out.data[i+0] = c.R
		out.data[i+1] = c.G
		out.data[i+2] = c.B
		out.data[i+3] = uint8((uint32(c.A)*uint32(a) + 127) / 255)
	}
	return out
}

// SourceOver lays src over dst. The result has dst's extent.
func SourceOver(src, dst *Pixmap) *Pixmap {
	return Composite(src, dst, blend.ModeSourceOver)
}
