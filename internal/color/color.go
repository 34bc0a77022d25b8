// Package color provides the color math shared by the recoloring stages:
// sRGB transfer functions, luminance weights and byte/float conversions.
package color

// ColorF32 is a non-premultiplied color with float32 components in [0,1].
// Alpha is always linear (never gamma-encoded).
type ColorF32 struct {
	R, G, B, A float32
}

// ColorU8 is a non-premultiplied color with uint8 components in [0,255].
type ColorU8 struct {
	R, G, B, A uint8
}

// Rec. 709 luma coefficients. These match the false-color remap used for
// the hair region, so the cutout and the statistics agree on lightness.
const (
	LumaR = 0.2126
	LumaG = 0.7152
	LumaB = 0.0722
)

// LuminanceU8 returns the Rec. 709 weighted luminance of 8-bit sRGB
// components, rounded to the nearest level.
func LuminanceU8(r, g, b uint8) uint8 {
	l := LumaR*float64(r) + LumaG*float64(g) + LumaB*float64(b)
	if l >= 255 {
		return 255
	}
	return uint8(l + 0.5)
}
