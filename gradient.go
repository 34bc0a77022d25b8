package haircolor

import (
	"github.com/gogpu/haircolor/internal/color"
)

// Gradient strip dimensions. Key points in [0,1] are scaled by
// GradientWidth to find their position along the strip.
const (
	GradientWidth  = 1000
	GradientHeight = 480
)

// Gradient is a dual-linear color ramp over [0, GradientWidth]. Segment A
// runs from MinColor at MinPoint to ModeColor at ModePoint and is visible
// left of ModePoint; segment B runs from ModeColor at ModePoint to MaxColor
// at MaxPoint and covers the rest. Each segment pads its end colors.
//
// Gradient is a comparable value and is used as a cache key.
type Gradient struct {
	MinPoint, ModePoint, MaxPoint float64
	MinColor, ModeColor, MaxColor RGBA
}

// NewGradient keys the three chart colors to the extracted lightness.
// The key points are used as given, even when they are not ordered.
func NewGradient(l Lightness, minColor, modeColor, maxColor RGBA) Gradient {
	return Gradient{
		MinPoint:  l.Min,
		ModePoint: l.Mode,
		MaxPoint:  l.Max,
		MinColor:  minColor,
		ModeColor: modeColor,
		MaxColor:  maxColor,
	}
}

// segment is one smooth interpolation between two stops along the strip.
type segment struct {
	x0, x1 float64
	c0, c1 RGBA
}

// colorAt evaluates the segment at x. A zero-width segment switches from c0
// to c1 just past its stop.
func (s segment) colorAt(x float64) RGBA {
	if s.x1 == s.x0 {
		if x <= s.x0 {
			return s.c0
		}
		return s.c1
	}
	t := (x - s.x0) / (s.x1 - s.x0)
	switch {
	case t <= 0:
		return s.c0
	case t >= 1:
		return s.c1
	}
	// smoothstep
	t = t * t * (3 - 2*t)
	return interpolateColorLinear(s.c0, s.c1, t)
}

func (g Gradient) segments() (a, b segment) {
	a = segment{
		x0: g.MinPoint * GradientWidth, x1: g.ModePoint * GradientWidth,
		c0: g.MinColor, c1: g.ModeColor,
	}
	b = segment{
		x0: g.ModePoint * GradientWidth, x1: g.MaxPoint * GradientWidth,
		c0: g.ModeColor, c1: g.MaxColor,
	}
	return a, b
}

// ColorAt returns the gradient color at strip position x in [0, GradientWidth].
func (g Gradient) ColorAt(x float64) RGBA {
	a, b := g.segments()
	if x < b.x0 {
		return a.colorAt(x).Clamp()
	}
	return b.colorAt(x).Clamp()
}

// LevelColor returns the gradient color for an 8-bit lightness level.
// The level is placed at level/255*GradientWidth, the same position a
// lightness statistic read back as level/255 keys to.
func (g Gradient) LevelColor(level uint8) RGBA {
	return g.ColorAt(float64(level) / 255 * GradientWidth)
}

// Rasterize renders the strip as a GradientWidth x GradientHeight image,
// sampling each column at its center.
func (g Gradient) Rasterize() *Pixmap {
	pm := NewPixmap(GradientWidth, GradientHeight)
	row := pm.data[:GradientWidth*4]
	for x := 0; x < GradientWidth; x++ {
		u := g.ColorAt(float64(x) + 0.5).u8()
		row[x*4+0] = u.R
		row[x*4+1] = u.G
		row[x*4+2] = u.B
		row[x*4+3] = u.A
	}
	for y := 1; y < GradientHeight; y++ {
		copy(pm.data[y*GradientWidth*4:(y+1)*GradientWidth*4], row)
	}
	return pm
}

// interpolateColorLinear interpolates between two colors in linear light.
func interpolateColorLinear(c1, c2 RGBA, t float64) RGBA {
	linear1 := color.SRGBToLinearColor(c1.Clamp().f32())
	linear2 := color.SRGBToLinearColor(c2.Clamp().f32())

	t32 := float32(t)
	mixed := color.ColorF32{
		R: linear1.R + t32*(linear2.R-linear1.R),
		G: linear1.G + t32*(linear2.G-linear1.G),
		B: linear1.B + t32*(linear2.B-linear1.B),
		A: linear1.A + t32*(linear2.A-linear1.A),
	}
	return fromF32(color.LinearToSRGBColor(mixed))
}
