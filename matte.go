package haircolor

import (
	"image"
	"image/color"

	icolor "github.com/gogpu/haircolor/internal/color"
)

// Matte is a single-channel segmentation mask produced by the capture
// collaborator. 0 means "not hair", 255 means "certainly hair".
type Matte struct {
	width  int
	height int
	data   []uint8
}

// NewMatte creates an empty (all zero) matte.
func NewMatte(width, height int) *Matte {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Matte{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// MatteFromImage reads a matte from an image. Gray mattes use their gray
// level; alpha-encoded mattes use their coverage. Both are the luminance of
// the premultiplied sample, so transparent pixels always read as 0.
// Returns nil for a nil image.
func MatteFromImage(img image.Image) *Matte {
	if img == nil {
		return nil
	}
	if m, ok := img.(*Matte); ok {
		if m == nil {
			return nil
		}
		return m.Clone()
	}
	bounds := img.Bounds()
	m := NewMatte(bounds.Dx(), bounds.Dy())

	if g, ok := img.(*image.Gray); ok {
		for y := 0; y < m.height; y++ {
			off := g.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(m.data[y*m.width:(y+1)*m.width], g.Pix[off:off+m.width])
		}
		return m
	}

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// #nosec G115 -- safe: >>8 keeps values in [0, 255]
			m.data[y*m.width+x] = icolor.LuminanceU8(uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}
	return m
}

// Width returns the matte width.
func (m *Matte) Width() int { return m.width }

// Height returns the matte height.
func (m *Matte) Height() int { return m.height }

// Empty reports whether the matte has no pixels.
func (m *Matte) Empty() bool {
	return m == nil || m.width == 0 || m.height == 0
}

// Value returns the mask value at (x, y).
// Returns 0 for coordinates outside the matte.
func (m *Matte) Value(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// SetValue sets the mask value at (x, y). Coordinates outside are ignored.
func (m *Matte) SetValue(x, y int, v uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = v
}

// FillRect sets every value inside r (clipped to the matte) to v.
func (m *Matte) FillRect(r image.Rectangle, v uint8) {
	r = r.Intersect(m.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := m.data[y*m.width : (y+1)*m.width]
		for x := r.Min.X; x < r.Max.X; x++ {
			row[x] = v
		}
	}
}

// Coverage returns the number of non-zero matte values.
func (m *Matte) Coverage() int {
	n := 0
	for _, v := range m.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Clone creates a copy of the matte.
func (m *Matte) Clone() *Matte {
	c := NewMatte(m.width, m.height)
	copy(c.data, m.data)
	return c
}

// Bounds implements the image.Image interface. A nil matte has empty bounds.
func (m *Matte) Bounds() image.Rectangle {
	if m == nil {
		return image.Rectangle{}
	}
	return image.Rect(0, 0, m.width, m.height)
}

// At implements the image.Image interface.
func (m *Matte) At(x, y int) color.Color {
	return color.Gray{Y: m.Value(x, y)}
}

// ColorModel implements the image.Image interface.
func (m *Matte) ColorModel() color.Model {
	return color.GrayModel
}
