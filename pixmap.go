package haircolor

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg" // register JPEG for LoadImage
	"image/png"
	"os"

	icolor "github.com/gogpu/haircolor/internal/color"
)

// Pixmap is the image value passed between pipeline stages: a rectangular
// RGBA8 buffer with non-premultiplied components. Stages never modify a
// Pixmap they receive; they return a new one.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Empty reports whether the pixmap has no pixels.
func (p *Pixmap) Empty() bool {
	return p == nil || p.width == 0 || p.height == 0
}

func (p *Pixmap) inBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// pixelU8 returns the raw pixel at (x, y). The caller checks bounds.
func (p *Pixmap) pixelU8(x, y int) icolor.ColorU8 {
	i := (y*p.width + x) * 4
	return icolor.ColorU8{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

func (p *Pixmap) setPixelU8(x, y int, c icolor.ColorU8) {
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// SetPixel sets the color of a single pixel.
// Coordinates outside the pixmap are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if !p.inBounds(x, y) {
		return
	}
	p.setPixelU8(x, y, c.u8())
}

// GetPixel returns the color of a single pixel.
// Coordinates outside the pixmap read as Transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if !p.inBounds(x, y) {
		return Transparent
	}
	return fromU8(p.pixelU8(x, y))
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	u := c.u8()
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = u.R
		p.data[i+1] = u.G
		p.data[i+2] = u.B
		p.data[i+3] = u.A
	}
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	c := NewPixmap(p.width, p.height)
	copy(c.data, p.data)
	return c
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image. The result's origin is the
// image's Bounds().Min.
func FromImage(img image.Image) *Pixmap {
	if pm, ok := img.(*Pixmap); ok {
		return pm.Clone()
	}
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())

	if n, ok := img.(*image.NRGBA); ok {
		for y := 0; y < pm.height; y++ {
			off := n.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(pm.data[y*pm.width*4:(y+1)*pm.width*4], n.Pix[off:off+pm.width*4])
		}
		return pm
	}

	// The generic path goes through draw so premultiplied sources
	// (image.RGBA, decoded JPEGs) are converted by Set.
	draw.Draw(pm, pm.Bounds(), img, bounds.Min, draw.Src)
	return pm
}

// LoadImage decodes a PNG or JPEG file.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, p.ToImage()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if !p.inBounds(x, y) {
		return color.NRGBA{}
	}
	u := p.pixelU8(x, y)
	return color.NRGBA{R: u.R, G: u.G, B: u.B, A: u.A}
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	if !p.inBounds(x, y) {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	p.setPixelU8(x, y, icolor.ColorU8{R: n.R, G: n.G, B: n.B, A: n.A})
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
