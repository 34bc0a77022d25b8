package haircolor

import (
	"fmt"
	"image"
	"image/color"
)

// Sampler reads single pixels back from an image into a reusable RGBA8
// buffer, the same way a display readback would. Create one per owner and
// reuse it; a Sampler is not safe for concurrent use.
type Sampler struct {
	buf [4]uint8
}

// NewSampler creates a Sampler.
func NewSampler() *Sampler {
	return &Sampler{}
}

// Sample renders the 1x1 region at (x, y), relative to img.Bounds().Min,
// and returns its non-premultiplied components divided by 255.
// Coordinates outside the image return ErrOutOfBounds.
func (s *Sampler) Sample(img image.Image, x, y int) (RGBA, error) {
	if img == nil {
		return Transparent, ErrMissingInput
	}
	b := img.Bounds()
	p := image.Pt(x, y).Add(b.Min)
	if !p.In(b) {
		return Transparent, fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, x, y, b.Dx(), b.Dy())
	}

	if pm, ok := img.(*Pixmap); ok {
		i := (p.Y*pm.width + p.X) * 4
		copy(s.buf[:], pm.data[i:i+4])
	} else {
		n := color.NRGBAModel.Convert(img.At(p.X, p.Y)).(color.NRGBA)
		s.buf = [4]uint8{n.R, n.G, n.B, n.A}
	}

	return RGBA{
		R: float64(s.buf[0]) / 255,
		G: float64(s.buf[1]) / 255,
		B: float64(s.buf[2]) / 255,
		A: float64(s.buf[3]) / 255,
	}, nil
}
