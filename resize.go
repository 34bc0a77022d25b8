package haircolor

import (
	"image"
	"math"

	"github.com/nfnt/resize"
)

// ResizeToMatch rescales photo so its height equals ref's height, keeping
// the aspect ratio. The scale factor is refHeight / photoHeight and the
// resampling filter is Lanczos3.
//
// The second result is false when either image is missing or empty.
func ResizeToMatch(photo, ref image.Image) (*Pixmap, bool) {
	if photo == nil || ref == nil {
		return nil, false
	}
	pb, rb := photo.Bounds(), ref.Bounds()
	if pb.Empty() || rb.Empty() {
		return nil, false
	}

	scale := float64(rb.Dy()) / float64(pb.Dy())
	w := int(math.Round(float64(pb.Dx()) * scale))
	if w < 1 {
		w = 1
	}
	h := rb.Dy()

	if w == pb.Dx() && h == pb.Dy() {
		return FromImage(photo), true
	}

	src := photo
	if pm, ok := photo.(*Pixmap); ok {
		// nfnt/resize has a fast path for *image.NRGBA only.
		src = pm.ToImage()
	}
	// #nosec G115 -- w and h are positive
	out := resize.Resize(uint(w), uint(h), src, resize.Lanczos3)
	Logger().Debug("haircolor: photo resized",
		"from", pb.Size(), "to", image.Pt(w, h), "scale", scale)
	return FromImage(out), true
}
