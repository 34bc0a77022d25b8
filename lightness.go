package haircolor

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// DefaultBatchSize is the longer side, in pixels, that the grayscale hair
// region is reduced to before scanning. It bounds the scan cost regardless
// of the camera resolution.
const DefaultBatchSize = 500

// Lightness holds the lightness distribution of the hair region.
// Min <= Mode <= Max is expected but not enforced.
type Lightness struct {
	Min, Mode, Max float64
}

// String formats the statistics the way the diagnostic label does.
func (l Lightness) String() string {
	return fmt.Sprintf("min(%.4f) mode(%.4f) max(%.4f)", l.Min, l.Mode, l.Max)
}

// StatsOptions configures the lightness statistics extractor.
type StatsOptions struct {
	// BatchSize is the longer side of the scanned image. Default
	// DefaultBatchSize.
	BatchSize int

	// Interpolator resamples the image to BatchSize. Default xdraw.BiLinear,
	// whose kernel has no negative lobes, so a flat region cannot ring
	// beyond its own lightness at the matte edge. xdraw.CatmullRom is the
	// bicubic choice; see BicubicStatsOptions.
	Interpolator xdraw.Interpolator

	// Upscale resamples images whose longer side is below BatchSize up to
	// it. Otherwise they are scanned as is.
	Upscale bool

	// AlphaThreshold is the coverage in [0,1] below which a pixel is
	// treated as outside the hair region. Default 0.5.
	AlphaThreshold float64
}

// BicubicStatsOptions resamples every image to exactly BatchSize with the
// Catmull-Rom bicubic kernel. Its negative lobes can move edge pixels of the
// hair region by a level or two; flat interiors are unaffected.
func BicubicStatsOptions() StatsOptions {
	o := DefaultStatsOptions()
	o.Interpolator = xdraw.CatmullRom
	o.Upscale = true
	return o
}

// DefaultStatsOptions returns the default extractor configuration.
func DefaultStatsOptions() StatsOptions {
	return StatsOptions{
		BatchSize:      DefaultBatchSize,
		Interpolator:   xdraw.BiLinear,
		AlphaThreshold: 0.5,
	}
}

func (o StatsOptions) normalized() StatsOptions {
	d := DefaultStatsOptions()
	if o.BatchSize <= 0 {
		o.BatchSize = d.BatchSize
	}
	if o.Interpolator == nil {
		o.Interpolator = d.Interpolator
	}
	if o.AlphaThreshold <= 0 || o.AlphaThreshold > 1 {
		o.AlphaThreshold = d.AlphaThreshold
	}
	return o
}

// histogram counts 8-bit lightness levels inside the hair region.
type histogram struct {
	counts [256]int
	total  int
}

func (h *histogram) add(level uint8) {
	h.counts[level]++
	h.total++
}

// stats returns the lowest, fullest and highest populated levels.
// Ties for the fullest level go to the darker level. An empty histogram
// yields zeros.
func (h *histogram) stats() (lo, mode, hi uint8) {
	if h.total == 0 {
		return 0, 0, 0
	}
	best := -1
	first := true
	for level, n := range h.counts {
		if n == 0 {
			continue
		}
		// #nosec G115 -- level indexes a [256] array
		l := uint8(level)
		if first {
			lo = l
			first = false
		}
		hi = l
		if n > best {
			best = n
			mode = l
		}
	}
	return lo, mode, hi
}

// LightnessInfo scans a grayscale hair region and returns a 1x1 image whose
// red, green and blue channels hold the minimum, modal and maximum
// lightness. Alpha is opaque and carries no information.
func LightnessInfo(gray *Pixmap, opts StatsOptions) *Pixmap {
	opts = opts.normalized()
	out := NewPixmap(1, 1)
	out.data[3] = 255
	if gray.Empty() {
		Logger().Warn("haircolor: lightness of an empty image")
		return out
	}

	var h histogram
	threshold := opts.AlphaThreshold
	longer := max(gray.width, gray.height)

	if longer == opts.BatchSize || (longer < opts.BatchSize && !opts.Upscale) {
		minA := uint8(threshold*255 + 0.5)
		for i := 0; i < len(gray.data); i += 4 {
			if a := gray.data[i+3]; a == 0 || a < minA {
				continue
			}
			h.add(gray.data[i])
		}
	} else {
		scaled := resample(gray, opts.BatchSize, opts.Interpolator)
		minA := uint32(threshold*0xffff + 0.5)
		b := scaled.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := scaled.RGBA64At(x, y)
				a := uint32(c.A)
				if a == 0 || a < minA {
					continue
				}
				// Unpremultiply and round to the nearest 8-bit level.
				level := (uint32(c.R)*255 + a/2) / a
				if level > 255 {
					level = 255
				}
				// #nosec G115 -- clamped above
				h.add(uint8(level))
			}
		}
	}

	lo, mode, hi := h.stats()
	if h.total == 0 {
		Logger().Warn("haircolor: hair region is empty, lightness defaults to zero")
	}
	out.data[0], out.data[1], out.data[2] = lo, mode, hi
	return out
}

// resample scales src so that its longer side equals size.
func resample(src *Pixmap, size int, interp xdraw.Interpolator) *image.RGBA64 {
	w, h := src.width, src.height
	if w >= h {
		h = max(1, (h*size+w/2)/w)
		w = size
	} else {
		w = max(1, (w*size+h/2)/h)
		h = size
	}
	dst := image.NewRGBA64(image.Rect(0, 0, w, h))
	interp.Scale(dst, dst.Bounds(), src.ToImage(), src.Bounds(), xdraw.Src, nil)
	return dst
}

// ExtractLightness runs LightnessInfo and reads the encoded pixel back
// through s.
func ExtractLightness(s *Sampler, gray *Pixmap, opts StatsOptions) (Lightness, error) {
	if gray == nil {
		return Lightness{}, ErrMissingInput
	}
	c, err := s.Sample(LightnessInfo(gray, opts), 0, 0)
	if err != nil {
		return Lightness{}, err
	}
	l := Lightness{Min: c.R, Mode: c.G, Max: c.B}
	Logger().Debug("haircolor: lightness extracted", "min", l.Min, "mode", l.Mode, "max", l.Max)
	return l, nil
}
