package haircolor

import (
	"fmt"
	"image"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

// ColorChart is the three reference colors a user picks: the color the
// darkest hair maps to, the color the most common lightness maps to, and
// the color the brightest hair maps to.
type ColorChart struct {
	Min, Mode, Max RGBA
}

// State is the lifecycle position of a Changer.
type State int

const (
	// StateEmpty has no photo.
	StateEmpty State = iota
	// StatePhotoLoaded has a photo, its hair region and lightness, but no colors.
	StatePhotoLoaded
	// StateReady can render.
	StateReady
	// StateRendered holds a render for the current photo and colors.
	StateRendered
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StatePhotoLoaded:
		return "PhotoLoaded"
	case StateReady:
		return "Ready"
	case StateRendered:
		return "Rendered"
	default:
		return "Unknown"
	}
}

// Changer recolors the hair in a photo. It caches the resized photo, the
// grayscale hair region and its lightness, so changing only the colors
// re-runs just the gradient, color map and composite stages.
//
// A Changer is not safe for concurrent use; callers serialize SetupPhoto,
// SetupColor, Render and Clear.
type Changer struct {
	opts    options
	sampler *Sampler
	metrics *metrics
	luts    *lru.Cache

	photo     *Pixmap
	hair      *Pixmap
	lightness *Lightness
	chart     *ColorChart
	image     *Pixmap
}

// NewChanger creates an empty Changer.
func NewChanger(opts ...Option) *Changer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.stages = o.stages.withDefaults()

	luts, err := lru.New(o.gradientCacheSize)
	if err != nil {
		// Only returned for a non-positive size, which options rule out.
		panic(err)
	}
	return &Changer{
		opts:    o,
		sampler: NewSampler(),
		metrics: newMetrics(o.registerer),
		luts:    luts,
	}
}

// SetupPhoto resizes photo to the matte, cuts out the hair region as
// grayscale and extracts its lightness. Any previous photo, lightness and
// render are discarded first, so a failed call leaves the Changer without
// a photo.
//
// A nil photo or matte returns ErrMissingInput; a matte that is absent or
// selects no pixels additionally matches ErrNoRegion.
func (c *Changer) SetupPhoto(photo, matte image.Image) error {
	c.photo, c.hair, c.lightness, c.image = nil, nil, nil, nil

	if photo == nil {
		return fmt.Errorf("%w: photo", ErrMissingInput)
	}
	m := MatteFromImage(matte)
	if m.Empty() {
		return fmt.Errorf("%w: %w", ErrMissingInput, ErrNoRegion)
	}
	coverage := m.Coverage()
	if coverage == 0 {
		return fmt.Errorf("%w: %w: matte is all zero", ErrMissingInput, ErrNoRegion)
	}

	start := time.Now()
	resized, ok := c.opts.stages.Resize(photo, m)
	c.metrics.ran(StageResize)
	if !ok {
		return fmt.Errorf("%w: photo could not be resized to the matte", ErrMissingInput)
	}

	hair, ok := c.opts.stages.Cutout(resized, m)
	c.metrics.ran(StageCutout)
	if !ok {
		return fmt.Errorf("%w: hair region could not be cut out", ErrMissingInput)
	}

	l, err := c.opts.stages.Lightness(c.sampler, hair, c.opts.stats)
	c.metrics.ran(StageLightness)
	if err != nil {
		return fmt.Errorf("lightness: %w", err)
	}

	c.photo, c.hair, c.lightness = resized, hair, &l
	Logger().Info("haircolor: photo set up",
		"size", resized.Bounds().Size(), "coverage", coverage,
		"lightness", l.String(), "elapsed", time.Since(start))
	return nil
}

// SetupColor stores the chart colors. The lightness is not recomputed.
func (c *Changer) SetupColor(chart ColorChart) {
	c.chart = &ColorChart{Min: chart.Min.Clamp(), Mode: chart.Mode.Clamp(), Max: chart.Max.Clamp()}
	c.image = nil
}

// Render recolors the hair region with the current chart and composites it
// over the resized photo. It returns ErrMissingInput, and no image, when
// the photo or chart is missing. Rendering the same state twice produces
// identical pixels.
func (c *Changer) Render() (*Pixmap, error) {
	start := time.Now()
	c.image = nil
	if c.photo == nil || c.hair == nil || c.lightness == nil {
		c.metrics.renders.WithLabelValues("missing").Inc()
		Logger().Warn("haircolor: render without photo")
		return nil, fmt.Errorf("%w: photo", ErrMissingInput)
	}
	if c.chart == nil {
		c.metrics.renders.WithLabelValues("missing").Inc()
		Logger().Warn("haircolor: render without colors")
		return nil, fmt.Errorf("%w: color chart", ErrMissingInput)
	}

	g := NewGradient(*c.lightness, c.chart.Min, c.chart.Mode, c.chart.Max)
	lut := c.lut(g)

	recolored := ColorMap(c.hair, lut)
	c.metrics.ran(StageColorMap)

	out := SourceOver(recolored, c.photo)
	c.metrics.ran(StageComposite)

	if c.opts.diagnostics {
		labeled, err := c.opts.stages.Label(out, LabelText(*c.lightness))
		c.metrics.ran(StageLabel)
		if err != nil {
			c.metrics.renders.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("diagnostic label: %w", err)
		}
		out = labeled
	}

	c.image = out
	c.metrics.renders.WithLabelValues("ok").Inc()
	c.metrics.renderSeconds.Observe(time.Since(start).Seconds())
	return out, nil
}

// lut returns the memoized lookup table for g, building it on a miss.
func (c *Changer) lut(g Gradient) *LUT {
	if v, ok := c.luts.Get(g); ok {
		return v.(*LUT)
	}
	lut := NewLUT(g)
	c.metrics.ran(StageGradient)
	c.luts.Add(g, lut)
	return lut
}

// Clear discards the photo, colors, lightness and render.
func (c *Changer) Clear() {
	c.photo, c.hair, c.lightness, c.chart, c.image = nil, nil, nil, nil, nil
}

// State reports where the Changer is in its lifecycle.
func (c *Changer) State() State {
	switch {
	case c.photo == nil:
		return StateEmpty
	case c.chart == nil:
		return StatePhotoLoaded
	case c.image != nil:
		return StateRendered
	default:
		return StateReady
	}
}

// Lightness returns the lightness of the current hair region.
func (c *Changer) Lightness() (Lightness, bool) {
	if c.lightness == nil {
		return Lightness{}, false
	}
	return *c.lightness, true
}

// Chart returns the current colors.
func (c *Changer) Chart() (ColorChart, bool) {
	if c.chart == nil {
		return ColorChart{}, false
	}
	return *c.chart, true
}

// Gradient returns the gradient the next render will use.
func (c *Changer) Gradient() (Gradient, bool) {
	if c.lightness == nil || c.chart == nil {
		return Gradient{}, false
	}
	return NewGradient(*c.lightness, c.chart.Min, c.chart.Mode, c.chart.Max), true
}

// Photo returns the photo resized to the matte.
func (c *Changer) Photo() *Pixmap {
	return c.photo
}

// HairImage returns the grayscale hair region.
func (c *Changer) HairImage() *Pixmap {
	return c.hair
}

// Image returns the last successful render, or nil.
func (c *Changer) Image() *Pixmap {
	return c.image
}
