package haircolor

import (
	"image"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultGradientCacheSize is how many gradient lookup tables a Changer keeps.
// Cycling through a chart larger than this recomputes the oldest tables.
const DefaultGradientCacheSize = 32

// Option configures a Changer during creation.
//
// Example:
//
//	reg := prometheus.NewRegistry()
//	c := haircolor.NewChanger(
//	    haircolor.WithDiagnostics(true),
//	    haircolor.WithRegisterer(reg),
//	)
type Option func(*options)

// options holds optional configuration for Changer creation.
type options struct {
	stats             StatsOptions
	diagnostics       bool
	stages            Stages
	registerer        prometheus.Registerer
	gradientCacheSize int
}

// defaultOptions returns the default Changer options.
func defaultOptions() options {
	return options{
		stats:             DefaultStatsOptions(),
		stages:            DefaultStages(),
		gradientCacheSize: DefaultGradientCacheSize,
	}
}

// Stages are the image operations a Changer runs. Replacing a stage is
// useful for instrumentation; nil fields keep the default implementation.
type Stages struct {
	Resize    func(photo, ref image.Image) (*Pixmap, bool)
	Cutout    func(photo *Pixmap, matte *Matte) (*Pixmap, bool)
	Lightness func(s *Sampler, gray *Pixmap, opts StatsOptions) (Lightness, error)
	Label     func(dst *Pixmap, text string) (*Pixmap, error)
}

// DefaultStages returns the package's own stage implementations.
func DefaultStages() Stages {
	return Stages{
		Resize:    ResizeToMatch,
		Cutout:    CutoutGray,
		Lightness: ExtractLightness,
		Label:     DrawLabel,
	}
}

func (s Stages) withDefaults() Stages {
	d := DefaultStages()
	if s.Resize == nil {
		s.Resize = d.Resize
	}
	if s.Cutout == nil {
		s.Cutout = d.Cutout
	}
	if s.Lightness == nil {
		s.Lightness = d.Lightness
	}
	if s.Label == nil {
		s.Label = d.Label
	}
	return s
}

// WithStatsOptions configures the lightness statistics extractor.
// Zero fields fall back to DefaultStatsOptions.
func WithStatsOptions(o StatsOptions) Option {
	return func(opts *options) {
		opts.stats = o.normalized()
	}
}

// WithDiagnostics toggles the min/max lightness label drawn over renders.
func WithDiagnostics(on bool) Option {
	return func(opts *options) {
		opts.diagnostics = on
	}
}

// WithStages replaces some or all pipeline stages.
func WithStages(s Stages) Option {
	return func(opts *options) {
		opts.stages = s.withDefaults()
	}
}

// WithRegisterer registers the Changer's metrics with r. Without it the
// metrics are kept in a private registry.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(opts *options) {
		opts.registerer = r
	}
}

// WithGradientCache sets how many gradient lookup tables are memoized.
// Values below 1 keep DefaultGradientCacheSize.
func WithGradientCache(size int) Option {
	return func(opts *options) {
		if size > 0 {
			opts.gradientCacheSize = size
		}
	}
}
