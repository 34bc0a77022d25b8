package haircolor

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Stage names used as the "stage" label of haircolor_stage_runs_total.
const (
	StageResize    = "resize"
	StageCutout    = "cutout"
	StageLightness = "lightness"
	StageGradient  = "gradient"
	StageColorMap  = "colormap"
	StageComposite = "composite"
	StageLabel     = "label"
)

type metrics struct {
	stageRuns     *prometheus.CounterVec
	renders       *prometheus.CounterVec
	renderSeconds prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	return &metrics{
		stageRuns: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "haircolor_stage_runs_total",
			Help: "Number of times each pipeline stage ran.",
		}, []string{"stage"})),
		renders: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "haircolor_renders_total",
			Help: "Render attempts by result.",
		}, []string{"result"})),
		renderSeconds: register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "haircolor_render_seconds",
			Help:    "Time spent producing a recolored image.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		})),
	}
}

// register adds c to reg, reusing an identical collector registered by
// another Changer sharing the same registry.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		Logger().Warn("haircolor: metric not registered", "err", err)
	}
	return c
}

func (m *metrics) ran(stage string) {
	m.stageRuns.WithLabelValues(stage).Inc()
}
