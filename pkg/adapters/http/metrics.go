package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the conversion counters exposed at /metrics.
type Metrics struct {
	Registry *prometheus.Registry

	ConversionsTotal prometheus.Counter
	CharactersTotal  prometheus.Counter
	ErrorsTotal      prometheus.Counter
}

// NewMetrics creates the metric set on its own registry, so embedding
// applications never collide with the default one.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		ConversionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "rotary_conversions_total",
			Help: "Number of convert requests served.",
		}),
		CharactersTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "rotary_characters_total",
			Help: "Number of characters converted.",
		}),
		ErrorsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "rotary_conversion_errors_total",
			Help: "Number of convert requests that failed validation.",
		}),
	}
}
