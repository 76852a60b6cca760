// Package metrics exposes Prometheus counters for the service operations.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements service.Recorder with a counter vector
// labelled by entity, action and outcome.
type PrometheusRecorder struct {
	mutations *prometheus.CounterVec
}

// NewPrometheusRecorder registers the counters on the given registerer,
// or on the default registerer when nil.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return &PrometheusRecorder{
		mutations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "maintenance_mutations_total",
			Help: "Applied dataset mutations by entity, action and outcome.",
		}, []string{"entity", "action", "outcome"}),
	}
}

// Observe counts one applied mutation.
func (r *PrometheusRecorder) Observe(entity, action, outcome string) {
	r.mutations.WithLabelValues(entity, action, outcome).Inc()
}

// Handler returns the /metrics endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
