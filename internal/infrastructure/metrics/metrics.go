// Package metrics exposes action counters and latencies to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"datarequests/internal/shared/errors"
)

const OutcomeSuccess = "success"

type ActionMetrics struct {
	registry  *prometheus.Registry
	calls     *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// NewActionMetrics registers the action collectors, plus the Go runtime and
// process collectors, on a private registry.
func NewActionMetrics() *ActionMetrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &ActionMetrics{
		registry: reg,
		calls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "datarequests",
			Subsystem: "action",
			Name:      "calls_total",
			Help:      "Action invocations, labeled by action and outcome",
		}, []string{"action", "outcome"}),
		durations: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "datarequests",
			Subsystem: "action",
			Name:      "duration_seconds",
			Help:      "Duration of action invocations",
			Buckets:   prometheus.DefBuckets,
		}, []string{"action"}),
	}
}

// Observe records one call. The outcome is the error kind, or "success".
func (m *ActionMetrics) Observe(action string, started time.Time, err error) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(action, Outcome(err)).Inc()
	m.durations.WithLabelValues(action).Observe(time.Since(started).Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *ActionMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func Outcome(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	if appErr := errors.GetAppError(err); appErr != nil {
		return string(appErr.Type)
	}
	return string(errors.ErrorTypeInternal)
}
