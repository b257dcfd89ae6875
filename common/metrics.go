package common

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsLabelRegistry = "registry"

// Metrics tracks registrations, releases and release faults across every
// registry that shares it. Series are labelled by registry name.
type Metrics struct {
	HandlesRegistered   *prometheus.CounterVec
	HandlesReleased     *prometheus.CounterVec
	ReleaseFaults       *prometheus.CounterVec
	ReleasePassDuration *prometheus.HistogramVec
}

// NewMetrics registers the registry metrics on reg. Pass
// prometheus.DefaultRegisterer to expose them on the default handler.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HandlesRegistered: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "subhandler_handles_registered_total",
			Help: "Total number of handles accepted for later release",
		}, []string{metricsLabelRegistry}),
		HandlesReleased: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "subhandler_handles_released_total",
			Help: "Total number of handles whose release was attempted",
		}, []string{metricsLabelRegistry}),
		ReleaseFaults: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "subhandler_release_faults_total",
			Help: "Total number of releases that returned an error or panicked",
		}, []string{metricsLabelRegistry}),
		ReleasePassDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "subhandler_release_pass_duration_seconds",
			Help:    "Duration of a full release pass",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{metricsLabelRegistry}),
	}
}

func (m *Metrics) incRegistered(registry string) {
	if m == nil {
		return
	}
	m.HandlesRegistered.WithLabelValues(registry).Inc()
}

func (m *Metrics) observePass(registry string, start time.Time, released, faults int) {
	if m == nil {
		return
	}
	m.HandlesReleased.WithLabelValues(registry).Add(float64(released))
	m.ReleaseFaults.WithLabelValues(registry).Add(float64(faults))
	m.ReleasePassDuration.WithLabelValues(registry).Observe(time.Since(start).Seconds())
}
