// Package metrics exposes the service's Prometheus registry and recording
// helpers for the detection pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Detection outcomes used as the outcome label value.
const (
	OutcomeDetected         = "detected"
	OutcomeInvalidImage     = "invalid_image"
	OutcomeNoPose           = "no_pose"
	OutcomeModelUnavailable = "model_unavailable"
	OutcomeProcessingError  = "processing_error"
)

var (
	registry = prometheus.NewRegistry()

	detectionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pose",
		Name:      "detections_total",
		Help:      "Detection requests by outcome.",
	}, []string{"outcome"})

	detectionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "pose",
		Name:      "detection_duration_seconds",
		Help:      "Wall-clock duration of the detection pipeline.",
		Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	})

	modelLoadsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pose",
		Name:      "model_loads_total",
		Help:      "Number of landmarker model constructions.",
	})
)

func init() {
	registry.MustRegister(
		detectionsTotal,
		detectionDuration,
		modelLoadsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Registry returns the registry served at /metrics.
func Registry() *prometheus.Registry {
	return registry
}

func RecordDetection(outcome string, duration time.Duration) {
	detectionsTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeDetected {
		detectionDuration.Observe(duration.Seconds())
	}
}

func RecordModelLoad() {
	modelLoadsTotal.Inc()
}
