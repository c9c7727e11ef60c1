// Package metric exposes Prometheus instrumentation for conversions.
// Exposition (an HTTP handler or push gateway) is left to the embedding
// application; the default registry is used so standard tooling picks the
// collectors up.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cdigen"

var (
	// ConversionsTotal counts completed conversions by outcome.
	ConversionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "conversions_total",
		Help:      "Completed dataset conversions by outcome.",
	}, []string{"outcome"})

	// NodesGenerated counts graph nodes emitted across all conversions.
	NodesGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "nodes_generated_total",
		Help:      "Graph nodes emitted across all conversions.",
	})

	// ChunksProcessed counts row chunks processed on the chunked path.
	ChunksProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chunks_processed_total",
		Help:      "Row chunks processed during chunked generation.",
	})

	// VectorizedFallbacks counts chunk evaluations that fell back from the
	// vectorized classifier path to element-wise evaluation.
	VectorizedFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vectorized_fallbacks_total",
		Help:      "Classifier evaluations that fell back to element-wise mode.",
	})

	// ConversionDuration observes end-to-end conversion latency.
	ConversionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "conversion_duration_seconds",
		Help:      "End-to-end conversion latency.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 4, 8),
	})
)

// Outcome labels for ConversionsTotal.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)
