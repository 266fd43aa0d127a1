package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Index
	IndexSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tripscore_index_entries",
			Help: "Number of place embeddings in the published index snapshot",
		},
	)

	IndexRebuilds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripscore_index_rebuilds_total",
			Help: "Index rebuilds by outcome",
		},
		[]string{"outcome"},
	)

	// Resolution
	ResolveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tripscore_resolve_duration_seconds",
			Help:    "Time to resolve one mention, including the embedding call",
			Buckets: prometheus.DefBuckets,
		},
	)

	ResolveTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripscore_resolve_total",
			Help: "Mention resolutions by outcome",
		},
		[]string{"outcome"}, // "matched", "empty", "error"
	)

	// Embedding collaborator
	EmbeddingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tripscore_embedding_duration_seconds",
			Help:    "Embedding collaborator latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"model"},
	)

	// Scoring
	ItinerariesScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripscore_itineraries_scored_total",
			Help: "Scored itineraries by grade",
		},
		[]string{"grade"},
	)

	OverallScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tripscore_overall_score",
			Help:    "Distribution of overall itinerary scores",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)
)

func RecordIndexRebuild(size int, err error) {
	if err != nil {
		IndexRebuilds.WithLabelValues("error").Inc()
		return
	}
	IndexRebuilds.WithLabelValues("success").Inc()
	IndexSize.Set(float64(size))
}

func RecordResolve(duration time.Duration, matches int, err error) {
	ResolveDuration.Observe(duration.Seconds())
	switch {
	case err != nil:
		ResolveTotal.WithLabelValues("error").Inc()
	case matches == 0:
		ResolveTotal.WithLabelValues("empty").Inc()
	default:
		ResolveTotal.WithLabelValues("matched").Inc()
	}
}

func RecordEmbedding(model string, duration time.Duration) {
	EmbeddingDuration.WithLabelValues(model).Observe(duration.Seconds())
}

func RecordScore(grade string, overall float64) {
	ItinerariesScored.WithLabelValues(grade).Inc()
	OverallScore.Observe(overall)
}
