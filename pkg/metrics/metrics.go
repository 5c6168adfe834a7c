// Package metrics defines the Prometheus metric collectors used by the
// ranking pipeline and exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for the ranking pipeline.
type Metrics struct {
	RankRequestsTotal     *prometheus.CounterVec
	RankLatency           prometheus.Histogram
	CandidatePoolSize     prometheus.Histogram
	TermsSelectedCount    prometheus.Histogram
	EmbeddingBatchesTotal *prometheus.CounterVec
	EmbeddingRetriesTotal prometheus.Counter
	CacheHitsTotal        prometheus.Counter
	CacheMissesTotal      prometheus.Counter
	QuotaShortfallsTotal  *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	m := &Metrics{
		RankRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rank_requests_total",
				Help: "Total ranking requests by outcome (ok, empty_pool, embedding_error, error).",
			},
			[]string{"outcome"},
		),
		RankLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "rank_latency_seconds",
				Help:    "End-to-end ranking request latency in seconds.",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
		),
		CandidatePoolSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "rank_candidate_pool_size",
				Help:    "Deduplicated candidate pool size per request.",
				Buckets: []float64{10, 25, 50, 100, 200, 350, 500, 750},
			},
		),
		TermsSelectedCount: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "rank_terms_selected",
				Help:    "Number of terms in the final selection per request.",
				Buckets: []float64{5, 10, 25, 50, 75, 100, 150},
			},
		),
		EmbeddingBatchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "embedding_batches_total",
				Help: "Embedding batch calls by status (ok, error).",
			},
			[]string{"status"},
		),
		EmbeddingRetriesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "embedding_retries_total",
				Help: "Total embedding batch retry attempts.",
			},
		),
		CacheHitsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "embedding_cache_hits_total",
				Help: "Total embedding cache hits.",
			},
		),
		CacheMissesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "embedding_cache_misses_total",
				Help: "Total embedding cache misses.",
			},
		),
		QuotaShortfallsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rank_quota_shortfalls_total",
				Help: "Category minimums left unmet because the pool lacked supply.",
			},
			[]string{"category"},
		),
	}

	prometheus.MustRegister(
		m.RankRequestsTotal,
		m.RankLatency,
		m.CandidatePoolSize,
		m.TermsSelectedCount,
		m.EmbeddingBatchesTotal,
		m.EmbeddingRetriesTotal,
		m.CacheHitsTotal,
		m.CacheMissesTotal,
		m.QuotaShortfallsTotal,
	)

	return m
}

// Handler returns the Prometheus scrape HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
