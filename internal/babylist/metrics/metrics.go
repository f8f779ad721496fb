package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the babylist module.
type Metrics struct {
	// Lookup latencies by source
	LookupLatency *prometheus.HistogramVec

	// Lookup failures by source
	LookupFailures *prometheus.CounterVec

	// Full enrichment pass latency
	EnrichLatency prometheus.Histogram

	// Items produced by enrichment, by catalog match
	EnrichedItems *prometheus.CounterVec

	// Summaries served by view
	SummariesServed *prometheus.CounterVec

	// Catalog cache hits and misses
	CatalogCacheHits   prometheus.Counter
	CatalogCacheMisses prometheus.Counter

	// List service failures by outcome
	ListSourceErrors *prometheus.CounterVec
}

// New creates a new Metrics instance with all babylist metrics registered.
func New() *Metrics {
	return &Metrics{
		LookupLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "babylist_lookup_duration_seconds",
			Help:    "Duration of external lookups by source",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"source"}), // source: "catalog", "recommendation", "reservation"

		LookupFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "babylist_lookup_failures_total",
			Help: "Total failed external lookups by source",
		}, []string{"source"}),

		EnrichLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "babylist_enrich_duration_seconds",
			Help:    "Duration of a full enrichment pass including lookups",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),

		EnrichedItems: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "babylist_enriched_items_total",
			Help: "Total enriched registry items by catalog match",
		}, []string{"matched"}),

		SummariesServed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "babylist_summaries_served_total",
			Help: "Total list summaries served by view",
		}, []string{"view"}),

		CatalogCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "babylist_catalog_cache_hits_total",
			Help: "Total catalog entries served from cache",
		}),

		CatalogCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "babylist_catalog_cache_misses_total",
			Help: "Total catalog entries missing from cache",
		}),

		ListSourceErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "babylist_list_source_errors_total",
			Help: "Total list service failures by outcome",
		}, []string{"outcome"}), // outcome: "unavailable", "error", "rejected", "closed"
	}
}

// ObserveLookupLatency records the duration of a lookup against source.
func (m *Metrics) ObserveLookupLatency(source string, d time.Duration) {
	if m != nil {
		m.LookupLatency.WithLabelValues(source).Observe(d.Seconds())
	}
}

// IncrementLookupFailure records a failed lookup.
func (m *Metrics) IncrementLookupFailure(source string) {
	if m != nil {
		m.LookupFailures.WithLabelValues(source).Inc()
	}
}

// ObserveEnrichLatency records the duration of an enrichment pass.
func (m *Metrics) ObserveEnrichLatency(d time.Duration) {
	if m != nil {
		m.EnrichLatency.Observe(d.Seconds())
	}
}

// AddEnrichedItems records enriched items split by catalog match.
func (m *Metrics) AddEnrichedItems(matched, unmatched int) {
	if m != nil {
		m.EnrichedItems.WithLabelValues("true").Add(float64(matched))
		m.EnrichedItems.WithLabelValues("false").Add(float64(unmatched))
	}
}

// IncrementSummariesServed records a served summary.
func (m *Metrics) IncrementSummariesServed(view string) {
	if m != nil {
		m.SummariesServed.WithLabelValues(view).Inc()
	}
}

// AddCatalogCacheResult records cache hits and misses of one bulk read.
func (m *Metrics) AddCatalogCacheResult(hits, misses int) {
	if m != nil {
		m.CatalogCacheHits.Add(float64(hits))
		m.CatalogCacheMisses.Add(float64(misses))
	}
}

// IncrementListSourceError records a list service failure.
func (m *Metrics) IncrementListSourceError(outcome string) {
	if m != nil {
		m.ListSourceErrors.WithLabelValues(outcome).Inc()
	}
}
