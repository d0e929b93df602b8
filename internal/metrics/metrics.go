package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "techpulse"

// StoreMetrics records search and favorites activity
type StoreMetrics struct {
	searches        *prometheus.CounterVec
	searchResults   prometheus.Histogram
	searchDuration  prometheus.Histogram
	favoriteChanges *prometheus.CounterVec
}

// New registers the storefront metrics on the provided registerer.
// A nil registerer yields a no-op recorder.
func New(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	searches := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Searches served, by sort order.",
	}, []string{"sort"})
	searchResults := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_results",
		Help:      "Number of products returned per search.",
		Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
	})
	searchDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_duration_seconds",
		Help:      "Time spent filtering and ranking a search.",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
	})
	favoriteChanges := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "favorite_changes_total",
		Help:      "Favorites added or removed.",
	}, []string{"action"})
	reg.MustRegister(searches, searchResults, searchDuration, favoriteChanges)
	return &StoreMetrics{
		searches:        searches,
		searchResults:   searchResults,
		searchDuration:  searchDuration,
		favoriteChanges: favoriteChanges,
	}
}

// ObserveSearch records one search
func (m *StoreMetrics) ObserveSearch(sort string, results int, took time.Duration) {
	if m == nil || m.searches == nil {
		return
	}
	if sort == "" {
		sort = "relevance"
	}
	m.searches.WithLabelValues(sort).Inc()
	m.searchResults.Observe(float64(results))
	m.searchDuration.Observe(took.Seconds())
}

// FavoriteChanged counts an add or remove
func (m *StoreMetrics) FavoriteChanged(action string) {
	if m == nil || m.favoriteChanges == nil {
		return
	}
	m.favoriteChanges.WithLabelValues(action).Inc()
}
