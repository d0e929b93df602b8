package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreMetricsRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveSearch("", 3, time.Millisecond)
	m.ObserveSearch("price_asc", 0, time.Millisecond)
	m.FavoriteChanged("add")
	m.FavoriteChanged("add")
	m.FavoriteChanged("remove")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues("relevance")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues("price_asc")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.favoriteChanges.WithLabelValues("add")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.favoriteChanges.WithLabelValues("remove")))

	count, err := testutil.GatherAndCount(reg, "techpulse_search_results")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNilRecorderIsNoop(t *testing.T) {
	var m *StoreMetrics
	assert.NotPanics(t, func() {
		m.ObserveSearch("rating", 1, time.Second)
		m.FavoriteChanged("add")
	})

	assert.NotPanics(t, func() {
		New(nil).ObserveSearch("rating", 1, time.Second)
	})
}
