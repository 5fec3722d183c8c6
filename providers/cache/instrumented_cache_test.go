package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"weatherhub.app/metrics"
)

func TestInstrumentedCache_RecordsHitsAndMisses(t *testing.T) {
	inner := NewMemoryCache()
	defer inner.Stop()

	cacheMetrics := metrics.NewCacheMetrics("memory")
	cache := NewInstrumentedCache(inner, cacheMetrics)

	forecasts := testForecasts()
	cache.Set("forecasts:city:3", forecasts, 5*time.Minute)

	_, found := cache.Get("forecasts:city:3")
	assert.True(t, found)

	_, found = cache.Get("forecasts:city:999")
	assert.False(t, found)

	stats := cacheMetrics.GetStats()
	assert.Equal(t, int64(1), stats["hits"])
	assert.Equal(t, int64(1), stats["misses"])
	assert.Equal(t, int64(2), stats["total"])
	assert.Equal(t, 0.5, stats["hit_ratio"])
}

func TestInstrumentedCache_DelegatesDeleteAndClear(t *testing.T) {
	inner := NewMemoryCache()
	defer inner.Stop()

	cache := NewInstrumentedCache(inner, metrics.NewCacheMetrics("memory"))
	forecasts := testForecasts()

	cache.Set("forecasts:city:3", forecasts, 5*time.Minute)
	cache.Delete("forecasts:city:3")
	_, found := inner.Get("forecasts:city:3")
	assert.False(t, found)

	cache.Set("forecasts:city:4", forecasts, 5*time.Minute)
	cache.Clear()
	_, found = inner.Get("forecasts:city:4")
	assert.False(t, found)
}
