package cache

import (
	"time"

	"weatherhub.app/metrics"
	"weatherhub.app/models"
)

// InstrumentedCache wraps a ForecastCache and records hit/miss metrics
type InstrumentedCache struct {
	inner   ForecastCache
	metrics *metrics.CacheMetrics
}

// NewInstrumentedCache creates a metrics-recording wrapper around a cache
func NewInstrumentedCache(inner ForecastCache, m *metrics.CacheMetrics) *InstrumentedCache {
	return &InstrumentedCache{
		inner:   inner,
		metrics: m,
	}
}

func (c *InstrumentedCache) Get(key string) ([]models.WeatherForecast, bool) {
	start := time.Now()
	forecasts, found := c.inner.Get(key)
	c.metrics.RecordLatency("get", time.Since(start).Seconds())

	if found {
		c.metrics.RecordHit()
	} else {
		c.metrics.RecordMiss()
	}
	return forecasts, found
}

func (c *InstrumentedCache) Set(key string, forecasts []models.WeatherForecast, ttl time.Duration) {
	start := time.Now()
	c.inner.Set(key, forecasts, ttl)
	c.metrics.RecordLatency("set", time.Since(start).Seconds())
}

func (c *InstrumentedCache) Delete(key string) {
	c.inner.Delete(key)
}

func (c *InstrumentedCache) Clear() {
	c.inner.Clear()
}
