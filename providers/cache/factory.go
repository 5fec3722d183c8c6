package cache

import (
	"fmt"

	"weatherhub.app/config"
	"weatherhub.app/metrics"
)

// NewForecastCache builds the forecast cache selected by configuration,
// wrapped with metrics instrumentation.
func NewForecastCache(cfg *config.CacheConfig) (ForecastCache, error) {
	switch cfg.Type {
	case "memory":
		return NewInstrumentedCache(NewMemoryCache(), metrics.NewCacheMetrics("memory")), nil
	case "redis":
		redisCache, err := NewRedisCache(&RedisCacheConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("connect to redis cache: %w", err)
		}
		return NewInstrumentedCache(redisCache, metrics.NewCacheMetrics("redis")), nil
	default:
		return nil, fmt.Errorf("unknown cache type: %s", cfg.Type)
	}
}
