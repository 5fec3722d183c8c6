// Package cache provides the read-through forecast cache used by the
// city detail path.
package cache

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"weatherhub.app/models"
)

// ForecastCache defines the interface for forecast caching operations
type ForecastCache interface {
	Get(key string) ([]models.WeatherForecast, bool)
	Set(key string, forecasts []models.WeatherForecast, ttl time.Duration)
	Delete(key string)
	Clear()
}

type cacheEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryCache is an in-process ForecastCache with periodic cleanup
type MemoryCache struct {
	data   map[string]cacheEntry
	mutex  sync.RWMutex
	ticker *time.Ticker
	stopCh chan struct{}
}

// NewMemoryCache creates a memory-backed forecast cache
func NewMemoryCache() *MemoryCache {
	cache := &MemoryCache{
		data:   make(map[string]cacheEntry),
		ticker: time.NewTicker(5 * time.Minute),
		stopCh: make(chan struct{}),
	}

	go cache.cleanup()
	return cache
}

func (c *MemoryCache) Get(key string) ([]models.WeatherForecast, bool) {
	c.mutex.RLock()
	entry, exists := c.data[key]
	c.mutex.RUnlock()

	if !exists || time.Now().After(entry.expiresAt) {
		return nil, false
	}

	var forecasts []models.WeatherForecast
	if err := json.Unmarshal(entry.data, &forecasts); err != nil {
		slog.Error("Memory cache unmarshal error", "error", err, "key", key)
		return nil, false
	}

	return forecasts, true
}

func (c *MemoryCache) Set(key string, forecasts []models.WeatherForecast, ttl time.Duration) {
	data, err := json.Marshal(forecasts)
	if err != nil {
		slog.Error("Memory cache marshal error", "error", err, "key", key)
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = cacheEntry{
		data:      data,
		expiresAt: time.Now().Add(ttl),
	}
}

func (c *MemoryCache) Delete(key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.data, key)
}

func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data = make(map[string]cacheEntry)
}

// Stop terminates the background cleanup goroutine
func (c *MemoryCache) Stop() {
	c.ticker.Stop()
	close(c.stopCh)
}

func (c *MemoryCache) cleanup() {
	for {
		select {
		case <-c.ticker.C:
			c.removeExpired()
		case <-c.stopCh:
			return
		}
	}
}

func (c *MemoryCache) removeExpired() {
	now := time.Now()

	c.mutex.Lock()
	defer c.mutex.Unlock()

	for key, entry := range c.data {
		if now.After(entry.expiresAt) {
			delete(c.data, key)
		}
	}
}
