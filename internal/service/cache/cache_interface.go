package cache

import "github.com/Reidvanvliet/golden-chopsticks-service/internal/domain/model"

// Cache defines the interface for price curve cache operations.
type Cache interface {
	Get(key int) (model.PriceCurve, bool)
	Set(key int, value model.PriceCurve)
	Invalidate(key int)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
