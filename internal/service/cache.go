// Package service contains the business logic for the storefront service.
package service

import (
	"container/list"
	"math/bits"
	"sync"
	"time"

	"github.com/Reidvanvliet/golden-chopsticks-service/internal/domain/model"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/metrics"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/service/cache"
)

// coarseClock is a clock updated on a 100ms tick. Curve expiry does not need
// wall-clock precision and this keeps time.Now off the Set path.
var coarseClock struct {
	sync.RWMutex
	t time.Time
}

func init() {
	coarseClock.t = time.Now()
	go func() {
		for t := range time.Tick(100 * time.Millisecond) {
			coarseClock.Lock()
			coarseClock.t = t
			coarseClock.Unlock()
		}
	}()
}

func now() time.Time {
	coarseClock.RLock()
	defer coarseClock.RUnlock()
	return coarseClock.t
}

// curveEntry is one cached price curve keyed by pool shape.
type curveEntry struct {
	key       int
	curve     model.PriceCurve
	expiresAt time.Time
}

// ttlCache is an LRU cache with per-entry TTL expiry. A background sweeper
// reclaims expired entries; capacity overflows evict the least recently used
// entry immediately. It implements cache.CacheWithMetrics.
type ttlCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	entries  map[int]*list.Element
	order    *list.List // front is most recently used
	stop     chan struct{}

	hits      int64
	misses    int64
	evictions int64
}

func newTTLCache(capacity int, ttl time.Duration) *ttlCache {
	c := &ttlCache{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[int]*list.Element, capacity),
		order:    list.New(),
		stop:     make(chan struct{}),
	}
	go c.sweep()
	return c
}

// Get returns the cached curve for the key when present and fresh.
func (c *ttlCache) Get(key int) (model.PriceCurve, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		c.misses++
		metrics.RecordCacheOperation("get", "miss")
		return model.PriceCurve{}, false
	}

	ent := el.Value.(*curveEntry)
	// Expiry checks use the real clock: the coarse one can lag a full tick
	// and hand out a curve that just went stale.
	if time.Now().After(ent.expiresAt) {
		c.remove(el)
		c.misses++
		metrics.RecordCacheOperation("get", "expired")
		return model.PriceCurve{}, false
	}

	c.order.MoveToFront(el)
	c.hits++
	metrics.RecordCacheOperation("get", "hit")
	return ent.curve, true
}

// Set stores the curve under the key, refreshing the TTL. When the cache is
// full the least recently used entry makes room.
func (c *ttlCache) Set(key int, curve model.PriceCurve) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		ent := el.Value.(*curveEntry)
		ent.curve = curve
		ent.expiresAt = now().Add(c.ttl)
		c.order.MoveToFront(el)
		return
	}

	el := c.order.PushFront(&curveEntry{key: key, curve: curve, expiresAt: now().Add(c.ttl)})
	c.entries[key] = el

	if c.order.Len() > c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.remove(oldest)
			c.evictions++
			metrics.RecordCacheOperation("evict", "capacity")
		}
	}
	metrics.RecordCacheOperation("set", "success")
}

// Invalidate drops the entry for the key, if any.
func (c *ttlCache) Invalidate(key int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		c.remove(el)
		metrics.RecordCacheOperation("invalidate", "success")
	}
}

// Clear drops every entry and resets the counters.
func (c *ttlCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[int]*list.Element, c.capacity)
	c.order.Init()
	c.hits, c.misses, c.evictions = 0, 0, 0
	metrics.RecordCacheOperation("clear", "success")
}

// Stop shuts down the background sweeper.
func (c *ttlCache) Stop() {
	close(c.stop)
}

// Metrics reports the cache counters and current fill.
func (c *ttlCache) Metrics() cache.Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()

	return cache.Metrics{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      len(c.entries),
		Capacity:  c.capacity,
	}
}

func (c *ttlCache) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stop:
			return
		}
	}
}

// cleanup removes every expired entry.
func (c *ttlCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := now()
	var next *list.Element
	for el := c.order.Front(); el != nil; el = next {
		next = el.Next()
		if cutoff.After(el.Value.(*curveEntry).expiresAt) {
			c.remove(el)
		}
	}
}

// remove must be called with the lock held.
func (c *ttlCache) remove(el *list.Element) {
	delete(c.entries, el.Value.(*curveEntry).key)
	c.order.Remove(el)
}

// ShardedCache splits the key space across independent ttlCache shards to
// cut lock contention when many quotes arrive concurrently.
type ShardedCache struct {
	shards    []*ttlCache
	numShards int
	shardMask int
}

// NewShardedCache builds a sharded cache with the given total capacity. The
// shard count is rounded up to a power of two so shard selection is a mask.
func NewShardedCache(capacity int, ttl time.Duration, numShards int) *ShardedCache {
	if numShards <= 0 {
		numShards = 16
	}
	if numShards&(numShards-1) != 0 {
		numShards = 1 << bits.Len(uint(numShards))
	}

	perShard := capacity / numShards
	if perShard < 1 {
		perShard = 1
	}

	shards := make([]*ttlCache, numShards)
	for i := range shards {
		shards[i] = newTTLCache(perShard, ttl)
	}

	return &ShardedCache{
		shards:    shards,
		numShards: numShards,
		shardMask: numShards - 1,
	}
}

func (sc *ShardedCache) shard(key int) *ttlCache {
	return sc.shards[key&sc.shardMask]
}

// Get retrieves a curve from the shard owning the key.
func (sc *ShardedCache) Get(key int) (model.PriceCurve, bool) {
	return sc.shard(key).Get(key)
}

// Set stores a curve in the shard owning the key.
func (sc *ShardedCache) Set(key int, curve model.PriceCurve) {
	sc.shard(key).Set(key, curve)
}

// Invalidate drops the key from its shard.
func (sc *ShardedCache) Invalidate(key int) {
	sc.shard(key).Invalidate(key)
}

// Clear empties every shard.
func (sc *ShardedCache) Clear() {
	for _, s := range sc.shards {
		s.Clear()
	}
}

// Stop shuts down every shard's sweeper.
func (sc *ShardedCache) Stop() {
	for _, s := range sc.shards {
		s.Stop()
	}
}

// Metrics aggregates the counters across all shards.
func (sc *ShardedCache) Metrics() cache.Metrics {
	var total cache.Metrics
	for _, s := range sc.shards {
		m := s.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}
