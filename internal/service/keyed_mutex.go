package service

import (
	"hash/fnv"
	"sync"
)

// keyedMutex serializes work per string key by hashing keys onto a fixed
// set of mutexes, the same sharding trick the price cache uses to keep
// contention low without a lock per cart.
type keyedMutex struct {
	shards []sync.Mutex
	mask   uint32
}

// newKeyedMutex creates a keyed mutex with the given shard count, rounded
// up to a power of 2.
func newKeyedMutex(shards int) *keyedMutex {
	if shards <= 0 {
		shards = 16
	}
	n := 1
	for n < shards {
		n *= 2
	}
	return &keyedMutex{
		shards: make([]sync.Mutex, n),
		mask:   uint32(n - 1),
	}
}

// Lock acquires the shard for key and returns its unlock function.
func (k *keyedMutex) Lock(key string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	mu := &k.shards[h.Sum32()&k.mask]
	mu.Lock()
	return mu.Unlock
}
