package memo

import (
	"errors"
	"hash/maphash"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

// errAbandoned is handed to callers waiting on a computation whose goroutine exited
// through runtime.Goexit.
var errAbandoned = errors.New("memo: computation exited without returning")

var seed = maphash.MakeSeed()

// flight is one computation of one key. done is closed once the outcome is final.
type flight[V any] struct {
	done      chan struct{}
	val       V
	err       error
	panicked  bool
	recovered any
}

// result replays the outcome to a caller, re-raising a panic if there was one.
func (f *flight[V]) result() (V, error) {
	if f.panicked {
		panic(f.recovered)
	}
	return f.val, f.err
}

type shard[K comparable, V any] struct {
	mu       sync.RWMutex
	table    map[K]V
	inflight map[K]*flight[V]
}

// cache maps keys to successfully computed values. Each key is computed at most once
// at a time: callers arriving while a computation is in flight wait for it and share
// its outcome. Only successful outcomes are committed, so a failed key is computed
// again by the next caller. Entries are never evicted.
type cache[K comparable, V any] struct {
	*meter
	shards []*shard[K, V]
}

func newCache[K comparable, V any](cfg Config) *cache[K, V] {
	shards := make([]*shard[K, V], cfg.NumShards)
	for i := range shards {
		shards[i] = &shard[K, V]{
			table:    make(map[K]V),
			inflight: make(map[K]*flight[V]),
		}
	}
	return &cache[K, V]{
		meter:  newMeter(cfg, len(shards)),
		shards: shards,
	}
}

func (c *cache[K, V]) shardOf(key K) *shard[K, V] {
	switch n := len(c.shards); n {
	case 0:
		panic("number of shards cannot be 0")
	case 1:
		return c.shards[0]
	default:
		return c.shards[hashOf(key)%uint64(n)]
	}
}

// hashOf hashes string keys with xxhash and any other comparable key with maphash.
func hashOf[K comparable](key K) uint64 {
	if s, ok := any(key).(string); ok {
		return xxhash.Sum64String(s)
	}
	return maphash.Comparable(seed, key)
}

// load returns the value committed for key, running compute when there is none.
func (c *cache[K, V]) load(key K, compute func() (V, error)) (V, error) {
	s := c.shardOf(key)

	s.mu.RLock()
	v, ok := s.table[key]
	s.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		return v, nil
	}

	s.mu.Lock()
	if v, ok := s.table[key]; ok {
		s.mu.Unlock()
		c.hits.Add(1)
		return v, nil
	}
	if f, ok := s.inflight[key]; ok {
		s.mu.Unlock()
		c.shared.Add(1)
		<-f.done
		return f.result()
	}
	f := &flight[V]{done: make(chan struct{})}
	s.inflight[key] = f
	s.mu.Unlock()

	c.misses.Add(1)
	c.run(s, key, f, compute)
	return f.result()
}

// run executes compute for the leader of a flight and publishes the outcome.
func (c *cache[K, V]) run(s *shard[K, V], key K, f *flight[V], compute func() (V, error)) {
	returned := false
	defer func() {
		if !returned {
			f.panicked = true
			if f.recovered = recover(); f.recovered == nil {
				f.recovered = errAbandoned
			}
		}
		committed := returned && f.err == nil

		s.mu.Lock()
		delete(s.inflight, key)
		if committed {
			s.table[key] = f.val
		}
		s.mu.Unlock()

		if committed {
			c.entries.Add(1)
			c.debug("memo entry computed", zap.Any("key", key))
		} else {
			c.failures.Add(1)
			c.debug("memo computation failed, not cached",
				zap.Any("key", key),
				zap.Error(f.err),
				zap.Any("panic", f.recovered),
			)
		}
		close(f.done)
	}()

	f.val, f.err = compute()
	returned = true
}
