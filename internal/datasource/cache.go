package datasource

import (
	"sync"
	"time"
)

type requestCacheCall[V any] struct {
	wg  sync.WaitGroup
	val V
	err error
}

type requestCacheEntry[V any] struct {
	val      V
	storedAt time.Time
}

// RequestCache is a map to cache the results of expensive functions that are called concurrently.
//
// Entries older than the expiry are fetched again; an expiry of zero keeps
// entries forever.
type RequestCache[K comparable, V any] struct {
	cache  map[K]requestCacheEntry[V]
	calls  map[K]*requestCacheCall[V]
	expiry time.Duration
	now    func() time.Time
	mu     sync.Mutex
}

func NewRequestCache[K comparable, V any](expiry time.Duration) *RequestCache[K, V] {
	return &RequestCache[K, V]{
		cache:  make(map[K]requestCacheEntry[V]),
		calls:  make(map[K]*requestCacheCall[V]),
		expiry: expiry,
		now:    time.Now,
	}
}

func (rq *RequestCache[K, V]) fresh(entry requestCacheEntry[V]) bool {
	return rq.expiry == 0 || rq.now().Sub(entry.storedAt) < rq.expiry
}

// Get gets the value from the cache map if it's cached, otherwise it will call fn to get the value and cache it.
// fn will only ever be called once for a key, even if there are multiple simultaneous calls to Get before the first call is finished.
func (rq *RequestCache[K, V]) Get(key K, fn func() (V, error)) (V, error) {
	// Try get it from regular cache.
	rq.mu.Lock()
	if entry, ok := rq.cache[key]; ok && rq.fresh(entry) {
		rq.mu.Unlock()
		return entry.val, nil
	}

	// See if there is already a pending request for this key.
	if c, ok := rq.calls[key]; ok {
		rq.mu.Unlock()
		c.wg.Wait()

		return c.val, c.err
	}

	// Cache miss - create the call.
	c := new(requestCacheCall[V])
	c.wg.Add(1)
	rq.calls[key] = c
	rq.mu.Unlock()

	c.val, c.err = fn()
	rq.mu.Lock()
	defer rq.mu.Unlock()

	// Allow other waiting goroutines to return
	c.wg.Done()

	// Store value in regular cache.
	if c.err == nil {
		rq.cache[key] = requestCacheEntry[V]{val: c.val, storedAt: rq.now()}
	}

	// Remove the completed call now that it's cached.
	if rq.calls[key] == c {
		delete(rq.calls, key)
	}

	return c.val, c.err
}

// Len returns how many values are cached, including expired ones that have
// not been fetched again yet.
func (rq *RequestCache[K, V]) Len() int {
	rq.mu.Lock()
	defer rq.mu.Unlock()

	return len(rq.cache)
}
