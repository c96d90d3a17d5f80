package visitor

import "sync"

// Cache is a thread-safe map
type Cache[K comparable, V any] struct {
	m   map[K]V
	mux sync.RWMutex
}

// Get returns a value from the cache
func (c *Cache[K, V]) Get(k K) (V, bool) {
	c.mux.RLock()
	defer c.mux.RUnlock()
	v, ok := c.m[k]
	return v, ok
}

// Put adds a value to the cache
func (c *Cache[K, V]) Put(k K, v V) {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.m[k] = v
}

// Load returns cached value or stores value returned by load
func (c *Cache[K, V]) Load(k K, load func() V) V {
	if v, ok := c.Get(k); ok {
		return v
	}
	v := load()
	c.Put(k, v)
	return v
}

func NewCache[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{m: make(map[K]V)}
}
