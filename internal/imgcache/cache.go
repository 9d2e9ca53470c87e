// Package imgcache holds derived images keyed by their source and releases
// the ones that have gone unused for a number of frames.
package imgcache

type entry[V any] struct {
	value V
	used  uint64
}

// Cache maps keys to values created on first use. Call Frame once per frame;
// entries not fetched during the last MaxAge frames are released.
type Cache[K comparable, V any] struct {
	maxAge  uint64
	release func(V)
	frame   uint64
	entries map[K]*entry[V]
}

// New returns a cache releasing values through release, which may be nil,
// once they have been idle for maxAge frames. maxAge is at least 1.
func New[K comparable, V any](maxAge uint64, release func(V)) *Cache[K, V] {
	if maxAge == 0 {
		maxAge = 1
	}
	return &Cache[K, V]{maxAge: maxAge, release: release, entries: make(map[K]*entry[V])}
}

// Get returns the value for key, calling create when there is none.
func (c *Cache[K, V]) Get(key K, create func() V) V {
	if e, ok := c.entries[key]; ok {
		e.used = c.frame
		return e.value
	}
	v := create()
	c.entries[key] = &entry[V]{value: v, used: c.frame}
	return v
}

// Frame starts a new frame and releases idle entries.
func (c *Cache[K, V]) Frame() {
	c.frame++
	for k, e := range c.entries {
		if c.frame-e.used > c.maxAge {
			c.drop(k, e)
		}
	}
}

// Drop releases the entry for key, if any.
func (c *Cache[K, V]) Drop(key K) {
	if e, ok := c.entries[key]; ok {
		c.drop(key, e)
	}
}

func (c *Cache[K, V]) drop(key K, e *entry[V]) {
	delete(c.entries, key)
	if c.release != nil {
		c.release(e.value)
	}
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int { return len(c.entries) }
