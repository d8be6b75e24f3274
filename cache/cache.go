package cache

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Cache holds values that are expensive to compute and are asked for more
// than once, such as the score of a position that shows up repeatedly in a
// batch. It is safe for concurrent use.
type Cache[K comparable, V any] struct {
	sync.Mutex
	objects map[K]*entry[V]
	hits    int
	misses  int
}

type entry[V any] struct {
	ready chan struct{}
	obj   V
	err   error
}

type LoadFunc[K comparable, V any] func(key K) (V, error)

func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{objects: make(map[K]*entry[V])}
}

// Load returns the cached value for key, computing it with loadFunc first
// if needed. Only one caller computes a given key; others asking for it
// meanwhile wait for that result. Different keys load in parallel. Errors
// are returned to everyone waiting but are not cached.
func (c *Cache[K, V]) Load(key K, loadFunc LoadFunc[K, V]) (V, error) {
	c.Lock()
	if e, ok := c.objects[key]; ok {
		c.Unlock()
		<-e.ready
		if e.err == nil {
			c.Lock()
			c.hits++
			c.Unlock()
			log.Debug().Interface("key", key).Msg("getting obj from cache")
		}
		return e.obj, e.err
	}
	e := &entry[V]{ready: make(chan struct{})}
	c.objects[key] = e
	c.misses++
	c.Unlock()

	log.Debug().Interface("key", key).Msg("loading into cache")
	e.obj, e.err = loadFunc(key)
	if e.err != nil {
		c.Lock()
		delete(c.objects, key)
		c.Unlock()
	}
	close(e.ready)
	return e.obj, e.err
}

// Stats returns the number of hits and misses so far.
func (c *Cache[K, V]) Stats() (hits, misses int) {
	c.Lock()
	defer c.Unlock()
	return c.hits, c.misses
}

// Len is the number of keys loaded or loading.
func (c *Cache[K, V]) Len() int {
	c.Lock()
	defer c.Unlock()
	return len(c.objects)
}
