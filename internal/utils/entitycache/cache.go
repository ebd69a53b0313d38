// Package entitycache holds the in-memory copy of an entity collection.
//
// The cache is write-then-locally-patch: a successful store write is merged into
// the local copy without re-reading the store. Writes made by other processes only
// become visible at the next Replace, so between refreshes Get may return stale data.
package entitycache

import (
	"sync"
	"time"
)

// Identifiable is implemented by every cached entity.
type Identifiable interface {
	GetID() string
}

// Status describes the freshness of a cache.
type Status struct {
	Loaded      bool       `json:"loaded"`
	Count       int        `json:"count"`
	RefreshedAt *time.Time `json:"refreshedAt,omitempty"`
	LastError   string     `json:"lastError,omitempty"`
}

// Cache keeps entities in insertion order with an index by ID.
type Cache[T Identifiable] struct {
	mu          sync.RWMutex
	items       []T
	index       map[string]int
	loaded      bool
	refreshedAt time.Time
	lastErr     error
	now         func() time.Time
}

// New returns an empty, not yet loaded cache.
func New[T Identifiable]() *Cache[T] {
	return &Cache[T]{
		index: make(map[string]int),
		now:   time.Now,
	}
}

// Replace swaps the whole content with a fresh list from the store and clears the last error.
func (c *Cache[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make([]T, 0, len(items))
	c.index = make(map[string]int, len(items))
	for _, it := range items {
		c.putLocked(it)
	}
	c.loaded = true
	c.refreshedAt = c.now()
	c.lastErr = nil
}

// Put inserts or overwrites a single entity.
func (c *Cache[T]) Put(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.putLocked(item)
}

func (c *Cache[T]) putLocked(item T) {
	id := item.GetID()
	if i, ok := c.index[id]; ok {
		c.items[i] = item
		return
	}
	c.index[id] = len(c.items)
	c.items = append(c.items, item)
}

// Remove drops the entity with the given ID, if present.
func (c *Cache[T]) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.items); j++ {
		c.index[c.items[j].GetID()] = j
	}
}

// Get looks up an entity by ID without touching the store.
func (c *Cache[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.items[i], true
}

// All returns a snapshot of the cached entities in insertion order.
func (c *Cache[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Loaded reports whether Replace has ever been called.
func (c *Cache[T]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// RecordError remembers the last refresh failure. The cached content is kept.
func (c *Cache[T]) RecordError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastErr = err
}

// Status reports freshness and the last refresh error.
func (c *Cache[T]) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()

	st := Status{Loaded: c.loaded, Count: len(c.items)}
	if c.loaded {
		at := c.refreshedAt
		st.RefreshedAt = &at
	}
	if c.lastErr != nil {
		st.LastError = c.lastErr.Error()
	}
	return st
}
