// Package cache provides the cache engines driven by the trace generator.
package cache

import (
	"container/list"

	"github.com/bnema/lrutrace/internal/domain/entity"
)

// LRU is a fixed-capacity LRU (Least Recently Used) cache engine.
// It implements port.CacheEngine[K, V].
//
// When a new key arrives at full capacity, the entry at the back of the
// recency list is evicted. Both Get hits and Put mark an entry as recently
// used. LRU is not safe for concurrent use.
type LRU[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	order    *list.List // Front = most recent, Back = least recent
}

// entry holds a key-value pair in the LRU cache.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// NewLRU creates a new LRU cache with the given capacity.
// Capacity must be at least 1, otherwise a *entity.ConfigurationError is returned.
func NewLRU[K comparable, V any](capacity int) (*LRU[K, V], error) {
	if err := entity.ValidateCapacity(capacity); err != nil {
		return nil, err
	}
	return &LRU[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element),
		order:    list.New(),
	}, nil
}

// Get retrieves a value by key and marks it as recently used.
func (c *LRU[K, V]) Get(key K) entity.GetOutcome[V] {
	elem, ok := c.items[key]
	if !ok {
		return entity.GetOutcome[V]{}
	}
	c.order.MoveToFront(elem)
	return entity.GetOutcome[V]{Hit: true, Value: elem.Value.(*entry[K, V]).value}
}

// Put adds or updates a value in the cache.
// If the key already exists, its value is updated and it's marked as recently used.
// If the cache is at capacity, the least recently used entry is evicted first.
func (c *LRU[K, V]) Put(key K, value V) entity.PutOutcome[K] {
	// Update existing entry
	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*entry[K, V]).value = value
		return entity.PutOutcome[K]{WasUpdate: true}
	}

	var out entity.PutOutcome[K]

	// Evict LRU entry if at capacity
	if c.order.Len() >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			victim := c.order.Remove(oldest).(*entry[K, V])
			delete(c.items, victim.key)
			out.Evicted = victim.key
			out.HasEviction = true
		}
	}

	// Add new entry at front (most recent)
	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
	return out
}

// PeekState returns a copy of the recency order without touching it.
func (c *LRU[K, V]) PeekState() entity.CacheState[K, V] {
	state := make(entity.CacheState[K, V], 0, c.order.Len())
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		e := elem.Value.(*entry[K, V])
		state = append(state, entity.Entry[K, V]{Key: e.key, Value: e.value})
	}
	return state
}

// Capacity returns the maximum number of entries.
func (c *LRU[K, V]) Capacity() int {
	return c.capacity
}

// Size returns the number of items currently in the cache.
func (c *LRU[K, V]) Size() int {
	return c.order.Len()
}

// Reset removes all items from the cache.
func (c *LRU[K, V]) Reset() {
	c.items = make(map[K]*list.Element)
	c.order.Init()
}
