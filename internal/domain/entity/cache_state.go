package entity

import (
	"fmt"
	"strings"
)

// Entry is a single key/value pair held by a cache. Identity is the key.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v(%v)", e.Key, e.Value)
}

// CacheState is an ordered snapshot of a cache, MRU first and LRU last.
type CacheState[K comparable, V any] []Entry[K, V]

// Len returns the number of entries in the snapshot.
func (s CacheState[K, V]) Len() int {
	return len(s)
}

// Keys returns the keys in recency order (MRU first).
func (s CacheState[K, V]) Keys() []K {
	keys := make([]K, len(s))
	for i, e := range s {
		keys[i] = e.Key
	}
	return keys
}

// Contains reports whether key is present in the snapshot.
func (s CacheState[K, V]) Contains(key K) bool {
	_, ok := s.Lookup(key)
	return ok
}

// Lookup returns the entry for key without touching recency.
func (s CacheState[K, V]) Lookup(key K) (Entry[K, V], bool) {
	for _, e := range s {
		if e.Key == key {
			return e, true
		}
	}
	return Entry[K, V]{}, false
}

// MRU returns the most recently used entry.
func (s CacheState[K, V]) MRU() (Entry[K, V], bool) {
	if len(s) == 0 {
		return Entry[K, V]{}, false
	}
	return s[0], true
}

// LRU returns the least recently used entry, the next eviction candidate.
func (s CacheState[K, V]) LRU() (Entry[K, V], bool) {
	if len(s) == 0 {
		return Entry[K, V]{}, false
	}
	return s[len(s)-1], true
}

// Clone returns a copy that shares no backing array with s.
func (s CacheState[K, V]) Clone() CacheState[K, V] {
	out := make(CacheState[K, V], len(s))
	copy(out, s)
	return out
}

// EqualKeys reports whether both snapshots hold the same keys in the same order.
func (s CacheState[K, V]) EqualKeys(other CacheState[K, V]) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i].Key != other[i].Key {
			return false
		}
	}
	return true
}

func (s CacheState[K, V]) String() string {
	parts := make([]string, len(s))
	for i, e := range s {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// KeySet is a small ordered set of keys. Order follows the snapshot it was
// derived from so rendering stays deterministic.
type KeySet[K comparable] []K

// Len returns the number of keys in the set.
func (ks KeySet[K]) Len() int {
	return len(ks)
}

// Empty reports whether the set has no keys.
func (ks KeySet[K]) Empty() bool {
	return len(ks) == 0
}

// Contains reports whether key is a member of the set.
func (ks KeySet[K]) Contains(key K) bool {
	for _, k := range ks {
		if k == key {
			return true
		}
	}
	return false
}

// Intersect returns the keys present in both sets.
func (ks KeySet[K]) Intersect(other KeySet[K]) KeySet[K] {
	out := KeySet[K]{}
	for _, k := range ks {
		if other.Contains(k) {
			out = append(out, k)
		}
	}
	return out
}

// DiffKeys compares two snapshots taken around a single operation.
// added = keys(after) - keys(before), evicted = keys(before) - keys(after).
func DiffKeys[K comparable, V any](before, after CacheState[K, V]) (added, evicted KeySet[K]) {
	beforeKeys := make(map[K]struct{}, len(before))
	for _, e := range before {
		beforeKeys[e.Key] = struct{}{}
	}
	afterKeys := make(map[K]struct{}, len(after))
	for _, e := range after {
		afterKeys[e.Key] = struct{}{}
	}

	added = KeySet[K]{}
	for _, e := range after {
		if _, ok := beforeKeys[e.Key]; !ok {
			added = append(added, e.Key)
		}
	}
	evicted = KeySet[K]{}
	for _, e := range before {
		if _, ok := afterKeys[e.Key]; !ok {
			evicted = append(evicted, e.Key)
		}
	}
	return added, evicted
}
