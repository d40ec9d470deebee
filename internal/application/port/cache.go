package port

import "github.com/bnema/lrutrace/internal/domain/entity"

// CacheEngine is a capacity-bounded key/value store that owns its eviction
// decisions. Implementations are not required to be safe for concurrent use;
// hosts that share an engine must serialise calls themselves.
type CacheEngine[K comparable, V any] interface {
	// Get returns the value for key and refreshes its recency on a hit.
	// A miss leaves the state untouched.
	Get(key K) entity.GetOutcome[V]

	// Put inserts or updates key at the most recent position, evicting the
	// least recently used entry when a new key arrives at full capacity.
	Put(key K, value V) entity.PutOutcome[K]

	// PeekState returns a copy of the current recency order, MRU first.
	PeekState() entity.CacheState[K, V]

	// Capacity returns the maximum number of entries.
	Capacity() int

	// Size returns the number of entries currently held.
	Size() int

	// Reset empties the cache and its recency order.
	Reset()
}
