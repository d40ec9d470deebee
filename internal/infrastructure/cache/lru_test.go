package cache

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lrutrace/internal/domain/entity"
)

func newTestLRU(t *testing.T, capacity int) *LRU[string, int] {
	t.Helper()
	c, err := NewLRU[string, int](capacity)
	require.NoError(t, err)
	return c
}

func TestLRU_BasicOperations(t *testing.T) {
	cache := newTestLRU(t, 3)

	// Test Put and Get
	cache.Put("a", 1)
	cache.Put("b", 2)
	cache.Put("c", 3)

	out := cache.Get("a")
	assert.True(t, out.Hit)
	assert.Equal(t, 1, out.Value)

	out = cache.Get("b")
	assert.True(t, out.Hit)
	assert.Equal(t, 2, out.Value)

	// Test not found
	out = cache.Get("notfound")
	assert.False(t, out.Hit)
	assert.Equal(t, 0, out.Value)

	assert.Equal(t, 3, cache.Size())
	assert.Equal(t, 3, cache.Capacity())
}

func TestLRU_InvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		c, err := NewLRU[string, int](capacity)
		require.Error(t, err)
		assert.Nil(t, c)
		assert.ErrorIs(t, err, entity.ErrInvalidConfiguration)

		var cfgErr *entity.ConfigurationError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, "capacity", cfgErr.Field)
	}
}

func TestLRU_Eviction(t *testing.T) {
	cache := newTestLRU(t, 2)

	assert.Equal(t, entity.PutOutcome[string]{}, cache.Put("a", 1))
	assert.Equal(t, entity.PutOutcome[string]{}, cache.Put("b", 2))
	// Cache is now at capacity: [b, a] (b is most recent)

	// Adding "c" should evict "a" (least recently used)
	out := cache.Put("c", 3)
	assert.False(t, out.WasUpdate)
	assert.True(t, out.HasEviction)
	assert.Equal(t, "a", out.Evicted)

	assert.False(t, cache.Get("a").Hit, "a should have been evicted")
	assert.Equal(t, []string{"c", "b"}, cache.PeekState().Keys())
	assert.Equal(t, 2, cache.Size())
}

func TestLRU_GetUpdatesRecency(t *testing.T) {
	cache := newTestLRU(t, 2)

	cache.Put("A", 0)
	cache.Put("B", 1)
	// Order: [B, A]

	// Access "A" to make it most recent
	cache.Get("A")
	assert.Equal(t, []string{"A", "B"}, cache.PeekState().Keys())

	// Adding "C" should now evict "B" (least recently used)
	out := cache.Put("C", 2)
	assert.Equal(t, "B", out.Evicted)
	assert.Equal(t, []string{"C", "A"}, cache.PeekState().Keys())
}

func TestLRU_MissDoesNotChangeState(t *testing.T) {
	cache := newTestLRU(t, 2)
	cache.Put("a", 1)
	cache.Put("b", 2)

	before := cache.PeekState()
	assert.False(t, cache.Get("zzz").Hit)
	assert.Equal(t, before, cache.PeekState())
}

func TestLRU_UpdateExisting(t *testing.T) {
	cache := newTestLRU(t, 2)

	cache.Put("a", 1)
	cache.Put("b", 2)

	// Update "a" with new value
	out := cache.Put("a", 100)
	assert.True(t, out.WasUpdate)
	assert.False(t, out.HasEviction)

	assert.Equal(t, entity.CacheState[string, int]{{Key: "a", Value: 100}, {Key: "b", Value: 2}}, cache.PeekState())

	// Cache should still have 2 items (no duplicate)
	assert.Equal(t, 2, cache.Size())
}

func TestLRU_Reset(t *testing.T) {
	cache := newTestLRU(t, 3)

	cache.Put("a", 1)
	cache.Put("b", 2)
	cache.Put("c", 3)

	cache.Reset()

	assert.Equal(t, 0, cache.Size())
	assert.Empty(t, cache.PeekState())
	assert.False(t, cache.Get("a").Hit)

	// Recency order starts over after a reset
	cache.Put("x", 1)
	cache.Put("y", 2)
	assert.Equal(t, []string{"y", "x"}, cache.PeekState().Keys())
}

func TestLRU_CapacityOne(t *testing.T) {
	cache := newTestLRU(t, 1)

	cache.Put("a", 1)
	assert.True(t, cache.Get("a").Hit)

	// Adding another should evict first
	out := cache.Put("b", 2)
	assert.Equal(t, "a", out.Evicted)
	assert.False(t, cache.Get("a").Hit)
}

func TestLRU_PeekStateIsACopy(t *testing.T) {
	cache := newTestLRU(t, 3)
	cache.Put("a", 1)
	cache.Put("b", 2)

	first := cache.PeekState()
	second := cache.PeekState()
	assert.Equal(t, first, second)

	first[0] = entity.Entry[string, int]{Key: "mutated", Value: -1}
	assert.Equal(t, second, cache.PeekState(), "callers must not reach engine internals")
}

func TestLRU_HugeCapacityAllocatesLazily(t *testing.T) {
	for _, capacity := range []int{1_000_000_000, math.MaxInt} {
		cache := newTestLRU(t, capacity)

		assert.Equal(t, entity.PutOutcome[string]{}, cache.Put("A", 1))
		assert.Equal(t, 1, cache.Size())
		assert.Equal(t, capacity, cache.Capacity())

		cache.Reset()
		assert.Zero(t, cache.Size())
	}
}

func TestLRU_PointerValues(t *testing.T) {
	type Data struct {
		Name  string
		Value float64
	}

	cache, err := NewLRU[string, *Data](2)
	require.NoError(t, err)

	cache.Put("key1", &Data{Name: "test1", Value: 1.5})
	cache.Put("key2", &Data{Name: "test2", Value: 2.5})

	out := cache.Get("key1")
	require.True(t, out.Hit)
	assert.Equal(t, "test1", out.Value.Name)
	assert.InDelta(t, 1.5, out.Value.Value, 0.001)

	// Update pointer value
	cache.Put("key1", &Data{Name: "updated", Value: 99.9})

	out = cache.Get("key1")
	require.True(t, out.Hit)
	assert.Equal(t, "updated", out.Value.Name)
}

// TestLRU_RandomOperationsHoldInvariants replays seeded random workloads and
// checks every post-condition after each step.
func TestLRU_RandomOperationsHoldInvariants(t *testing.T) {
	keys := []string{"A", "B", "C", "D", "E", "F", "G"}

	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		capacity := 1 + rng.Intn(5)
		cache := newTestLRU(t, capacity)

		for step := 0; step < 200; step++ {
			key := keys[rng.Intn(len(keys))]
			before := cache.PeekState()

			if rng.Intn(2) == 0 {
				out := cache.Put(key, step)
				after := cache.PeekState()

				mru, ok := after.MRU()
				require.True(t, ok)
				require.Equal(t, key, mru.Key, "put key must be MRU")
				require.Equal(t, step, mru.Value)

				require.Equal(t, before.Contains(key), out.WasUpdate)
				if !out.WasUpdate && before.Len() == capacity {
					lru, _ := before.LRU()
					require.True(t, out.HasEviction)
					require.Equal(t, lru.Key, out.Evicted)
					require.Equal(t, capacity, cache.Size())
				} else {
					require.False(t, out.HasEviction)
				}
			} else {
				out := cache.Get(key)
				after := cache.PeekState()
				require.Equal(t, before.Contains(key), out.Hit)
				if out.Hit {
					mru, _ := after.MRU()
					require.Equal(t, key, mru.Key, "hit key must be MRU")
				} else {
					require.Equal(t, before, after)
				}
			}

			require.LessOrEqual(t, cache.Size(), cache.Capacity())
			seen := make(map[string]bool)
			for _, k := range cache.PeekState().Keys() {
				require.False(t, seen[k], "duplicate key %s", k)
				seen[k] = true
			}
		}
	}
}
