package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lrutrace/internal/domain/entity"
)

func TestNewEngine(t *testing.T) {
	for _, policy := range []string{"", "lru", "LRU", " lru "} {
		t.Run(policy, func(t *testing.T) {
			engine, err := NewEngine[string, int](policy, 2)
			require.NoError(t, err)
			assert.Equal(t, 2, engine.Capacity())
			assert.IsType(t, &LRU[string, int]{}, engine)
		})
	}
}

func TestNewEngine_Errors(t *testing.T) {
	engine, err := NewEngine[string, int]("fifo", 2)
	require.Error(t, err)
	assert.Nil(t, engine)
	assert.ErrorIs(t, err, entity.ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), "policy=fifo")

	engine, err = NewEngine[string, int]("lru", 0)
	require.Error(t, err)
	assert.Nil(t, engine)
	assert.ErrorIs(t, err, entity.ErrInvalidConfiguration)
}
