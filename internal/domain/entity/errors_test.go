package entity_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lrutrace/internal/domain/entity"
)

func TestValidateCapacity(t *testing.T) {
	tests := []struct {
		capacity int
		wantErr  bool
	}{
		{capacity: -3, wantErr: true},
		{capacity: 0, wantErr: true},
		{capacity: 1, wantErr: false},
		{capacity: 128, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.capacity), func(t *testing.T) {
			err := entity.ValidateCapacity(tt.capacity)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, entity.ErrInvalidConfiguration)

			var cfgErr *entity.ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, "capacity", cfgErr.Field)
			assert.Equal(t, tt.capacity, cfgErr.Value)
		})
	}
}

func TestConfigurationError_Message(t *testing.T) {
	err := entity.NewCapacityError(0)
	assert.Equal(t, "invalid configuration: capacity=0: must be >= 1", err.Error())
}

func TestScenario_Validate(t *testing.T) {
	require.NoError(t, entity.DemoScenario().Validate())

	err := entity.Scenario{Name: "broken", Capacity: 0}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), `scenario "broken"`)

	err = entity.Scenario{
		Capacity:   1,
		Operations: []entity.Operation[string, string]{{Kind: "delete", Key: "A"}},
	}.Validate()
	assert.ErrorIs(t, err, entity.ErrInvalidScenario)
}
