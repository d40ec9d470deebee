package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is wrapped by every ConfigurationError.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidOperation     = errors.New("invalid operation")
	ErrInvalidScenario      = errors.New("invalid scenario")
)

// ConfigurationError reports a setup value the engine refuses to start with.
// Construction aborts and no engine is returned.
type ConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s=%v: %s", ErrInvalidConfiguration, e.Field, e.Value, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// NewCapacityError returns the error used for capacities below one.
func NewCapacityError(capacity int) *ConfigurationError {
	return &ConfigurationError{Field: "capacity", Value: capacity, Reason: "must be >= 1"}
}

// ValidateCapacity checks that capacity can hold at least one entry.
func ValidateCapacity(capacity int) error {
	if capacity < 1 {
		return NewCapacityError(capacity)
	}
	return nil
}
