package cache

import (
	"strings"

	"github.com/bnema/lrutrace/internal/application/port"
	"github.com/bnema/lrutrace/internal/domain/entity"
)

var _ port.CacheEngine[string, int] = (*LRU[string, int])(nil)

// Eviction policy names accepted by NewEngine.
const (
	PolicyLRU = "lru"
)

// Policies lists the supported policy names.
func Policies() []string {
	return []string{PolicyLRU}
}

// NewEngine builds an engine for the named eviction policy.
// An empty name selects LRU.
func NewEngine[K comparable, V any](policy string, capacity int) (port.CacheEngine[K, V], error) {
	switch strings.ToLower(strings.TrimSpace(policy)) {
	case "", PolicyLRU:
		lru, err := NewLRU[K, V](capacity)
		if err != nil {
			return nil, err
		}
		return lru, nil
	default:
		return nil, &entity.ConfigurationError{
			Field:  "policy",
			Value:  policy,
			Reason: "unsupported eviction policy (supported: " + strings.Join(Policies(), ", ") + ")",
		}
	}
}
