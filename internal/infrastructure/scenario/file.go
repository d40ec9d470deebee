// Package scenario reads simulation scenarios from TOML files.
package scenario

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bnema/lrutrace/internal/domain/entity"
)

// File is the on-disk layout of a scenario.
type File struct {
	Name       string   `toml:"name" json:"name,omitempty" jsonschema:"description=Label shown in traces (defaults to the file name)"`
	Capacity   int      `toml:"capacity" json:"capacity" jsonschema:"required,minimum=1,description=Number of cache slots"`
	Policy     string   `toml:"policy" json:"policy,omitempty" jsonschema:"enum=lru,description=Eviction policy"`
	Operations []string `toml:"operations" json:"operations" jsonschema:"required,description=Operations such as 'put A 0' or 'get A' or 'A(0)'"`
}

// ToScenario parses the operations and validates the result. fallbackName
// is used when the file does not set one.
func (f File) ToScenario(fallbackName string) (entity.Scenario, error) {
	name := f.Name
	if name == "" {
		name = fallbackName
	}

	ops := make([]entity.Operation[string, string], 0, len(f.Operations))
	for i, raw := range f.Operations {
		op, err := entity.ParseOperation(raw)
		if err != nil {
			return entity.Scenario{}, fmt.Errorf("%w: %s: operation %d: %w", entity.ErrInvalidScenario, name, i+1, err)
		}
		ops = append(ops, op)
	}

	s := entity.Scenario{
		Name:       name,
		Capacity:   f.Capacity,
		Policy:     strings.ToLower(strings.TrimSpace(f.Policy)),
		Operations: ops,
	}
	if err := s.Validate(); err != nil {
		return entity.Scenario{}, fmt.Errorf("%w: %w", entity.ErrInvalidScenario, err)
	}
	return s, nil
}

// FromScenario converts a scenario back to its file layout.
func FromScenario(s entity.Scenario) File {
	ops := make([]string, len(s.Operations))
	for i, op := range s.Operations {
		ops[i] = op.String()
	}
	return File{
		Name:       s.Name,
		Capacity:   s.Capacity,
		Policy:     s.Policy,
		Operations: ops,
	}
}

func nameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
