package scenario

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/bnema/lrutrace/internal/application/port"
	"github.com/bnema/lrutrace/internal/domain/entity"
	"github.com/bnema/lrutrace/internal/logging"
)

// FileLoader loads scenarios from TOML files.
type FileLoader struct {
	strict bool
}

var _ port.ScenarioLoader = (*FileLoader)(nil)

// NewFileLoader creates a loader. With strict set, unknown keys are rejected.
func NewFileLoader(strict bool) *FileLoader {
	return &FileLoader{strict: strict}
}

// Load reads and validates the scenario at path.
func (l *FileLoader) Load(ctx context.Context, path string) (entity.Scenario, error) {
	log := logging.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return entity.Scenario{}, fmt.Errorf("failed to read scenario file: %w", err)
	}

	s, err := l.Decode(bytes.NewReader(data), nameFromPath(path))
	if err != nil {
		return entity.Scenario{}, err
	}

	log.Debug().
		Str("path", path).
		Str("scenario", s.Name).
		Int("capacity", s.Capacity).
		Int("operations", len(s.Operations)).
		Msg("scenario loaded")
	return s, nil
}

// Decode parses a scenario document from r.
func (l *FileLoader) Decode(r io.Reader, fallbackName string) (entity.Scenario, error) {
	var f File
	dec := toml.NewDecoder(r)
	if l.strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(&f); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return entity.Scenario{}, fmt.Errorf("%w: %s: line %d column %d: %s", entity.ErrInvalidScenario, fallbackName, row, col, derr.Error())
		}
		return entity.Scenario{}, fmt.Errorf("%w: %s: %w", entity.ErrInvalidScenario, fallbackName, err)
	}
	return f.ToScenario(fallbackName)
}

// Encode writes s as a TOML scenario document.
func Encode(w io.Writer, s entity.Scenario) error {
	enc := toml.NewEncoder(w)
	if err := enc.Encode(FromScenario(s)); err != nil {
		return fmt.Errorf("failed to encode scenario: %w", err)
	}
	return nil
}
