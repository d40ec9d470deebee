package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bnema/lrutrace/internal/application/port"
	"github.com/bnema/lrutrace/internal/domain/entity"
)

type jsonEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type jsonTransition struct {
	Step        int         `json:"step"`
	Op          string      `json:"op"`
	Key         string      `json:"key"`
	Value       *string     `json:"value"` // null on a get miss
	Hit         bool        `json:"hit"`
	Update      bool        `json:"update"`
	State       []jsonEntry `json:"state"`
	Added       []string    `json:"added"`
	Evicted     []string    `json:"evicted"`
	Touched     string      `json:"touched"`
	Description string      `json:"description"`
}

type jsonScenario struct {
	Name        string              `json:"name"`
	Capacity    int                 `json:"capacity"`
	Policy      string              `json:"policy"`
	Summary     entity.TraceSummary `json:"summary"`
	HitRatio    float64             `json:"hit_ratio"`
	Transitions []jsonTransition    `json:"transitions"`
}

// JSONExporter writes an indented JSON array, one object per scenario.
type JSONExporter struct{}

var _ port.TraceExporter = (*JSONExporter)(nil)

// NewJSONExporter creates a JSON exporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Export implements port.TraceExporter.
func (e *JSONExporter) Export(w io.Writer, results []port.ScenarioResult) error {
	out := make([]jsonScenario, 0, len(results))
	for _, res := range results {
		out = append(out, toJSONScenario(res))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode trace: %w", err)
	}
	return nil
}

func toJSONScenario(res port.ScenarioResult) jsonScenario {
	policy := res.Scenario.Policy
	if policy == "" {
		policy = "lru"
	}
	transitions := make([]jsonTransition, 0, len(res.Trace))
	for _, tr := range res.Trace {
		state := make([]jsonEntry, 0, tr.State.Len())
		for _, e := range tr.State {
			state = append(state, jsonEntry{Key: e.Key, Value: e.Value})
		}
		var value *string
		switch {
		case tr.Operation.Kind == entity.OpPut:
			value = &tr.Operation.Value
		case tr.Outcome.Hit:
			value = &tr.Outcome.Value
		}
		transitions = append(transitions, jsonTransition{
			Step:        tr.Step,
			Op:          string(tr.Operation.Kind),
			Key:         tr.Operation.Key,
			Value:       value,
			Hit:         tr.Outcome.Hit,
			Update:      tr.Outcome.WasUpdate,
			State:       state,
			Added:       append([]string{}, tr.Added...),
			Evicted:     append([]string{}, tr.Evicted...),
			Touched:     tr.TouchedKey,
			Description: tr.Description,
		})
	}
	return jsonScenario{
		Name:        res.Scenario.Name,
		Capacity:    res.Scenario.Capacity,
		Policy:      policy,
		Summary:     res.Summary,
		HitRatio:    res.Summary.HitRatio(),
		Transitions: transitions,
	}
}
