package port

import (
	"context"
	"io"

	"github.com/bnema/lrutrace/internal/domain/entity"
)

// TraceRecorder observes transitions as they are generated.
type TraceRecorder interface {
	RecordTransition(op entity.OpKind, hit, update, evicted bool, size int)
}

// ScenarioLoader reads a scenario definition from a file.
type ScenarioLoader interface {
	Load(ctx context.Context, path string) (entity.Scenario, error)
}

// ScenarioResult is the computed trace of one scenario.
type ScenarioResult struct {
	Scenario entity.Scenario
	Trace    entity.Trace[string, string]
	Summary  entity.TraceSummary
}

// TraceExporter writes scenario results in a consumer-facing format.
type TraceExporter interface {
	Export(w io.Writer, results []ScenarioResult) error
}
