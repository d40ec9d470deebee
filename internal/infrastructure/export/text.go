package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/bnema/lrutrace/internal/application/port"
	"github.com/bnema/lrutrace/internal/domain/entity"
)

// StepRenderer draws the pieces of a text trace.
type StepRenderer interface {
	RenderHeader(name string, capacity int, policy string) string
	RenderStep(tr entity.Transition[string, string], capacity int) string
	RenderSummary(s entity.TraceSummary) string
}

// TextExporter prints one block row per step, MRU first.
type TextExporter struct {
	renderer    StepRenderer
	showSummary bool
}

var _ port.TraceExporter = (*TextExporter)(nil)

// NewTextExporter creates a text exporter.
func NewTextExporter(renderer StepRenderer, showSummary bool) *TextExporter {
	return &TextExporter{renderer: renderer, showSummary: showSummary}
}

// Export implements port.TraceExporter.
func (e *TextExporter) Export(w io.Writer, results []port.ScenarioResult) error {
	var sb strings.Builder
	for i, res := range results {
		if i > 0 {
			sb.WriteString("\n")
		}
		sc := res.Scenario
		sb.WriteString(e.renderer.RenderHeader(sc.Name, sc.Capacity, sc.Policy))
		sb.WriteString("\n\n")

		if len(res.Trace) == 0 {
			sb.WriteString("no operations\n")
		}
		for _, tr := range res.Trace {
			sb.WriteString(e.renderer.RenderStep(tr, sc.Capacity))
			sb.WriteString("\n")
		}

		if e.showSummary {
			sb.WriteString("\n")
			sb.WriteString(e.renderer.RenderSummary(res.Summary))
			sb.WriteString("\n")
		}
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write text trace: %w", err)
	}
	return nil
}
