// Package export writes computed traces as text, JSON or Arrow IPC.
package export

import (
	"fmt"
	"strings"

	"github.com/bnema/lrutrace/internal/application/port"
)

// Supported format names.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatArrow = "arrow"
)

// Formats lists the names accepted by NewExporter.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatArrow}
}

// Options tune exporter output.
type Options struct {
	// Renderer draws text rows; required for the text format.
	Renderer StepRenderer
	// ShowSummary appends aggregate counts after each text trace.
	ShowSummary bool
}

// NewExporter returns the exporter for format.
func NewExporter(format string, opts Options) (port.TraceExporter, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		if opts.Renderer == nil {
			return nil, fmt.Errorf("text export needs a renderer")
		}
		return NewTextExporter(opts.Renderer, opts.ShowSummary), nil
	case FormatJSON:
		return NewJSONExporter(), nil
	case FormatArrow:
		return NewArrowExporter(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (supported: %s)", format, strings.Join(Formats(), ", "))
	}
}
