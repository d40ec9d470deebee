package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file location. An empty used path
// means only defaults and environment variables were applied.
func (r *ConfigRenderer) RenderConfigInfo(path string, used bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	status := ""
	if !used {
		status = fmt.Sprintf("\n  %s %s",
			iconStyle.Render(IconInfo),
			r.theme.WarningStyle.Render("not found, using defaults (run `lrutrace config init`)"),
		)
	}

	return fmt.Sprintf(
		"\n  %s Config %s%s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
		status,
	)
}

// RenderWritten renders the success message after a config file was created.
func (r *ConfigRenderer) RenderWritten(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s Wrote %s\n", iconStyle.Render(IconCheck), r.theme.Subtle.Render(path))
}
