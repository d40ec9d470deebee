package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/lrutrace/internal/domain/entity"
)

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// StatusBadge renders a status badge with custom colors.
func (t *Theme) StatusBadge(text string, fg, bg lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
	return style.Render(text)
}

// OutcomeBadge labels what an operation did to the cache.
func (t *Theme) OutcomeBadge(tr entity.Transition[string, string]) string {
	switch {
	case tr.IsNoOp():
		return t.MutedBadge("miss")
	case tr.IsEviction():
		return t.StatusBadge("evict", t.Background, t.Evicted)
	case tr.Outcome.WasUpdate:
		return t.AccentBadge("update")
	case tr.Operation.Kind == entity.OpGet:
		return t.AccentBadge("hit")
	default:
		return t.AccentBadge("insert")
	}
}

// SlotsBadge renders "used/capacity" slot usage.
func (t *Theme) SlotsBadge(used, capacity int) string {
	return t.MutedBadge(fmt.Sprintf("%d/%d slots", used, capacity))
}
