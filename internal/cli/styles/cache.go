package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/lrutrace/internal/domain/entity"
)

const (
	labelNewEntry = "New Entry"
	labelEvicted  = "Evicted"
	emptySlot     = "·"
)

// CacheRenderer draws cache states as rows of blocks, MRU on the left.
type CacheRenderer struct {
	theme *Theme
}

// NewCacheRenderer creates a renderer using theme.
func NewCacheRenderer(theme *Theme) *CacheRenderer {
	return &CacheRenderer{theme: theme}
}

// RenderBlocks draws the state after tr. With markChanges set, keys added
// or touched by the step are highlighted. Evicted keys are always appended
// at the LRU end so the row shows what left the cache.
func (r *CacheRenderer) RenderBlocks(tr entity.Transition[string, string], capacity int, markChanges bool) string {
	t := r.theme
	cols := make([]string, 0, capacity+tr.Evicted.Len())

	for _, e := range tr.State {
		style, label := t.Block, ""
		if markChanges {
			switch {
			case tr.IsNew(e.Key):
				style, label = t.BlockNew, t.LabelNew.Render(labelNewEntry)
			case !tr.IsNoOp() && e.Key == tr.TouchedKey:
				style = t.BlockTouched
			}
		}
		cols = append(cols, column(style.Render(e.String()), label))
	}

	for i := tr.State.Len(); i < capacity; i++ {
		cols = append(cols, column(t.BlockEmpty.Render(emptySlot), ""))
	}

	for _, key := range tr.Evicted {
		cols = append(cols, column(t.BlockEvicted.Render(key), t.LabelEvicted.Render(labelEvicted)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// column stacks a block over its caption. A blank caption keeps rows aligned.
func column(block, label string) string {
	if label == "" {
		label = " "
	}
	return lipgloss.JoinVertical(lipgloss.Center, block, label)
}

// RenderHeader renders the title line of a scenario.
func (r *CacheRenderer) RenderHeader(name string, capacity int, policy string) string {
	t := r.theme
	if name == "" {
		name = "scenario"
	}
	if policy == "" {
		policy = "lru"
	}
	return fmt.Sprintf("%s  %s %s",
		t.Title.Render(name),
		t.MutedBadge(fmt.Sprintf("capacity %d", capacity)),
		t.MutedBadge(strings.ToUpper(policy)),
	)
}

// RenderStep renders one transition: step number, operation, outcome badge,
// description and the resulting blocks.
func (r *CacheRenderer) RenderStep(tr entity.Transition[string, string], capacity int) string {
	t := r.theme
	line := lipgloss.JoinHorizontal(lipgloss.Center,
		t.StepNumber.Render(fmt.Sprintf("Step %d", tr.Step)),
		t.StepOperation.Render(tr.Operation.String()),
		t.OutcomeBadge(tr),
		" ",
		t.Subtle.Render(tr.Description),
	)
	return lipgloss.JoinVertical(lipgloss.Left, line, r.RenderBlocks(tr, capacity, true))
}

// RenderSummary renders aggregate counts for a trace.
func (r *CacheRenderer) RenderSummary(s entity.TraceSummary) string {
	t := r.theme
	parts := []string{
		fmt.Sprintf("%s %d", t.Subtle.Render("operations"), s.Operations),
		fmt.Sprintf("%s %d", t.Subtle.Render("hits"), s.Hits),
		fmt.Sprintf("%s %d", t.Subtle.Render("misses"), s.Misses),
		fmt.Sprintf("%s %d", t.Subtle.Render("inserts"), s.Inserts),
		fmt.Sprintf("%s %d", t.Subtle.Render("updates"), s.Updates),
		fmt.Sprintf("%s %d", t.Subtle.Render("evictions"), s.Evictions),
		fmt.Sprintf("%s %s", t.Subtle.Render("hit ratio"), t.Highlight.Render(fmt.Sprintf("%.0f%%", s.HitRatio()*100))),
	}
	return strings.Join(parts, "  ")
}

// RenderSlots renders the capacity/used/available line shown by the stepper.
func (r *CacheRenderer) RenderSlots(used, capacity int) string {
	t := r.theme
	return fmt.Sprintf("%s %d  %s %d  %s %d",
		t.Subtle.Render("Capacity"), capacity,
		t.Subtle.Render("Used"), used,
		t.Subtle.Render("Available"), capacity-used,
	)
}
