// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/lrutrace/internal/application/port"
	"github.com/bnema/lrutrace/internal/cli/styles"
	"github.com/bnema/lrutrace/internal/domain/entity"
	"github.com/bnema/lrutrace/internal/logging"
)

// Each revealed row takes a step line, three block lines and a caption.
const linesPerRow = 5

// StepperModel is the Bubble Tea model that walks a trace one step at a time.
type StepperModel struct {
	// UI components
	help     help.Model
	keys     styles.StepperKeyMap
	renderer *styles.CacheRenderer

	// State
	result      port.ScenarioResult
	cursor      int // number of revealed steps
	highlighted bool
	highlightID int // bumps on every step so stale ticks are ignored
	width       int
	height      int

	// Config
	highlightFor time.Duration

	// Dependencies
	ctx   context.Context
	theme *styles.Theme
}

// StepperModelConfig holds configuration for the stepper model.
type StepperModelConfig struct {
	Result port.ScenarioResult
	// HighlightFor is how long the keys added by a step stay highlighted.
	// Zero disables highlighting.
	HighlightFor time.Duration
}

// NewStepperModel creates a new trace stepper.
func NewStepperModel(ctx context.Context, theme *styles.Theme, cfg StepperModelConfig) StepperModel {
	return StepperModel{
		help:         styles.NewStyledHelp(theme),
		keys:         styles.DefaultStepperKeyMap(),
		renderer:     styles.NewCacheRenderer(theme),
		result:       cfg.Result,
		width:        80,
		height:       24,
		highlightFor: cfg.HighlightFor,
		ctx:          ctx,
		theme:        theme,
	}
}

// highlightExpiredMsg clears the highlight of the step it was scheduled for.
type highlightExpiredMsg struct {
	id int
}

// Init implements tea.Model.
func (m StepperModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m StepperModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case highlightExpiredMsg:
		if msg.id == m.highlightID {
			m.highlighted = false
		}
		return m, nil
	}

	return m, nil
}

func (m StepperModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		if m.cursor >= len(m.result.Trace) {
			return m, nil
		}
		m.cursor++
		logging.FromContext(m.ctx).Debug().Int("step", m.cursor).Msg("stepper advanced")
		return m, m.startHighlight()

	case key.Matches(msg, m.keys.Prev):
		if m.cursor > 0 {
			m.cursor--
		}
		m.clearHighlight()
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.cursor = 0
		m.clearHighlight()
		logging.FromContext(m.ctx).Debug().Msg("stepper reset")
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

func (m *StepperModel) startHighlight() tea.Cmd {
	m.highlightID++
	if m.highlightFor <= 0 {
		m.highlighted = false
		return nil
	}
	m.highlighted = true
	id := m.highlightID
	return tea.Tick(m.highlightFor, func(time.Time) tea.Msg {
		return highlightExpiredMsg{id: id}
	})
}

func (m *StepperModel) clearHighlight() {
	m.highlightID++
	m.highlighted = false
}

// Cursor returns how many steps are revealed.
func (m StepperModel) Cursor() int {
	return m.cursor
}

// Highlighted reports whether the latest step is still highlighted.
func (m StepperModel) Highlighted() bool {
	return m.highlighted
}

// current returns the last revealed transition.
func (m StepperModel) current() (entity.Transition[string, string], bool) {
	if m.cursor == 0 {
		return entity.Transition[string, string]{}, false
	}
	return m.result.Trace[m.cursor-1], true
}

// View implements tea.Model.
func (m StepperModel) View() string {
	t := m.theme
	sc := m.result.Scenario
	var sb strings.Builder

	sb.WriteString(m.renderer.RenderHeader(sc.Name, sc.Capacity, sc.Policy))
	sb.WriteString("\n\n")

	used := 0
	description := "Press → to add the first entry"
	if tr, ok := m.current(); ok {
		used = tr.State.Len()
		description = tr.Description
	} else if len(m.result.Trace) == 0 {
		description = "Nothing to replay"
	}

	sb.WriteString(m.renderer.RenderSlots(used, sc.Capacity))
	sb.WriteString("\n")
	sb.WriteString(t.Title.Render(fmt.Sprintf("Step %d of %d", m.cursor, len(m.result.Trace))))
	sb.WriteString("  ")
	sb.WriteString(t.Subtle.Render(description))
	sb.WriteString("\n\n")

	sb.WriteString(m.renderRows())
	sb.WriteString("\n")

	if m.cursor == len(m.result.Trace) && m.cursor > 0 {
		sb.WriteString(t.Subtle.Render(m.renderer.RenderSummary(m.result.Summary)))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// renderRows draws every revealed step, dropping the oldest rows when the
// terminal is too short.
func (m StepperModel) renderRows() string {
	if m.cursor == 0 {
		return m.theme.Subtle.Render("(empty cache)")
	}

	maxRows := (m.height - 10) / linesPerRow
	if maxRows < 1 {
		maxRows = 1
	}
	first := 0
	if m.cursor > maxRows {
		first = m.cursor - maxRows
	}

	rows := make([]string, 0, m.cursor-first)
	for i := first; i < m.cursor; i++ {
		tr := m.result.Trace[i]
		latest := i == m.cursor-1
		label := m.theme.StepNumber.Render(fmt.Sprintf("Step %d", tr.Step))
		if latest {
			label = m.theme.Highlight.Render(fmt.Sprintf("Step %d", tr.Step))
		}
		line := label + m.theme.Subtle.Render(tr.Operation.String())
		blocks := m.renderer.RenderBlocks(tr, m.result.Scenario.Capacity, latest && m.highlighted)
		rows = append(rows, lipgloss.JoinVertical(lipgloss.Left, line, blocks))
	}
	return strings.Join(rows, "\n")
}
