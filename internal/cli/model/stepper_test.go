package model

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lrutrace/internal/application/port"
	"github.com/bnema/lrutrace/internal/application/usecase"
	"github.com/bnema/lrutrace/internal/cli/styles"
	"github.com/bnema/lrutrace/internal/domain/entity"
	"github.com/bnema/lrutrace/internal/infrastructure/cache"
	"github.com/bnema/lrutrace/internal/infrastructure/config"
)

func demoResult(t *testing.T) port.ScenarioResult {
	t.Helper()
	runner := usecase.NewRunScenarioUseCase(nil, cache.NewEngine[string, string], nil, cache.PolicyLRU)
	res, err := runner.Run(context.Background(), entity.DemoScenario())
	require.NoError(t, err)
	return *res
}

func newTestStepper(t *testing.T, highlight time.Duration) StepperModel {
	t.Helper()
	theme := styles.NewTheme(config.DefaultConfig())
	return NewStepperModel(context.Background(), theme, StepperModelConfig{
		Result:       demoResult(t),
		HighlightFor: highlight,
	})
}

func press(t *testing.T, m StepperModel, msg tea.KeyMsg) (StepperModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(StepperModel)
	require.True(t, ok)
	return sm, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestStepper_NextPrevReset(t *testing.T) {
	m := newTestStepper(t, 0)
	assert.Equal(t, 0, m.Cursor())
	assert.Contains(t, m.View(), "Step 0 of 5")
	assert.Contains(t, m.View(), "(empty cache)")

	m, _ = press(t, m, runeKey('n'))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, 3, m.Cursor())
	assert.Contains(t, m.View(), "Step 3 of 5")
	assert.Contains(t, m.View(), "Added C(2) to available slot")

	m, _ = press(t, m, runeKey('p'))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 1, m.Cursor())

	m, _ = press(t, m, runeKey('r'))
	assert.Equal(t, 0, m.Cursor())

	m, _ = press(t, m, runeKey('p'))
	assert.Equal(t, 0, m.Cursor(), "previous stops at the first step")
}

func TestStepper_StopsAtLastStep(t *testing.T) {
	m := newTestStepper(t, 0)
	for i := 0; i < 8; i++ {
		m, _ = press(t, m, runeKey('n'))
	}
	assert.Equal(t, 5, m.Cursor())

	view := m.View()
	assert.Contains(t, view, "Step 5 of 5")
	assert.Contains(t, view, "Cache full: E(4) replaces oldest entry A(0)")
	assert.Contains(t, view, "Evicted")
	assert.Contains(t, view, "evictions 1")
}

func TestStepper_HighlightExpires(t *testing.T) {
	m := newTestStepper(t, time.Millisecond)

	m, cmd := press(t, m, runeKey('n'))
	require.NotNil(t, cmd)
	assert.True(t, m.Highlighted())
	assert.Contains(t, m.View(), "New Entry")

	msg := cmd()
	next, _ := m.Update(msg)
	m = next.(StepperModel)
	assert.False(t, m.Highlighted())
	assert.NotContains(t, m.View(), "New Entry")
}

func TestStepper_StaleHighlightTickIgnored(t *testing.T) {
	m := newTestStepper(t, time.Millisecond)

	m, first := press(t, m, runeKey('n'))
	m, _ = press(t, m, runeKey('n'))
	require.True(t, m.Highlighted())

	next, _ := m.Update(first())
	m = next.(StepperModel)
	assert.True(t, m.Highlighted(), "tick from an older step must not clear the new highlight")
}

func TestStepper_ResetClearsHighlight(t *testing.T) {
	m := newTestStepper(t, time.Hour)

	m, _ = press(t, m, runeKey('n'))
	require.True(t, m.Highlighted())

	m, _ = press(t, m, runeKey('r'))
	assert.False(t, m.Highlighted())
	assert.Equal(t, 0, m.Cursor())
}

func TestStepper_Quit(t *testing.T) {
	m := newTestStepper(t, 0)
	_, cmd := press(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestStepper_WindowSizeLimitsRows(t *testing.T) {
	m := newTestStepper(t, 0)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 16})
	m = next.(StepperModel)

	for i := 0; i < 5; i++ {
		m, _ = press(t, m, runeKey('n'))
	}
	view := m.View()
	assert.Contains(t, view, "put E 4")
	assert.NotContains(t, view, "put A 0", "oldest rows scroll away on short terminals")
}
