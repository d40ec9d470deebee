package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/lrutrace/internal/cli/model"
)

var stepInputs inputFlags

var stepCmd = &cobra.Command{
	Use:   "step [scenario.toml]",
	Short: "Walk through a trace one operation at a time",
	Long: `Open an interactive view that reveals one cache transition per key press.
Newly added entries stay highlighted briefly; evicted entries are marked.

Keys: →/n/space next, ←/p previous, r reset, q quit.

Without a file, --ops or --demo the built-in walkthrough is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStep,
}

func init() {
	rootCmd.AddCommand(stepCmd)
	stepInputs.register(stepCmd)
}

func runStep(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if len(args) == 0 && stepInputs.ops == "" {
		stepInputs.demo = true
	}

	scenarios, err := stepInputs.collect(cmd, app, args)
	if err != nil {
		return err
	}
	if len(scenarios) != 1 {
		return fmt.Errorf("step shows one scenario at a time (got %d)", len(scenarios))
	}

	result, err := app.Runner.Run(app.Ctx(), scenarios[0])
	if err != nil {
		return err
	}

	m := model.NewStepperModel(app.Ctx(), app.Theme, model.StepperModelConfig{
		Result:       *result,
		HighlightFor: time.Duration(app.Config.Stepper.HighlightMilliseconds) * time.Millisecond,
	})

	var opts []tea.ProgramOption
	if app.Config.Stepper.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("stepper failed: %w", err)
	}
	return nil
}
