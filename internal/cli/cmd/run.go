package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/lrutrace/internal/application/port"
	"github.com/bnema/lrutrace/internal/cli"
	"github.com/bnema/lrutrace/internal/domain/entity"
	"github.com/bnema/lrutrace/internal/infrastructure/scenario"
	"github.com/bnema/lrutrace/internal/logging"
)

var (
	runInputs  inputFlags
	runFormat  string
	runMetrics bool
	runWatch   bool
)

var runCmd = &cobra.Command{
	Use:   "run [scenario.toml...]",
	Short: "Simulate scenarios and print their traces",
	Long: `Replay each scenario against a fresh LRU cache and print one transition per
operation: the resulting state (most recent first), the keys added and the keys
evicted.

Scenarios run in parallel, each with its own cache.

Examples:
  lrutrace run --demo
  lrutrace run --ops "put A 0, put B 1, get A, put C 2" --capacity 2
  lrutrace run scenarios/*.toml --format json
  lrutrace run warmup.toml --format arrow > trace.arrow
  lrutrace run warmup.toml --watch`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runInputs.register(runCmd)
	runCmd.Flags().StringVarP(&runFormat, "format", "f", "", "output format: text, json or arrow (default from config)")
	runCmd.Flags().BoolVar(&runMetrics, "metrics", false, "print hit/miss/eviction counters to stderr")
	runCmd.Flags().BoolVarP(&runWatch, "watch", "w", false, "re-run the scenario file whenever it changes")
}

func runRun(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	exporter, err := app.Exporter(runFormat)
	if err != nil {
		return err
	}

	if runWatch {
		return watchScenario(cmd, app, args, exporter)
	}

	scenarios, err := runInputs.collect(cmd, app, args)
	if err != nil {
		return err
	}

	results, err := app.Runner.RunAll(app.Ctx(), scenarios)
	if err != nil {
		return err
	}

	if err := exporter.Export(cmd.OutOrStdout(), results); err != nil {
		return err
	}

	if runMetrics || app.Config.Output.ShowMetrics {
		return printMetrics(cmd.ErrOrStderr(), app)
	}
	return nil
}

func printMetrics(w io.Writer, app *cli.App) error {
	samples, err := app.Recorder.Snapshot()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	fmt.Fprintln(w)
	for _, s := range samples {
		fmt.Fprintf(w, "%s %s\n", app.Theme.Subtle.Render(s.Name), app.Theme.Highlight.Render(fmt.Sprintf("%g", s.Value)))
	}
	return nil
}

func watchScenario(cmd *cobra.Command, app *cli.App, args []string, exporter port.TraceExporter) error {
	if len(args) != 1 {
		return fmt.Errorf("--watch needs exactly one scenario file")
	}
	path := args[0]

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rerun := func(s entity.Scenario, loadErr error) {
		log := logging.FromContext(ctx)
		if loadErr != nil {
			log.Error().Err(loadErr).Str("path", path).Msg("scenario reload failed")
			fmt.Fprintln(cmd.ErrOrStderr(), app.Theme.ErrorStyle.Render(loadErr.Error()))
			return
		}
		if runInputs.policy != "" {
			s.Policy = runInputs.policy
		}
		if err := simulateAndExport(ctx, cmd.OutOrStdout(), app, s, exporter); err != nil {
			log.Error().Err(err).Msg("scenario run failed")
			fmt.Fprintln(cmd.ErrOrStderr(), app.Theme.ErrorStyle.Render(err.Error()))
		}
	}

	rerun(app.Runner.Load(ctx, path))
	fmt.Fprintln(cmd.ErrOrStderr(), app.Theme.Subtle.Render(fmt.Sprintf("watching %s (ctrl+c to stop)", path)))

	return scenario.Watch(ctx, app.Loader, path, rerun)
}

func simulateAndExport(
	ctx context.Context,
	w io.Writer,
	app *cli.App,
	s entity.Scenario,
	exporter port.TraceExporter,
) error {
	res, err := app.Runner.Run(ctx, s)
	if err != nil {
		return err
	}
	return exporter.Export(w, []port.ScenarioResult{*res})
}
