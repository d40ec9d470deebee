// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/bnema/lrutrace/internal/application/port"
	"github.com/bnema/lrutrace/internal/application/usecase"
	"github.com/bnema/lrutrace/internal/cli/styles"
	"github.com/bnema/lrutrace/internal/domain/build"
	"github.com/bnema/lrutrace/internal/infrastructure/cache"
	"github.com/bnema/lrutrace/internal/infrastructure/config"
	"github.com/bnema/lrutrace/internal/infrastructure/export"
	"github.com/bnema/lrutrace/internal/infrastructure/metrics"
	"github.com/bnema/lrutrace/internal/infrastructure/scenario"
	"github.com/bnema/lrutrace/internal/logging"
)

const metricsNamespace = "lrutrace"

// App holds CLI dependencies.
type App struct {
	Config     *config.Config
	ConfigFile string // empty when no file was found
	Theme      *styles.Theme
	BuildInfo  build.Info

	// Use cases
	Runner *usecase.RunScenarioUseCase

	// Adapters
	Loader   *scenario.FileLoader
	Recorder *metrics.Recorder

	// Context with logger
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies. configFile
// overrides the XDG lookup when set.
func NewApp(configFile string) (*App, error) {
	cfg, used, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	theme := styles.NewTheme(cfg)

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
		Output:     os.Stderr,
	})
	ctx := logging.WithComponent(logging.WithContext(context.Background(), logger), "cli")
	logger.Debug().Str("config", used).Msg("configuration loaded")

	loader := scenario.NewFileLoader(true)
	recorder := metrics.NewRecorder(metricsNamespace)
	runner := usecase.NewRunScenarioUseCase(
		loader,
		cache.NewEngine[string, string],
		recorder,
		cfg.Simulation.Policy,
	)

	return &App{
		Config:     cfg,
		ConfigFile: used,
		Theme:      theme,
		Runner:     runner,
		Loader:     loader,
		Recorder:   recorder,
		ctx:        ctx,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Exporter builds the trace exporter for format, falling back to the
// configured output format when format is empty.
func (a *App) Exporter(format string) (port.TraceExporter, error) {
	if format == "" {
		format = string(a.Config.Output.Format)
	}
	exp, err := export.NewExporter(format, export.Options{
		Renderer:    styles.NewCacheRenderer(a.Theme),
		ShowSummary: a.Config.Output.ShowSummary,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create exporter: %w", err)
	}
	return exp, nil
}
