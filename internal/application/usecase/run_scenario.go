package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/lrutrace/internal/application/port"
	"github.com/bnema/lrutrace/internal/domain/entity"
	"github.com/bnema/lrutrace/internal/logging"
)

// EngineFactory builds a fresh engine for a policy name and capacity.
type EngineFactory func(policy string, capacity int) (port.CacheEngine[string, string], error)

// RunScenarioUseCase turns scenarios into traces, one fresh engine per scenario.
type RunScenarioUseCase struct {
	loader        port.ScenarioLoader
	newEngine     EngineFactory
	recorder      port.TraceRecorder
	defaultPolicy string
}

// NewRunScenarioUseCase creates a scenario runner. loader and recorder may be nil.
func NewRunScenarioUseCase(
	loader port.ScenarioLoader,
	newEngine EngineFactory,
	recorder port.TraceRecorder,
	defaultPolicy string,
) *RunScenarioUseCase {
	return &RunScenarioUseCase{
		loader:        loader,
		newEngine:     newEngine,
		recorder:      recorder,
		defaultPolicy: defaultPolicy,
	}
}

// Load reads a scenario file through the configured loader.
func (uc *RunScenarioUseCase) Load(ctx context.Context, path string) (entity.Scenario, error) {
	if uc.loader == nil {
		return entity.Scenario{}, fmt.Errorf("no scenario loader configured")
	}
	scenario, err := uc.loader.Load(ctx, path)
	if err != nil {
		return entity.Scenario{}, fmt.Errorf("failed to load scenario %s: %w", path, err)
	}
	return scenario, nil
}

// Run simulates a single scenario from an empty cache.
func (uc *RunScenarioUseCase) Run(ctx context.Context, scenario entity.Scenario) (*port.ScenarioResult, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	policy := scenario.Policy
	if policy == "" {
		policy = uc.defaultPolicy
	}

	engine, err := uc.newEngine(policy, scenario.Capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	ctx = logging.WithScenario(ctx, scenario.Name)
	generator := NewGenerateTraceUseCase(engine, uc.recorder)
	trace := generator.Run(ctx, scenario.Operations)
	summary := trace.Summarize()

	logging.FromContext(ctx).Info().
		Int("capacity", scenario.Capacity).
		Int("operations", summary.Operations).
		Int("hits", summary.Hits).
		Int("misses", summary.Misses).
		Int("evictions", summary.Evictions).
		Msg("scenario simulated")

	return &port.ScenarioResult{
		Scenario: scenario,
		Trace:    trace,
		Summary:  summary,
	}, nil
}

// RunAll simulates independent scenarios in parallel. Results keep the input
// order; the first failure cancels the remaining work.
func (uc *RunScenarioUseCase) RunAll(ctx context.Context, scenarios []entity.Scenario) ([]port.ScenarioResult, error) {
	results := make([]port.ScenarioResult, len(scenarios))

	g, gctx := errgroup.WithContext(ctx)
	for i, scenario := range scenarios {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := uc.Run(gctx, scenario)
			if err != nil {
				return err
			}
			results[i] = *res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// LoadAndRunAll loads every path then simulates them together.
func (uc *RunScenarioUseCase) LoadAndRunAll(ctx context.Context, paths []string) ([]port.ScenarioResult, error) {
	scenarios := make([]entity.Scenario, 0, len(paths))
	for _, path := range paths {
		scenario, err := uc.Load(ctx, path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, scenario)
	}
	return uc.RunAll(ctx, scenarios)
}
