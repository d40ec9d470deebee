package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/lrutrace/internal/cli"
	"github.com/bnema/lrutrace/internal/domain/entity"
)

// inputFlags are the scenario sources shared by run and step.
type inputFlags struct {
	ops         string
	capacity    int
	capacitySet bool
	policy      string
	demo        bool
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.ops, "ops", "", `inline operations, e.g. "put A 0, put B 1, get A"`)
	cmd.Flags().IntVarP(&f.capacity, "capacity", "c", 0, "capacity for --ops (default from config)")
	cmd.Flags().StringVar(&f.policy, "policy", "", "eviction policy (default from config)")
	cmd.Flags().BoolVar(&f.demo, "demo", false, "replay the built-in A..E walkthrough")
}

// collect gathers scenarios from files, --ops and --demo in that order.
func (f *inputFlags) collect(cmd *cobra.Command, app *cli.App, paths []string) ([]entity.Scenario, error) {
	var scenarios []entity.Scenario
	f.capacitySet = cmd.Flags().Changed("capacity")

	for _, path := range paths {
		s, err := app.Runner.Load(app.Ctx(), path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}

	if f.ops != "" {
		ops, err := entity.ParseOperations(f.ops)
		if err != nil {
			return nil, fmt.Errorf("invalid --ops: %w", err)
		}
		capacity := f.capacity
		if !f.capacitySet {
			capacity = app.Config.Simulation.DefaultCapacity
		}
		scenarios = append(scenarios, entity.Scenario{
			Name:       "inline",
			Capacity:   capacity,
			Operations: ops,
		})
	}

	if f.demo {
		scenarios = append(scenarios, entity.DemoScenario())
	}

	if len(scenarios) == 0 {
		return nil, fmt.Errorf("nothing to simulate: pass scenario files, --ops or --demo")
	}

	if f.policy != "" {
		for i := range scenarios {
			scenarios[i].Policy = f.policy
		}
	}
	return scenarios, nil
}
