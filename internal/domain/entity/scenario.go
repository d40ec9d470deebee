package entity

import "fmt"

// Scenario is the input of one simulation run: a capacity and the
// operations to replay against a fresh engine.
type Scenario struct {
	Name       string
	Capacity   int
	Policy     string
	Operations []Operation[string, string]
}

// Validate checks the scenario can be simulated.
func (s Scenario) Validate() error {
	if err := ValidateCapacity(s.Capacity); err != nil {
		if s.Name != "" {
			return fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		return err
	}
	for i, op := range s.Operations {
		if op.Kind != OpGet && op.Kind != OpPut {
			return fmt.Errorf("%w: operation %d has unknown kind %q", ErrInvalidScenario, i+1, op.Kind)
		}
	}
	return nil
}

// DemoCapacity is the slot count of the walkthrough scenario.
const DemoCapacity = 4

// DemoScenario fills four slots with A(0)..D(3) then forces E(4) to evict A.
func DemoScenario() Scenario {
	return Scenario{
		Name:     "demo",
		Capacity: DemoCapacity,
		Operations: []Operation[string, string]{
			PutOp("A", "0"),
			PutOp("B", "1"),
			PutOp("C", "2"),
			PutOp("D", "3"),
			PutOp("E", "4"),
		},
	}
}
