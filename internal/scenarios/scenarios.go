// Package scenarios packages a handful of concrete planning problems as
// ready-to-run demo fixtures for the goap-demo CLI. Each scenario owns its
// own state/action/goal types — generic over whatever those are — but
// exposes a uniform, non-generic Scenario so the CLI can list and run any
// of them without knowing their state type.
package scenarios

import (
	"fmt"
	"time"

	goap "github.com/lixitrixi/planning"
)

// Result is one goal selection produced by running a scenario under a
// given policy.
type Result struct {
	Goal    string
	Actions []string
	Cost    int

	// NodesExpanded and Duration describe the search that produced this
	// goal's plan (all goals planned by one Scenario.Run call share the
	// same NodesExpanded/Duration total, since PlanAll runs several
	// searches per call).
	NodesExpanded int
	Duration      time.Duration
}

// planCounter is a goap.Reporter counting node expansions across however
// many FindPlan calls an Agent makes over its lifetime.
type planCounter struct{ n int }

func (c *planCounter) NodeExpanded() { c.n++ }

// stamp copies a planCounter's final count and the elapsed wall-clock time
// onto every result from one Scenario.Run call.
func stamp(results []Result, err error, counter *planCounter, start time.Time) ([]Result, error) {
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)
	for i := range results {
		results[i].NodesExpanded = counter.n
		results[i].Duration = elapsed
	}
	return results, nil
}

// Scenario is a named, runnable planning problem.
type Scenario struct {
	Name        string
	Description string

	// run executes the scenario under the named policy (constant, dynamic,
	// all, profit) and returns one Result per selected goal — PlanAll may
	// return several, the others return at most one.
	run func(policy string) ([]Result, error)

	// snapshot and runFromSnapshot are optional: a scenario whose state type
	// doesn't round-trip through YAML (e.g. one with unexported fields)
	// leaves both nil, and Snapshot/RunFromSnapshot report that plainly
	// rather than silently producing an empty document.
	snapshot        func() ([]byte, error)
	runFromSnapshot func(data []byte, policy string) ([]Result, error)
}

// Run executes the scenario under the named policy.
func (s Scenario) Run(policy string) ([]Result, error) {
	return s.run(policy)
}

// Snapshot returns a YAML-encoded goap.Snapshot of this scenario's default
// starting state, actions, and goals — something a user can edit and hand
// back to RunFromSnapshot to resume a run from a different starting point.
func (s Scenario) Snapshot() ([]byte, error) {
	if s.snapshot == nil {
		return nil, fmt.Errorf("scenario %q does not support snapshots", s.Name)
	}
	return s.snapshot()
}

// RunFromSnapshot decodes a YAML-encoded goap.Snapshot and runs the
// scenario from its state, actions, and goals instead of the scenario's
// built-in defaults.
func (s Scenario) RunFromSnapshot(data []byte, policy string) ([]Result, error) {
	if s.runFromSnapshot == nil {
		return nil, fmt.Errorf("scenario %q does not support snapshots", s.Name)
	}
	return s.runFromSnapshot(data, policy)
}

// All returns the registered scenarios in a fixed, stable order.
func All() []Scenario {
	return []Scenario{
		singleStep(),
		woodcutter(),
		courier(),
		market(),
		bouquetAndPicnic(),
	}
}

// Find looks up a scenario by name.
func Find(name string) (Scenario, bool) {
	for _, s := range All() {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}

func runPolicy[S comparable, A goap.Action[S], G goap.Goal[S]](agent *goap.Agent[S, A, G], policy string) ([]Result, error) {
	switch policy {
	case "constant":
		sel, ok := agent.PlanConstant()
		if !ok {
			return nil, nil
		}
		return []Result{toResult(sel)}, nil
	case "dynamic":
		sel, ok := agent.PlanDynamic()
		if !ok {
			return nil, nil
		}
		return []Result{toResult(sel)}, nil
	case "all":
		sels := agent.PlanAll()
		results := make([]Result, len(sels))
		for i, sel := range sels {
			results[i] = toResult(sel)
		}
		return results, nil
	case "profit":
		sel, ok := agent.PlanProfit()
		if !ok {
			return nil, nil
		}
		return []Result{toResult(sel)}, nil
	default:
		return nil, fmt.Errorf("unknown policy %q: want constant, dynamic, all, or profit", policy)
	}
}

func toResult[A any, G any](sel goap.Selection[A, G]) Result {
	actions := make([]string, len(sel.Plan.Actions))
	for i, a := range sel.Plan.Actions {
		actions[i] = fmt.Sprintf("%v", a)
	}
	return Result{
		Goal:    fmt.Sprintf("%v", sel.Goal),
		Actions: actions,
		Cost:    sel.Plan.Cost,
	}
}
