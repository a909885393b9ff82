package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixitrixi/planning/internal/config"
	"github.com/lixitrixi/planning/internal/metrics"
	"github.com/lixitrixi/planning/internal/progress"
	"github.com/lixitrixi/planning/internal/scenarios"
)

// RunCommand runs a registered scenario under a selection policy and prints
// the chosen plan(s).
type RunCommand struct {
	Scenario     string `arg:"" optional:"" help:"Scenario name (default: from config)"`
	Policy       string `name:"policy" help:"Selection policy: constant, dynamic, all, profit" default:""`
	Config       string `name:"config" help:"Path to a YAML config file" type:"path"`
	Verbose      bool   `name:"verbose" help:"Print each plan step"`
	Snapshot     string `name:"snapshot" help:"Resume from a YAML snapshot file instead of the scenario's default starting state" type:"path"`
	SaveSnapshot string `name:"save-snapshot" help:"Write the scenario's starting state as a YAML snapshot and exit" type:"path"`
}

// Run executes the run command.
func (cmd *RunCommand) Run() error {
	cfg, err := config.LoadConfig(cmd.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	name := cmd.Scenario
	if name == "" {
		name = cfg.Scenario.Name
	}
	policy := cmd.Policy
	if policy == "" {
		policy = cfg.Scenario.Policy
	}

	scenario, ok := scenarios.Find(name)
	if !ok {
		return fmt.Errorf("unknown scenario %q: run 'goap-demo list-scenarios'", name)
	}

	if cmd.SaveSnapshot != "" {
		data, err := scenario.Snapshot()
		if err != nil {
			return fmt.Errorf("snapshotting scenario %q: %w", name, err)
		}
		if err := os.WriteFile(cmd.SaveSnapshot, data, 0o644); err != nil {
			return fmt.Errorf("writing snapshot %q: %w", cmd.SaveSnapshot, err)
		}
		fmt.Printf("wrote starting-state snapshot for %q to %s\n", name, cmd.SaveSnapshot)
		return nil
	}

	runID := uuid.NewString()
	log.Info("goap-demo: starting run", "run_id", runID, "scenario", name, "policy", policy)

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector()
		if err := prometheus.Register(collector); err != nil {
			return fmt.Errorf("registering metrics collector: %w", err)
		}
	}

	ind := progress.NewIndicator(cmd.Verbose || cfg.Output.Verbose)
	ind.Phase(fmt.Sprintf("scenario %s (%s)", name, policy))

	var results []scenarios.Result
	if cmd.Snapshot != "" {
		data, err := os.ReadFile(cmd.Snapshot)
		if err != nil {
			return fmt.Errorf("reading snapshot %q: %w", cmd.Snapshot, err)
		}
		results, err = scenario.RunFromSnapshot(data, policy)
		if err != nil {
			return fmt.Errorf("running scenario %q from snapshot: %w", name, err)
		}
	} else {
		results, err = scenario.Run(policy)
		if err != nil {
			return fmt.Errorf("running scenario %q: %w", name, err)
		}
	}

	if len(results) == 0 {
		ind.Error("no goal reachable", nil)
		fmt.Println("no goal reachable")
		return nil
	}

	for _, r := range results {
		if collector != nil {
			collector.RecordPlan(name, true, r.Cost, r.NodesExpanded, r.Duration)
			collector.RecordSelection(name, r.Goal, policy)
		}
		ind.GoalSelected(r.Goal, r.Cost)
		for i, a := range r.Actions {
			ind.PlanStep(i+1, a)
		}
		fmt.Printf("goal: %s (cost %d)\n", r.Goal, r.Cost)
		for i, a := range r.Actions {
			fmt.Printf("  %d. %s\n", i+1, a)
		}
	}

	ind.Summary(true, fmt.Sprintf("%d goal(s) planned", len(results)))
	return nil
}
