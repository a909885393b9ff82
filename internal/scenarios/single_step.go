package scenarios

import (
	"time"

	goap "github.com/lixitrixi/planning"
)

type switchState struct {
	IsCorrect bool
}

type makeCorrect struct{}

func (makeCorrect) IsApplicable(s switchState) bool { return !s.IsCorrect }
func (makeCorrect) ApplyMut(s *switchState)          { s.IsCorrect = true }
func (makeCorrect) String() string                   { return "MakeCorrect" }

type isCorrectGoal struct{}

func (isCorrectGoal) IsSatisfied(s switchState) bool { return s.IsCorrect }
func (isCorrectGoal) String() string                 { return "IsCorrect" }

// singleStep is the simplest possible scenario: one action, one goal, no
// branching — a smoke test for the CLI path as much as the planner.
func singleStep() Scenario {
	actions := []makeCorrect{{}}
	goals := []isCorrectGoal{{}}

	return Scenario{
		Name:        "single-step",
		Description: "One action flips one boolean to satisfy one goal — the minimal non-trivial plan.",
		run: func(policy string) ([]Result, error) {
			counter := &planCounter{}
			start := time.Now()
			agent := goap.NewAgent[switchState](switchState{}, actions, goals, goap.WithAgentReporter[switchState, makeCorrect, isCorrectGoal](counter))
			results, err := runPolicy[switchState](agent, policy)
			return stamp(results, err, counter, start)
		},
	}
}
