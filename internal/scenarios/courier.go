package scenarios

import (
	"time"

	goap "github.com/lixitrixi/planning"
)

type laborState struct {
	hasWorked bool
	hungry    bool
}

type laborAction int

const (
	work laborAction = iota
	eat
)

func (a laborAction) IsApplicable(laborState) bool { return true }

func (a laborAction) ApplyMut(s *laborState) {
	switch a {
	case work:
		s.hasWorked = true
	case eat:
		s.hungry = false
	}
}

func (a laborAction) String() string {
	if a == work {
		return "Work"
	}
	return "Eat"
}

type workedGoal struct{}

func (workedGoal) IsSatisfied(s laborState) bool { return s.hasWorked }
func (workedGoal) Priority(laborState) int        { return 1 }
func (workedGoal) String() string                 { return "Worked" }

type eatenGoal struct{}

func (eatenGoal) IsSatisfied(s laborState) bool { return !s.hungry }
func (eatenGoal) Priority(s laborState) int {
	if s.hungry {
		return 2
	}
	return 0
}
func (eatenGoal) String() string { return "Eaten" }

type anyLaborGoal interface {
	goap.Goal[laborState]
}

// courier models a worker torn between working and eating: EatenGoal's
// priority spikes once hungry. The run starts hungry, so Eaten (priority 2)
// outranks Worked (priority 1).
func courier() Scenario {
	actions := []laborAction{work, eat}
	goals := []anyLaborGoal{workedGoal{}, eatenGoal{}}

	return Scenario{
		Name:        "courier",
		Description: "A worker alternating between work and hunger — exercises dynamic goal-priority reordering.",
		run: func(policy string) ([]Result, error) {
			counter := &planCounter{}
			start := time.Now()
			agent := goap.NewAgent[laborState](laborState{hungry: true}, actions, goals, goap.WithAgentReporter[laborState, laborAction, anyLaborGoal](counter))
			results, err := runPolicy[laborState](agent, policy)
			return stamp(results, err, counter, start)
		},
	}
}
