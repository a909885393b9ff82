package scenarios

import (
	"time"

	goap "github.com/lixitrixi/planning"
)

type outingState struct {
	NumFlowers int
	Hungry     bool
	PicnicSet  bool
}

type outingAction int

const (
	pickFlower outingAction = iota
	setPicnic
	eatAtPicnic
)

func (a outingAction) IsApplicable(s outingState) bool {
	switch a {
	case pickFlower:
		return s.NumFlowers < 5
	case setPicnic:
		return !s.PicnicSet
	case eatAtPicnic:
		return s.Hungry && s.PicnicSet
	}
	return false
}

func (a outingAction) ApplyMut(s *outingState) {
	switch a {
	case pickFlower:
		s.NumFlowers++
	case setPicnic:
		s.PicnicSet = true
	case eatAtPicnic:
		s.Hungry = false
	}
}

func (a outingAction) String() string {
	return [...]string{"PickFlower", "SetPicnic", "Eat"}[a]
}

type bouquetMadeGoal struct{}

func (bouquetMadeGoal) IsSatisfied(s outingState) bool { return s.NumFlowers >= 5 }
func (bouquetMadeGoal) Priority(outingState) int        { return 1 }
func (bouquetMadeGoal) String() string                  { return "BouquetMade" }

type eatenAtPicnicGoal struct{}

func (eatenAtPicnicGoal) IsSatisfied(s outingState) bool { return !s.Hungry }
func (eatenAtPicnicGoal) Priority(s outingState) int {
	if s.Hungry {
		return 2
	}
	return 0
}
func (eatenAtPicnicGoal) String() string { return "EatenAtPicnic" }

type anyOutingGoal interface {
	goap.Goal[outingState]
}

// bouquetAndPicnic models someone who must both pick five flowers for a
// bouquet and eat at a picnic they still need to set up. The run starts
// hungry, so EatenAtPicnic (priority 2) outranks BouquetMade (priority 1).
func bouquetAndPicnic() Scenario {
	actions := []outingAction{pickFlower, setPicnic, eatAtPicnic}
	goals := []anyOutingGoal{bouquetMadeGoal{}, eatenAtPicnicGoal{}}

	return Scenario{
		Name:        "bouquet-and-picnic",
		Description: "Pick flowers for a bouquet while hunger competes for priority — exercises dynamic goal reordering with two live goals.",
		run: func(policy string) ([]Result, error) {
			counter := &planCounter{}
			start := time.Now()
			agent := goap.NewAgent[outingState](outingState{Hungry: true}, actions, goals, goap.WithAgentReporter[outingState, outingAction, anyOutingGoal](counter))
			results, err := runPolicy[outingState](agent, policy)
			return stamp(results, err, counter, start)
		},
	}
}
