package scenarios

import (
	"fmt"
	"time"

	goap "github.com/lixitrixi/planning"
	"gopkg.in/yaml.v3"
)

type pos struct {
	X, Y int
}

func manhattan(a, b pos) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// woodcutterState is exported field-for-field so it round-trips through
// goap.Snapshot's YAML (de)serialization — see woodcutterSnapshot below.
type woodcutterState struct {
	HasWood, HasAxe, HouseBuilt        bool
	Position, NearestTree, NearestAxe pos
}

type woodcutterAction int

const (
	chopTree woodcutterAction = iota
	grabAxe
	buildHouse
	goToTree
	goToAxe
	goHome
)

func (a woodcutterAction) IsApplicable(s woodcutterState) bool {
	switch a {
	case chopTree:
		return s.HasAxe && s.Position == s.NearestTree
	case grabAxe:
		return !s.HasAxe && s.Position == s.NearestAxe
	case buildHouse:
		return s.HasWood && s.Position == (pos{})
	case goToTree:
		return s.Position != s.NearestTree
	case goToAxe:
		return s.Position != s.NearestAxe
	case goHome:
		return s.Position != (pos{})
	}
	return false
}

func (a woodcutterAction) ApplyMut(s *woodcutterState) {
	switch a {
	case chopTree:
		s.HasWood = true
	case grabAxe:
		s.HasAxe = true
	case buildHouse:
		s.HouseBuilt = true
	case goToTree:
		s.Position = s.NearestTree
	case goToAxe:
		s.Position = s.NearestAxe
	case goHome:
		s.Position = pos{}
	}
}

func (a woodcutterAction) Cost(s woodcutterState) int {
	switch a {
	case goToTree:
		return manhattan(s.Position, s.NearestTree)
	case goToAxe:
		return manhattan(s.Position, s.NearestAxe)
	case goHome:
		return manhattan(s.Position, pos{})
	}
	return 1
}

func (a woodcutterAction) String() string {
	return [...]string{"ChopTree", "GrabAxe", "BuildHouse", "GoToTree", "GoToAxe", "GoHome"}[a]
}

type houseBuiltGoal struct{}

func (houseBuiltGoal) IsSatisfied(s woodcutterState) bool { return s.HouseBuilt }

func (houseBuiltGoal) Heuristic(s woodcutterState) int {
	result := 0
	if !s.HasAxe {
		result += manhattan(s.Position, s.NearestAxe)
	}
	if !s.HasWood {
		result += manhattan(s.NearestAxe, s.NearestTree)
	}
	if !s.HouseBuilt {
		result += manhattan(s.NearestTree, pos{})
	}
	return result
}

func (houseBuiltGoal) String() string { return "HouseBuilt" }

// woodcutterSnapshot is the concrete instantiation of goap.Snapshot this
// scenario (de)serializes — the woodcutter demo is the one scenario wired
// end-to-end to the CLI's --snapshot/--save-snapshot flags; its state type's
// exported fields let YAML round-trip it without custom hooks.
type woodcutterSnapshot = goap.Snapshot[woodcutterState, woodcutterAction, houseBuiltGoal]

func woodcutterDefault() woodcutterState {
	return woodcutterState{
		Position:    pos{0, 0},
		NearestTree: pos{1, 1},
		NearestAxe:  pos{2, 2},
	}
}

func woodcutterRun(actions []woodcutterAction, goals []houseBuiltGoal, initial woodcutterState, policy string) ([]Result, error) {
	counter := &planCounter{}
	start := time.Now()
	agent := goap.NewAgent[woodcutterState](initial, actions, goals, goap.WithAgentReporter[woodcutterState, woodcutterAction, houseBuiltGoal](counter))
	results, err := runPolicy[woodcutterState](agent, policy)
	return stamp(results, err, counter, start)
}

// woodcutter builds a pathfinding-heavy scenario: a woodcutter must fetch an
// axe, chop wood, return home, and build a house. Its single goal has no
// priority dynamics, so every policy behaves the same.
func woodcutter() Scenario {
	actions := []woodcutterAction{chopTree, grabAxe, buildHouse, goToTree, goToAxe, goHome}
	goals := []houseBuiltGoal{{}}

	return Scenario{
		Name:        "woodcutter",
		Description: "Fetch an axe, chop wood, and build a house — exercises pathfinding costs and an admissible heuristic.",
		run: func(policy string) ([]Result, error) {
			return woodcutterRun(actions, goals, woodcutterDefault(), policy)
		},
		snapshot: func() ([]byte, error) {
			snap := woodcutterSnapshot{State: woodcutterDefault(), Actions: actions, Goals: goals}
			return yaml.Marshal(snap)
		},
		runFromSnapshot: func(data []byte, policy string) ([]Result, error) {
			var snap woodcutterSnapshot
			if err := yaml.Unmarshal(data, &snap); err != nil {
				return nil, fmt.Errorf("unmarshaling woodcutter snapshot: %w", err)
			}
			return woodcutterRun(snap.Actions, snap.Goals, snap.State, policy)
		},
	}
}
