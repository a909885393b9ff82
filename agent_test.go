package goap

import "testing"

// --- dynamic priority scenario --------------------------------------------
//
// A courier with two goals: deliver a package (urgent once picked up) and
// restock fuel (urgent once low). Priority depends on state, so PlanDynamic
// must re-sort goals as state changes while PlanConstant must not.

type courierState struct {
	fuel        int
	hasPackage  bool
	delivered   bool
	refueled    bool
}

type courierAction int

const (
	pickUpPackage courierAction = iota
	deliverPackage
	refuel
)

func (a courierAction) IsApplicable(s courierState) bool {
	switch a {
	case pickUpPackage:
		return !s.hasPackage
	case deliverPackage:
		return s.hasPackage && !s.delivered
	case refuel:
		return !s.refueled
	}
	return false
}

func (a courierAction) ApplyMut(s *courierState) {
	switch a {
	case pickUpPackage:
		s.hasPackage = true
	case deliverPackage:
		s.delivered = true
	case refuel:
		s.refueled = true
		s.fuel = 100
	}
}

type deliverGoal struct{}

func (deliverGoal) IsSatisfied(s courierState) bool { return s.delivered }
func (deliverGoal) Priority(s courierState) int {
	if s.hasPackage {
		return 10
	}
	return 1
}

type refuelGoal struct{}

func (refuelGoal) IsSatisfied(s courierState) bool { return s.refueled }
func (refuelGoal) Priority(s courierState) int {
	if s.fuel < 10 {
		return 20
	}
	return 2
}

// newFlushCourier builds an agent whose construction-time state makes
// deliverGoal outrank refuelGoal (fuel is high, package in hand), then
// drops the agent's fuel below the reorder threshold without going through
// NewAgent or sortGoals — simulating state drifting after construction.
func newFlushCourier() *Agent[courierState, courierAction, anyCourierGoal] {
	agent := NewAgent[courierState, courierAction, anyCourierGoal](
		courierState{fuel: 50, hasPackage: true},
		[]courierAction{pickUpPackage, deliverPackage, refuel},
		[]anyCourierGoal{deliverGoal{}, refuelGoal{}},
	)
	agent.State.fuel = 5
	return agent
}

func TestAgentPlanDynamicReordersByPriority(t *testing.T) {
	agent := newFlushCourier()

	sel, ok := agent.PlanDynamic()
	if !ok {
		t.Fatal("expected a reachable goal")
	}
	if _, isRefuel := sel.Goal.(refuelGoal); !isRefuel {
		t.Errorf("expected low-fuel state to prioritize refuel after re-sort, got %T", sel.Goal)
	}
}

func TestAgentPlanConstantKeepsConstructionOrder(t *testing.T) {
	agent := newFlushCourier()

	sel, ok := agent.PlanConstant()
	if !ok {
		t.Fatal("expected a reachable goal")
	}
	if _, isDeliver := sel.Goal.(deliverGoal); !isDeliver {
		t.Errorf("expected PlanConstant to keep construction-time order (deliverGoal first) despite low fuel, got %T", sel.Goal)
	}
}

// anyCourierGoal is the union interface implemented by both courier goals,
// used so they can share a single Goals slice.
type anyCourierGoal interface {
	Goal[courierState]
}

// --- profit-vs-priority scenario ------------------------------------------
//
// Two goals: a high-priority goal that is expensive to reach, and a
// lower-priority goal that is cheap. PlanProfit must pick the cheap one once
// its lower cost outweighs the priority gap.

type stockState struct {
	gold int
}

type earnAction int

const earnOne earnAction = 0

func (earnAction) IsApplicable(stockState) bool { return true }
func (earnAction) ApplyMut(s *stockState)        { s.gold++ }

type smallProfitGoal struct{ target int }

func (g smallProfitGoal) IsSatisfied(s stockState) bool { return s.gold >= g.target }
func (smallProfitGoal) Priority(stockState) int          { return 5 }

type bigProfitGoal struct{ target int }

func (g bigProfitGoal) IsSatisfied(s stockState) bool { return s.gold >= g.target }
func (bigProfitGoal) Priority(stockState) int          { return 8 }

type anyStockGoal interface {
	Goal[stockState]
	Priority(stockState) int
}

func TestAgentPlanProfitPrefersCheaperLowerPriorityGoal(t *testing.T) {
	// small: priority 5, cost 1 (target 1)  -> profit 4
	// big:   priority 8, cost 6 (target 6)  -> profit 2
	agent := NewAgent[stockState, earnAction, anyStockGoal](stockState{}, []earnAction{earnOne},
		[]anyStockGoal{smallProfitGoal{target: 1}, bigProfitGoal{target: 6}})

	sel, ok := agent.PlanProfit()
	if !ok {
		t.Fatal("expected a reachable goal")
	}
	if _, isSmall := sel.Goal.(smallProfitGoal); !isSmall {
		t.Errorf("expected PlanProfit to pick the higher-profit small goal, got %T", sel.Goal)
	}
}

func TestAgentPlanAllOmitsUnreachableGoals(t *testing.T) {
	// With no actions, the target-1 goal is already met at gold 1 and the
	// target-6 goal is unreachable.
	agent := NewAgent[stockState, earnAction, anyStockGoal](stockState{gold: 1}, nil,
		[]anyStockGoal{smallProfitGoal{target: 1}, bigProfitGoal{target: 6}})
	all := agent.PlanAll()
	if len(all) != 1 {
		t.Fatalf("expected exactly one reachable goal, got %d", len(all))
	}
	if _, isSmall := all[0].Goal.(smallProfitGoal); !isSmall {
		t.Errorf("expected the reachable small goal to remain, got %T", all[0].Goal)
	}
}

func TestAgentSortGoalsStableOnEqualPriority(t *testing.T) {
	equalA := smallProfitGoal{target: 1}
	equalB := smallProfitGoal{target: 2}
	agent := NewAgent[stockState, earnAction, anyStockGoal](stockState{}, []earnAction{earnOne},
		[]anyStockGoal{equalA, equalB})

	if agent.Goals[0] != anyStockGoal(equalA) || agent.Goals[1] != anyStockGoal(equalB) {
		t.Errorf("expected stable sort to keep equal-priority goals in input order, got %+v", agent.Goals)
	}
}

func TestAgentPlanConstantNoReachableGoal(t *testing.T) {
	agent := NewAgent[stockState, earnAction, anyStockGoal](stockState{}, nil,
		[]anyStockGoal{bigProfitGoal{target: 1}})
	if _, ok := agent.PlanConstant(); ok {
		t.Error("expected no selection when there are no actions to reach any goal")
	}
}

func TestAgentReporterObservesEveryFindPlanCall(t *testing.T) {
	r := &countingReporter{}
	agent := NewAgent[stockState, earnAction, anyStockGoal](stockState{}, []earnAction{earnOne},
		[]anyStockGoal{smallProfitGoal{target: 1}, bigProfitGoal{target: 3}},
		WithAgentReporter[stockState, earnAction, anyStockGoal](r))

	// target 3 expands gold 0..3 (4 nodes), target 1 expands gold 0..1 (2).
	agent.PlanAll()
	if r.n != 6 {
		t.Errorf("expected both of PlanAll's FindPlan calls to report node expansions (6 total), got %d", r.n)
	}
}
