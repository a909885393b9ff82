package goap

import (
	"sort"

	"github.com/charmbracelet/log"
)

// Selection pairs a chosen goal with the plan that satisfies it.
type Selection[A any, G any] struct {
	Goal G
	Plan Plan[A]
}

// Agent holds a current state, the actions available to it, and the goals it
// might pursue, and selects which goal to plan for using one of three
// policies (see PlanConstant, PlanDynamic, PlanProfit).
//
// Agent is not safe for concurrent use; callers must serialize access
// externally.
type Agent[S comparable, A Action[S], G Goal[S]] struct {
	State   S
	Actions []A
	Goals   []G

	logger   *log.Logger
	reporter Reporter
}

// AgentOption configures an Agent at construction time.
type AgentOption[S comparable, A Action[S], G Goal[S]] func(*Agent[S, A, G])

// WithLogger overrides the logger an Agent uses to report goal-selection
// decisions. Defaults to the package-level charmbracelet/log logger.
func WithLogger[S comparable, A Action[S], G Goal[S]](logger *log.Logger) AgentOption[S, A, G] {
	return func(a *Agent[S, A, G]) {
		a.logger = logger
	}
}

// WithAgentReporter attaches a Reporter that observes node expansions across
// every FindPlan call this Agent makes, for the Agent's lifetime. Embedding
// applications wire this to their own instrumentation (e.g. a Prometheus
// histogram) without the core library importing a metrics backend.
func WithAgentReporter[S comparable, A Action[S], G Goal[S]](r Reporter) AgentOption[S, A, G] {
	return func(a *Agent[S, A, G]) {
		a.reporter = r
	}
}

// NewAgent creates an Agent with the given initial state, actions, and
// goals. Goals are sorted by Priority(state) in descending order using a
// stable sort, so goals with equal priority retain their input order.
func NewAgent[S comparable, A Action[S], G Goal[S]](state S, actions []A, goals []G, opts ...AgentOption[S, A, G]) *Agent[S, A, G] {
	a := &Agent[S, A, G]{
		State:   state,
		Actions: actions,
		Goals:   goals,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.sortGoals()
	return a
}

// sortGoals re-sorts a.Goals by Priority(a.State) descending. Must use a
// stable sort: callers rely on equal-priority goals retaining their order.
func (a *Agent[S, A, G]) sortGoals() {
	sort.SliceStable(a.Goals, func(i, j int) bool {
		return goalPriority[S](a.Goals[i], a.State) > goalPriority[S](a.Goals[j], a.State)
	})
}

// PlanConstant returns the plan for the first goal, in the agent's current
// order, that can be satisfied. It does not reorder goals — if goal
// priorities depend on state, use PlanDynamic instead.
func (a *Agent[S, A, G]) PlanConstant() (Selection[A, G], bool) {
	for _, g := range a.Goals {
		p := FindPlan[S](a.State, a.Actions, g, WithReporter(a.reporter))
		if p == nil {
			a.logger.Debug("goap: goal unreachable", "goal", g)
			continue
		}
		a.logger.Info("goap: goal selected", "goal", g, "cost", p.Cost)
		return Selection[A, G]{Goal: g, Plan: *p}, true
	}
	a.logger.Debug("goap: no goal reachable")
	return Selection[A, G]{}, false
}

// PlanDynamic re-sorts goals by Priority(current state) descending, then
// behaves like PlanConstant. Use this when goal priorities change with
// state; use PlanConstant when they don't, to skip the extra sort.
func (a *Agent[S, A, G]) PlanDynamic() (Selection[A, G], bool) {
	a.sortGoals()
	return a.PlanConstant()
}

// PlanAll attempts to plan for every goal and returns the successes. The
// result order follows the agent's current goal order with failures
// omitted; it does not reorder goals.
func (a *Agent[S, A, G]) PlanAll() []Selection[A, G] {
	selections := make([]Selection[A, G], 0, len(a.Goals))
	for _, g := range a.Goals {
		p := FindPlan[S](a.State, a.Actions, g, WithReporter(a.reporter))
		if p == nil {
			a.logger.Debug("goap: goal unreachable", "goal", g)
			continue
		}
		selections = append(selections, Selection[A, G]{Goal: g, Plan: *p})
	}
	return selections
}

// PlanProfit runs PlanAll and returns the entry maximizing
// Priority(state) - Cost. Ties favor the entry earlier in PlanAll's result
// order. Returns false if every goal is unreachable.
func (a *Agent[S, A, G]) PlanProfit() (Selection[A, G], bool) {
	all := a.PlanAll()
	if len(all) == 0 {
		a.logger.Debug("goap: no goal reachable")
		return Selection[A, G]{}, false
	}

	best := all[0]
	bestProfit := goalPriority[S](best.Goal, a.State) - best.Plan.Cost
	for _, sel := range all[1:] {
		profit := goalPriority[S](sel.Goal, a.State) - sel.Plan.Cost
		if profit > bestProfit {
			best, bestProfit = sel, profit
		}
	}
	a.logger.Info("goap: goal selected by profit", "goal", best.Goal, "profit", bestProfit)
	return best, true
}
