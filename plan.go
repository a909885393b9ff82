package goap

import (
	"container/heap"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Plan is an ordered sequence of actions, plus the total cost of executing
// them in order from some initial state.
type Plan[A any] struct {
	Actions []A
	Cost    int
}

// String renders the plan for logging/debugging.
func (p *Plan[A]) String() string {
	if p == nil || len(p.Actions) == 0 {
		return "<empty plan>"
	}
	parts := make([]string, len(p.Actions))
	for i, a := range p.Actions {
		parts[i] = fmt.Sprintf("%d. %v", i+1, a)
	}
	return fmt.Sprintf("plan (cost=%d):\n%s", p.Cost, strings.Join(parts, "\n"))
}

// Reporter observes the progress of a single FindPlan call without FindPlan
// depending on any particular metrics backend — a caller wires its own
// implementation (a Prometheus histogram, a counter, a no-op) in through
// WithReporter.
type Reporter interface {
	// NodeExpanded is called once for every open-set node FindPlan pops and
	// expands (stale queue entries, skipped before expansion, don't count).
	NodeExpanded()
}

// PlanOption configures a single FindPlan call.
type PlanOption func(*planConfig)

type planConfig struct {
	reporter Reporter
}

// WithReporter attaches a Reporter to observe node expansions during this
// FindPlan call.
func WithReporter(r Reporter) PlanOption {
	return func(c *planConfig) { c.reporter = r }
}

// FindPlan finds the minimum-cost sequence of actions that takes initial to
// a state satisfying goal, searching with A* over the implicit graph of
// states reachable via actions. Returns nil if the goal is unreachable.
//
// actions is treated as a fixed, ordered collection for the duration of the
// call; duplicate action values are permitted but redundant — since node
// identity in this implementation is the state alone, two actions producing
// the same successor state collapse to one search node regardless of which
// of them reached it first.
//
// FindPlan performs no depth or node cap: a state space that is not
// effectively finite under the given actions may cause it not to terminate.
// Callers needing a bound should wrap the call with their own timeout or
// instrument their action set with a depth-limited precondition.
func FindPlan[S comparable, A Action[S], G Goal[S]](initial S, actions []A, goal G, opts ...PlanOption) *Plan[A] {
	var cfg planConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if goal.IsSatisfied(initial) {
		log.Info("goap: goal already satisfied", "state", initial)
		return &Plan[A]{Actions: nil, Cost: 0}
	}

	open := &nodeHeap[S, A]{}
	heap.Init(open)
	heap.Push(open, &node[S, A]{
		state: initial,
		g:     0,
		h:     goalHeuristic[S](goal, initial),
	})

	best := map[S]int{initial: 0}

	for open.Len() > 0 {
		current := heap.Pop(open).(*node[S, A])

		// A cheaper path to this state may have been queued later and
		// already relaxed this entry; skip stale queue entries.
		if g, ok := best[current.state]; ok && current.g > g {
			continue
		}

		if cfg.reporter != nil {
			cfg.reporter.NodeExpanded()
		}
		log.Debug("goap: expanding node", "state", current.state, "g", current.g, "h", current.h)

		if goal.IsSatisfied(current.state) {
			log.Info("goap: plan found", "actions", len(current.path), "cost", current.g)
			return &Plan[A]{Actions: current.path, Cost: current.g}
		}

		for _, a := range actions {
			if !a.IsApplicable(current.state) {
				continue
			}

			nextState := apply[S](a, current.state)
			nextG := current.g + actionCost[S](a, current.state)

			if g, ok := best[nextState]; ok && g <= nextG {
				continue
			}
			best[nextState] = nextG

			nextPath := make([]A, len(current.path)+1)
			copy(nextPath, current.path)
			nextPath[len(current.path)] = a

			heap.Push(open, &node[S, A]{
				state: nextState,
				path:  nextPath,
				g:     nextG,
				h:     goalHeuristic[S](goal, nextState),
			})
		}
	}

	log.Warn("goap: no plan found", "actionsConsidered", len(actions))
	return nil
}

// node is a single entry in the A* open set: a reached state, the path of
// actions that reached it, and its g/h costs.
type node[S comparable, A any] struct {
	state S
	path  []A
	g     int
	h     int
	index int // maintained by container/heap
}

func (n *node[S, A]) f() int { return n.g + n.h }

// nodeHeap is a container/heap min-heap of *node ordered by f-cost.
type nodeHeap[S comparable, A any] []*node[S, A]

func (h nodeHeap[S, A]) Len() int { return len(h) }

func (h nodeHeap[S, A]) Less(i, j int) bool { return h[i].f() < h[j].f() }

func (h nodeHeap[S, A]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *nodeHeap[S, A]) Push(x any) {
	n := x.(*node[S, A])
	n.index = len(*h)
	*h = append(*h, n)
}

func (h *nodeHeap[S, A]) Pop() any {
	old := *h
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.index = -1
	*h = old[:last]
	return n
}
