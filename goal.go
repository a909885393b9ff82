package goap

// Goal is the capability a user-defined goal type must provide to be used
// as a planning target.
type Goal[S comparable] interface {
	// IsSatisfied reports whether state satisfies the goal. This is the
	// termination predicate for search.
	IsSatisfied(state S) bool
}

// HeuristicGoal is an optional extension of Goal. A goal that does not
// implement HeuristicGoal is treated as having a heuristic of 0 everywhere,
// which degenerates the search to Dijkstra — correct but slower.
type HeuristicGoal[S comparable] interface {
	Goal[S]

	// Heuristic returns an admissible lower bound on the remaining cost to
	// satisfy the goal from state. Must never overestimate the true cost, or
	// plans returned by the planner may not be optimal. Not checked at
	// runtime.
	Heuristic(state S) int
}

// PriorityGoal is an optional extension of Goal, used only by Agent — never
// by FindPlan. A goal that does not implement PriorityGoal is treated as having
// priority 0 everywhere.
type PriorityGoal[S comparable] interface {
	Goal[S]

	// Priority returns this goal's importance in state. Larger is more
	// important. May depend on state to encode urgency.
	Priority(state S) int
}

// goalHeuristic returns g's heuristic estimate in state, using
// HeuristicGoal[S] if g implements it, and defaulting to 0 otherwise.
func goalHeuristic[S comparable, G Goal[S]](g G, state S) int {
	if h, ok := any(g).(HeuristicGoal[S]); ok {
		return h.Heuristic(state)
	}
	return 0
}

// goalPriority returns g's priority in state, using PriorityGoal[S] if g
// implements it, and defaulting to 0 otherwise.
func goalPriority[S comparable, G Goal[S]](g G, state S) int {
	if p, ok := any(g).(PriorityGoal[S]); ok {
		return p.Priority(state)
	}
	return 0
}
