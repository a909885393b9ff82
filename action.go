package goap

// Action is the capability a user-defined action type must provide to be used
// in a plan. Implementations are typically small value types — an enum-like
// constant or a struct of preconditions — compared and copied by value.
//
// Splitting IsApplicable from ApplyMut lets the planner filter successors
// without cloning states that will be discarded.
type Action[S comparable] interface {
	// IsApplicable reports whether the action can be applied to the given
	// state. Must be a pure, deterministic predicate: no side effects.
	IsApplicable(state S) bool

	// ApplyMut mutates state in place to the successor produced by this
	// action. Callers must only invoke ApplyMut when IsApplicable held for
	// the same state. Must be deterministic.
	ApplyMut(state *S)
}

// Coster is an optional extension of Action. An action that does not
// implement Coster is treated as having a constant cost of 1.
type Coster[S comparable] interface {
	Action[S]

	// Cost returns the cost of executing this action in state. Must be >= 0;
	// the planner trusts this and does not verify it.
	Cost(state S) int
}

// Applier is an optional extension of Action for actions that want to
// override the default clone-then-mutate Apply. An override must remain
// semantically equivalent to applying ApplyMut to a copy of state.
type Applier[S comparable] interface {
	Action[S]

	// Apply returns the state produced by applying this action, leaving
	// state unmodified.
	Apply(state S) S
}

// apply returns the successor of applying a to state, using a's own Apply
// method if it implements Applier[S], and falling back to the derived
// clone-then-mutate behavior otherwise.
func apply[S comparable, A Action[S]](a A, state S) S {
	if custom, ok := any(a).(Applier[S]); ok {
		return custom.Apply(state)
	}
	next := state
	a.ApplyMut(&next)
	return next
}

// actionCost returns a's cost in state, using Coster[S] if a implements it,
// and defaulting to 1 otherwise.
func actionCost[S comparable, A Action[S]](a A, state S) int {
	if costed, ok := any(a).(Coster[S]); ok {
		return costed.Cost(state)
	}
	return 1
}
