package goap

import "gopkg.in/yaml.v3"

// Snapshot mirrors an Agent's three fields for YAML round-tripping. It is
// additive to Agent's planning behavior — nothing in FindPlan or the
// selection policies depends on it.
//
// S, A, and G must themselves be made of exported fields to round-trip
// through YAML's reflection-based encoding; Snapshot imposes no additional
// constraint of its own beyond what Agent already requires.
type Snapshot[S any, A any, G any] struct {
	State   S `yaml:"state"`
	Actions []A `yaml:"actions"`
	Goals   []G `yaml:"goals"`
}

// snapshotAlias has the identical shape to Snapshot; MarshalYAML/UnmarshalYAML
// convert through it to avoid the custom methods recursing into themselves.
type snapshotAlias[S any, A any, G any] struct {
	State   S `yaml:"state"`
	Actions []A `yaml:"actions"`
	Goals   []G `yaml:"goals"`
}

// MarshalYAML implements yaml.Marshaler.
func (s Snapshot[S, A, G]) MarshalYAML() (any, error) {
	return snapshotAlias[S, A, G]{State: s.State, Actions: s.Actions, Goals: s.Goals}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Snapshot[S, A, G]) UnmarshalYAML(value *yaml.Node) error {
	var alias snapshotAlias[S, A, G]
	if err := value.Decode(&alias); err != nil {
		return err
	}
	s.State, s.Actions, s.Goals = alias.State, alias.Actions, alias.Goals
	return nil
}

// Snapshot captures the Agent's current state, actions, and goals. Slices
// are copied; mutating the result does not affect the Agent.
func (a *Agent[S, A, G]) Snapshot() Snapshot[S, A, G] {
	actions := make([]A, len(a.Actions))
	copy(actions, a.Actions)
	goals := make([]G, len(a.Goals))
	copy(goals, a.Goals)
	return Snapshot[S, A, G]{State: a.State, Actions: actions, Goals: goals}
}

// FromSnapshot rebuilds an Agent from a Snapshot, the way NewAgent builds one
// from its three parts directly — goals are (re-)sorted by priority exactly
// as NewAgent does.
func FromSnapshot[S comparable, A Action[S], G Goal[S]](snap Snapshot[S, A, G], opts ...AgentOption[S, A, G]) *Agent[S, A, G] {
	return NewAgent[S](snap.State, snap.Actions, snap.Goals, opts...)
}
