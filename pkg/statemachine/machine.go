package statemachine

import (
	"log/slog"

	"github.com/dmitrymomot/statekit/pkg/logger"
)

// Machine is a finite state machine over state type S and trigger type T.
//
// Machine is not safe for concurrent use. Guards and actions must not call
// back into the machine that invoked them.
type Machine[S, T comparable] struct {
	nodes   map[S]*StateNode[S, T]
	current S
	id      string
	log     *slog.Logger
}

// New creates a machine positioned in initial. The initial state does not
// need to be configured until the first Fire.
func New[S, T comparable](initial S, opts ...Option) *Machine[S, T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Machine[S, T]{
		nodes:   make(map[S]*StateNode[S, T]),
		current: initial,
		id:      o.id,
		log: o.logger.With(
			logger.Component("statemachine"),
			logger.MachineID(o.id),
		),
	}
}

// ID returns the machine identifier used in log records.
func (m *Machine[S, T]) ID() string {
	return m.id
}

// Configure replaces whatever was declared for state with a fresh empty node
// and returns it for chaining. Declarations for one state belong in a single chain.
func (m *Machine[S, T]) Configure(state S) *StateNode[S, T] {
	node := NewStateNode[S, T](state)
	if _, exists := m.nodes[state]; exists {
		m.log.Debug("state reconfigured", logger.State(state))
	}
	m.nodes[state] = node
	return node
}

// StateNode returns the node configured for state.
func (m *Machine[S, T]) StateNode(state S) (*StateNode[S, T], bool) {
	node, ok := m.nodes[state]
	return node, ok
}

// States returns every configured state in unspecified order.
func (m *Machine[S, T]) States() []S {
	out := make([]S, 0, len(m.nodes))
	for s := range m.nodes {
		out = append(out, s)
	}
	return out
}

// Current returns the current state value whether or not it is configured.
func (m *Machine[S, T]) Current() S {
	return m.current
}

// CurrentState returns the state of the current node, or false when the
// current state is not configured.
func (m *Machine[S, T]) CurrentState() (S, bool) {
	node, ok := m.nodes[m.current]
	if !ok {
		var zero S
		return zero, false
	}
	return node.State(), true
}

// CurrentStateNode returns the node for the current state.
func (m *Machine[S, T]) CurrentStateNode() (*StateNode[S, T], bool) {
	return m.StateNode(m.current)
}

// CanFire reports whether Fire(trigger) would resolve a transition from the
// current state. No actions run.
func (m *Machine[S, T]) CanFire(trigger T) bool {
	node, ok := m.nodes[m.current]
	if !ok {
		return false
	}
	_, ok = node.resolve(trigger)
	return ok
}

// PermittedTriggers lists, in declaration order and without duplicates, the
// triggers that currently resolve to a transition.
func (m *Machine[S, T]) PermittedTriggers() []T {
	node, ok := m.nodes[m.current]
	if !ok {
		return nil
	}

	var out []T
	seen := make(map[T]struct{})
	for _, t := range node.transitions {
		if _, dup := seen[t.Trigger]; dup {
			continue
		}
		if t.Permits(t.Trigger) {
			seen[t.Trigger] = struct{}{}
			out = append(out, t.Trigger)
		}
	}
	return out
}

// Fire drives one transition:
//
//  1. the current node resolves trigger to a destination;
//  2. a destination equal to the current state returns immediately without actions;
//  3. exit actions of the current node run;
//  4. the current state becomes the destination;
//  5. entry actions of the destination node run.
//
// When the destination has no node Fire returns an error wrapping
// ErrUnconfiguredDestination after steps 3 and 4 have happened; there is no rollback.
func (m *Machine[S, T]) Fire(trigger T) error {
	source := m.current

	node, ok := m.nodes[source]
	if !ok {
		err := newFireError(ErrUnconfiguredState, source, trigger)
		m.log.Debug("fire rejected", logger.State(source), logger.Trigger(trigger), logger.Error(err))
		return err
	}

	destination, err := node.NextState(trigger)
	if err != nil {
		m.log.Debug("fire rejected", logger.State(source), logger.Trigger(trigger), logger.Error(err))
		return err
	}

	if destination == source {
		m.log.Debug("self transition", logger.State(source), logger.Trigger(trigger))
		return nil
	}

	node.Exit(trigger)
	m.current = destination

	next, ok := m.nodes[destination]
	if !ok {
		fe := newFireError(ErrUnconfiguredDestination, source, trigger)
		fe.Destination = destination
		m.log.Debug("entered unconfigured state",
			logger.FromState(source),
			logger.ToState(destination),
			logger.Trigger(trigger),
		)
		return fe
	}

	next.Enter(trigger)

	m.log.Debug("state changed",
		logger.FromState(source),
		logger.ToState(destination),
		logger.Trigger(trigger),
	)
	return nil
}
