package statemachine

// StateNode describes a single state: its entry actions, exit actions and
// outbound transitions. All lists keep declaration order, which drives both
// callback invocation order and guard evaluation order.
//
// Methods returning *StateNode allow fluent configuration:
//
//	m.Configure(Connected).
//		OnEntry(startTimer).
//		OnExit(stopTimer).
//		Permit(Hangup, OnHook)
type StateNode[S, T comparable] struct {
	state       S
	onEntry     []Action[T]
	onExit      []Action[T]
	transitions []Transition[S, T]
}

// NewStateNode creates an empty node for state.
func NewStateNode[S, T comparable](state S) *StateNode[S, T] {
	return &StateNode[S, T]{state: state}
}

// State returns the state value the node describes.
func (n *StateNode[S, T]) State() S {
	return n.state
}

// OnEntry appends an entry action. Nil actions are ignored.
func (n *StateNode[S, T]) OnEntry(action Action[T]) *StateNode[S, T] {
	if action != nil {
		n.onEntry = append(n.onEntry, action)
	}
	return n
}

// OnExit appends an exit action. Nil actions are ignored.
func (n *StateNode[S, T]) OnExit(action Action[T]) *StateNode[S, T] {
	if action != nil {
		n.onExit = append(n.onExit, action)
	}
	return n
}

// Permit allows trigger to move the machine from this state to destination.
// Permitting the node's own state declares a trigger that is legal but
// changes nothing; such self-transitions run no entry or exit actions.
func (n *StateNode[S, T]) Permit(trigger T, destination S) *StateNode[S, T] {
	return n.PermitIf(trigger, destination, nil)
}

// PermitIf is like Permit but the transition is only taken when guard admits the trigger.
// Transitions sharing a trigger are tried in declaration order; the first admitted one wins.
func (n *StateNode[S, T]) PermitIf(trigger T, destination S, guard Guard[T]) *StateNode[S, T] {
	n.transitions = append(n.transitions, NewTransition(trigger, destination, guard))
	return n
}

// NextState resolves trigger to a destination state.
// It returns an error wrapping ErrNotPermitted when no transition is declared
// for trigger or every matching guard rejects it.
func (n *StateNode[S, T]) NextState(trigger T) (S, error) {
	if t, ok := n.resolve(trigger); ok {
		return t.Destination, nil
	}
	var zero S
	return zero, newFireError(ErrNotPermitted, n.state, trigger)
}

func (n *StateNode[S, T]) resolve(trigger T) (Transition[S, T], bool) {
	for _, t := range n.transitions {
		if t.Permits(trigger) {
			return t, true
		}
	}
	return Transition[S, T]{}, false
}

// Enter runs every entry action in declaration order.
func (n *StateNode[S, T]) Enter(trigger T) {
	for _, action := range n.onEntry {
		action(trigger)
	}
}

// Exit runs every exit action in declaration order.
func (n *StateNode[S, T]) Exit(trigger T) {
	for _, action := range n.onExit {
		action(trigger)
	}
}

// Transitions returns a copy of the declared transitions.
func (n *StateNode[S, T]) Transitions() []Transition[S, T] {
	out := make([]Transition[S, T], len(n.transitions))
	copy(out, n.transitions)
	return out
}

// NumEntryActions returns the number of registered entry actions.
func (n *StateNode[S, T]) NumEntryActions() int {
	return len(n.onEntry)
}

// NumExitActions returns the number of registered exit actions.
func (n *StateNode[S, T]) NumExitActions() int {
	return len(n.onExit)
}
