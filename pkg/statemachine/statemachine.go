package statemachine

// Guard decides whether a transition may be taken for the given trigger.
// Guards must be pure: they must not mutate the machine or fire triggers.
type Guard[T comparable] func(trigger T) bool

// Action is a side effect executed when a state is entered or exited.
// Actions have no return channel; domain errors must be reported out of band.
type Action[T comparable] func(trigger T)

// Transition is one permitted edge out of the state that owns it.
// It is immutable once added to a StateNode.
type Transition[S, T comparable] struct {
	Trigger     T
	Destination S
	Guard       Guard[T] // nil behaves as always-true
}

// NewTransition creates a transition. A nil guard admits every trigger.
func NewTransition[S, T comparable](trigger T, destination S, guard Guard[T]) Transition[S, T] {
	if guard == nil {
		guard = allowAll[T]
	}
	return Transition[S, T]{
		Trigger:     trigger,
		Destination: destination,
		Guard:       guard,
	}
}

// Matches reports whether the transition is declared for the trigger,
// without evaluating the guard.
func (t Transition[S, T]) Matches(trigger T) bool {
	return t.Trigger == trigger
}

// Permits reports whether the transition is declared for the trigger and its guard admits it.
func (t Transition[S, T]) Permits(trigger T) bool {
	if !t.Matches(trigger) {
		return false
	}
	if t.Guard == nil {
		return true
	}
	return t.Guard(trigger)
}

// allowAll is the default guard used by Permit.
func allowAll[T comparable](T) bool {
	return true
}
