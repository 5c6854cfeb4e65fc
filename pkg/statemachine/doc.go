// Package statemachine provides a small, generic finite state machine.
//
// A Machine is parametric over two comparable types: the state type S and the
// trigger type T. Applications describe each state once with a fluent chain
// and then drive the machine by firing triggers:
//
//	type State string
//	type Trigger string
//
//	m := statemachine.New[State, Trigger]("on_hook")
//
//	m.Configure("on_hook").
//	    OnEntry(func(t Trigger) { log.Println("hung up by", t) }).
//	    Permit("take_off_hook", "off_hook")
//
//	m.Configure("off_hook").
//	    Permit("hangup", "on_hook")
//
//	if err := m.Fire("take_off_hook"); err != nil {
//	    // handle err
//	}
//
// # Resolution
//
// A StateNode keeps its transitions in declaration order. When a trigger is
// fired, transitions declared for that trigger are tried in order and the
// first whose guard admits the trigger wins. Permit uses an always-true
// guard; PermitIf accepts a custom one.
//
// # Callback ordering
//
// Fire resolves the destination, runs the exit actions of the current state,
// updates the current state, then runs the entry actions of the destination.
// Each list runs in declaration order and every callback receives the fired
// trigger. A transition whose destination equals the current state runs no
// actions at all, which makes Permit(trigger, sameState) a way to declare a
// trigger legal without a state change.
//
// # Configuration
//
// Configure always replaces the node of a state with an empty one. Actions and
// transitions are append-only and cannot be removed.
//
// # Error Handling
//
// Fire returns a *FireError wrapping one of three sentinels:
//
//	if statemachine.IsNotPermittedError(err)           { /* nothing changed */ }
//	if statemachine.IsUnconfiguredStateError(err)      { /* nothing changed */ }
//	if statemachine.IsUnconfiguredDestinationError(err) { /* exit actions ran, state advanced */ }
//
// KindOf maps an error to an ErrorKind for switch statements.
//
// # Concurrency
//
// A Machine is a plain single-threaded data structure. Callers that share one
// across goroutines must serialize access themselves. Guards and actions must
// not re-enter the machine.
package statemachine
