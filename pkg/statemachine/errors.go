package statemachine

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPermitted is returned when no transition is declared for the trigger
	// in the current state, or every matching guard rejected it.
	ErrNotPermitted = errors.New("trigger not permitted")
	// ErrUnconfiguredState is returned when the current state has no node.
	ErrUnconfiguredState = errors.New("current state is not configured")
	// ErrUnconfiguredDestination is returned when a resolved destination has no node.
	// Exit actions of the source have already run and the current state has advanced.
	ErrUnconfiguredDestination = errors.New("destination state is not configured")
)

// ErrorKind classifies errors returned by Fire.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNotPermitted
	KindUnconfiguredState
	KindUnconfiguredDestination
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotPermitted:
		return "not_permitted"
	case KindUnconfiguredState:
		return "unconfigured_state"
	case KindUnconfiguredDestination:
		return "unconfigured_destination"
	default:
		return "unknown"
	}
}

// FireError describes a failed Fire. Kind is one of the package sentinels,
// so errors.Is(err, ErrNotPermitted) and friends work on it.
type FireError struct {
	Kind        error
	State       any
	Trigger     any
	Destination any // only set for ErrUnconfiguredDestination
}

func newFireError(kind error, state, trigger any) *FireError {
	return &FireError{
		Kind:    kind,
		State:   state,
		Trigger: trigger,
	}
}

func (e *FireError) Error() string {
	if e.Destination != nil {
		return fmt.Sprintf("%v: state '%v' trigger '%v' destination '%v'", e.Kind, e.State, e.Trigger, e.Destination)
	}
	return fmt.Sprintf("%v: state '%v' trigger '%v'", e.Kind, e.State, e.Trigger)
}

func (e *FireError) Unwrap() error {
	return e.Kind
}

// KindOf maps err to its ErrorKind. Errors not produced by this package yield KindUnknown.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrNotPermitted):
		return KindNotPermitted
	case errors.Is(err, ErrUnconfiguredState):
		return KindUnconfiguredState
	case errors.Is(err, ErrUnconfiguredDestination):
		return KindUnconfiguredDestination
	default:
		return KindUnknown
	}
}

func IsNotPermittedError(err error) bool {
	return errors.Is(err, ErrNotPermitted)
}

func IsUnconfiguredStateError(err error) bool {
	return errors.Is(err, ErrUnconfiguredState)
}

// IsUnconfiguredDestinationError reports the partial-failure case: the source
// state's exit actions ran and the machine now sits in the unconfigured destination.
func IsUnconfiguredDestinationError(err error) bool {
	return errors.Is(err, ErrUnconfiguredDestination)
}
