package definition

import (
	"github.com/dmitrymomot/statekit/pkg/statemachine"
)

// Registry maps the names used in a Definition to guards and actions.
type Registry[T comparable] struct {
	guards  map[string]statemachine.Guard[T]
	actions map[string]statemachine.Action[T]
}

func NewRegistry[T comparable]() *Registry[T] {
	return &Registry[T]{
		guards:  make(map[string]statemachine.Guard[T]),
		actions: make(map[string]statemachine.Action[T]),
	}
}

// RegisterGuard binds name to guard, replacing any previous binding.
// Nil guards are ignored.
func (r *Registry[T]) RegisterGuard(name string, guard statemachine.Guard[T]) *Registry[T] {
	if guard != nil {
		r.guards[name] = guard
	}
	return r
}

// RegisterAction binds name to action, replacing any previous binding.
// Nil actions are ignored.
func (r *Registry[T]) RegisterAction(name string, action statemachine.Action[T]) *Registry[T] {
	if action != nil {
		r.actions[name] = action
	}
	return r
}

func (r *Registry[T]) Guard(name string) (statemachine.Guard[T], bool) {
	g, ok := r.guards[name]
	return g, ok
}

func (r *Registry[T]) Action(name string) (statemachine.Action[T], bool) {
	a, ok := r.actions[name]
	return a, ok
}

func (r *Registry[T]) HasGuard(name string) bool {
	_, ok := r.guards[name]
	return ok
}

func (r *Registry[T]) HasAction(name string) bool {
	_, ok := r.actions[name]
	return ok
}
