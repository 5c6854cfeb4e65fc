package definition

import (
	"github.com/dmitrymomot/statekit/pkg/statemachine"
)

// Build validates def and turns it into a machine positioned in def.Initial.
// States are configured in file order; within a state, entry actions, exit
// actions and transitions keep their file order. A nil registry is treated as empty.
func Build[S, T ~string](def *Definition, reg *Registry[T], opts ...statemachine.Option) (*statemachine.Machine[S, T], error) {
	if def == nil {
		return nil, ErrEmptyDefinition
	}
	if reg == nil {
		reg = NewRegistry[T]()
	}
	if err := def.Validate(reg); err != nil {
		return nil, err
	}

	m := statemachine.New[S, T](S(def.Initial), opts...)
	for _, s := range def.States {
		node := m.Configure(S(s.Name))
		for _, name := range s.OnEntry {
			action, _ := reg.Action(name)
			node.OnEntry(action)
		}
		for _, name := range s.OnExit {
			action, _ := reg.Action(name)
			node.OnExit(action)
		}
		for _, t := range s.Transitions {
			var guard statemachine.Guard[T]
			if t.Guard != "" {
				guard, _ = reg.Guard(t.Guard)
			}
			node.PermitIf(T(t.Trigger), S(t.To), guard)
		}
	}
	return m, nil
}
