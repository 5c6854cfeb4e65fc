package definition

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Definition is the declarative form of a state machine with string-like
// states and triggers.
type Definition struct {
	Initial string     `yaml:"initial"`
	States  []StateDef `yaml:"states"`
}

// StateDef declares one state. Action and guard names refer to a Registry.
type StateDef struct {
	Name        string          `yaml:"name"`
	OnEntry     []string        `yaml:"on_entry,omitempty"`
	OnExit      []string        `yaml:"on_exit,omitempty"`
	Transitions []TransitionDef `yaml:"transitions,omitempty"`
}

// TransitionDef declares one outbound edge. An empty Guard means always permitted.
type TransitionDef struct {
	Trigger string `yaml:"trigger"`
	To      string `yaml:"to"`
	Guard   string `yaml:"guard,omitempty"`
}

// Parse decodes a YAML definition. Unknown fields are rejected.
func Parse(data []byte) (*Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDefinition
		}
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if def.Initial == "" && len(def.States) == 0 {
		return nil, ErrEmptyDefinition
	}
	return &def, nil
}

// Load reads and parses the definition stored at path.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Resolver reports which guard and action names are available.
type Resolver interface {
	HasGuard(name string) bool
	HasAction(name string) bool
}

// Validate checks the definition against r and reports every problem found.
// A nil Resolver accepts no guard or action names.
//
// Rules: the initial state and every state name are non-empty, state names are
// unique, the initial state and every transition target are declared, every
// transition has a trigger, and every referenced guard and action resolves.
func (d *Definition) Validate(r Resolver) error {
	var problems []error

	declared := make(map[string]bool, len(d.States))
	for i, s := range d.States {
		if s.Name == "" {
			problems = append(problems, fmt.Errorf("state[%d] has no name", i))
			continue
		}
		if declared[s.Name] {
			problems = append(problems, fmt.Errorf("state %q declared more than once", s.Name))
		}
		declared[s.Name] = true
	}

	switch {
	case d.Initial == "":
		problems = append(problems, errors.New("no initial state defined"))
	case !declared[d.Initial]:
		problems = append(problems, fmt.Errorf("initial state %q not declared", d.Initial))
	}

	hasGuard := func(name string) bool { return r != nil && r.HasGuard(name) }
	hasAction := func(name string) bool { return r != nil && r.HasAction(name) }

	for _, s := range d.States {
		for _, name := range s.OnEntry {
			if !hasAction(name) {
				problems = append(problems, fmt.Errorf("state %q: unknown entry action %q", s.Name, name))
			}
		}
		for _, name := range s.OnExit {
			if !hasAction(name) {
				problems = append(problems, fmt.Errorf("state %q: unknown exit action %q", s.Name, name))
			}
		}
		for i, t := range s.Transitions {
			if t.Trigger == "" {
				problems = append(problems, fmt.Errorf("state %q: transition[%d] has no trigger", s.Name, i))
			}
			if !declared[t.To] {
				problems = append(problems, fmt.Errorf("state %q: transition on %q to undeclared state %q", s.Name, t.Trigger, t.To))
			}
			if t.Guard != "" && !hasGuard(t.Guard) {
				problems = append(problems, fmt.Errorf("state %q: transition on %q uses unknown guard %q", s.Name, t.Trigger, t.Guard))
			}
		}
	}

	if len(problems) > 0 {
		return errors.Join(append([]error{ErrInvalidDefinition}, problems...)...)
	}
	return nil
}
