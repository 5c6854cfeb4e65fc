// Package definition builds state machines from declarative YAML documents.
//
// A definition names states and triggers as strings and refers to guards and
// actions by name; the functions themselves live in a Registry supplied by the
// application:
//
//	initial: on_hook
//	states:
//	  - name: on_hook
//	    on_entry: [ring_off]
//	    transitions:
//	      - trigger: take_off_hook
//	        to: off_hook
//	  - name: off_hook
//	    transitions:
//	      - trigger: call_dialed
//	        to: ringing
//	        guard: has_line
//	      - trigger: hangup
//	        to: on_hook
//	  - name: ringing
//
// Building:
//
//	reg := definition.NewRegistry[Trigger]().
//	    RegisterAction("ring_off", stopRinging).
//	    RegisterGuard("has_line", lineAvailable)
//
//	def, err := definition.Load("phone.yaml")
//	if err != nil { ... }
//	m, err := definition.Build[State, Trigger](def, reg)
//
// Validation is stricter than the programmatic API: duplicate state names and
// transitions to undeclared states are rejected up front instead of surfacing
// as errors from Fire.
package definition
