package logger

import (
	"log/slog"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// State records a state value under the key "state".
func State(state any) slog.Attr {
	return slog.Any("state", state)
}

// FromState records the source of a transition under the key "from".
func FromState(state any) slog.Attr {
	return slog.Any("from", state)
}

// ToState records the destination of a transition under the key "to".
func ToState(state any) slog.Attr {
	return slog.Any("to", state)
}

// Trigger records a trigger value under the key "trigger".
func Trigger(trigger any) slog.Attr {
	return slog.Any("trigger", trigger)
}

// MachineID records the state machine instance identifier under the key "machine_id".
// If id is empty, it returns an empty Attr.
func MachineID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("machine_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
