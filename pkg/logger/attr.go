package logger

import "log/slog"

// Error records err under the key "error". A nil error yields an empty Attr,
// which handlers drop.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// FieldID records the field identifier under the key "field_id".
func FieldID(id string) slog.Attr {
	return slog.String("field_id", id)
}

// Validator records the validator name under the key "validator".
// Inline definitions are logged as "inline".
func Validator(name string) slog.Attr {
	if name == "" {
		name = "inline"
	}
	return slog.String("validator", name)
}

// Mode records the evaluation mode under the key "mode".
func Mode(submit bool) slog.Attr {
	if submit {
		return slog.String("mode", "submit")
	}
	return slog.String("mode", "interactive")
}

// Event records the interaction event under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// State records an interaction state under the key "state".
func State(name string) slog.Attr {
	return slog.String("state", name)
}

// Count records a count under the given key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}
