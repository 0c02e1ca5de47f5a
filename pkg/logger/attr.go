package logger

import (
	"fmt"
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
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

// Status records a status label under the key "status".
func Status(label any) slog.Attr {
	return slog.String("status", fmt.Sprint(label))
}

// NextStatus records the status a reducer moved to under the key "next_status".
func NextStatus(label any) slog.Attr {
	return slog.String("next_status", fmt.Sprint(label))
}

// Fallback records the label an unknown status fell back to under the key "fallback".
func Fallback(label any) slog.Attr {
	return slog.String("fallback", fmt.Sprint(label))
}

// Route records the label a state was dispatched to under the key "route".
func Route(label any) slog.Attr {
	return slog.String("route", fmt.Sprint(label))
}

// EventType records the event type under the key "event_type".
func EventType(eventType string) slog.Attr {
	return slog.String("event_type", eventType)
}

// MessageID records the message identifier under the key "message_id".
// If id is nil, it returns an empty Attr.
func MessageID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("message_id", id)
}

// Step records a position in a sequence under the key "step".
func Step(n int) slog.Attr {
	return slog.Int("step", n)
}
