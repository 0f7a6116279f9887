package logging

import (
	"github.com/felixgeelhaar/bolt/v3"

	"snake-autopilot/game/types"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// Session adds a session ID field.
func Session(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("session", id)
	}
}

// Mode adds the planning mode.
func Mode(mode string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("mode", mode)
	}
}

// Position adds a grid position under key.
func Position(key string, p types.Point) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, p.String())
	}
}

// RouteLen adds a route length field.
func RouteLen(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("route_len", n)
	}
}

// BodyLen adds the snake length.
func BodyLen(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("body_len", n)
	}
}

// Outcome adds how a session ended.
func Outcome(outcome string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("outcome", outcome)
	}
}

// Int adds an integer field with custom key.
func Int(key string, value int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int(key, value)
	}
}

// Str adds a string field with custom key.
func Str(key, value string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, value)
	}
}

// ErrorField adds an error field.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}
