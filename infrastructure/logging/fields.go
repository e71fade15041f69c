package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// Common field constructors for connector logging.

// ToolName adds a tool name field.
func ToolName(name string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("tool", name)
	}
}

// Path adds a drive path field.
func Path(p string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("path", p)
	}
}

// Addr adds a listen address field.
func Addr(addr string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("addr", addr)
	}
}

// Method adds an HTTP method field.
func Method(m string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("method", m)
	}
}

// Status adds an HTTP status code field.
func Status(code int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("status", code)
	}
}

// User adds the resolved user principal field.
func User(upn string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("user", upn)
	}
}

// Site adds the resolved site id field.
func Site(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("site", id)
	}
}

// Duration adds a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

// Err adds an error field.
func Err(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Err(err)
	}
}
