// Package fielderr carries per-field validation messages for form-style
// input, so handlers can return every failing field at once instead of just
// the first one.
package fielderr

import (
	"errors"
	"fmt"
)

// Error collects one message per failing field, preserving the order in
// which fields were reported.
type Error struct {
	order  []string
	fields map[string]string
}

// New returns an empty field error ready to collect messages.
func New() *Error {
	return &Error{fields: make(map[string]string)}
}

// Add records a message for a field. The first message for a field wins;
// validation routines run their checks in priority order.
func (e *Error) Add(field, msg string) {
	if _, ok := e.fields[field]; ok {
		return
	}
	e.order = append(e.order, field)
	e.fields[field] = msg
}

// Has reports whether any field has a message.
func (e *Error) Has() bool {
	return len(e.order) > 0
}

// Fields returns the field-to-message mapping.
func (e *Error) Fields() map[string]string {
	return e.fields
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid input: %v", e.fields)
}

// From extracts a *Error from err, or nil if err is not one.
func From(err error) *Error {
	var fe *Error
	if errors.As(err, &fe) {
		return fe
	}
	return nil
}
