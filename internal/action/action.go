// Package action defines the result every create and update operation
// returns to the forms that submitted it.
//
// A State either carries the stored record or an error. Validation failures
// fill Error.Fields and leave Error.Message empty. Backend failures fill
// Error.Message and never attribute anything to a field.
package action

import (
	ierr "github.com/pointsclub/clubadmin/internal/errors"
	"github.com/pointsclub/clubadmin/internal/schema"
)

// Error is the failure half of a State
type Error struct {
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

// State is the uniform result of a mutating operation.
// Check Success before reading Data.
type State[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Error   *Error `json:"error,omitempty"`
}

// Ok wraps a stored record. data may be nil for redirect-only flows.
func Ok[T any](data *T) *State[T] {
	return &State[T]{Success: true, Data: data}
}

// Invalid reports field errors from a failed schema parse
func Invalid[T any](verr *schema.ValidationError) *State[T] {
	return &State[T]{
		Error: &Error{Fields: verr.Fields()},
	}
}

// Failed reports a record-level failure with no field attribution
func Failed[T any](message string) *State[T] {
	return &State[T]{
		Error: &Error{Message: message},
	}
}

// FromError maps err onto a failed State. Schema failures become field
// errors; errors carrying a known marker surface their hint; anything else
// gets the generic message.
func FromError[T any](err error) *State[T] {
	if verr, ok := schema.AsValidationError(err); ok {
		return Invalid[T](verr)
	}
	if ierr.IsKnown(err) {
		return Failed[T](ierr.DisplayMessage(err))
	}
	return Failed[T](ierr.DefaultDisplayMessage)
}

// FieldError returns the first message recorded for field, or ""
func (s *State[T]) FieldError(field string) string {
	if s == nil || s.Error == nil {
		return ""
	}
	if msgs := s.Error.Fields[field]; len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

// IsInvalid reports whether the state carries field errors
func (s *State[T]) IsInvalid() bool {
	return s != nil && s.Error != nil && len(s.Error.Fields) > 0
}
