package schema

import (
	"fmt"
	"strings"

	ierr "github.com/pointsclub/clubadmin/internal/errors"
)

// FieldError ties a human-readable message to the offending field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every failing field of one parse, in the order the
// schema declares them. It is never empty.
type ValidationError struct {
	Schema string
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return fmt.Sprintf("%s validation failed: %s", e.Schema, strings.Join(parts, "; "))
}

// Fields groups messages by field name
func (e *ValidationError) Fields() map[string][]string {
	fields := make(map[string][]string, len(e.Errors))
	for _, fe := range e.Errors {
		fields[fe.Field] = append(fields[fe.Field], fe.Message)
	}
	return fields
}

// Has reports whether field failed
func (e *ValidationError) Has(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// AsValidationError extracts the field errors from a marked error chain
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if err != nil && ierr.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

func markValidation(verr *ValidationError) error {
	return ierr.WithError(verr).
		WithHint("Please correct the highlighted fields").
		Mark(ierr.ErrValidation)
}
