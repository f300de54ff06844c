package errors

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Markers. Every error leaving a repository or service carries exactly one.
var (
	ErrNotFound         = new(ErrCodeNotFound, "resource not found")
	ErrAlreadyExists    = new(ErrCodeAlreadyExists, "resource already exists")
	ErrValidation       = new(ErrCodeValidation, "validation error")
	ErrInvalidOperation = new(ErrCodeInvalidOperation, "invalid operation")
	ErrPermissionDenied = new(ErrCodePermissionDenied, "permission denied")
	ErrUnauthorized     = new(ErrCodeUnauthorized, "unauthorized")
	ErrRateLimited      = new(ErrCodeRateLimited, "rate limited")
	ErrStorage          = new(ErrCodeStorage, "storage error")
	ErrDatabase         = new(ErrCodeDatabase, "database error")
	ErrSystem           = new(ErrCodeSystemError, "system error")
)

const (
	ErrCodeNotFound         = "not_found"
	ErrCodeAlreadyExists    = "already_exists"
	ErrCodeValidation       = "validation_error"
	ErrCodeInvalidOperation = "invalid_operation"
	ErrCodePermissionDenied = "permission_denied"
	ErrCodeUnauthorized     = "unauthorized"
	ErrCodeRateLimited      = "rate_limited"
	ErrCodeStorage          = "storage_error"
	ErrCodeDatabase         = "database_error"
	ErrCodeSystemError      = "system_error"
)

// statuses is checked in order; the first marker found wins
var statuses = []struct {
	marker error
	status int
}{
	{ErrNotFound, http.StatusNotFound},
	{ErrAlreadyExists, http.StatusConflict},
	{ErrValidation, http.StatusBadRequest},
	{ErrInvalidOperation, http.StatusBadRequest},
	{ErrPermissionDenied, http.StatusForbidden},
	{ErrUnauthorized, http.StatusUnauthorized},
	{ErrRateLimited, http.StatusTooManyRequests},
	{ErrStorage, http.StatusBadGateway},
	{ErrDatabase, http.StatusInternalServerError},
	{ErrSystem, http.StatusInternalServerError},
}

// InternalError is a marker value. Code is machine readable.
type InternalError struct {
	Code    string
	Message string
	Err     error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is matches markers by code
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}
	return e.Code == t.Code
}

func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func Is(err, reference error) bool {
	return errors.Is(err, reference)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsInvalidOperation(err error) bool {
	return errors.Is(err, ErrInvalidOperation)
}

func IsPermissionDenied(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}

func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}

func IsDatabase(err error) bool {
	return errors.Is(err, ErrDatabase)
}

func marker(err error) (*InternalError, int) {
	for _, s := range statuses {
		if errors.Is(err, s.marker) {
			return s.marker.(*InternalError), s.status
		}
	}
	return nil, http.StatusInternalServerError
}

// IsKnown reports whether err carries one of the markers
func IsKnown(err error) bool {
	m, _ := marker(err)
	return m != nil
}

// Code returns the marker code of err, or the system error code
func Code(err error) string {
	if m, _ := marker(err); m != nil {
		return m.Code
	}
	return ErrCodeSystemError
}

func HTTPStatusFromErr(err error) int {
	_, status := marker(err)
	return status
}
