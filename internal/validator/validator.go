package validator

import (
	"sync"

	"github.com/go-playground/validator/v10"
	ierr "github.com/pointsclub/clubadmin/internal/errors"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func NewValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

func GetValidator() *validator.Validate {
	return NewValidator()
}

// ValidateRequest checks the validate tags of a request struct
func ValidateRequest(req interface{}) error {
	if err := GetValidator().Struct(req); err != nil {
		details := make(map[string]any)
		var validateErrs validator.ValidationErrors
		if ierr.As(err, &validateErrs) {
			for _, err := range validateErrs {
				details[err.Field()] = err.Error()
			}
		}
		return ierr.WithError(err).
			WithHint("Request validation failed").
			WithReportableDetails(details).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ValidateVar checks a single value against a tag such as "email"
func ValidateVar(value any, tag string) error {
	if err := GetValidator().Var(value, tag); err != nil {
		return ierr.WithError(err).
			WithHintf("Value does not satisfy %s", tag).
			Mark(ierr.ErrValidation)
	}
	return nil
}
