package validator

import (
	ierr "github.com/Iscgrou/repbill/internal/errors"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// NewValidator initializes the process-wide validator used by request DTOs
func NewValidator() *validator.Validate {
	validate = validator.New()
	return validate
}

// ValidateRequest runs struct-tag validation over a request, folding the
// per-field failures into reportable details on a single validation error
func ValidateRequest(req any) error {
	if validate == nil {
		return ierr.NewError("validator not initialized").
			WithHint("Validator must be initialized before use").
			Mark(ierr.ErrSystem)
	}

	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	details := make(map[string]any)
	var fieldErrs validator.ValidationErrors
	if ierr.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			details[fe.Field()] = fe.Error()
		}
	}
	return ierr.WithError(err).
		WithHint("Request validation failed").
		WithReportableDetails(details).
		Mark(ierr.ErrValidation)
}
