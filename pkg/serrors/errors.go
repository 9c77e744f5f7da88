package serrors

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// BaseError is a coded error that can be matched across layer boundaries
// with errors.As without string comparison.
type BaseError struct {
	Code    string
	Message string
	Details string
}

func (e *BaseError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewError(code, message, details string) *BaseError {
	return &BaseError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Well-known codes used by the feed engine error taxonomy.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeDataAccess = "DATA_ACCESS_ERROR"
	CodeNotFound   = "NOT_FOUND"
)

func NewValidationError(message string) *BaseError {
	return NewError(CodeValidation, message, "")
}

func NewDataAccessError(message string) *BaseError {
	return NewError(CodeDataAccess, message, "")
}

func NewNotFoundError(message string) *BaseError {
	return NewError(CodeNotFound, message, "")
}

// ValidationErrors maps a field name to the error reported for it.
type ValidationErrors map[string]error

func (v ValidationErrors) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(v))
}

func NewFieldRequiredError(field string) *BaseError {
	return NewError(CodeValidation, fmt.Sprintf("%s is required", field), field)
}

// ProcessValidatorErrors converts go-playground validator errors into
// field-keyed coded errors.
func ProcessValidatorErrors(errs validator.ValidationErrors) ValidationErrors {
	out := make(ValidationErrors, len(errs))
	for _, fe := range errs {
		switch fe.Tag() {
		case "required":
			out[fe.Field()] = NewFieldRequiredError(fe.Field())
		default:
			out[fe.Field()] = NewError(
				CodeValidation,
				fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()),
				fe.Field(),
			)
		}
	}
	return out
}
