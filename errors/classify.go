package errors

import (
	stderrors "errors"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/go-playground/validator/v10"
)

// redactedInternalMessage is the only message clients see for unclassified
// errors in a disclosure-restricted environment.
const redactedInternalMessage = "Internal server error"

// Classify resolves an arbitrary error value to exactly one taxonomy outcome.
// Dispatch order, first match wins:
//
//  1. *AppError — already constructed by application logic; passed through
//     unchanged.
//  2. validator.ValidationErrors — mapped to 422 VALIDATION_ERROR with the
//     ordered field violations as details.
//  3. anything else — mapped to 500 INTERNAL_ERROR. Under a
//     disclosure-restricted runtime the message is redacted and no details
//     are attached; otherwise the original message and a stack trace are
//     included for diagnosis.
//
// Classification is total: Classify never returns nil and never panics.
func Classify(err error, restricted bool) *AppError {
	if err == nil {
		err = stderrors.New("nil error reached classification")
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) {
		violations := ViolationsFromValidator(verrs)
		messages := make([]string, len(violations))
		for i, v := range violations {
			messages[i] = v.Field + ": " + v.Message
		}
		return ValidationFailed(strings.Join(messages, "; "), violations)
	}

	if restricted {
		return &AppError{
			Code: ErrCodeInternal, Message: redactedInternalMessage,
			HTTPStatus: http.StatusInternalServerError, Operational: false, Cause: err,
		}
	}
	return &AppError{
		Code: ErrCodeInternal, Message: err.Error(),
		HTTPStatus: http.StatusInternalServerError, Operational: false, Cause: err,
		Details: map[string]any{"stack": string(debug.Stack())},
	}
}

// ViolationsFromValidator converts validator library errors into ordered
// field violations with snake_case field names and human-readable messages.
func ViolationsFromValidator(verrs validator.ValidationErrors) []FieldViolation {
	violations := make([]FieldViolation, 0, len(verrs))
	for _, e := range verrs {
		violations = append(violations, FieldViolation{
			Field:   ToSnakeCase(e.Field()),
			Message: formatValidatorError(e),
		})
	}
	return violations
}

// formatValidatorError creates a human-readable message for a single violation.
func formatValidatorError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + e.Param() + " characters"
	case "max":
		return "must be at most " + e.Param() + " characters"
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return "must be one of: " + e.Param()
	default:
		return "is invalid"
	}
}

// ToSnakeCase converts a field name to snake_case.
func ToSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune('_')
		}
		if r >= 'A' && r <= 'Z' {
			result.WriteRune(r + 32)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
