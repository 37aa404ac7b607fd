package errors

import (
	stderrors "errors"
)

// FieldViolation is a single field-level validation failure.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the flat JSON body sent to clients on any error.
// Details is omitted entirely when empty.
type ErrorResponse struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Response converts an AppError to its wire-level JSON body. It is purely
// structural: the disclosure policy has already been applied by Classify.
func (e *AppError) Response() ErrorResponse {
	return ErrorResponse{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	}
}

// HTTPResponse returns the HTTP-ready status and body pair for this error.
func (e *AppError) HTTPResponse() (int, ErrorResponse) {
	return e.HTTPStatus, e.Response()
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
