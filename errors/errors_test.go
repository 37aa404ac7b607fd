package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeNotFound, "not found", http.StatusNotFound)
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "not found" {
		t.Errorf("expected message 'not found', got %q", err.Message)
	}
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, err.HTTPStatus)
	}
	if !err.Operational {
		t.Error("NOT_FOUND should be operational")
	}
}

func TestAppError_New_Internal(t *testing.T) {
	err := New(ErrCodeInternal, "boom", http.StatusInternalServerError)
	if err.Operational {
		t.Error("INTERNAL_ERROR should not be operational")
	}
}

func TestAppError_NotFound_Success(t *testing.T) {
	err := NotFound("user", "123")
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected 404, got %d", err.HTTPStatus)
	}
	if err.Details["resource"] != "user" {
		t.Errorf("expected resource=user, got %v", err.Details["resource"])
	}
	if err.Details["id"] != "123" {
		t.Errorf("expected id=123, got %v", err.Details["id"])
	}
}

func TestAppError_NotFound_EmptyID(t *testing.T) {
	err := NotFound("user", "")
	if _, ok := err.Details["id"]; ok {
		t.Error("expected no 'id' key in details when id is empty")
	}
}

func TestAppError_RouteNotFound_Success(t *testing.T) {
	err := RouteNotFound("/widgets/42")
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected 404, got %d", err.HTTPStatus)
	}
	if !strings.Contains(err.Message, "Route") {
		t.Errorf("expected message to reference the route, got %q", err.Message)
	}
	if !strings.Contains(err.Message, "/widgets/42") {
		t.Errorf("expected message to include the path, got %q", err.Message)
	}
	if !err.Operational {
		t.Error("route misses are operational errors")
	}
}

func TestAppError_ValidationFailed_Success(t *testing.T) {
	fields := []FieldViolation{
		{Field: "email", Message: "must be a valid email address"},
		{Field: "name", Message: "is required"},
	}
	err := ValidationFailed("validation failed", fields)
	if err.Code != ErrCodeValidation {
		t.Errorf("expected VALIDATION_ERROR, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", err.HTTPStatus)
	}
	got, ok := err.Details["fields"].([]FieldViolation)
	if !ok {
		t.Fatalf("expected fields detail, got %T", err.Details["fields"])
	}
	if got[0].Field != "email" || got[1].Field != "name" {
		t.Errorf("violation order not preserved: %v", got)
	}
}

func TestAppError_ValidationFailed_NoFields(t *testing.T) {
	err := ValidationFailed("bad shape", nil)
	if err.Details != nil {
		t.Errorf("expected no details without violations, got %v", err.Details)
	}
}

func TestAppError_Internal_Success(t *testing.T) {
	cause := fmt.Errorf("db connection lost")
	err := Internal(cause)
	if err.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", err.HTTPStatus)
	}
	if err.Cause != cause {
		t.Error("expected cause to be set")
	}
	if err.Operational {
		t.Error("Internal should not be operational")
	}
}

func TestAppError_Error_WithCause(t *testing.T) {
	err := Internal(fmt.Errorf("db down"))
	if !strings.Contains(err.Error(), "db down") {
		t.Errorf("expected cause in message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), string(ErrCodeInternal)) {
		t.Errorf("expected code in message, got %q", err.Error())
	}
}

func TestAppError_Unwrap_Success(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := New(ErrCodeConflict, "conflict", http.StatusConflict).WithCause(cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}
}

func TestAppError_WithDetail_Chaining(t *testing.T) {
	err := Conflict("version mismatch").
		WithDetail("expected", 3).
		WithDetail("actual", 5)
	if err.Details["expected"] != 3 || err.Details["actual"] != 5 {
		t.Errorf("unexpected details: %v", err.Details)
	}
}

func TestAppError_Response_Flat(t *testing.T) {
	err := ValidationFailed("validation failed", []FieldViolation{{Field: "name", Message: "is required"}})
	data, jerr := json.Marshal(err.Response())
	if jerr != nil {
		t.Fatalf("marshal failed: %v", jerr)
	}
	var body map[string]any
	if jerr := json.Unmarshal(data, &body); jerr != nil {
		t.Fatalf("unmarshal failed: %v", jerr)
	}
	if body["code"] != "VALIDATION_ERROR" {
		t.Errorf("expected code at top level, got %v", body)
	}
	if body["message"] != "validation failed" {
		t.Errorf("expected message at top level, got %v", body)
	}
	if _, ok := body["details"]; !ok {
		t.Error("expected details in payload")
	}
	if _, ok := body["error"]; ok {
		t.Error("payload must not be nested under an error key")
	}
}

func TestAppError_Response_OmitsEmptyDetails(t *testing.T) {
	err := RouteNotFound("/missing")
	data, jerr := json.Marshal(err.Response())
	if jerr != nil {
		t.Fatalf("marshal failed: %v", jerr)
	}
	if strings.Contains(string(data), "details") {
		t.Errorf("expected details omitted, got %s", data)
	}
}

func TestAppError_HTTPResponse_Success(t *testing.T) {
	status, resp := RateLimited().HTTPResponse()
	if status != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", status)
	}
	if resp.Code != ErrCodeRateLimited {
		t.Errorf("expected RATE_LIMITED, got %s", resp.Code)
	}
}

func TestAsAppError_Wrapped(t *testing.T) {
	inner := NotFound("widget", "7")
	wrapped := fmt.Errorf("loading widget: %w", inner)
	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to find the wrapped AppError")
	}
	if appErr.Code != ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND, got %s", appErr.Code)
	}
	if !IsAppError(wrapped) {
		t.Error("IsAppError should match wrapped errors")
	}
	if IsAppError(fmt.Errorf("plain")) {
		t.Error("IsAppError should not match plain errors")
	}
}

func TestIsOperationalCode_Success(t *testing.T) {
	if !IsOperationalCode(ErrCodeValidation) {
		t.Error("VALIDATION_ERROR should be operational")
	}
	if IsOperationalCode(ErrCodeInternal) {
		t.Error("INTERNAL_ERROR should not be operational")
	}
	if IsOperationalCode(ErrorCode("UNKNOWN_CODE")) {
		t.Error("unknown codes should default to non-operational")
	}
}
