package validation

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/relayops/reqkit/errors"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Use json tag names for field names in violation records.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return errors.ToSnakeCase(fld.Name)
			}
			return name
		})
	})
	return validate
}

// Struct validates a struct using `validate:"..."` tags and maps any failure
// to the VALIDATION_ERROR taxonomy outcome. Returns nil when the struct is
// valid.
func Struct(s any) error {
	v := getValidator()
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError: the value could not be introspected at all.
		return errors.ValidationFailed("validation failed", nil)
	}

	violations := errors.ViolationsFromValidator(verrs)
	messages := make([]string, len(violations))
	for i, fv := range violations {
		messages[i] = fv.Field + ": " + fv.Message
	}
	return errors.ValidationFailed(strings.Join(messages, "; "), violations)
}
