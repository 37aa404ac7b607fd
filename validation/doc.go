// Package validation provides input validation for reqkit handlers.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Either path produces the
// same VALIDATION_ERROR taxonomy outcome, carrying the ordered list of
// field violations.
//
// # Struct Tag Validation
//
//	type CreateWidgetReq struct {
//	    Name  string `json:"name" validate:"required,min=2"`
//	    Email string `json:"email" validate:"required,email"`
//	}
//	err := validation.Struct(req)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("name", req.Name)
//	err := v.Validate()
package validation
