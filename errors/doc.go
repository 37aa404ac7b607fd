// Package errors provides unified error handling for reqkit services.
// It implements a tagged error taxonomy with stable machine-readable codes,
// HTTP status mapping, and total classification of arbitrary error values
// into environment-sensitive HTTP responses.
package errors
