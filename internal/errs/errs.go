// Package errs defines the error kinds returned by the services and
// their mapping onto HTTP status codes.
package errs

import (
	"errors"
	"net/http"
)

// Kind classifies an error for the API boundary
type Kind int

const (
	// KindInternal is any failure the client cannot fix, such as a store error
	KindInternal Kind = iota
	// KindNotFound means the requested entity does not exist
	KindNotFound
	// KindValidation means the request was rejected by an input rule
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	default:
		return "internal"
	}
}

// Error is an error tagged with a Kind and a client facing message
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NotFound creates an error for a missing entity
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Validation creates an error for rejected input
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// ValidationWrap creates a validation error keeping the validator output as cause
func ValidationWrap(message string, cause error) *Error {
	return &Error{Kind: KindValidation, Message: message, Cause: cause}
}

// Internal wraps an unexpected failure. The message is the cause's text.
func Internal(cause error) *Error {
	message := http.StatusText(http.StatusInternalServerError)
	if cause != nil {
		message = cause.Error()
	}
	return &Error{Kind: KindInternal, Message: message, Cause: cause}
}

// KindOf returns the Kind of err. Errors not created by this package are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message returns the client facing message of err
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// HTTPStatus maps err to the status code reported to the client
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
