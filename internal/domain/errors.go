package domain

import (
	"errors"
	"fmt"
)

// Kind classifies an Error for transport mapping.
type Kind string

const (
	KindNotFound     Kind = "NOT_FOUND"
	KindInvalidInput Kind = "INVALID_INPUT"
	KindInternal     Kind = "INTERNAL_ERROR"
)

var (
	// ErrNotFound matches any Error of KindNotFound via errors.Is.
	ErrNotFound = &Error{Kind: KindNotFound, Message: "not found"}
	// ErrInvalidInput matches any Error of KindInvalidInput via errors.Is.
	ErrInvalidInput = &Error{Kind: KindInvalidInput, Message: "invalid input"}
	// ErrInternal matches any Error of KindInternal via errors.Is.
	ErrInternal = &Error{Kind: KindInternal, Message: "internal error"}

	// ErrEmptyCatalog is returned when a loader yields no questions.
	ErrEmptyCatalog = errors.New("question catalog is empty")
	// ErrInvalidCatalog wraps every other catalog validation failure.
	ErrInvalidCatalog = errors.New("question catalog is invalid")
)

// Error is an application error carrying enough detail for the caller to fix
// the request.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors of the same kind, so errors.Is(err, ErrNotFound) works
// for every not-found error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// NotFound reports a missing resource by id.
func NotFound(resource string, id any) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
	}
}

// InvalidInput reports a malformed request field.
func InvalidInput(field, reason string) *Error {
	return &Error{
		Kind:    KindInvalidInput,
		Field:   field,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
	}
}

// Internal wraps an unexpected failure. The message stays generic.
func Internal(err error) *Error {
	return &Error{
		Kind:    KindInternal,
		Message: "internal server error",
		Err:     err,
	}
}

// AsError returns err as an *Error, wrapping unknown errors as Internal.
func AsError(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
