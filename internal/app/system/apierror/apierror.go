// Package apierror defines the failure categories the API surfaces to
// clients and renders them as JSON. Handlers and the announcement service
// return these errors; the HTTP boundary maps each category to its status
// code via Render.
package apierror

import (
	"errors"
	"fmt"
)

// Kind classifies an Error into one of the API's failure categories.
type Kind int

const (
	// KindUnauthorized is an unknown or missing teacher identity on a
	// privileged operation. Maps to 401.
	KindUnauthorized Kind = iota + 1
	// KindInvalidInput is a schema, field-length, date-ordering, or
	// malformed-id violation. Maps to 400.
	KindInvalidInput
	// KindNotFound means the referenced announcement does not exist.
	// Maps to 404.
	KindNotFound
	// KindStorage means the underlying store failed, or reported zero
	// effect where one was expected. Maps to 500.
	KindStorage
)

// Error carries a user-facing detail message plus an optional cause.
// The cause is logged server-side and never shown to the client.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Detail, e.Err)
	}
	return e.Detail
}

func (e *Error) Unwrap() error { return e.Err }

// Unauthorized returns a KindUnauthorized error with the given detail.
func Unauthorized(detail string) error {
	return &Error{Kind: KindUnauthorized, Detail: detail}
}

// InvalidInput returns a KindInvalidInput error with the given detail.
func InvalidInput(detail string) error {
	return &Error{Kind: KindInvalidInput, Detail: detail}
}

// NotFound returns a KindNotFound error with the given detail.
func NotFound(detail string) error {
	return &Error{Kind: KindNotFound, Detail: detail}
}

// Storage wraps a store failure. err may be nil when the store reported
// zero effect rather than an explicit error.
func Storage(detail string, err error) error {
	return &Error{Kind: KindStorage, Detail: detail, Err: err}
}

// KindOf returns the Kind of err, or 0 when err is not an apierror.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
