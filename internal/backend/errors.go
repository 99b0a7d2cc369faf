package backend

import (
	"errors"
	"fmt"
)

// Kind is a discriminated error category decoded at the API boundary.
// Handlers branch on Kind instead of matching error text.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindNotFound     Kind = "not_found"
	KindForbidden    Kind = "forbidden"
	KindUnauthorized Kind = "unauthorized"
	KindValidation   Kind = "validation"
)

// Error is a failure returned by the backend API. Detail carries the
// server's user-visible message verbatim.
type Error struct {
	Kind      Kind
	Status    int
	Detail    string
	Operation string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (%d %s)", e.Operation, e.Detail, e.Status, e.Kind)
}

// kindForStatus maps an HTTP status code to an error kind.
func kindForStatus(status int) Kind {
	switch status {
	case 401:
		return KindUnauthorized
	case 403:
		return KindForbidden
	case 404:
		return KindNotFound
	case 400, 409, 422:
		return KindValidation
	default:
		return KindUnknown
	}
}

// KindOf returns the error kind, or KindUnknown for non-backend errors.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// Detail returns the server's message for a backend error, or the
// plain error text for anything else.
func Detail(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return err.Error()
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsUnauthorized reports whether err is a backend 401.
func IsUnauthorized(err error) bool {
	return KindOf(err) == KindUnauthorized
}

// IsForbidden reports whether err is a backend 403.
func IsForbidden(err error) bool {
	return KindOf(err) == KindForbidden
}
