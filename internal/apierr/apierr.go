package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func Validation(msg string) *Error {
	return New(http.StatusBadRequest, "missing_fields", errors.New(msg))
}

func InvalidRequest(msg string) *Error {
	return New(http.StatusBadRequest, "invalid_request", errors.New(msg))
}

func InvalidCredentials() *Error {
	return New(http.StatusUnauthorized, "invalid_credentials", errors.New("invalid credentials"))
}

func Unauthenticated() *Error {
	return New(http.StatusUnauthorized, "unauthenticated", errors.New("missing or invalid session"))
}

func Forbidden() *Error {
	return New(http.StatusForbidden, "forbidden", errors.New("forbidden"))
}

func NotFound(what string) *Error {
	return New(http.StatusNotFound, "not_found", fmt.Errorf("%s not found", what))
}

func Upload(err error) *Error {
	return New(http.StatusInternalServerError, "upload_failed", err)
}

func Persistence(err error) *Error {
	return New(http.StatusInternalServerError, "internal_error", err)
}

// From extracts an *Error from err, wrapping unknown errors as a 500.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Persistence(err)
}
