package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is an error that knows which HTTP status it should be rendered with.
type Error struct {
	Status int
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, err error) *Error {
	return &Error{Status: status, Err: err}
}

func BadRequest(err error) *Error    { return New(http.StatusBadRequest, err) }
func NotFound(err error) *Error      { return New(http.StatusNotFound, err) }
func Unprocessable(err error) *Error { return New(http.StatusUnprocessableEntity, err) }
func Internal(err error) *Error      { return New(http.StatusInternalServerError, err) }

// Status reports the HTTP status for err: the status of the first *Error in
// the chain, or 500 for anything else.
func Status(err error) int {
	var ae *Error
	if errors.As(err, &ae) && ae.Status != 0 {
		return ae.Status
	}
	return http.StatusInternalServerError
}

// Prefix is the human readable label used in error envelopes.
func Prefix(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Bad request"
	case http.StatusNotFound:
		return "Not found"
	case http.StatusUnprocessableEntity:
		return "Unprocessable entity"
	case http.StatusInternalServerError:
		return "Server error"
	default:
		return http.StatusText(status)
	}
}
