// Package apierror tags failures with a machine-readable kind so handlers can
// pick a status code without parsing message text.
package apierror

import "net/http"

type Kind int

const (
	Validation Kind = iota
	NotFound
	Conflict
	Internal
)

// Status returns the HTTP status a kind maps to.
func (k Kind) Status() int {
	switch k {
	case Validation:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error carries the kind alongside a display message. Err, when set, is the
// underlying cause and is meant for logs, never for response bodies.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}
