package domain

import (
	"errors"
	"fmt"
)

// ErrSessionExpired marks a request rejected by the server as unauthorized.
// By the time a caller sees it the persisted session record has already been
// evicted; the only recovery is a fresh login.
var ErrSessionExpired = errors.New("session expired")

type ErrorKind string

const (
	ErrorKindAuthExpired ErrorKind = "auth_expired"
	ErrorKindServer      ErrorKind = "server"
	ErrorKindNetwork     ErrorKind = "network"
)

// RequestError classifies a failed remote call. Detail carries the server's
// structured error message when one was present in the response body.
type RequestError struct {
	Kind       ErrorKind
	StatusCode int
	Detail     string
	Err        error
}

func (e *RequestError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s error (%d): %s", e.Kind, e.StatusCode, e.Detail)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s error (%d)", e.Kind, e.StatusCode)
}

func (e *RequestError) Unwrap() error { return e.Err }

// UserMessage extracts a user-displayable message from a failed call: the
// server's detail when present, else the fallback.
func UserMessage(err error, fallback string) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Detail != "" {
		return reqErr.Detail
	}
	return fallback
}
