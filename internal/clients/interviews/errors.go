package interviews

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnauthorized is returned on HTTP 401; the caller should re-acquire
// a token before retrying.
var ErrUnauthorized = errors.New("unauthorized, please sign in")

// ServerError is any other non-2xx response. Message is taken from the
// error body when the server sent one, otherwise "HTTP <code>".
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return e.Message
}

// NetworkError is a transport-level failure: the request never produced
// an HTTP response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodingError means the response body did not match the expected shape.
type DecodingError struct {
	Err error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("failed to parse response: %v", e.Err)
}

func (e *DecodingError) Unwrap() error {
	return e.Err
}
