package vault

import (
	"errors"
	"fmt"
)

// InvalidArgumentError reports a local precondition violation. Operations
// return it before issuing any request.
type InvalidArgumentError struct {
	// Argument is the name of the offending parameter.
	Argument string

	// Err describes the violated constraint.
	Err error
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %v", e.Argument, e.Err)
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

// invalidArgument wraps a validation failure for the named parameter.
func invalidArgument(name string, err error) error {
	return &InvalidArgumentError{Argument: name, Err: err}
}

// RequestFailedError reports a non-2xx response from the server.
type RequestFailedError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Code is the server's machine-readable error code, when provided.
	Code string

	// Message is the server's error message, or the raw response body when
	// the body was not a recognizable error envelope.
	Message string
}

func (e *RequestFailedError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("request failed: status %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("request failed: status %d: %s", e.StatusCode, e.Message)
}

// DecodingError reports a 2xx response whose body did not match the
// expected shape.
type DecodingError struct {
	Err error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Err)
}

func (e *DecodingError) Unwrap() error {
	return e.Err
}

// CancelledError reports an operation aborted through its context before
// completion. Any server-side effect that already happened is not rolled
// back.
type CancelledError struct {
	Err error
}

func (e *CancelledError) Error() string {
	return fmt.Sprintf("operation cancelled: %v", e.Err)
}

func (e *CancelledError) Unwrap() error {
	return e.Err
}

// IsInvalidArgument reports whether err is an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var e *InvalidArgumentError
	return errors.As(err, &e)
}

// IsRequestFailed reports whether err is a RequestFailedError.
func IsRequestFailed(err error) bool {
	var e *RequestFailedError
	return errors.As(err, &e)
}

// IsDecoding reports whether err is a DecodingError.
func IsDecoding(err error) bool {
	var e *DecodingError
	return errors.As(err, &e)
}

// IsCancelled reports whether err is a CancelledError.
func IsCancelled(err error) bool {
	var e *CancelledError
	return errors.As(err, &e)
}
