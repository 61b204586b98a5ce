package types

import "fmt"

// ------------------------------
// Shared Errors
// ------------------------------

// APIError is a failure the service reported in a structured error body.
// Message and Code come from the body; Status is the HTTP status the
// response carried.
type APIError struct {
	Message string `json:"error"`
	Code    string `json:"code"`
	Status  int    `json:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("wit: %s: %s (status %d)", e.Code, e.Message, e.Status)
}

// HTTPError is a non-2xx response whose body did not parse as a structured
// service error. Body holds the raw response text.
type HTTPError struct {
	Status int
	Body   string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("wit: unexpected status %d: %s", e.Status, e.Body)
}

// DecodeError is a 2xx response whose body does not match the declared
// result shape. It signals a contract mismatch rather than a semantic
// failure reported by the service.
type DecodeError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("wit: %s: decoding response: %v", e.Op, e.Err)
}

// Unwrap returns the underlying decode failure.
func (e *DecodeError) Unwrap() error { return e.Err }

// InvalidArgumentError reports a request rejected locally before any
// network I/O, covering arguments the service documents as always invalid.
type InvalidArgumentError struct {
	Reason string
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("wit: invalid argument: %s", e.Reason)
}
