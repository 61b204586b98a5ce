package wit

import (
	"errors"
	"net/http"

	"github.com/conversekit/wit-client/internal/types"
)

// Error types re-exported so SDK consumers can import only this package.
// Every operation returns exactly one of:
//
//   - *APIError: the service received the request and reported a
//     structured failure (message + code);
//   - *HTTPError: a non-2xx response whose body was not a structured
//     service error;
//   - *DecodeError: a 2xx response that does not match the declared
//     result shape;
//   - *InvalidArgumentError: rejected locally, no request was sent;
//   - a transport error from the underlying http.Client, wrapped with the
//     operation name.
//
// Nothing is retried or swallowed; a failed call leaves the Client usable.
type (
	APIError             = types.APIError
	HTTPError            = types.HTTPError
	DecodeError          = types.DecodeError
	InvalidArgumentError = types.InvalidArgumentError
)

// IsNotFound reports whether err is the service telling us the named
// resource does not exist.
func IsNotFound(err error) bool {
	return statusOf(err) == http.StatusNotFound
}

// IsTransient reports whether err is worth retrying by callers that want
// a retry policy: server-side failures, throttling, request timeouts, and
// transport errors that never produced a response. Structured client
// errors, decode errors and invalid arguments are permanent.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return false
	}
	var argErr *InvalidArgumentError
	if errors.As(err, &argErr) {
		return false
	}
	if status := statusOf(err); status != 0 {
		switch {
		case status >= 500:
			return true
		case status == http.StatusRequestTimeout, status == http.StatusTooManyRequests:
			return true
		default:
			return false
		}
	}
	// No HTTP response was obtained: a transport-level failure.
	return true
}

// statusOf extracts the HTTP status from a classified error, or 0.
func statusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status
	}
	return 0
}
