package openmensa

import (
	"fmt"
	"net/http"
)

// TransportError reports a request that never produced a usable response:
// DNS failure, refused connection, timeout, TLS failure, a cancelled
// context, or an unreadable body.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("openmensa: request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError reports a response that completed with a non-2xx status.
// The body is not decoded in that case.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("openmensa: unexpected status code %d from %s", e.StatusCode, e.URL)
}

// NotFound reports whether the server answered 404 for this URL
func (e *StatusError) NotFound() bool { return e.StatusCode == http.StatusNotFound }

// DecodeError reports a 2xx response body that could not be parsed into
// the expected shape. It keeps the originating URL for diagnosis.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("openmensa: failed to decode JSON response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
