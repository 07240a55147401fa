package airflow

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed Airflow API call. The set is closed so
// callers can map every failure onto a response without type switching on
// transport details.
type ErrorKind string

const (
	KindAuth        ErrorKind = "auth"
	KindNotFound    ErrorKind = "not_found"
	KindConflict    ErrorKind = "conflict"
	KindValidation  ErrorKind = "validation"
	KindRateLimited ErrorKind = "rate_limited"
	KindServer      ErrorKind = "server"
	KindTransport   ErrorKind = "transport"
	KindTimeout     ErrorKind = "timeout"
)

// APIError is returned for every failed call against the Airflow REST API.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	// Detail carries the "detail" field from Airflow's RFC 7807 error body,
	// when the server provided one.
	Detail string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("airflow: %s (HTTP %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("airflow: %s: %s", e.Kind, e.Message)
}

// Retryable reports whether a retry of the same call could plausibly
// succeed. This layer never retries; the hint is surfaced to callers.
func (e *APIError) Retryable() bool {
	switch e.Kind {
	case KindRateLimited, KindServer, KindTransport, KindTimeout:
		return true
	default:
		return false
	}
}

// IsNotFound reports whether err is an APIError with kind not_found.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindNotFound
}

// kindForStatus maps an HTTP status code onto the error taxonomy.
func kindForStatus(status int) ErrorKind {
	switch {
	case status == 401 || status == 403:
		return KindAuth
	case status == 404:
		return KindNotFound
	case status == 409:
		return KindConflict
	case status == 400 || status == 422:
		return KindValidation
	case status == 429:
		return KindRateLimited
	default:
		return KindServer
	}
}
