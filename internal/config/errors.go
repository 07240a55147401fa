package config

import "errors"

var (
	// ErrMissingBaseURL is returned when no Airflow base URL is configured.
	ErrMissingBaseURL = errors.New("airflow base URL is required")

	// ErrInvalidBaseURL is returned when the base URL does not parse or uses
	// a scheme other than http or https.
	ErrInvalidBaseURL = errors.New("airflow base URL must be a valid http or https URL")

	// ErrConflictingAuth is returned when both basic-auth credentials and an
	// API token are configured.
	ErrConflictingAuth = errors.New("configure either username/password or api_token, not both")

	// ErrMissingPassword is returned when a username is configured without a
	// password.
	ErrMissingPassword = errors.New("password is required when username is set")

	// ErrInvalidTransport is returned for transports other than stdio and
	// http.
	ErrInvalidTransport = errors.New("transport must be stdio or http")

	// ErrMissingListenAddr is returned when the http transport is selected
	// without a listen address.
	ErrMissingListenAddr = errors.New("listen_addr is required for the http transport")

	// ErrInvalidTimeout is returned when request_timeout does not parse as a
	// duration.
	ErrInvalidTimeout = errors.New("request_timeout is not a valid duration")

	// ErrInvalidDomains wraps domain-selection failures.
	ErrInvalidDomains = errors.New("invalid domain selection")
)
