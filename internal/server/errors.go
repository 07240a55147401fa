package server

import "errors"

var (
	// ErrNilConfig is returned when the runner is constructed without a config.
	ErrNilConfig = errors.New("config cannot be nil")

	// ErrNilCatalog is returned when the runner is constructed without a catalog.
	ErrNilCatalog = errors.New("catalog cannot be nil")

	// ErrNilAPI is returned when the runner is constructed without an Airflow client.
	ErrNilAPI = errors.New("airflow API cannot be nil")
)
