package catalog

import (
	"errors"
	"fmt"
)

// ErrDuplicateToolName is returned by Assemble when two domains declare an
// operation under the same tool name. This is a startup configuration
// defect, never tolerated silently.
var ErrDuplicateToolName = errors.New("duplicate tool name")

// ErrNilServer is returned by Bind when no MCP server is provided.
var ErrNilServer = errors.New("MCP server is nil")

// ErrNilAPI is returned by Bind when no Airflow client is provided.
var ErrNilAPI = errors.New("airflow API client is nil")

// ArgumentError marks a per-call validation failure. It is reported to the
// MCP client as error content and never reaches the Airflow API.
type ArgumentError struct {
	msg string
}

func (e *ArgumentError) Error() string {
	return e.msg
}

// Invalidf builds an ArgumentError for a semantic argument check inside a
// handler (missing or malformed field).
func Invalidf(format string, args ...any) error {
	return &ArgumentError{msg: fmt.Sprintf(format, args...)}
}
