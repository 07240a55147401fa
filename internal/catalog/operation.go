// Package catalog holds the tool catalog: typed operation descriptors
// declared by the API domains, assembly with collision detection, the
// read-only filter, and binding onto an MCP server. Every registered handler
// runs through one shared invocation adapter that validates arguments,
// performs exactly one Airflow API call, and renders the outcome as MCP
// content.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/airflow"
	"github.com/gofrs/uuid/v5"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Invoke is the per-operation call body: one logical Airflow API operation,
// given the already-decoded argument struct. The returned value is rendered
// to JSON text content.
type Invoke[In any] func(ctx context.Context, api airflow.API, in In) (any, error)

// Operation describes one callable tool. Name is the stable identifier MCP
// clients may hardcode; ReadOnly is true iff the operation performs no
// mutating call against Airflow. Constructed once at startup via
// NewOperation, immutable afterwards.
type Operation struct {
	Name        string
	Description string
	ReadOnly    bool

	bind func(server *mcp.Server, api airflow.API, logger *slog.Logger) error
}

// NewOperation builds an Operation whose input schema is derived from the In
// struct's json and jsonschema tags. The call is wrapped in the shared
// invocation adapter at bind time.
func NewOperation[In any](name, description string, readOnly bool, call Invoke[In]) Operation {
	return Operation{
		Name:        name,
		Description: description,
		ReadOnly:    readOnly,
		bind: func(server *mcp.Server, api airflow.API, logger *slog.Logger) error {
			schema, err := jsonschema.For[In](nil)
			if err != nil {
				return fmt.Errorf("deriving input schema for tool %s: %w", name, err)
			}
			tool := &mcp.Tool{
				Name:        name,
				Description: description,
				InputSchema: schema,
				Annotations: &mcp.ToolAnnotations{
					ReadOnlyHint: readOnly,
				},
			}
			mcp.AddTool(server, tool, adapt(name, call, api, logger))
			return nil
		},
	}
}

// adapt wraps one operation body in the shared invocation adapter: argument
// validation happens before dispatch, exactly one API call is made, and
// every failure mode (argument error, API error, panic) is contained and
// rendered as error content. Nothing escapes into the MCP transport.
func adapt[In any](name string, call Invoke[In], api airflow.API, logger *slog.Logger) mcp.ToolHandlerFor[In, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, in In) (result *mcp.CallToolResult, _ any, err error) {
		invocationID := uuid.Must(uuid.NewV4())
		start := time.Now()

		defer func() {
			if r := recover(); r != nil {
				logger.Error("tool handler panic",
					"tool", name,
					"invocation_id", invocationID,
					"panic", r)
				result = errorContent(fmt.Sprintf("internal error in tool %s", name))
				err = nil
			}
		}()

		out, callErr := call(ctx, api, in)
		if callErr != nil {
			logger.Warn("tool call failed",
				"tool", name,
				"invocation_id", invocationID,
				"duration", time.Since(start),
				"error", callErr)
			return renderFailure(name, callErr), nil, nil
		}

		text, marshalErr := renderResult(out)
		if marshalErr != nil {
			logger.Error("tool result encoding failed",
				"tool", name,
				"invocation_id", invocationID,
				"error", marshalErr)
			return errorContent(fmt.Sprintf("encoding result of tool %s failed", name)), nil, nil
		}

		logger.Debug("tool call succeeded",
			"tool", name,
			"invocation_id", invocationID,
			"duration", time.Since(start))
		return textContent(text), nil, nil
	}
}

// renderResult serializes a handler's return value to the text shown to the
// MCP client. Strings pass through untouched (task logs); everything else
// becomes indented JSON.
func renderResult(out any) (string, error) {
	if s, ok := out.(string); ok {
		return s, nil
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// renderFailure maps the closed failure taxonomy onto error content. The
// kind and HTTP status are included so callers can distinguish retryable
// from non-retryable causes.
func renderFailure(name string, err error) *mcp.CallToolResult {
	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		return errorContent(fmt.Sprintf("invalid arguments for tool %s: %s", name, argErr.Error()))
	}

	var apiErr *airflow.APIError
	if errors.As(err, &apiErr) {
		msg := fmt.Sprintf("airflow API error (%s, HTTP %d): %s", apiErr.Kind, apiErr.StatusCode, apiErr.Message)
		if apiErr.Detail != "" {
			msg += ": " + apiErr.Detail
		}
		if apiErr.Retryable() {
			msg += " (retryable)"
		}
		return errorContent(msg)
	}

	return errorContent(fmt.Sprintf("tool %s failed: %v", name, err))
}

func textContent(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorContent(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
