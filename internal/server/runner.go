// Package server runs the MCP server over the stdio or streamable HTTP
// transport, under go-supervisor lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/airflow"
	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/catalog"
	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/config"
	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/server/finitestate"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/robbyt/go-supervisor/supervisor"
)

// Interface guards
var (
	_ supervisor.Runnable  = (*Runner)(nil)
	_ supervisor.Stateable = (*Runner)(nil)
)

const instructions = `This server exposes the Apache Airflow REST API as tools.
Use the listing tools (list_dags, list_dag_runs, list_task_instances) to
discover what exists before mutating anything. Tools marked read-only never
change state on the Airflow instance. Results that describe a DAG or DAG run
include a ui_url field pointing at the Airflow web console.`

// Runner serves the bound tool catalog over one MCP transport.
type Runner struct {
	cfg *config.Config
	cat *catalog.Catalog
	api airflow.API

	name    string
	version string

	logger *slog.Logger
	fsm    finitestate.Machine

	web *httpserver.Runner

	parentCtx context.Context
	runCtx    context.Context
	runCancel context.CancelFunc
	mutex     sync.Mutex
}

// NewRunner creates a runner for the given config, catalog and Airflow client.
func NewRunner(
	cfg *config.Config,
	cat *catalog.Catalog,
	api airflow.API,
	opts ...Option,
) (*Runner, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cat == nil {
		return nil, ErrNilCatalog
	}
	if api == nil {
		return nil, ErrNilAPI
	}

	runner := &Runner{
		cfg:       cfg,
		cat:       cat,
		api:       api,
		name:      "airflow-mcp",
		version:   "dev",
		logger:    slog.Default().WithGroup("server.Runner"),
		parentCtx: context.Background(),
	}

	for _, opt := range opts {
		opt(runner)
	}

	fsmLogger := runner.logger.WithGroup("fsm")
	fsm, err := finitestate.New(fsmLogger.Handler())
	if err != nil {
		return nil, fmt.Errorf("failed to create state machine: %w", err)
	}
	runner.fsm = fsm

	return runner, nil
}

// String implements the supervisor.Runnable interface
func (r *Runner) String() string {
	return "server.Runner"
}

// Run implements the supervisor.Runnable interface. It binds the catalog to
// a fresh MCP server, then blocks serving the configured transport until the
// context is canceled or Stop is called.
func (r *Runner) Run(ctx context.Context) error {
	r.logger.Debug("Starting Runner", "transport", r.cfg.Transport)

	if err := r.fsm.Transition(finitestate.StatusBooting); err != nil {
		return fmt.Errorf("failed to transition to booting state: %w", err)
	}

	r.mutex.Lock()
	r.runCtx, r.runCancel = context.WithCancel(ctx)
	r.mutex.Unlock()
	defer r.runCancel()

	// The parent context set via WithContext cancels the serve loop just
	// like the supervisor's context does.
	stopWatch := context.AfterFunc(r.parentCtx, r.runCancel)
	defer stopWatch()

	mcpServer, err := r.boot()
	if err != nil {
		if stateErr := r.fsm.Transition(finitestate.StatusError); stateErr != nil {
			r.logger.Error("Failed to transition to error state", "error", stateErr)
		}
		return fmt.Errorf("failed to boot MCP server: %w", err)
	}

	if err := r.fsm.Transition(finitestate.StatusRunning); err != nil {
		return fmt.Errorf("failed to transition to running state: %w", err)
	}

	var serveErr error
	switch r.cfg.Transport {
	case config.TransportHTTP:
		serveErr = r.serveHTTP(mcpServer)
	default:
		serveErr = r.serveStdio(mcpServer)
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		if stateErr := r.fsm.Transition(finitestate.StatusError); stateErr != nil {
			r.logger.Error("Failed to transition to error state", "error", stateErr)
		}
		return serveErr
	}

	r.logger.Info("Runner shutting down")

	if r.fsm.GetState() != finitestate.StatusStopping {
		if err := r.fsm.Transition(finitestate.StatusStopping); err != nil {
			r.logger.Error("Failed to transition to stopping state", "error", err)
		}
	}

	if err := r.fsm.Transition(finitestate.StatusStopped); err != nil {
		return fmt.Errorf("failed to transition to stopped state: %w", err)
	}

	return nil
}

// boot builds the MCP server and binds the catalog to it.
func (r *Runner) boot() (*mcp.Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{Name: r.name, Version: r.version},
		&mcp.ServerOptions{Instructions: instructions},
	)

	if err := r.cat.Bind(mcpServer, r.api, r.logger); err != nil {
		return nil, err
	}

	r.logger.Info("Catalog bound",
		"tools", r.cat.Len(),
		"read_only", r.cfg.ReadOnly)

	return mcpServer, nil
}

// serveStdio speaks MCP over stdin/stdout until the client disconnects.
func (r *Runner) serveStdio(mcpServer *mcp.Server) error {
	r.logger.Info("Serving MCP on stdio")
	return mcpServer.Run(r.runCtx, &mcp.StdioTransport{})
}

// serveHTTP serves the streamable HTTP transport through the go-supervisor
// httpserver runnable, which handles listening and graceful drain.
func (r *Runner) serveHTTP(mcpServer *mcp.Server) error {
	handler := mcp.NewStreamableHTTPHandler(
		func(*http.Request) *mcp.Server { return mcpServer },
		nil,
	)

	route, err := httpserver.NewRouteFromHandlerFunc("mcp", "/mcp", handler.ServeHTTP)
	if err != nil {
		return fmt.Errorf("failed to create MCP route: %w", err)
	}

	configCallback := func() (*httpserver.Config, error) {
		return httpserver.NewConfig(r.cfg.ListenAddr, httpserver.Routes{*route})
	}

	web, err := httpserver.NewRunner(
		httpserver.WithConfigCallback(configCallback),
	)
	if err != nil {
		return fmt.Errorf("failed to create HTTP runner: %w", err)
	}

	r.mutex.Lock()
	r.web = web
	r.mutex.Unlock()

	r.logger.Info("Serving MCP on HTTP", "address", r.cfg.ListenAddr, "path", "/mcp")
	return web.Run(r.runCtx)
}

// Stop implements the supervisor.Runnable interface
func (r *Runner) Stop() {
	r.logger.Debug("Stopping Runner")
	if err := r.fsm.Transition(finitestate.StatusStopping); err != nil {
		r.logger.Error("Failed to transition to stopping state", "error", err)
	}

	r.mutex.Lock()
	web := r.web
	cancel := r.runCancel
	r.mutex.Unlock()

	if web != nil {
		web.Stop()
	}
	if cancel != nil {
		cancel()
	}
}
