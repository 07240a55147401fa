package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/airflow"
	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/catalog"
	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/config"
	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/domains"
	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/server"
	"github.com/robbyt/go-supervisor/supervisor"
	"github.com/urfave/cli/v3"
)

var serveCmd = &cli.Command{
	Name:   "serve",
	Usage:  "Start the MCP server",
	Flags:  connectionFlags,
	Action: serveAction,
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return cli.Exit(err, 1)
	}

	logger := slog.Default()

	client, err := buildClient(cfg, logger)
	if err != nil {
		return cli.Exit(fmt.Errorf("failed to create airflow client: %w", err), 1)
	}

	cat, err := buildCatalog(cfg)
	if err != nil {
		return cli.Exit(fmt.Errorf("failed to assemble catalog: %w", err), 1)
	}

	runner, err := server.NewRunner(cfg, cat, client,
		server.WithLogger(logger.With("component", "server")),
		server.WithContext(ctx),
		server.WithServerInfo(cmd.Root().Name, cmd.Root().Version),
	)
	if err != nil {
		return cli.Exit(fmt.Errorf("failed to create server runner: %w", err), 1)
	}

	super, err := supervisor.New(
		supervisor.WithRunnables(runner),
		supervisor.WithLogHandler(logger.Handler()),
		supervisor.WithContext(ctx),
	)
	if err != nil {
		return cli.Exit(fmt.Errorf("failed to create supervisor: %w", err), 1)
	}
	if err := super.Run(); err != nil {
		return cli.Exit(fmt.Errorf("failed to run server: %w", err), 1)
	}

	logger.Info("Server shutdown complete")
	return nil
}

// buildClient constructs the Airflow REST client from the resolved config.
func buildClient(cfg *config.Config, logger *slog.Logger) (*airflow.Client, error) {
	opts := []airflow.Option{
		airflow.WithAPIVersion(cfg.APIVersion),
		airflow.WithTimeout(cfg.Timeout()),
		airflow.WithLogger(logger.WithGroup("airflow")),
	}
	switch {
	case cfg.APIToken != "":
		opts = append(opts, airflow.WithBearerToken(cfg.APIToken))
	case cfg.Username != "":
		opts = append(opts, airflow.WithBasicAuth(cfg.Username, cfg.Password))
	}
	return airflow.New(cfg.BaseURL, opts...)
}

// buildCatalog assembles the tool catalog for the selected domains and
// applies the read-only filter.
func buildCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	enabled, err := domains.Enabled(cfg.Domains)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.Assemble(domains.Registries(enabled)...)
	if err != nil {
		return nil, err
	}
	return cat.FilterReadOnly(cfg.ReadOnly), nil
}
