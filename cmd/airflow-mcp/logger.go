package main

import (
	"context"

	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/logging"
	"github.com/urfave/cli/v3"
)

var globalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level (trace, debug, info, warn, error)",
		Value: "info",
	},
	&cli.StringFlag{
		Name:  "log-format",
		Usage: "Log format (text, json)",
		Value: "text",
	},
	&cli.StringFlag{
		Name:  "log-output",
		Usage: "Log destination (stderr, stdout, or a file path)",
		Value: "stderr",
	},
}

// setupLogging installs the process slog default before any command runs.
func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	_, err := logging.Setup(
		cmd.String("log-level"),
		cmd.String("log-format"),
		cmd.String("log-output"),
	)
	return ctx, err
}
