package main

import (
	"fmt"
	"os"

	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/config"
	"github.com/urfave/cli/v3"
)

// connectionFlags are shared by the commands that need a resolved config.
var connectionFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "config",
		Usage:   "Path to TOML configuration file",
		Aliases: []string{"c"},
	},
	&cli.StringFlag{
		Name:  "base-url",
		Usage: "Airflow webserver base URL (e.g. http://localhost:8080)",
	},
	&cli.StringFlag{
		Name:  "username",
		Usage: "Airflow username for basic auth",
	},
	&cli.StringFlag{
		Name:  "password",
		Usage: "Airflow password for basic auth",
	},
	&cli.StringFlag{
		Name:  "api-token",
		Usage: "Airflow API token for bearer auth",
	},
	&cli.StringFlag{
		Name:  "api-version",
		Usage: "Airflow REST API version",
	},
	&cli.StringSliceFlag{
		Name:    "domains",
		Usage:   "API domains to expose (repeatable; defaults to all)",
		Aliases: []string{"d"},
	},
	&cli.BoolFlag{
		Name:  "read-only",
		Usage: "Expose only tools that never mutate Airflow state",
	},
	&cli.StringFlag{
		Name:  "transport",
		Usage: "MCP transport (stdio or http)",
	},
	&cli.StringFlag{
		Name:    "listen",
		Usage:   "Address to bind the HTTP transport (host:port)",
		Aliases: []string{"l"},
	},
	&cli.StringFlag{
		Name:  "request-timeout",
		Usage: "Per-request timeout for Airflow REST calls (e.g. 30s)",
	},
}

// resolveConfig layers flags over environment over the TOML file over
// defaults, then validates the result.
func resolveConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	cfg.ApplyEnv(os.LookupEnv)

	if cmd.IsSet("base-url") {
		cfg.BaseURL = cmd.String("base-url")
	}
	if cmd.IsSet("username") {
		cfg.Username = cmd.String("username")
	}
	if cmd.IsSet("password") {
		cfg.Password = cmd.String("password")
	}
	if cmd.IsSet("api-token") {
		cfg.APIToken = cmd.String("api-token")
	}
	if cmd.IsSet("api-version") {
		cfg.APIVersion = cmd.String("api-version")
	}
	if cmd.IsSet("domains") {
		cfg.Domains = cmd.StringSlice("domains")
	}
	if cmd.IsSet("read-only") {
		cfg.ReadOnly = cmd.Bool("read-only")
	}
	if cmd.IsSet("transport") {
		cfg.Transport = cmd.String("transport")
	}
	if cmd.IsSet("listen") {
		cfg.ListenAddr = cmd.String("listen")
	}
	if cmd.IsSet("request-timeout") {
		cfg.RequestTimeout = cmd.String("request-timeout")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
