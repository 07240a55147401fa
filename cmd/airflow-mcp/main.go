package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:    "airflow-mcp",
		Version: Version,
		Usage:   "MCP server exposing the Apache Airflow REST API as tools",
		Flags:   globalFlags,
		Before:  setupLogging,
		Commands: []*cli.Command{
			serveCmd,
			toolsCmd,
			validateCmd,
			versionCmd,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
