package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/config"
	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/fancy"
	"github.com/urfave/cli/v3"
)

var validateCmd = &cli.Command{
	Name:    "validate",
	Aliases: []string{"lint"},
	Usage:   "Validate the resolved configuration without starting the server",
	Flags:   connectionFlags,
	Action:  validateAction,
}

func validateAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		fmt.Println(fancy.ErrorText("Configuration is invalid"))
		return cli.Exit(err, 1)
	}

	cat, err := buildCatalog(cfg)
	if err != nil {
		return cli.Exit(err, 1)
	}

	fmt.Println(fancy.ValidText("Configuration is valid"))
	fmt.Println(renderConfigSummary(cfg, cat.Len()))
	return nil
}

// renderConfigSummary creates a formatted summary string for the configuration
func renderConfigSummary(cfg *config.Config, toolCount int) string {
	domainList := "all"
	if len(cfg.Domains) > 0 {
		domainList = strings.Join(cfg.Domains, ", ")
	}

	auth := "none"
	switch {
	case cfg.APIToken != "":
		auth = "bearer token"
	case cfg.Username != "":
		auth = "basic"
	}

	var summary strings.Builder
	summary.WriteString("\n" + fancy.HeaderStyle.Render("Config Summary:") + "\n")
	summary.WriteString(fmt.Sprintf("- Base URL: %s\n", cfg.BaseURL))
	summary.WriteString(fmt.Sprintf("- API version: %s\n", cfg.APIVersion))
	summary.WriteString(fmt.Sprintf("- Auth: %s\n", auth))
	summary.WriteString(fmt.Sprintf("- Transport: %s\n", cfg.Transport))
	summary.WriteString(fmt.Sprintf("- Domains: %s\n", domainList))
	summary.WriteString(fmt.Sprintf("- Read-only: %t\n", cfg.ReadOnly))
	summary.WriteString(fmt.Sprintf("- Tools: %d\n", toolCount))
	summary.WriteString("\nUse the tools command for the full tool listing.")

	return summary.String()
}
