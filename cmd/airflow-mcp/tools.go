package main

import (
	"context"
	"fmt"

	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/catalog"
	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/config"
	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/fancy"
	"github.com/urfave/cli/v3"
)

var toolsCmd = &cli.Command{
	Name:  "tools",
	Usage: "List the tools the server would expose",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "Path to TOML configuration file",
			Aliases: []string{"c"},
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
	},
	Action: toolsAction,
}

func toolsAction(ctx context.Context, cmd *cli.Command) error {
	// No connection is needed to list tools, so skip full validation and
	// only resolve the catalog-shaping settings.
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return cli.Exit(err, 1)
	}
	if cmd.IsSet("domains") {
		cfg.Domains = cmd.StringSlice("domains")
	}
	if cmd.IsSet("read-only") {
		cfg.ReadOnly = cmd.Bool("read-only")
	}

	cat, err := buildCatalog(cfg)
	if err != nil {
		return cli.Exit(err, 1)
	}

	fmt.Println(renderCatalogTree(cat, cfg.ReadOnly))
	return nil
}

// renderCatalogTree renders the catalog grouped by domain, in catalog order.
func renderCatalogTree(cat *catalog.Catalog, readOnly bool) string {
	title := fmt.Sprintf("airflow-mcp %s", fancy.CountText(fmt.Sprintf("(%d tools)", cat.Len())))
	if readOnly {
		title += " " + fancy.ReadOnlyBadge()
	}
	root := fancy.NewComponentTree(fancy.RootStyle.Render(title))

	// Grouping preserves the canonical domain order from Assemble.
	entries := cat.Entries()
	grouped := make(map[string][]catalog.Entry)
	var order []string
	for _, e := range entries {
		if _, seen := grouped[e.Domain]; !seen {
			order = append(order, e.Domain)
		}
		grouped[e.Domain] = append(grouped[e.Domain], e)
	}

	for _, name := range order {
		dt := fancy.DomainTree(name, len(grouped[name]))
		for _, e := range grouped[name] {
			dt.AddChild(fancy.ToolNode(e.Name, e.Description, e.ReadOnly))
		}
		root.AddChild(dt.Tree())
	}

	return root.Render()
}
