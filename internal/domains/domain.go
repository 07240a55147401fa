// Package domains declares the closed set of Airflow API domains and the
// operations each one exposes as MCP tools. Domains are fixed code: the
// catalog is known at build time and never discovered from the remote
// server.
package domains

import (
	"fmt"

	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/catalog"
)

// Domain is one named group of operations against a related area of the
// Airflow REST API. It implements catalog.Registry.
type Domain struct {
	name       string
	operations func() []catalog.Operation
}

// Interface guard
var _ catalog.Registry = Domain{}

// Name returns the domain identifier used in configuration.
func (d Domain) Name() string {
	return d.name
}

// Operations returns the domain's operation descriptors in declaration
// order. Pure; safe to call repeatedly.
func (d Domain) Operations() []catalog.Operation {
	return d.operations()
}

// All returns every domain in canonical order. This order is the default
// discovery-listing order when no explicit selection is configured.
func All() []Domain {
	return []Domain{
		dagDomain(),
		dagRunDomain(),
		taskInstanceDomain(),
		variableDomain(),
		connectionDomain(),
		poolDomain(),
		xcomDomain(),
		datasetDomain(),
		monitorDomain(),
		configDomain(),
		pluginDomain(),
		providerDomain(),
		importErrorDomain(),
		eventLogDomain(),
	}
}

// Names returns the canonical domain names, for configuration validation
// and help output.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, d := range all {
		names[i] = d.Name()
	}
	return names
}

// Enabled resolves a configured domain selection into an ordered Domain
// slice, preserving the operator's order. An empty selection means all
// domains. Unknown or repeated names are configuration errors.
func Enabled(names []string) ([]Domain, error) {
	if len(names) == 0 {
		return All(), nil
	}

	byName := make(map[string]Domain)
	for _, d := range All() {
		byName[d.Name()] = d
	}

	seen := make(map[string]bool, len(names))
	selected := make([]Domain, 0, len(names))
	for _, name := range names {
		d, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownDomain, name, Names())
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateDomain, name)
		}
		seen[name] = true
		selected = append(selected, d)
	}
	return selected, nil
}

// Registries converts a Domain slice to the catalog.Registry slice that
// catalog.Assemble consumes.
func Registries(domains []Domain) []catalog.Registry {
	regs := make([]catalog.Registry, len(domains))
	for i, d := range domains {
		regs[i] = d
	}
	return regs
}
