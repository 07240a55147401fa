package catalog

import (
	"fmt"
	"log/slog"

	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/airflow"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Registry is implemented by each API domain: a named, ordered declaration
// of the operations it offers. Pure; no side effects.
type Registry interface {
	Name() string
	Operations() []Operation
}

// Entry is one catalog slot: an Operation plus the domain that declared it,
// kept for collision diagnostics and the tools listing.
type Entry struct {
	Operation

	Domain string
}

// Catalog maps tool names to operations while preserving declaration order.
// Built once at startup, immutable after the binding step.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// Assemble merges the enabled domain registries, in the given order, into
// one catalog. A tool name declared by two domains is a configuration
// error naming both.
func Assemble(registries ...Registry) (*Catalog, error) {
	c := &Catalog{index: make(map[string]int)}
	for _, reg := range registries {
		domain := reg.Name()
		for _, op := range reg.Operations() {
			if prev, exists := c.index[op.Name]; exists {
				return nil, fmt.Errorf("%w: %q declared by domain %q and domain %q",
					ErrDuplicateToolName, op.Name, c.entries[prev].Domain, domain)
			}
			c.index[op.Name] = len(c.entries)
			c.entries = append(c.entries, Entry{Operation: op, Domain: domain})
		}
	}
	return c, nil
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of the catalog in declaration order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Get returns the entry registered under name.
func (c *Catalog) Get(name string) (Entry, bool) {
	i, ok := c.index[name]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// FilterReadOnly applies the read-only policy. With readOnly false the
// catalog is returned unchanged; with true a new catalog holding only
// read-only entries, order preserved, is returned. The receiver is never
// mutated.
func (c *Catalog) FilterReadOnly(readOnly bool) *Catalog {
	if !readOnly {
		return c
	}
	filtered := &Catalog{index: make(map[string]int)}
	for _, e := range c.entries {
		if !e.ReadOnly {
			continue
		}
		filtered.index[e.Name] = len(filtered.entries)
		filtered.entries = append(filtered.entries, e)
	}
	return filtered
}

// Bind registers every entry with the MCP server, associating name,
// description and derived input schema with the adapted handler. Any
// binding failure is fatal: the server must not start partially
// configured.
func (c *Catalog) Bind(server *mcp.Server, api airflow.API, logger *slog.Logger) error {
	if server == nil {
		return ErrNilServer
	}
	if api == nil {
		return ErrNilAPI
	}
	if logger == nil {
		logger = slog.Default()
	}
	for _, e := range c.entries {
		if err := e.bind(server, api, logger); err != nil {
			return fmt.Errorf("binding tool %s (domain %s): %w", e.Name, e.Domain, err)
		}
	}
	return nil
}
