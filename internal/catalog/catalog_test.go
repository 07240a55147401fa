package catalog_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/airflow"
	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/airflow/airflowtest"
	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/catalog"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRegistry struct {
	name string
	ops  []catalog.Operation
}

func (r stubRegistry) Name() string                    { return r.name }
func (r stubRegistry) Operations() []catalog.Operation { return r.ops }

type echoInput struct {
	Value string `json:"value,omitempty" jsonschema:"value to echo back"`
}

func echoOp(name string, readOnly bool) catalog.Operation {
	return catalog.NewOperation(name, "Echo back the input value.", readOnly,
		func(ctx context.Context, api airflow.API, in echoInput) (any, error) {
			return in.Value, nil
		})
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAssemble(t *testing.T) {
	t.Parallel()

	t.Run("order preserved across registries", func(t *testing.T) {
		t.Parallel()
		cat, err := catalog.Assemble(
			stubRegistry{name: "alpha", ops: []catalog.Operation{echoOp("a_one", true), echoOp("a_two", false)}},
			stubRegistry{name: "beta", ops: []catalog.Operation{echoOp("b_one", true)}},
		)
		require.NoError(t, err)
		require.Equal(t, 3, cat.Len())

		entries := cat.Entries()
		assert.Equal(t, []string{"a_one", "a_two", "b_one"},
			[]string{entries[0].Name, entries[1].Name, entries[2].Name})
		assert.Equal(t, "alpha", entries[0].Domain)
		assert.Equal(t, "beta", entries[2].Domain)
	})

	t.Run("duplicate name names both domains", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.Assemble(
			stubRegistry{name: "alpha", ops: []catalog.Operation{echoOp("clash", true)}},
			stubRegistry{name: "beta", ops: []catalog.Operation{echoOp("clash", true)}},
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, catalog.ErrDuplicateToolName)
		assert.Contains(t, err.Error(), "alpha")
		assert.Contains(t, err.Error(), "beta")
		assert.Contains(t, err.Error(), "clash")
	})

	t.Run("duplicate within one registry", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.Assemble(
			stubRegistry{name: "alpha", ops: []catalog.Operation{echoOp("clash", true), echoOp("clash", false)}},
		)
		assert.ErrorIs(t, err, catalog.ErrDuplicateToolName)
	})

	t.Run("get", func(t *testing.T) {
		t.Parallel()
		cat, err := catalog.Assemble(
			stubRegistry{name: "alpha", ops: []catalog.Operation{echoOp("a_one", true)}},
		)
		require.NoError(t, err)

		e, ok := cat.Get("a_one")
		require.True(t, ok)
		assert.Equal(t, "alpha", e.Domain)
		assert.True(t, e.ReadOnly)

		_, ok = cat.Get("missing")
		assert.False(t, ok)
	})
}

func TestFilterReadOnly(t *testing.T) {
	t.Parallel()

	cat, err := catalog.Assemble(
		stubRegistry{name: "alpha", ops: []catalog.Operation{
			echoOp("ro_one", true),
			echoOp("rw_one", false),
			echoOp("ro_two", true),
		}},
	)
	require.NoError(t, err)

	t.Run("disabled filter returns catalog unchanged", func(t *testing.T) {
		t.Parallel()
		assert.Same(t, cat, cat.FilterReadOnly(false))
	})

	t.Run("enabled filter keeps only read-only entries in order", func(t *testing.T) {
		t.Parallel()
		filtered := cat.FilterReadOnly(true)
		require.Equal(t, 2, filtered.Len())

		entries := filtered.Entries()
		assert.Equal(t, "ro_one", entries[0].Name)
		assert.Equal(t, "ro_two", entries[1].Name)

		_, ok := filtered.Get("rw_one")
		assert.False(t, ok, "mutating tool must not be reachable by name")
	})

	t.Run("filter is idempotent", func(t *testing.T) {
		t.Parallel()
		once := cat.FilterReadOnly(true)
		twice := once.FilterReadOnly(true)
		assert.Equal(t, once.Entries(), twice.Entries())
	})

	t.Run("receiver is not mutated", func(t *testing.T) {
		t.Parallel()
		_ = cat.FilterReadOnly(true)
		assert.Equal(t, 3, cat.Len())
		_, ok := cat.Get("rw_one")
		assert.True(t, ok)
	})
}

func TestBind(t *testing.T) {
	t.Parallel()

	cat, err := catalog.Assemble(
		stubRegistry{name: "alpha", ops: []catalog.Operation{echoOp("a_one", true)}},
	)
	require.NoError(t, err)

	t.Run("nil server", func(t *testing.T) {
		t.Parallel()
		err := cat.Bind(nil, &airflowtest.Stub{}, testLogger())
		assert.ErrorIs(t, err, catalog.ErrNilServer)
	})

	t.Run("nil api", func(t *testing.T) {
		t.Parallel()
		server := mcp.NewServer(&mcp.Implementation{Name: "t", Version: "0"}, nil)
		err := cat.Bind(server, nil, testLogger())
		assert.ErrorIs(t, err, catalog.ErrNilAPI)
	})

	t.Run("successful bind", func(t *testing.T) {
		t.Parallel()
		server := mcp.NewServer(&mcp.Implementation{Name: "t", Version: "0"}, nil)
		assert.NoError(t, cat.Bind(server, &airflowtest.Stub{}, testLogger()))
	})
}
