package domains_test

import (
	"testing"

	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/catalog"
	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/domains"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	t.Parallel()

	names := domains.Names()
	assert.Equal(t, []string{
		"dag", "dagrun", "taskinstance", "variable", "connection", "pool",
		"xcom", "dataset", "monitor", "config", "plugin", "provider",
		"importerror", "eventlog",
	}, names)
}

func TestAllAssembles(t *testing.T) {
	t.Parallel()

	// The full canonical catalog must be collision-free.
	cat, err := catalog.Assemble(domains.Registries(domains.All())...)
	require.NoError(t, err)
	assert.Greater(t, cat.Len(), 40)
}

func TestEnabled(t *testing.T) {
	t.Parallel()

	t.Run("empty selection means all", func(t *testing.T) {
		t.Parallel()
		enabled, err := domains.Enabled(nil)
		require.NoError(t, err)
		assert.Len(t, enabled, len(domains.Names()))
	})

	t.Run("selection order is preserved", func(t *testing.T) {
		t.Parallel()
		enabled, err := domains.Enabled([]string{"variable", "dag"})
		require.NoError(t, err)
		require.Len(t, enabled, 2)
		assert.Equal(t, "variable", enabled[0].Name())
		assert.Equal(t, "dag", enabled[1].Name())
	})

	t.Run("unknown domain lists known names", func(t *testing.T) {
		t.Parallel()
		_, err := domains.Enabled([]string{"warehouse"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domains.ErrUnknownDomain)
		assert.Contains(t, err.Error(), "warehouse")
		assert.Contains(t, err.Error(), "dagrun")
	})

	t.Run("duplicate domain", func(t *testing.T) {
		t.Parallel()
		_, err := domains.Enabled([]string{"dag", "dag"})
		assert.ErrorIs(t, err, domains.ErrDuplicateDomain)
	})
}

func TestReadOnlyFlags(t *testing.T) {
	t.Parallel()

	cat, err := catalog.Assemble(domains.Registries(domains.All())...)
	require.NoError(t, err)

	mutating := map[string]bool{
		"pause_dag": true, "unpause_dag": true, "delete_dag": true,
		"trigger_dag_run": true, "update_dag_run_state": true,
		"clear_dag_run": true, "delete_dag_run": true,
		"update_task_instance_state": true,
		"create_variable":            true, "update_variable": true, "delete_variable": true,
		"create_connection": true, "update_connection": true,
		"delete_connection": true, "test_connection": true,
		"create_pool": true, "update_pool": true, "delete_pool": true,
	}

	for _, e := range cat.Entries() {
		assert.Equal(t, !mutating[e.Name], e.ReadOnly,
			"read-only flag for %s", e.Name)
	}
}

func TestOperationsArePure(t *testing.T) {
	t.Parallel()

	for _, d := range domains.All() {
		first := d.Operations()
		second := d.Operations()
		require.Equal(t, len(first), len(second))
		for i := range first {
			assert.Equal(t, first[i].Name, second[i].Name)
		}
	}
}

func TestDescriptionsEndWithPeriod(t *testing.T) {
	t.Parallel()

	for _, d := range domains.All() {
		for _, op := range d.Operations() {
			require.NotEmpty(t, op.Description, "description for %s", op.Name)
			assert.Equal(t, byte('.'), op.Description[len(op.Description)-1],
				"description for %s should be a sentence", op.Name)
		}
	}
}
