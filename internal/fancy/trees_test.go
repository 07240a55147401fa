package fancy_test

import (
	"testing"

	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/fancy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentTree(t *testing.T) {
	ct := fancy.NewComponentTree("catalog")
	require.NotNil(t, ct.Tree())

	ct.AddChild("first")
	ct.AddChild("second")

	out := ct.Render()
	assert.Contains(t, out, "catalog")
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
}

func TestDomainTree(t *testing.T) {
	ct := fancy.DomainTree("variable", 5)
	out := ct.Render()
	assert.Contains(t, out, "variable")
	assert.Contains(t, out, "5 tools")
}

func TestToolNode(t *testing.T) {
	t.Run("read-only tool carries badge", func(t *testing.T) {
		out := fancy.ToolNode("get_variable", "Get a variable by key.", true)
		assert.Contains(t, out, "get_variable")
		assert.Contains(t, out, "[ro]")
		assert.Contains(t, out, "Get a variable by key.")
	})

	t.Run("mutating tool has no badge", func(t *testing.T) {
		out := fancy.ToolNode("delete_variable", "", false)
		assert.Contains(t, out, "delete_variable")
		assert.NotContains(t, out, "[ro]")
	})

	t.Run("long descriptions are truncated", func(t *testing.T) {
		long := ""
		for range 20 {
			long += "describe "
		}
		out := fancy.ToolNode("list_dags", long, true)
		assert.Contains(t, out, "...")
	})
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", fancy.TruncateString("short", 10))
	assert.Equal(t, "exactly-10", fancy.TruncateString("exactly-10", 10))
	assert.Equal(t, "toolon...", fancy.TruncateString("toolongforus", 9))
}
