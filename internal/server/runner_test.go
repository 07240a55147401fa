package server

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/airflow/airflowtest"
	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/catalog"
	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/config"
	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/domains"
	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/server/finitestate"
	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.BaseURL = "http://localhost:8080"
	return cfg
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Assemble(domains.Registries(domains.All())...)
	require.NoError(t, err)
	return cat
}

func TestNewRunner(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cat := testCatalog(t)
	stub := &airflowtest.Stub{}

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		runner, err := NewRunner(cfg, cat, stub)
		require.NoError(t, err)
		assert.Equal(t, "server.Runner", runner.String())
		assert.Equal(t, finitestate.StatusNew, runner.GetState())
		assert.False(t, runner.IsRunning())
	})

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()
		_, err := NewRunner(nil, cat, stub)
		assert.ErrorIs(t, err, ErrNilConfig)
	})

	t.Run("nil catalog", func(t *testing.T) {
		t.Parallel()
		_, err := NewRunner(cfg, nil, stub)
		assert.ErrorIs(t, err, ErrNilCatalog)
	})

	t.Run("nil api", func(t *testing.T) {
		t.Parallel()
		_, err := NewRunner(cfg, cat, nil)
		assert.ErrorIs(t, err, ErrNilAPI)
	})
}

func TestRunnerHTTPLifecycle(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Transport = config.TransportHTTP
	cfg.ListenAddr = testutil.GetRandomListeningAddr(t)

	var logs testutil.ThreadSafeBuffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	runner, err := NewRunner(cfg, testCatalog(t), &airflowtest.Stub{},
		WithLogger(logger),
		WithServerInfo("airflow-mcp-test", "0.0.0"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- runner.Run(ctx)
	}()

	require.Eventually(t, runner.IsRunning, 5*time.Second, 10*time.Millisecond,
		"runner should reach the running state")

	runner.Stop()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not shut down")
	}

	assert.Equal(t, finitestate.StatusStopped, runner.GetState())
	assert.Contains(t, logs.String(), "Serving MCP on HTTP")
}

func TestRunnerParentContextCancellation(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Transport = config.TransportHTTP
	cfg.ListenAddr = testutil.GetRandomListeningAddr(t)

	parentCtx, parentCancel := context.WithCancel(context.Background())
	defer parentCancel()

	runner, err := NewRunner(cfg, testCatalog(t), &airflowtest.Stub{},
		WithContext(parentCtx))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		done <- runner.Run(context.Background())
	}()

	require.Eventually(t, runner.IsRunning, 5*time.Second, 10*time.Millisecond,
		"runner should reach the running state")

	// Canceling the parent context alone must stop the serve loop.
	parentCancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not shut down on parent context cancellation")
	}

	assert.Equal(t, finitestate.StatusStopped, runner.GetState())
}

func TestRunnerStateChan(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	runner, err := NewRunner(cfg, testCatalog(t), &airflowtest.Stub{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := runner.GetStateChan(ctx)
	select {
	case state := <-ch:
		assert.Equal(t, finitestate.StatusNew, state)
	case <-time.After(time.Second):
		t.Fatal("no initial state emitted")
	}
}
