package airflow

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("empty base URL", func(t *testing.T) {
		t.Parallel()
		_, err := New("")
		require.Error(t, err)
	})

	t.Run("bad scheme", func(t *testing.T) {
		t.Parallel()
		_, err := New("ftp://airflow")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "http or https")
	})

	t.Run("trailing slash is trimmed", func(t *testing.T) {
		t.Parallel()
		c, err := New("http://localhost:8080/")
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/dags/x/grid", c.UIURL("dags", "x", "grid"))
	})
}

func TestUIURL(t *testing.T) {
	t.Parallel()

	c, err := New("http://airflow.example.com")
	require.NoError(t, err)

	assert.Equal(t,
		"http://airflow.example.com/dags/etl_daily/grid",
		c.UIURL("dags", "etl_daily", "grid"))

	t.Run("segments are path-escaped", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t,
			"http://airflow.example.com/dags/a%2Fb",
			c.UIURL("dags", "a/b"))
	})
}

// newTestClient points a Client at an httptest server that records the last
// request and serves the given handler.
func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) (*Client, *http.Request) {
	t.Helper()
	var captured http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = *r.Clone(r.Context())
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, opts...)
	require.NoError(t, err)
	return c, &captured
}

func TestAuthHeaders(t *testing.T) {
	t.Parallel()

	ok := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"key":"k","value":"v"}`))
	}

	t.Run("basic auth", func(t *testing.T) {
		t.Parallel()
		c, captured := newTestClient(t, ok, WithBasicAuth("deploy", "hunter2"))
		_, err := c.GetVariable(context.Background(), "k")
		require.NoError(t, err)

		want := "Basic " + base64.StdEncoding.EncodeToString([]byte("deploy:hunter2"))
		assert.Equal(t, want, captured.Header.Get("Authorization"))
	})

	t.Run("bearer token wins over basic", func(t *testing.T) {
		t.Parallel()
		c, captured := newTestClient(t, ok,
			WithBasicAuth("deploy", "hunter2"),
			WithBearerToken("tok-123"))
		_, err := c.GetVariable(context.Background(), "k")
		require.NoError(t, err)
		assert.Equal(t, "Bearer tok-123", captured.Header.Get("Authorization"))
	})

	t.Run("no auth configured", func(t *testing.T) {
		t.Parallel()
		c, captured := newTestClient(t, ok)
		_, err := c.GetVariable(context.Background(), "k")
		require.NoError(t, err)
		assert.Empty(t, captured.Header.Get("Authorization"))
	})
}

func TestRequestShape(t *testing.T) {
	t.Parallel()

	t.Run("path includes api version", func(t *testing.T) {
		t.Parallel()
		c, captured := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"dags":[],"total_entries":0}`))
		}, WithAPIVersion("v2"))

		_, err := c.ListDAGs(context.Background(), ListDAGsParams{})
		require.NoError(t, err)
		assert.Equal(t, "/api/v2/dags", captured.URL.Path)
	})

	t.Run("list params become query parameters", func(t *testing.T) {
		t.Parallel()
		c, captured := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"dags":[],"total_entries":0}`))
		})

		_, err := c.ListDAGs(context.Background(), ListDAGsParams{
			ListParams: ListParams{Limit: 5, Offset: 10, OrderBy: "dag_id"},
		})
		require.NoError(t, err)

		q := captured.URL.Query()
		assert.Equal(t, "5", q.Get("limit"))
		assert.Equal(t, "10", q.Get("offset"))
		assert.Equal(t, "dag_id", q.Get("order_by"))
	})

	t.Run("path segments are escaped", func(t *testing.T) {
		t.Parallel()
		c, captured := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"key":"a/b","value":"v"}`))
		})

		_, err := c.GetVariable(context.Background(), "a/b")
		require.NoError(t, err)
		assert.Equal(t, "/api/v1/variables/a%2Fb", captured.URL.EscapedPath())
	})

	t.Run("mutations send a JSON body", func(t *testing.T) {
		t.Parallel()
		c, captured := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"dag_run_id":"r1","dag_id":"etl","state":"queued"}`))
		})

		_, err := c.TriggerDAGRun(context.Background(), "etl", TriggerDAGRunRequest{
			Conf: map[string]any{"backfill": true},
		})
		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, captured.Method)
		assert.Equal(t, "application/json", captured.Header.Get("Content-Type"))
	})
}

func TestErrorTaxonomy(t *testing.T) {
	t.Parallel()

	problem := func(status int, title, detail string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/problem+json")
			w.WriteHeader(status)
			_, _ = w.Write(fmt.Appendf(nil,
				`{"title":%q,"detail":%q,"status":%d}`, title, detail, status))
		}
	}

	tests := []struct {
		name      string
		status    int
		wantKind  ErrorKind
		retryable bool
	}{
		{name: "unauthorized", status: 401, wantKind: KindAuth},
		{name: "forbidden", status: 403, wantKind: KindAuth},
		{name: "not found", status: 404, wantKind: KindNotFound},
		{name: "conflict", status: 409, wantKind: KindConflict},
		{name: "unprocessable", status: 422, wantKind: KindValidation},
		{name: "rate limited", status: 429, wantKind: KindRateLimited, retryable: true},
		{name: "server error", status: 500, wantKind: KindServer, retryable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, _ := newTestClient(t, problem(tt.status, "Oops", "the detail"))

			_, err := c.GetVariable(context.Background(), "k")
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantKind, apiErr.Kind)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, "Oops", apiErr.Message)
			assert.Equal(t, "the detail", apiErr.Detail)
			assert.Equal(t, tt.retryable, apiErr.Retryable())
		})
	}

	t.Run("non-problem body falls back to status text", func(t *testing.T) {
		t.Parallel()
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("plain text"))
		})

		_, err := c.GetVariable(context.Background(), "k")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, KindNotFound, apiErr.Kind)
		assert.Equal(t, http.StatusText(http.StatusNotFound), apiErr.Message)
		assert.True(t, IsNotFound(err))
	})

	t.Run("timeout maps to timeout kind", func(t *testing.T) {
		t.Parallel()
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}, WithTimeout(20*time.Millisecond))

		_, err := c.GetVariable(context.Background(), "k")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, KindTimeout, apiErr.Kind)
		assert.True(t, apiErr.Retryable())
	})

	t.Run("connection refused maps to transport kind", func(t *testing.T) {
		t.Parallel()
		c, err := New("http://127.0.0.1:1")
		require.NoError(t, err)

		_, err = c.GetVariable(context.Background(), "k")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, KindTransport, apiErr.Kind)
	})
}

func TestTaskInstanceLogsArePlainText(t *testing.T) {
	t.Parallel()

	c, captured := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("line one\nline two\n"))
	})

	logs, err := c.GetTaskInstanceLogs(context.Background(), "etl", "r1", "extract", 2)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two\n", logs)
	assert.Contains(t, captured.URL.Path, "/dags/etl/dagRuns/r1/taskInstances/extract/logs/2")
	assert.Equal(t, "true", captured.URL.Query().Get("full_content"))
}

func TestDeleteReturnsNoBody(t *testing.T) {
	t.Parallel()

	c, captured := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeleteVariable(context.Background(), "k"))
	assert.Equal(t, http.MethodDelete, captured.Method)
}
