package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/domains"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, "v1", cfg.APIVersion)
	assert.Equal(t, TransportStdio, cfg.Transport)
	assert.Equal(t, "30s", cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.Domains)
	assert.False(t, cfg.ReadOnly)
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
	})

	t.Run("invalid toml", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("base_url = [broken"), 0o644))
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("env references in file values expand", func(t *testing.T) {
		t.Setenv("AIRFLOW_TEST_SECRET", "hunter2")
		path := filepath.Join(t.TempDir(), "cfg.toml")
		content := `
base_url = "http://${AIRFLOW_TEST_MISSING_HOST:localhost}:8080"
username = "deploy"
password = "${AIRFLOW_TEST_SECRET}"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
		assert.Equal(t, "hunter2", cfg.Password)
	})

	t.Run("missing env reference fails the load", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "cfg.toml")
		content := `password = "${AIRFLOW_TEST_NO_SUCH_VAR}"`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "AIRFLOW_TEST_NO_SUCH_VAR")
	})

	t.Run("file values override defaults", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "cfg.toml")
		content := `
base_url = "https://airflow.example.com"
username = "deploy"
password = "hunter2"
domains = ["dag", "variable"]
read_only = true
transport = "http"
listen_addr = ":8765"
request_timeout = "10s"
log_level = "debug"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "https://airflow.example.com", cfg.BaseURL)
		assert.Equal(t, "deploy", cfg.Username)
		assert.Equal(t, []string{"dag", "variable"}, cfg.Domains)
		assert.True(t, cfg.ReadOnly)
		assert.Equal(t, TransportHTTP, cfg.Transport)
		assert.Equal(t, ":8765", cfg.ListenAddr)
		assert.Equal(t, "10s", cfg.RequestTimeout)
		assert.Equal(t, "debug", cfg.LogLevel)
		// Untouched keys keep their defaults.
		assert.Equal(t, "v1", cfg.APIVersion)
	})
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"AIRFLOW_BASE_URL":  "http://env.example.com",
		"AIRFLOW_API_TOKEN": "tok-123",
		"AIRFLOW_DOMAINS":   "dag, dagrun ,variable",
		"AIRFLOW_READ_ONLY": "true",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := Default()
	cfg.BaseURL = "http://file.example.com"
	cfg.ApplyEnv(lookup)

	assert.Equal(t, "http://env.example.com", cfg.BaseURL, "env overrides file")
	assert.Equal(t, "tok-123", cfg.APIToken)
	assert.Equal(t, []string{"dag", "dagrun", "variable"}, cfg.Domains)
	assert.True(t, cfg.ReadOnly)
	assert.Empty(t, cfg.Username, "unset variables leave values alone")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		cfg := Default()
		cfg.BaseURL = "http://localhost:8080"
		return cfg
	}

	t.Run("valid minimal config", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, valid().Validate())
	})

	t.Run("missing base url", func(t *testing.T) {
		t.Parallel()
		cfg := Default()
		err := cfg.Validate()
		assert.ErrorIs(t, err, ErrMissingBaseURL)
	})

	t.Run("bad base url scheme", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.BaseURL = "ftp://airflow"
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidBaseURL)
	})

	t.Run("conflicting auth", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.Username = "deploy"
		cfg.Password = "hunter2"
		cfg.APIToken = "tok"
		assert.ErrorIs(t, cfg.Validate(), ErrConflictingAuth)
	})

	t.Run("username without password", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.Username = "deploy"
		assert.ErrorIs(t, cfg.Validate(), ErrMissingPassword)
	})

	t.Run("unknown transport", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.Transport = "carrier-pigeon"
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidTransport)
	})

	t.Run("http transport needs listen addr", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.Transport = TransportHTTP
		assert.ErrorIs(t, cfg.Validate(), ErrMissingListenAddr)

		cfg.ListenAddr = ":8765"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("bad timeout", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.RequestTimeout = "soon"
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidTimeout)
	})

	t.Run("unknown domain", func(t *testing.T) {
		t.Parallel()
		cfg := valid()
		cfg.Domains = []string{"dag", "warehouse"}
		err := cfg.Validate()
		assert.ErrorIs(t, err, ErrInvalidDomains)
		assert.ErrorIs(t, err, domains.ErrUnknownDomain)
	})

	t.Run("multiple failures accumulate", func(t *testing.T) {
		t.Parallel()
		cfg := Default()
		cfg.Transport = "smoke-signal"
		cfg.RequestTimeout = "whenever"
		err := cfg.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingBaseURL)
		assert.ErrorIs(t, err, ErrInvalidTransport)
		assert.ErrorIs(t, err, ErrInvalidTimeout)
	})
}

func TestTimeout(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, 30*time.Second, cfg.Timeout())

	cfg.RequestTimeout = "5s"
	assert.Equal(t, 5*time.Second, cfg.Timeout())

	cfg.RequestTimeout = "garbage"
	assert.Equal(t, 30*time.Second, cfg.Timeout(), "unparseable falls back to default")
}

func TestErrorsJoinIsInspectable(t *testing.T) {
	t.Parallel()

	cfg := Default()
	err := cfg.Validate()
	var joined interface{ Unwrap() []error }
	require.ErrorAs(t, err, &joined)
	assert.NotEmpty(t, joined.Unwrap())
}
