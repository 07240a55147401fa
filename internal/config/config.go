// Package config resolves the process configuration for the Airflow MCP
// server. Precedence is CLI flags > environment > TOML config file >
// defaults; the rest of the program only ever sees the resolved Config,
// never the raw environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/domains"
	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/interpolation"
	"github.com/pelletier/go-toml/v2"
)

// Transport selection for the MCP server.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

const defaultRequestTimeout = "30s"

// Config is the resolved process configuration. Read-only after startup.
type Config struct {
	// BaseURL is the Airflow webserver root, for example
	// http://localhost:8080. String fields support ${VAR} references
	// expanded from the environment at load time.
	BaseURL string `toml:"base_url" env_interpolation:"yes"`

	// Username and Password configure HTTP basic auth.
	Username string `toml:"username" env_interpolation:"yes"`
	Password string `toml:"password" env_interpolation:"yes"`

	// APIToken configures bearer-token auth, mutually exclusive with
	// Username/Password.
	APIToken string `toml:"api_token" env_interpolation:"yes"`

	// APIVersion is the REST API version path segment, default v1.
	APIVersion string `toml:"api_version"`

	// Domains selects which API domains to expose. Empty means all.
	Domains []string `toml:"domains"`

	// ReadOnly restricts the catalog to non-mutating tools.
	ReadOnly bool `toml:"read_only"`

	// Transport is the MCP transport, stdio or http.
	Transport string `toml:"transport"`

	// ListenAddr is the bind address for the http transport.
	ListenAddr string `toml:"listen_addr"`

	// RequestTimeout is the per-REST-call timeout as a duration string.
	RequestTimeout string `toml:"request_timeout"`

	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	return &Config{
		APIVersion:     "v1",
		Transport:      TransportStdio,
		RequestTimeout: defaultRequestTimeout,
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// Load reads a TOML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := interpolation.InterpolateStruct(cfg); err != nil {
		return nil, fmt.Errorf("interpolating config file %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overlays AIRFLOW_* environment variables onto the config. The
// lookup parameter exists for tests; pass os.LookupEnv in production.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("AIRFLOW_BASE_URL"); ok {
		c.BaseURL = v
	}
	if v, ok := lookup("AIRFLOW_USERNAME"); ok {
		c.Username = v
	}
	if v, ok := lookup("AIRFLOW_PASSWORD"); ok {
		c.Password = v
	}
	if v, ok := lookup("AIRFLOW_API_TOKEN"); ok {
		c.APIToken = v
	}
	if v, ok := lookup("AIRFLOW_API_VERSION"); ok {
		c.APIVersion = v
	}
	if v, ok := lookup("AIRFLOW_DOMAINS"); ok {
		c.Domains = splitList(v)
	}
	if v, ok := lookup("AIRFLOW_READ_ONLY"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.ReadOnly = b
		}
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Timeout returns the parsed request timeout. Call Validate first.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil {
		d, _ = time.ParseDuration(defaultRequestTimeout)
	}
	return d
}

// Validate checks the resolved configuration, accumulating every problem.
func (c *Config) Validate() error {
	var errs []error

	if c.BaseURL == "" {
		errs = append(errs, ErrMissingBaseURL)
	} else if u, err := url.Parse(c.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.BaseURL))
	}

	if c.APIToken != "" && (c.Username != "" || c.Password != "") {
		errs = append(errs, ErrConflictingAuth)
	}
	if c.Username != "" && c.Password == "" {
		errs = append(errs, ErrMissingPassword)
	}

	switch c.Transport {
	case TransportStdio:
	case TransportHTTP:
		if c.ListenAddr == "" {
			errs = append(errs, ErrMissingListenAddr)
		}
	default:
		errs = append(errs, fmt.Errorf("%w: got %q", ErrInvalidTransport, c.Transport))
	}

	if _, err := time.ParseDuration(c.RequestTimeout); err != nil {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidTimeout, c.RequestTimeout))
	}

	if _, err := domains.Enabled(c.Domains); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidDomains, err))
	}

	return errors.Join(errs...)
}
