// Package airflow is the shared REST client for the Apache Airflow stable
// API. One *Client is constructed at startup and used concurrently by every
// tool invocation; it holds no per-call state beyond the http.Client pool.
package airflow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client implements API against a live Airflow webserver.
type Client struct {
	baseURL    *url.URL
	apiVersion string
	username   string
	password   string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// Interface guard
var _ API = (*Client)(nil)

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithBasicAuth sets HTTP basic authentication credentials.
func WithBasicAuth(username, password string) Option {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

// WithBearerToken sets a bearer token, used instead of basic auth.
func WithBearerToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithAPIVersion overrides the default "v1" API version path segment.
func WithAPIVersion(version string) Option {
	return func(c *Client) {
		c.apiVersion = version
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout on the underlying http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger used for request-level debug logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Client for the Airflow instance at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("airflow base URL is required")
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid airflow base URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("airflow base URL %q must use http or https", baseURL)
	}

	c := &Client{
		baseURL:    u,
		apiVersion: "v1",
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.Default().WithGroup("airflow.Client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// UIURL joins path segments onto the web-console base URL.
func (c *Client) UIURL(parts ...string) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/")
	for _, p := range parts {
		u.Path += "/" + url.PathEscape(p)
	}
	return u.String()
}

// errorBody is Airflow's RFC 7807 problem document.
type errorBody struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Type   string `json:"type"`
}

// do performs one API round trip. A nil out skips response decoding.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/api/" + c.apiVersion + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &APIError{Kind: KindValidation, Message: fmt.Sprintf("encoding request body: %v", err)}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return &APIError{Kind: KindTransport, Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	switch {
	case c.token != "":
		req.Header.Set("Authorization", "Bearer "+c.token)
	case c.username != "":
		req.SetBasicAuth(c.username, c.password)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return &APIError{Kind: KindTimeout, Message: err.Error()}
		}
		return &APIError{Kind: KindTransport, Message: err.Error()}
	}
	defer resp.Body.Close() //nolint:errcheck

	c.logger.Debug("airflow API call",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Kind: KindTransport, Message: fmt.Sprintf("decoding response: %v", err)}
	}
	return nil
}

// text performs a round trip returning the raw response body, for endpoints
// that serve plain text (task logs).
func (c *Client) text(ctx context.Context, path string, query url.Values) (string, error) {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + "/api/" + c.apiVersion + path
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", &APIError{Kind: KindTransport, Message: err.Error()}
	}
	req.Header.Set("Accept", "text/plain")
	switch {
	case c.token != "":
		req.Header.Set("Authorization", "Bearer "+c.token)
	case c.username != "":
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return "", &APIError{Kind: KindTimeout, Message: err.Error()}
		}
		return "", &APIError{Kind: KindTransport, Message: err.Error()}
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", c.decodeError(resp)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &APIError{Kind: KindTransport, Message: fmt.Sprintf("reading response: %v", err)}
	}
	return string(data), nil
}

func (c *Client) decodeError(resp *http.Response) error {
	apiErr := &APIError{
		Kind:       kindForStatus(resp.StatusCode),
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
	var problem errorBody
	if err := json.NewDecoder(resp.Body).Decode(&problem); err == nil {
		if problem.Title != "" {
			apiErr.Message = problem.Title
		}
		apiErr.Detail = problem.Detail
	}
	return apiErr
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

// DAG operations.

func (c *Client) ListDAGs(ctx context.Context, p ListDAGsParams) (*DAGCollection, error) {
	var out DAGCollection
	if err := c.do(ctx, http.MethodGet, "/dags", p.query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetDAG(ctx context.Context, dagID string) (*DAG, error) {
	var out DAG
	if err := c.do(ctx, http.MethodGet, "/dags/"+url.PathEscape(dagID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetDAGDetails(ctx context.Context, dagID string) (*DAGDetail, error) {
	var out DAGDetail
	if err := c.do(ctx, http.MethodGet, "/dags/"+url.PathEscape(dagID)+"/details", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetDAGSource(ctx context.Context, fileToken string) (*DAGSource, error) {
	var out DAGSource
	if err := c.do(ctx, http.MethodGet, "/dagSources/"+url.PathEscape(fileToken), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListDAGTasks(ctx context.Context, dagID string) (*TaskCollection, error) {
	var out TaskCollection
	if err := c.do(ctx, http.MethodGet, "/dags/"+url.PathEscape(dagID)+"/tasks", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SetDAGPaused(ctx context.Context, dagID string, paused bool) (*DAG, error) {
	body := map[string]bool{"is_paused": paused}
	query := url.Values{"update_mask": []string{"is_paused"}}
	var out DAG
	if err := c.do(ctx, http.MethodPatch, "/dags/"+url.PathEscape(dagID), query, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteDAG(ctx context.Context, dagID string) error {
	return c.do(ctx, http.MethodDelete, "/dags/"+url.PathEscape(dagID), nil, nil, nil)
}

// DAG run operations.

func (c *Client) TriggerDAGRun(ctx context.Context, dagID string, req TriggerDAGRunRequest) (*DAGRun, error) {
	var out DAGRun
	if err := c.do(ctx, http.MethodPost, "/dags/"+url.PathEscape(dagID)+"/dagRuns", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListDAGRuns(ctx context.Context, dagID string, p ListDAGRunsParams) (*DAGRunCollection, error) {
	var out DAGRunCollection
	if err := c.do(ctx, http.MethodGet, "/dags/"+url.PathEscape(dagID)+"/dagRuns", p.query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetDAGRun(ctx context.Context, dagID, runID string) (*DAGRun, error) {
	var out DAGRun
	path := "/dags/" + url.PathEscape(dagID) + "/dagRuns/" + url.PathEscape(runID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateDAGRunState(ctx context.Context, dagID, runID, state string) (*DAGRun, error) {
	var out DAGRun
	path := "/dags/" + url.PathEscape(dagID) + "/dagRuns/" + url.PathEscape(runID)
	if err := c.do(ctx, http.MethodPatch, path, nil, map[string]string{"state": state}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ClearDAGRun(ctx context.Context, dagID, runID string, dryRun bool) (*DAGRunCollection, error) {
	var out DAGRunCollection
	path := "/dags/" + url.PathEscape(dagID) + "/dagRuns/" + url.PathEscape(runID) + "/clear"
	if err := c.do(ctx, http.MethodPost, path, nil, map[string]bool{"dry_run": dryRun}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteDAGRun(ctx context.Context, dagID, runID string) error {
	path := "/dags/" + url.PathEscape(dagID) + "/dagRuns/" + url.PathEscape(runID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Task instance operations.

func (c *Client) ListTaskInstances(ctx context.Context, dagID, runID string, p ListTaskInstancesParams) (*TaskInstanceCollection, error) {
	var out TaskInstanceCollection
	path := "/dags/" + url.PathEscape(dagID) + "/dagRuns/" + url.PathEscape(runID) + "/taskInstances"
	if err := c.do(ctx, http.MethodGet, path, p.query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetTaskInstance(ctx context.Context, dagID, runID, taskID string) (*TaskInstance, error) {
	var out TaskInstance
	path := "/dags/" + url.PathEscape(dagID) + "/dagRuns/" + url.PathEscape(runID) +
		"/taskInstances/" + url.PathEscape(taskID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetTaskInstanceLogs(ctx context.Context, dagID, runID, taskID string, tryNumber int) (string, error) {
	path := "/dags/" + url.PathEscape(dagID) + "/dagRuns/" + url.PathEscape(runID) +
		"/taskInstances/" + url.PathEscape(taskID) + "/logs/" + strconv.Itoa(tryNumber)
	return c.text(ctx, path, url.Values{"full_content": []string{"true"}})
}

func (c *Client) UpdateTaskInstanceState(ctx context.Context, dagID, runID, taskID, state string) (*TaskInstance, error) {
	var out TaskInstance
	path := "/dags/" + url.PathEscape(dagID) + "/dagRuns/" + url.PathEscape(runID) +
		"/taskInstances/" + url.PathEscape(taskID)
	body := map[string]any{"new_state": state, "dry_run": false}
	if err := c.do(ctx, http.MethodPatch, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Variable operations.

func (c *Client) ListVariables(ctx context.Context, p ListParams) (*VariableCollection, error) {
	var out VariableCollection
	if err := c.do(ctx, http.MethodGet, "/variables", p.query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetVariable(ctx context.Context, key string) (*Variable, error) {
	var out Variable
	if err := c.do(ctx, http.MethodGet, "/variables/"+url.PathEscape(key), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateVariable(ctx context.Context, v Variable) (*Variable, error) {
	var out Variable
	if err := c.do(ctx, http.MethodPost, "/variables", nil, v, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateVariable(ctx context.Context, v Variable) (*Variable, error) {
	var out Variable
	if err := c.do(ctx, http.MethodPatch, "/variables/"+url.PathEscape(v.Key), nil, v, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteVariable(ctx context.Context, key string) error {
	return c.do(ctx, http.MethodDelete, "/variables/"+url.PathEscape(key), nil, nil, nil)
}

// Connection operations.

func (c *Client) ListConnections(ctx context.Context, p ListParams) (*ConnectionCollection, error) {
	var out ConnectionCollection
	if err := c.do(ctx, http.MethodGet, "/connections", p.query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetConnection(ctx context.Context, connectionID string) (*Connection, error) {
	var out Connection
	if err := c.do(ctx, http.MethodGet, "/connections/"+url.PathEscape(connectionID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateConnection(ctx context.Context, conn Connection) (*Connection, error) {
	var out Connection
	if err := c.do(ctx, http.MethodPost, "/connections", nil, conn, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateConnection(ctx context.Context, conn Connection) (*Connection, error) {
	var out Connection
	if err := c.do(ctx, http.MethodPatch, "/connections/"+url.PathEscape(conn.ConnectionID), nil, conn, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteConnection(ctx context.Context, connectionID string) error {
	return c.do(ctx, http.MethodDelete, "/connections/"+url.PathEscape(connectionID), nil, nil, nil)
}

func (c *Client) TestConnection(ctx context.Context, conn Connection) (*ConnectionTest, error) {
	var out ConnectionTest
	if err := c.do(ctx, http.MethodPost, "/connections/test", nil, conn, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Pool operations.

func (c *Client) ListPools(ctx context.Context, p ListParams) (*PoolCollection, error) {
	var out PoolCollection
	if err := c.do(ctx, http.MethodGet, "/pools", p.query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetPool(ctx context.Context, name string) (*Pool, error) {
	var out Pool
	if err := c.do(ctx, http.MethodGet, "/pools/"+url.PathEscape(name), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreatePool(ctx context.Context, pool Pool) (*Pool, error) {
	var out Pool
	if err := c.do(ctx, http.MethodPost, "/pools", nil, pool, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePool(ctx context.Context, pool Pool) (*Pool, error) {
	var out Pool
	if err := c.do(ctx, http.MethodPatch, "/pools/"+url.PathEscape(pool.Name), nil, pool, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePool(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, "/pools/"+url.PathEscape(name), nil, nil, nil)
}

// XCom operations.

func (c *Client) ListXComEntries(ctx context.Context, dagID, runID, taskID string, p ListParams) (*XComCollection, error) {
	var out XComCollection
	path := "/dags/" + url.PathEscape(dagID) + "/dagRuns/" + url.PathEscape(runID) +
		"/taskInstances/" + url.PathEscape(taskID) + "/xcomEntries"
	if err := c.do(ctx, http.MethodGet, path, p.query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetXComEntry(ctx context.Context, dagID, runID, taskID, key string) (*XComEntry, error) {
	var out XComEntry
	path := "/dags/" + url.PathEscape(dagID) + "/dagRuns/" + url.PathEscape(runID) +
		"/taskInstances/" + url.PathEscape(taskID) + "/xcomEntries/" + url.PathEscape(key)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Dataset operations.

func (c *Client) ListDatasets(ctx context.Context, p ListParams) (*DatasetCollection, error) {
	var out DatasetCollection
	if err := c.do(ctx, http.MethodGet, "/datasets", p.query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetDataset(ctx context.Context, uri string) (*Dataset, error) {
	var out Dataset
	if err := c.do(ctx, http.MethodGet, "/datasets/"+url.PathEscape(uri), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListDatasetEvents(ctx context.Context, p ListDatasetEventsParams) (*DatasetEventCollection, error) {
	var out DatasetEventCollection
	if err := c.do(ctx, http.MethodGet, "/datasets/events", p.query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Monitoring and instance metadata.

func (c *Client) GetHealth(ctx context.Context) (*HealthInfo, error) {
	var out HealthInfo
	if err := c.do(ctx, http.MethodGet, "/health", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetVersion(ctx context.Context) (*VersionInfo, error) {
	var out VersionInfo
	if err := c.do(ctx, http.MethodGet, "/version", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetConfig(ctx context.Context) (*AirflowConfig, error) {
	var out AirflowConfig
	if err := c.do(ctx, http.MethodGet, "/config", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListPlugins(ctx context.Context, p ListParams) (*PluginCollection, error) {
	var out PluginCollection
	if err := c.do(ctx, http.MethodGet, "/plugins", p.query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListProviders(ctx context.Context) (*ProviderCollection, error) {
	var out ProviderCollection
	if err := c.do(ctx, http.MethodGet, "/providers", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListImportErrors(ctx context.Context, p ListParams) (*ImportErrorCollection, error) {
	var out ImportErrorCollection
	if err := c.do(ctx, http.MethodGet, "/importErrors", p.query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetImportError(ctx context.Context, importErrorID int) (*ImportError, error) {
	var out ImportError
	if err := c.do(ctx, http.MethodGet, "/importErrors/"+strconv.Itoa(importErrorID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListEventLogs(ctx context.Context, p ListEventLogsParams) (*EventLogCollection, error) {
	var out EventLogCollection
	if err := c.do(ctx, http.MethodGet, "/eventLogs", p.query(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetEventLog(ctx context.Context, eventLogID int) (*EventLog, error) {
	var out EventLog
	if err := c.do(ctx, http.MethodGet, "/eventLogs/"+strconv.Itoa(eventLogID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
