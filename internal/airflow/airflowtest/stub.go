// Package airflowtest provides a recording fake for the airflow.API
// interface. Tests set only the function fields they need; every call is
// appended to Calls so tests can assert that the backing system was (or was
// not) reached.
package airflowtest

import (
	"context"
	"errors"
	"sync"

	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/airflow"
)

// ErrNotStubbed is returned by any Stub method without a configured func.
var ErrNotStubbed = errors.New("airflowtest: method not stubbed")

// Stub implements airflow.API with per-method function fields.
type Stub struct {
	mu    sync.Mutex
	calls []string

	BaseUIURL string

	ListDAGsFunc                func(ctx context.Context, p airflow.ListDAGsParams) (*airflow.DAGCollection, error)
	GetDAGFunc                  func(ctx context.Context, dagID string) (*airflow.DAG, error)
	GetDAGDetailsFunc           func(ctx context.Context, dagID string) (*airflow.DAGDetail, error)
	GetDAGSourceFunc            func(ctx context.Context, fileToken string) (*airflow.DAGSource, error)
	ListDAGTasksFunc            func(ctx context.Context, dagID string) (*airflow.TaskCollection, error)
	SetDAGPausedFunc            func(ctx context.Context, dagID string, paused bool) (*airflow.DAG, error)
	DeleteDAGFunc               func(ctx context.Context, dagID string) error
	TriggerDAGRunFunc           func(ctx context.Context, dagID string, req airflow.TriggerDAGRunRequest) (*airflow.DAGRun, error)
	ListDAGRunsFunc             func(ctx context.Context, dagID string, p airflow.ListDAGRunsParams) (*airflow.DAGRunCollection, error)
	GetDAGRunFunc               func(ctx context.Context, dagID, runID string) (*airflow.DAGRun, error)
	UpdateDAGRunStateFunc       func(ctx context.Context, dagID, runID, state string) (*airflow.DAGRun, error)
	ClearDAGRunFunc             func(ctx context.Context, dagID, runID string, dryRun bool) (*airflow.DAGRunCollection, error)
	DeleteDAGRunFunc            func(ctx context.Context, dagID, runID string) error
	ListTaskInstancesFunc       func(ctx context.Context, dagID, runID string, p airflow.ListTaskInstancesParams) (*airflow.TaskInstanceCollection, error)
	GetTaskInstanceFunc         func(ctx context.Context, dagID, runID, taskID string) (*airflow.TaskInstance, error)
	GetTaskInstanceLogsFunc     func(ctx context.Context, dagID, runID, taskID string, tryNumber int) (string, error)
	UpdateTaskInstanceStateFunc func(ctx context.Context, dagID, runID, taskID, state string) (*airflow.TaskInstance, error)
	ListVariablesFunc           func(ctx context.Context, p airflow.ListParams) (*airflow.VariableCollection, error)
	GetVariableFunc             func(ctx context.Context, key string) (*airflow.Variable, error)
	CreateVariableFunc          func(ctx context.Context, v airflow.Variable) (*airflow.Variable, error)
	UpdateVariableFunc          func(ctx context.Context, v airflow.Variable) (*airflow.Variable, error)
	DeleteVariableFunc          func(ctx context.Context, key string) error
	ListConnectionsFunc         func(ctx context.Context, p airflow.ListParams) (*airflow.ConnectionCollection, error)
	GetConnectionFunc           func(ctx context.Context, connectionID string) (*airflow.Connection, error)
	CreateConnectionFunc        func(ctx context.Context, c airflow.Connection) (*airflow.Connection, error)
	UpdateConnectionFunc        func(ctx context.Context, c airflow.Connection) (*airflow.Connection, error)
	DeleteConnectionFunc        func(ctx context.Context, connectionID string) error
	TestConnectionFunc          func(ctx context.Context, c airflow.Connection) (*airflow.ConnectionTest, error)
	ListPoolsFunc               func(ctx context.Context, p airflow.ListParams) (*airflow.PoolCollection, error)
	GetPoolFunc                 func(ctx context.Context, name string) (*airflow.Pool, error)
	CreatePoolFunc              func(ctx context.Context, pool airflow.Pool) (*airflow.Pool, error)
	UpdatePoolFunc              func(ctx context.Context, pool airflow.Pool) (*airflow.Pool, error)
	DeletePoolFunc              func(ctx context.Context, name string) error
	ListXComEntriesFunc         func(ctx context.Context, dagID, runID, taskID string, p airflow.ListParams) (*airflow.XComCollection, error)
	GetXComEntryFunc            func(ctx context.Context, dagID, runID, taskID, key string) (*airflow.XComEntry, error)
	ListDatasetsFunc            func(ctx context.Context, p airflow.ListParams) (*airflow.DatasetCollection, error)
	GetDatasetFunc              func(ctx context.Context, uri string) (*airflow.Dataset, error)
	ListDatasetEventsFunc       func(ctx context.Context, p airflow.ListDatasetEventsParams) (*airflow.DatasetEventCollection, error)
	GetHealthFunc               func(ctx context.Context) (*airflow.HealthInfo, error)
	GetVersionFunc              func(ctx context.Context) (*airflow.VersionInfo, error)
	GetConfigFunc               func(ctx context.Context) (*airflow.AirflowConfig, error)
	ListPluginsFunc             func(ctx context.Context, p airflow.ListParams) (*airflow.PluginCollection, error)
	ListProvidersFunc           func(ctx context.Context) (*airflow.ProviderCollection, error)
	ListImportErrorsFunc        func(ctx context.Context, p airflow.ListParams) (*airflow.ImportErrorCollection, error)
	GetImportErrorFunc          func(ctx context.Context, importErrorID int) (*airflow.ImportError, error)
	ListEventLogsFunc           func(ctx context.Context, p airflow.ListEventLogsParams) (*airflow.EventLogCollection, error)
	GetEventLogFunc             func(ctx context.Context, eventLogID int) (*airflow.EventLog, error)
}

// Interface guard
var _ airflow.API = (*Stub)(nil)

// Calls returns the method names invoked so far, in order.
func (s *Stub) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallCount returns the number of API calls recorded.
func (s *Stub) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *Stub) record(name string) {
	s.mu.Lock()
	s.calls = append(s.calls, name)
	s.mu.Unlock()
}

func (s *Stub) UIURL(parts ...string) string {
	base := s.BaseUIURL
	if base == "" {
		base = "http://airflow.test"
	}
	for _, p := range parts {
		base += "/" + p
	}
	return base
}

func (s *Stub) ListDAGs(ctx context.Context, p airflow.ListDAGsParams) (*airflow.DAGCollection, error) {
	s.record("ListDAGs")
	if s.ListDAGsFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.ListDAGsFunc(ctx, p)
}

func (s *Stub) GetDAG(ctx context.Context, dagID string) (*airflow.DAG, error) {
	s.record("GetDAG")
	if s.GetDAGFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.GetDAGFunc(ctx, dagID)
}

func (s *Stub) GetDAGDetails(ctx context.Context, dagID string) (*airflow.DAGDetail, error) {
	s.record("GetDAGDetails")
	if s.GetDAGDetailsFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.GetDAGDetailsFunc(ctx, dagID)
}

func (s *Stub) GetDAGSource(ctx context.Context, fileToken string) (*airflow.DAGSource, error) {
	s.record("GetDAGSource")
	if s.GetDAGSourceFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.GetDAGSourceFunc(ctx, fileToken)
}

func (s *Stub) ListDAGTasks(ctx context.Context, dagID string) (*airflow.TaskCollection, error) {
	s.record("ListDAGTasks")
	if s.ListDAGTasksFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.ListDAGTasksFunc(ctx, dagID)
}

func (s *Stub) SetDAGPaused(ctx context.Context, dagID string, paused bool) (*airflow.DAG, error) {
	s.record("SetDAGPaused")
	if s.SetDAGPausedFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.SetDAGPausedFunc(ctx, dagID, paused)
}

func (s *Stub) DeleteDAG(ctx context.Context, dagID string) error {
	s.record("DeleteDAG")
	if s.DeleteDAGFunc == nil {
		return ErrNotStubbed
	}
	return s.DeleteDAGFunc(ctx, dagID)
}

func (s *Stub) TriggerDAGRun(ctx context.Context, dagID string, req airflow.TriggerDAGRunRequest) (*airflow.DAGRun, error) {
	s.record("TriggerDAGRun")
	if s.TriggerDAGRunFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.TriggerDAGRunFunc(ctx, dagID, req)
}

func (s *Stub) ListDAGRuns(ctx context.Context, dagID string, p airflow.ListDAGRunsParams) (*airflow.DAGRunCollection, error) {
	s.record("ListDAGRuns")
	if s.ListDAGRunsFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.ListDAGRunsFunc(ctx, dagID, p)
}

func (s *Stub) GetDAGRun(ctx context.Context, dagID, runID string) (*airflow.DAGRun, error) {
	s.record("GetDAGRun")
	if s.GetDAGRunFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.GetDAGRunFunc(ctx, dagID, runID)
}

func (s *Stub) UpdateDAGRunState(ctx context.Context, dagID, runID, state string) (*airflow.DAGRun, error) {
	s.record("UpdateDAGRunState")
	if s.UpdateDAGRunStateFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.UpdateDAGRunStateFunc(ctx, dagID, runID, state)
}

func (s *Stub) ClearDAGRun(ctx context.Context, dagID, runID string, dryRun bool) (*airflow.DAGRunCollection, error) {
	s.record("ClearDAGRun")
	if s.ClearDAGRunFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.ClearDAGRunFunc(ctx, dagID, runID, dryRun)
}

func (s *Stub) DeleteDAGRun(ctx context.Context, dagID, runID string) error {
	s.record("DeleteDAGRun")
	if s.DeleteDAGRunFunc == nil {
		return ErrNotStubbed
	}
	return s.DeleteDAGRunFunc(ctx, dagID, runID)
}

func (s *Stub) ListTaskInstances(ctx context.Context, dagID, runID string, p airflow.ListTaskInstancesParams) (*airflow.TaskInstanceCollection, error) {
	s.record("ListTaskInstances")
	if s.ListTaskInstancesFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.ListTaskInstancesFunc(ctx, dagID, runID, p)
}

func (s *Stub) GetTaskInstance(ctx context.Context, dagID, runID, taskID string) (*airflow.TaskInstance, error) {
	s.record("GetTaskInstance")
	if s.GetTaskInstanceFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.GetTaskInstanceFunc(ctx, dagID, runID, taskID)
}

func (s *Stub) GetTaskInstanceLogs(ctx context.Context, dagID, runID, taskID string, tryNumber int) (string, error) {
	s.record("GetTaskInstanceLogs")
	if s.GetTaskInstanceLogsFunc == nil {
		return "", ErrNotStubbed
	}
	return s.GetTaskInstanceLogsFunc(ctx, dagID, runID, taskID, tryNumber)
}

func (s *Stub) UpdateTaskInstanceState(ctx context.Context, dagID, runID, taskID, state string) (*airflow.TaskInstance, error) {
	s.record("UpdateTaskInstanceState")
	if s.UpdateTaskInstanceStateFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.UpdateTaskInstanceStateFunc(ctx, dagID, runID, taskID, state)
}

func (s *Stub) ListVariables(ctx context.Context, p airflow.ListParams) (*airflow.VariableCollection, error) {
	s.record("ListVariables")
	if s.ListVariablesFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.ListVariablesFunc(ctx, p)
}

func (s *Stub) GetVariable(ctx context.Context, key string) (*airflow.Variable, error) {
	s.record("GetVariable")
	if s.GetVariableFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.GetVariableFunc(ctx, key)
}

func (s *Stub) CreateVariable(ctx context.Context, v airflow.Variable) (*airflow.Variable, error) {
	s.record("CreateVariable")
	if s.CreateVariableFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.CreateVariableFunc(ctx, v)
}

func (s *Stub) UpdateVariable(ctx context.Context, v airflow.Variable) (*airflow.Variable, error) {
	s.record("UpdateVariable")
	if s.UpdateVariableFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.UpdateVariableFunc(ctx, v)
}

func (s *Stub) DeleteVariable(ctx context.Context, key string) error {
	s.record("DeleteVariable")
	if s.DeleteVariableFunc == nil {
		return ErrNotStubbed
	}
	return s.DeleteVariableFunc(ctx, key)
}

func (s *Stub) ListConnections(ctx context.Context, p airflow.ListParams) (*airflow.ConnectionCollection, error) {
	s.record("ListConnections")
	if s.ListConnectionsFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.ListConnectionsFunc(ctx, p)
}

func (s *Stub) GetConnection(ctx context.Context, connectionID string) (*airflow.Connection, error) {
	s.record("GetConnection")
	if s.GetConnectionFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.GetConnectionFunc(ctx, connectionID)
}

func (s *Stub) CreateConnection(ctx context.Context, c airflow.Connection) (*airflow.Connection, error) {
	s.record("CreateConnection")
	if s.CreateConnectionFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.CreateConnectionFunc(ctx, c)
}

func (s *Stub) UpdateConnection(ctx context.Context, c airflow.Connection) (*airflow.Connection, error) {
	s.record("UpdateConnection")
	if s.UpdateConnectionFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.UpdateConnectionFunc(ctx, c)
}

func (s *Stub) DeleteConnection(ctx context.Context, connectionID string) error {
	s.record("DeleteConnection")
	if s.DeleteConnectionFunc == nil {
		return ErrNotStubbed
	}
	return s.DeleteConnectionFunc(ctx, connectionID)
}

func (s *Stub) TestConnection(ctx context.Context, c airflow.Connection) (*airflow.ConnectionTest, error) {
	s.record("TestConnection")
	if s.TestConnectionFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.TestConnectionFunc(ctx, c)
}

func (s *Stub) ListPools(ctx context.Context, p airflow.ListParams) (*airflow.PoolCollection, error) {
	s.record("ListPools")
	if s.ListPoolsFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.ListPoolsFunc(ctx, p)
}

func (s *Stub) GetPool(ctx context.Context, name string) (*airflow.Pool, error) {
	s.record("GetPool")
	if s.GetPoolFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.GetPoolFunc(ctx, name)
}

func (s *Stub) CreatePool(ctx context.Context, pool airflow.Pool) (*airflow.Pool, error) {
	s.record("CreatePool")
	if s.CreatePoolFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.CreatePoolFunc(ctx, pool)
}

func (s *Stub) UpdatePool(ctx context.Context, pool airflow.Pool) (*airflow.Pool, error) {
	s.record("UpdatePool")
	if s.UpdatePoolFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.UpdatePoolFunc(ctx, pool)
}

func (s *Stub) DeletePool(ctx context.Context, name string) error {
	s.record("DeletePool")
	if s.DeletePoolFunc == nil {
		return ErrNotStubbed
	}
	return s.DeletePoolFunc(ctx, name)
}

func (s *Stub) ListXComEntries(ctx context.Context, dagID, runID, taskID string, p airflow.ListParams) (*airflow.XComCollection, error) {
	s.record("ListXComEntries")
	if s.ListXComEntriesFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.ListXComEntriesFunc(ctx, dagID, runID, taskID, p)
}

func (s *Stub) GetXComEntry(ctx context.Context, dagID, runID, taskID, key string) (*airflow.XComEntry, error) {
	s.record("GetXComEntry")
	if s.GetXComEntryFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.GetXComEntryFunc(ctx, dagID, runID, taskID, key)
}

func (s *Stub) ListDatasets(ctx context.Context, p airflow.ListParams) (*airflow.DatasetCollection, error) {
	s.record("ListDatasets")
	if s.ListDatasetsFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.ListDatasetsFunc(ctx, p)
}

func (s *Stub) GetDataset(ctx context.Context, uri string) (*airflow.Dataset, error) {
	s.record("GetDataset")
	if s.GetDatasetFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.GetDatasetFunc(ctx, uri)
}

func (s *Stub) ListDatasetEvents(ctx context.Context, p airflow.ListDatasetEventsParams) (*airflow.DatasetEventCollection, error) {
	s.record("ListDatasetEvents")
	if s.ListDatasetEventsFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.ListDatasetEventsFunc(ctx, p)
}

func (s *Stub) GetHealth(ctx context.Context) (*airflow.HealthInfo, error) {
	s.record("GetHealth")
	if s.GetHealthFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.GetHealthFunc(ctx)
}

func (s *Stub) GetVersion(ctx context.Context) (*airflow.VersionInfo, error) {
	s.record("GetVersion")
	if s.GetVersionFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.GetVersionFunc(ctx)
}

func (s *Stub) GetConfig(ctx context.Context) (*airflow.AirflowConfig, error) {
	s.record("GetConfig")
	if s.GetConfigFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.GetConfigFunc(ctx)
}

func (s *Stub) ListPlugins(ctx context.Context, p airflow.ListParams) (*airflow.PluginCollection, error) {
	s.record("ListPlugins")
	if s.ListPluginsFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.ListPluginsFunc(ctx, p)
}

func (s *Stub) ListProviders(ctx context.Context) (*airflow.ProviderCollection, error) {
	s.record("ListProviders")
	if s.ListProvidersFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.ListProvidersFunc(ctx)
}

func (s *Stub) ListImportErrors(ctx context.Context, p airflow.ListParams) (*airflow.ImportErrorCollection, error) {
	s.record("ListImportErrors")
	if s.ListImportErrorsFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.ListImportErrorsFunc(ctx, p)
}

func (s *Stub) GetImportError(ctx context.Context, importErrorID int) (*airflow.ImportError, error) {
	s.record("GetImportError")
	if s.GetImportErrorFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.GetImportErrorFunc(ctx, importErrorID)
}

func (s *Stub) ListEventLogs(ctx context.Context, p airflow.ListEventLogsParams) (*airflow.EventLogCollection, error) {
	s.record("ListEventLogs")
	if s.ListEventLogsFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.ListEventLogsFunc(ctx, p)
}

func (s *Stub) GetEventLog(ctx context.Context, eventLogID int) (*airflow.EventLog, error) {
	s.record("GetEventLog")
	if s.GetEventLogFunc == nil {
		return nil, ErrNotStubbed
	}
	return s.GetEventLogFunc(ctx, eventLogID)
}
