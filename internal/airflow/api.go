package airflow

import "context"

// API is the contract every tool handler depends on: one method per remote
// Airflow operation, each performing exactly one REST call. *Client is the
// production implementation; tests substitute recording fakes.
type API interface {
	// DAGs
	ListDAGs(ctx context.Context, p ListDAGsParams) (*DAGCollection, error)
	GetDAG(ctx context.Context, dagID string) (*DAG, error)
	GetDAGDetails(ctx context.Context, dagID string) (*DAGDetail, error)
	GetDAGSource(ctx context.Context, fileToken string) (*DAGSource, error)
	ListDAGTasks(ctx context.Context, dagID string) (*TaskCollection, error)
	SetDAGPaused(ctx context.Context, dagID string, paused bool) (*DAG, error)
	DeleteDAG(ctx context.Context, dagID string) error

	// DAG runs
	TriggerDAGRun(ctx context.Context, dagID string, req TriggerDAGRunRequest) (*DAGRun, error)
	ListDAGRuns(ctx context.Context, dagID string, p ListDAGRunsParams) (*DAGRunCollection, error)
	GetDAGRun(ctx context.Context, dagID, runID string) (*DAGRun, error)
	UpdateDAGRunState(ctx context.Context, dagID, runID, state string) (*DAGRun, error)
	ClearDAGRun(ctx context.Context, dagID, runID string, dryRun bool) (*DAGRunCollection, error)
	DeleteDAGRun(ctx context.Context, dagID, runID string) error

	// Task instances
	ListTaskInstances(ctx context.Context, dagID, runID string, p ListTaskInstancesParams) (*TaskInstanceCollection, error)
	GetTaskInstance(ctx context.Context, dagID, runID, taskID string) (*TaskInstance, error)
	GetTaskInstanceLogs(ctx context.Context, dagID, runID, taskID string, tryNumber int) (string, error)
	UpdateTaskInstanceState(ctx context.Context, dagID, runID, taskID, state string) (*TaskInstance, error)

	// Variables
	ListVariables(ctx context.Context, p ListParams) (*VariableCollection, error)
	GetVariable(ctx context.Context, key string) (*Variable, error)
	CreateVariable(ctx context.Context, v Variable) (*Variable, error)
	UpdateVariable(ctx context.Context, v Variable) (*Variable, error)
	DeleteVariable(ctx context.Context, key string) error

	// Connections
	ListConnections(ctx context.Context, p ListParams) (*ConnectionCollection, error)
	GetConnection(ctx context.Context, connectionID string) (*Connection, error)
	CreateConnection(ctx context.Context, c Connection) (*Connection, error)
	UpdateConnection(ctx context.Context, c Connection) (*Connection, error)
	DeleteConnection(ctx context.Context, connectionID string) error
	TestConnection(ctx context.Context, c Connection) (*ConnectionTest, error)

	// Pools
	ListPools(ctx context.Context, p ListParams) (*PoolCollection, error)
	GetPool(ctx context.Context, name string) (*Pool, error)
	CreatePool(ctx context.Context, pool Pool) (*Pool, error)
	UpdatePool(ctx context.Context, pool Pool) (*Pool, error)
	DeletePool(ctx context.Context, name string) error

	// XComs
	ListXComEntries(ctx context.Context, dagID, runID, taskID string, p ListParams) (*XComCollection, error)
	GetXComEntry(ctx context.Context, dagID, runID, taskID, key string) (*XComEntry, error)

	// Datasets
	ListDatasets(ctx context.Context, p ListParams) (*DatasetCollection, error)
	GetDataset(ctx context.Context, uri string) (*Dataset, error)
	ListDatasetEvents(ctx context.Context, p ListDatasetEventsParams) (*DatasetEventCollection, error)

	// Monitoring and instance metadata
	GetHealth(ctx context.Context) (*HealthInfo, error)
	GetVersion(ctx context.Context) (*VersionInfo, error)
	GetConfig(ctx context.Context) (*AirflowConfig, error)
	ListPlugins(ctx context.Context, p ListParams) (*PluginCollection, error)
	ListProviders(ctx context.Context) (*ProviderCollection, error)
	ListImportErrors(ctx context.Context, p ListParams) (*ImportErrorCollection, error)
	GetImportError(ctx context.Context, importErrorID int) (*ImportError, error)
	ListEventLogs(ctx context.Context, p ListEventLogsParams) (*EventLogCollection, error)
	GetEventLog(ctx context.Context, eventLogID int) (*EventLog, error)

	// UIURL joins path segments onto the web-console base URL. Handlers use
	// it to augment responses with browsable links.
	UIURL(parts ...string) string
}
