package airflow

// Response shapes for the subset of the Airflow stable REST API (v1) this
// server exposes. Field sets are trimmed to what the tools surface; unknown
// fields in responses are ignored during decoding.

// DAG is a single DAG as returned by /dags endpoints.
type DAG struct {
	DAGID                  string   `json:"dag_id"`
	Description            string   `json:"description,omitempty"`
	FileToken              string   `json:"file_token,omitempty"`
	Fileloc                string   `json:"fileloc,omitempty"`
	IsPaused               bool     `json:"is_paused"`
	IsActive               bool     `json:"is_active"`
	Owners                 []string `json:"owners,omitempty"`
	Tags                   []DAGTag `json:"tags,omitempty"`
	ScheduleInterval       any      `json:"schedule_interval,omitempty"`
	NextDagrun             string   `json:"next_dagrun,omitempty"`
	MaxActiveRuns          int      `json:"max_active_runs,omitempty"`
	HasImportErrors        bool     `json:"has_import_errors,omitempty"`
	TimetableDescription   string   `json:"timetable_description,omitempty"`
	LastParsedTime         string   `json:"last_parsed_time,omitempty"`
	DefaultViewDeprecated  string   `json:"default_view,omitempty"`
	RootDagID              string   `json:"root_dag_id,omitempty"`
	IsSubdagDeprecated     bool     `json:"is_subdag,omitempty"`
	MaxActiveTasks         int      `json:"max_active_tasks,omitempty"`
	NextDagrunCreateAfter  string   `json:"next_dagrun_create_after,omitempty"`
	NextDagrunDataInterval any      `json:"next_dagrun_data_interval,omitempty"`
}

// DAGTag labels a DAG in the Airflow UI.
type DAGTag struct {
	Name string `json:"name"`
}

// DAGCollection is a paginated list of DAGs.
type DAGCollection struct {
	DAGs         []DAG `json:"dags"`
	TotalEntries int   `json:"total_entries"`
}

// DAGDetail extends DAG with fields only present on /dags/{id}/details.
type DAGDetail struct {
	DAG

	Catchup                     bool   `json:"catchup,omitempty"`
	StartDate                   string `json:"start_date,omitempty"`
	EndDate                     string `json:"end_date,omitempty"`
	DocMD                       string `json:"doc_md,omitempty"`
	DagRunTimeout               any    `json:"dag_run_timeout,omitempty"`
	Concurrency                 int    `json:"concurrency,omitempty"`
	RenderTemplateAsNativeObj   bool   `json:"render_template_as_native_obj,omitempty"`
	IsPausedUponCreation        bool   `json:"is_paused_upon_creation,omitempty"`
	LastParsedTimeOfExpiredDags string `json:"last_expired,omitempty"`
}

// DAGSource is the parsed-file content behind a DAG's file token.
type DAGSource struct {
	Content string `json:"content"`
}

// Task describes one task inside a DAG definition.
type Task struct {
	TaskID            string   `json:"task_id"`
	Owner             string   `json:"owner,omitempty"`
	OperatorName      string   `json:"operator_name,omitempty"`
	ClassRef          any      `json:"class_ref,omitempty"`
	StartDate         string   `json:"start_date,omitempty"`
	EndDate           string   `json:"end_date,omitempty"`
	TriggerRule       string   `json:"trigger_rule,omitempty"`
	Retries           float64  `json:"retries,omitempty"`
	Pool              string   `json:"pool,omitempty"`
	Queue             string   `json:"queue,omitempty"`
	DownstreamTaskIDs []string `json:"downstream_task_ids,omitempty"`
	DependsOnPast     bool     `json:"depends_on_past,omitempty"`
	IsMapped          bool     `json:"is_mapped,omitempty"`
}

// TaskCollection is the task list of one DAG.
type TaskCollection struct {
	Tasks        []Task `json:"tasks"`
	TotalEntries int    `json:"total_entries"`
}

// DAGRun is a single run of a DAG.
type DAGRun struct {
	DAGRunID        string         `json:"dag_run_id"`
	DAGID           string         `json:"dag_id"`
	LogicalDate     string         `json:"logical_date,omitempty"`
	ExecutionDate   string         `json:"execution_date,omitempty"`
	StartDate       string         `json:"start_date,omitempty"`
	EndDate         string         `json:"end_date,omitempty"`
	DataIntervalEnd string         `json:"data_interval_end,omitempty"`
	State           string         `json:"state,omitempty"`
	RunType         string         `json:"run_type,omitempty"`
	ExternalTrigger bool           `json:"external_trigger,omitempty"`
	Conf            map[string]any `json:"conf,omitempty"`
	Note            string         `json:"note,omitempty"`
}

// DAGRunCollection is a paginated list of DAG runs.
type DAGRunCollection struct {
	DAGRuns      []DAGRun `json:"dag_runs"`
	TotalEntries int      `json:"total_entries"`
}

// TriggerDAGRunRequest is the body for POST /dags/{id}/dagRuns.
type TriggerDAGRunRequest struct {
	DAGRunID    string         `json:"dag_run_id,omitempty"`
	LogicalDate string         `json:"logical_date,omitempty"`
	Conf        map[string]any `json:"conf,omitempty"`
	Note        string         `json:"note,omitempty"`
}

// TaskInstance is one scheduled execution of a task within a DAG run.
type TaskInstance struct {
	TaskID        string  `json:"task_id"`
	DAGID         string  `json:"dag_id"`
	DAGRunID      string  `json:"dag_run_id"`
	ExecutionDate string  `json:"execution_date,omitempty"`
	StartDate     string  `json:"start_date,omitempty"`
	EndDate       string  `json:"end_date,omitempty"`
	Duration      float64 `json:"duration,omitempty"`
	State         string  `json:"state,omitempty"`
	TryNumber     int     `json:"try_number,omitempty"`
	MaxTries      int     `json:"max_tries,omitempty"`
	Hostname      string  `json:"hostname,omitempty"`
	Operator      string  `json:"operator,omitempty"`
	Pool          string  `json:"pool,omitempty"`
	Queue         string  `json:"queue,omitempty"`
	PriorityWeight int    `json:"priority_weight,omitempty"`
	Note          string  `json:"note,omitempty"`
}

// TaskInstanceCollection is a paginated list of task instances.
type TaskInstanceCollection struct {
	TaskInstances []TaskInstance `json:"task_instances"`
	TotalEntries  int            `json:"total_entries"`
}

// Variable is one Airflow variable.
type Variable struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// VariableCollection is a paginated list of variables.
type VariableCollection struct {
	Variables    []Variable `json:"variables"`
	TotalEntries int        `json:"total_entries"`
}

// Connection is one Airflow connection. Password is write-only: the API
// never returns it.
type Connection struct {
	ConnectionID string `json:"connection_id"`
	ConnType     string `json:"conn_type,omitempty"`
	Description  string `json:"description,omitempty"`
	Host         string `json:"host,omitempty"`
	Schema       string `json:"schema,omitempty"`
	Login        string `json:"login,omitempty"`
	Password     string `json:"password,omitempty"`
	Port         int    `json:"port,omitempty"`
	Extra        string `json:"extra,omitempty"`
}

// ConnectionCollection is a paginated list of connections.
type ConnectionCollection struct {
	Connections  []Connection `json:"connections"`
	TotalEntries int          `json:"total_entries"`
}

// ConnectionTest is the result of POST /connections/test.
type ConnectionTest struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// Pool is one Airflow worker-slot pool.
type Pool struct {
	Name            string `json:"name"`
	Slots           int    `json:"slots"`
	OccupiedSlots   int    `json:"occupied_slots,omitempty"`
	RunningSlots    int    `json:"running_slots,omitempty"`
	QueuedSlots     int    `json:"queued_slots,omitempty"`
	ScheduledSlots  int    `json:"scheduled_slots,omitempty"`
	OpenSlots       int    `json:"open_slots,omitempty"`
	Description     string `json:"description,omitempty"`
	IncludeDeferred bool   `json:"include_deferred,omitempty"`
}

// PoolCollection is a paginated list of pools.
type PoolCollection struct {
	Pools        []Pool `json:"pools"`
	TotalEntries int    `json:"total_entries"`
}

// XComEntry is one cross-communication record of a task instance.
type XComEntry struct {
	Key           string `json:"key"`
	Timestamp     string `json:"timestamp,omitempty"`
	ExecutionDate string `json:"execution_date,omitempty"`
	MapIndex      int    `json:"map_index,omitempty"`
	TaskID        string `json:"task_id"`
	DAGID         string `json:"dag_id"`
	Value         any    `json:"value,omitempty"`
}

// XComCollection is a paginated list of XCom entries.
type XComCollection struct {
	XComEntries  []XComEntry `json:"xcom_entries"`
	TotalEntries int         `json:"total_entries"`
}

// Dataset is one dataset known to the Airflow instance.
type Dataset struct {
	ID        int    `json:"id"`
	URI       string `json:"uri"`
	Extra     any    `json:"extra,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// DatasetCollection is a paginated list of datasets.
type DatasetCollection struct {
	Datasets     []Dataset `json:"datasets"`
	TotalEntries int       `json:"total_entries"`
}

// DatasetEvent records one update to a dataset.
type DatasetEvent struct {
	DatasetID       int    `json:"dataset_id"`
	DatasetURI      string `json:"dataset_uri"`
	Extra           any    `json:"extra,omitempty"`
	SourceDAGID     string `json:"source_dag_id,omitempty"`
	SourceTaskID    string `json:"source_task_id,omitempty"`
	SourceRunID     string `json:"source_run_id,omitempty"`
	SourceMapIndex  int    `json:"source_map_index,omitempty"`
	Timestamp       string `json:"timestamp,omitempty"`
}

// DatasetEventCollection is a paginated list of dataset events.
type DatasetEventCollection struct {
	DatasetEvents []DatasetEvent `json:"dataset_events"`
	TotalEntries  int            `json:"total_entries"`
}

// ComponentHealth is the health of one Airflow component.
type ComponentHealth struct {
	Status                   string `json:"status"`
	LatestSchedulerHeartbeat string `json:"latest_scheduler_heartbeat,omitempty"`
}

// HealthInfo is the response of GET /health.
type HealthInfo struct {
	Metadatabase ComponentHealth `json:"metadatabase"`
	Scheduler    ComponentHealth `json:"scheduler"`
	Triggerer    ComponentHealth `json:"triggerer,omitempty"`
}

// VersionInfo is the response of GET /version.
type VersionInfo struct {
	Version    string `json:"version"`
	GitVersion string `json:"git_version,omitempty"`
}

// ConfigOption is a single key/value pair inside a config section.
type ConfigOption struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ConfigSection groups config options under a section name.
type ConfigSection struct {
	Name    string         `json:"name"`
	Options []ConfigOption `json:"options"`
}

// AirflowConfig is the response of GET /config.
type AirflowConfig struct {
	Sections []ConfigSection `json:"sections"`
}

// PluginInfo describes one loaded Airflow plugin.
type PluginInfo struct {
	Name                string   `json:"name"`
	Hooks               []string `json:"hooks,omitempty"`
	Macros              []string `json:"macros,omitempty"`
	FlaskBlueprints     []string `json:"flask_blueprints,omitempty"`
	AppbuilderViews     []any    `json:"appbuilder_views,omitempty"`
	GlobalOperatorLinks []any    `json:"global_operator_extra_links,omitempty"`
	Source              string   `json:"source,omitempty"`
}

// PluginCollection is a paginated list of plugins.
type PluginCollection struct {
	Plugins      []PluginInfo `json:"plugins"`
	TotalEntries int          `json:"total_entries"`
}

// ProviderInfo describes one installed provider package.
type ProviderInfo struct {
	PackageName string `json:"package_name"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version,omitempty"`
}

// ProviderCollection lists the installed provider packages.
type ProviderCollection struct {
	Providers    []ProviderInfo `json:"providers"`
	TotalEntries int            `json:"total_entries"`
}

// ImportError is a DAG-file parsing failure recorded by the scheduler.
type ImportError struct {
	ImportErrorID int    `json:"import_error_id"`
	Timestamp     string `json:"timestamp,omitempty"`
	Filename      string `json:"filename,omitempty"`
	StackTrace    string `json:"stack_trace,omitempty"`
}

// ImportErrorCollection is a paginated list of import errors.
type ImportErrorCollection struct {
	ImportErrors []ImportError `json:"import_errors"`
	TotalEntries int           `json:"total_entries"`
}

// EventLog is one audit-log record.
type EventLog struct {
	EventLogID    int    `json:"event_log_id"`
	When          string `json:"when,omitempty"`
	DAGID         string `json:"dag_id,omitempty"`
	TaskID        string `json:"task_id,omitempty"`
	RunID         string `json:"run_id,omitempty"`
	Event         string `json:"event,omitempty"`
	ExecutionDate string `json:"execution_date,omitempty"`
	Owner         string `json:"owner,omitempty"`
	Extra         string `json:"extra,omitempty"`
}

// EventLogCollection is a paginated list of event-log records.
type EventLogCollection struct {
	EventLogs    []EventLog `json:"event_logs"`
	TotalEntries int        `json:"total_entries"`
}
