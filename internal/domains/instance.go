package domains

import (
	"context"

	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/airflow"
	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/catalog"
)

// The remaining instance-metadata domains are read-only by nature: config,
// plugins, providers, import errors and the audit log.

func configDomain() Domain {
	return Domain{
		name: "config",
		operations: func() []catalog.Operation {
			return []catalog.Operation{
				catalog.NewOperation("get_airflow_config",
					"Dump the Airflow configuration as sections of key/value options. Requires the API to expose config.",
					true,
					func(ctx context.Context, api airflow.API, _ emptyInput) (any, error) {
						return api.GetConfig(ctx)
					}),
			}
		},
	}
}

type listPluginsInput struct {
	paginationInput
}

func pluginDomain() Domain {
	return Domain{
		name: "plugin",
		operations: func() []catalog.Operation {
			return []catalog.Operation{
				catalog.NewOperation("list_plugins",
					"List plugins loaded by the Airflow instance.",
					true,
					func(ctx context.Context, api airflow.API, in listPluginsInput) (any, error) {
						return api.ListPlugins(ctx, in.params())
					}),
			}
		},
	}
}

func providerDomain() Domain {
	return Domain{
		name: "provider",
		operations: func() []catalog.Operation {
			return []catalog.Operation{
				catalog.NewOperation("list_providers",
					"List provider packages installed in the Airflow instance.",
					true,
					func(ctx context.Context, api airflow.API, _ emptyInput) (any, error) {
						return api.ListProviders(ctx)
					}),
			}
		},
	}
}

type listImportErrorsInput struct {
	paginationInput
}

type importErrorIDInput struct {
	ImportErrorID int `json:"import_error_id" jsonschema:"the import error identifier"`
}

func importErrorDomain() Domain {
	return Domain{
		name: "importerror",
		operations: func() []catalog.Operation {
			return []catalog.Operation{
				catalog.NewOperation("list_import_errors",
					"List DAG-file import errors recorded by the scheduler.",
					true,
					func(ctx context.Context, api airflow.API, in listImportErrorsInput) (any, error) {
						return api.ListImportErrors(ctx, in.params())
					}),
				catalog.NewOperation("get_import_error",
					"Get one DAG-file import error, including its stack trace.",
					true,
					func(ctx context.Context, api airflow.API, in importErrorIDInput) (any, error) {
						if in.ImportErrorID <= 0 {
							return nil, catalog.Invalidf("import_error_id must be positive")
						}
						return api.GetImportError(ctx, in.ImportErrorID)
					}),
			}
		},
	}
}

type listEventLogsInput struct {
	paginationInput

	DAGID  string `json:"dag_id,omitempty" jsonschema:"only events for this DAG"`
	TaskID string `json:"task_id,omitempty" jsonschema:"only events for this task"`
	Event  string `json:"event,omitempty" jsonschema:"only events of this type"`
}

type eventLogIDInput struct {
	EventLogID int `json:"event_log_id" jsonschema:"the event log identifier"`
}

func eventLogDomain() Domain {
	return Domain{
		name: "eventlog",
		operations: func() []catalog.Operation {
			return []catalog.Operation{
				catalog.NewOperation("list_event_logs",
					"List audit-log records, optionally filtered by DAG, task or event type.",
					true,
					func(ctx context.Context, api airflow.API, in listEventLogsInput) (any, error) {
						p := airflow.ListEventLogsParams{
							ListParams: in.params(),
							DAGID:      in.DAGID,
							TaskID:     in.TaskID,
							Event:      in.Event,
						}
						return api.ListEventLogs(ctx, p)
					}),
				catalog.NewOperation("get_event_log",
					"Get one audit-log record by identifier.",
					true,
					func(ctx context.Context, api airflow.API, in eventLogIDInput) (any, error) {
						if in.EventLogID <= 0 {
							return nil, catalog.Invalidf("event_log_id must be positive")
						}
						return api.GetEventLog(ctx, in.EventLogID)
					}),
			}
		},
	}
}
