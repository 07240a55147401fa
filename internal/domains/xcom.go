package domains

import (
	"context"

	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/airflow"
	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/catalog"
)

type listXComInput struct {
	paginationInput

	DAGID    string `json:"dag_id" jsonschema:"the DAG identifier, or ~ for all DAGs"`
	DAGRunID string `json:"dag_run_id" jsonschema:"the DAG run identifier, or ~ for all runs"`
	TaskID   string `json:"task_id" jsonschema:"the task identifier, or ~ for all tasks"`
}

type getXComInput struct {
	DAGID    string `json:"dag_id" jsonschema:"the DAG identifier"`
	DAGRunID string `json:"dag_run_id" jsonschema:"the DAG run identifier"`
	TaskID   string `json:"task_id" jsonschema:"the task identifier"`
	Key      string `json:"key" jsonschema:"the XCom key"`
}

func xcomDomain() Domain {
	return Domain{
		name: "xcom",
		operations: func() []catalog.Operation {
			return []catalog.Operation{
				catalog.NewOperation("list_xcom_entries",
					"List XCom entries of a task instance.",
					true,
					func(ctx context.Context, api airflow.API, in listXComInput) (any, error) {
						if err := validTaskRef(in.DAGID, in.DAGRunID, in.TaskID); err != nil {
							return nil, err
						}
						return api.ListXComEntries(ctx, in.DAGID, in.DAGRunID, in.TaskID, in.params())
					}),
				catalog.NewOperation("get_xcom_entry",
					"Get one XCom entry of a task instance by key.",
					true,
					func(ctx context.Context, api airflow.API, in getXComInput) (any, error) {
						if err := validTaskRef(in.DAGID, in.DAGRunID, in.TaskID); err != nil {
							return nil, err
						}
						if in.Key == "" {
							return nil, catalog.Invalidf("key is required")
						}
						return api.GetXComEntry(ctx, in.DAGID, in.DAGRunID, in.TaskID, in.Key)
					}),
			}
		},
	}
}
