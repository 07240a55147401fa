package domains

import (
	"context"

	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/airflow"
	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/catalog"
)

// dagResult augments a DAG response with the grid-view console URL.
type dagResult struct {
	*airflow.DAG

	UIURL string `json:"ui_url,omitempty"`
}

func dagWithURL(api airflow.API, dag *airflow.DAG) dagResult {
	return dagResult{DAG: dag, UIURL: api.UIURL("dags", dag.DAGID, "grid")}
}

type listDAGsInput struct {
	paginationInput

	Tags         []string `json:"tags,omitempty" jsonschema:"only return DAGs carrying all of these tags"`
	OnlyActive   bool     `json:"only_active,omitempty" jsonschema:"only return currently active DAGs"`
	Paused       *bool    `json:"paused,omitempty" jsonschema:"filter on paused state; omit for both"`
	DAGIDPattern string   `json:"dag_id_pattern,omitempty" jsonschema:"substring pattern to match against dag_id"`
}

type dagIDInput struct {
	DAGID string `json:"dag_id" jsonschema:"the DAG identifier"`
}

type dagSourceInput struct {
	FileToken string `json:"file_token" jsonschema:"the file token from a DAG response"`
}

func dagDomain() Domain {
	return Domain{
		name: "dag",
		operations: func() []catalog.Operation {
			return []catalog.Operation{
				catalog.NewOperation("list_dags",
					"List DAGs known to the Airflow instance, with pagination and tag filters.",
					true,
					func(ctx context.Context, api airflow.API, in listDAGsInput) (any, error) {
						p := airflow.ListDAGsParams{
							ListParams:   in.params(),
							Tags:         in.Tags,
							OnlyActive:   in.OnlyActive,
							Paused:       in.Paused,
							DAGIDPattern: in.DAGIDPattern,
						}
						return api.ListDAGs(ctx, p)
					}),
				catalog.NewOperation("get_dag",
					"Get basic information about a single DAG.",
					true,
					func(ctx context.Context, api airflow.API, in dagIDInput) (any, error) {
						if in.DAGID == "" {
							return nil, catalog.Invalidf("dag_id is required")
						}
						dag, err := api.GetDAG(ctx, in.DAGID)
						if err != nil {
							return nil, err
						}
						return dagWithURL(api, dag), nil
					}),
				catalog.NewOperation("get_dag_details",
					"Get the full detail view of a DAG, including schedule and catchup settings.",
					true,
					func(ctx context.Context, api airflow.API, in dagIDInput) (any, error) {
						if in.DAGID == "" {
							return nil, catalog.Invalidf("dag_id is required")
						}
						return api.GetDAGDetails(ctx, in.DAGID)
					}),
				catalog.NewOperation("get_dag_source",
					"Fetch the source code of the file behind a DAG's file token.",
					true,
					func(ctx context.Context, api airflow.API, in dagSourceInput) (any, error) {
						if in.FileToken == "" {
							return nil, catalog.Invalidf("file_token is required")
						}
						return api.GetDAGSource(ctx, in.FileToken)
					}),
				catalog.NewOperation("get_dag_tasks",
					"List the tasks defined by a DAG.",
					true,
					func(ctx context.Context, api airflow.API, in dagIDInput) (any, error) {
						if in.DAGID == "" {
							return nil, catalog.Invalidf("dag_id is required")
						}
						return api.ListDAGTasks(ctx, in.DAGID)
					}),
				catalog.NewOperation("pause_dag",
					"Pause a DAG so the scheduler stops creating new runs.",
					false,
					func(ctx context.Context, api airflow.API, in dagIDInput) (any, error) {
						if in.DAGID == "" {
							return nil, catalog.Invalidf("dag_id is required")
						}
						dag, err := api.SetDAGPaused(ctx, in.DAGID, true)
						if err != nil {
							return nil, err
						}
						return dagWithURL(api, dag), nil
					}),
				catalog.NewOperation("unpause_dag",
					"Unpause a DAG so the scheduler resumes creating runs.",
					false,
					func(ctx context.Context, api airflow.API, in dagIDInput) (any, error) {
						if in.DAGID == "" {
							return nil, catalog.Invalidf("dag_id is required")
						}
						dag, err := api.SetDAGPaused(ctx, in.DAGID, false)
						if err != nil {
							return nil, err
						}
						return dagWithURL(api, dag), nil
					}),
				catalog.NewOperation("delete_dag",
					"Delete all metadata of a DAG, including its run history. The DAG file itself is untouched.",
					false,
					func(ctx context.Context, api airflow.API, in dagIDInput) (any, error) {
						if in.DAGID == "" {
							return nil, catalog.Invalidf("dag_id is required")
						}
						if err := api.DeleteDAG(ctx, in.DAGID); err != nil {
							return nil, err
						}
						return map[string]string{"deleted": in.DAGID}, nil
					}),
			}
		},
	}
}
