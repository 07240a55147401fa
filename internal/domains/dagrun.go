package domains

import (
	"context"
	"net/url"

	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/airflow"
	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/catalog"
)

// dagRunResult augments a DAG run response with a console URL pointing at
// the run in the grid view.
type dagRunResult struct {
	*airflow.DAGRun

	UIURL string `json:"ui_url,omitempty"`
}

func dagRunWithURL(api airflow.API, run *airflow.DAGRun) dagRunResult {
	u := api.UIURL("dags", run.DAGID, "grid")
	if run.DAGRunID != "" {
		u += "?dag_run_id=" + url.QueryEscape(run.DAGRunID)
	}
	return dagRunResult{DAGRun: run, UIURL: u}
}

type triggerDAGRunInput struct {
	DAGID       string         `json:"dag_id" jsonschema:"the DAG to trigger"`
	DAGRunID    string         `json:"dag_run_id,omitempty" jsonschema:"explicit run identifier; generated by Airflow when omitted"`
	LogicalDate string         `json:"logical_date,omitempty" jsonschema:"logical date of the run in ISO 8601 format"`
	Conf        map[string]any `json:"conf,omitempty" jsonschema:"configuration dictionary passed to the run"`
	Note        string         `json:"note,omitempty" jsonschema:"free-form note attached to the run"`
}

type listDAGRunsInput struct {
	paginationInput

	DAGID            string   `json:"dag_id" jsonschema:"the DAG whose runs to list, or ~ for all DAGs"`
	State            []string `json:"state,omitempty" jsonschema:"only return runs in these states (queued, running, success, failed)"`
	ExecutionDateGTE string   `json:"execution_date_gte,omitempty" jsonschema:"only runs with execution date at or after this ISO 8601 timestamp"`
	ExecutionDateLTE string   `json:"execution_date_lte,omitempty" jsonschema:"only runs with execution date at or before this ISO 8601 timestamp"`
}

type dagRunInput struct {
	DAGID    string `json:"dag_id" jsonschema:"the DAG identifier"`
	DAGRunID string `json:"dag_run_id" jsonschema:"the DAG run identifier"`
}

type updateDAGRunStateInput struct {
	DAGID    string `json:"dag_id" jsonschema:"the DAG identifier"`
	DAGRunID string `json:"dag_run_id" jsonschema:"the DAG run identifier"`
	State    string `json:"state" jsonschema:"target state: success, failed or queued"`
}

type clearDAGRunInput struct {
	DAGID    string `json:"dag_id" jsonschema:"the DAG identifier"`
	DAGRunID string `json:"dag_run_id" jsonschema:"the DAG run identifier"`
	DryRun   bool   `json:"dry_run,omitempty" jsonschema:"preview the task instances that would be cleared without clearing them"`
}

func validDAGRunRef(dagID, runID string) error {
	if dagID == "" {
		return catalog.Invalidf("dag_id is required")
	}
	if runID == "" {
		return catalog.Invalidf("dag_run_id is required")
	}
	return nil
}

func dagRunDomain() Domain {
	return Domain{
		name: "dagrun",
		operations: func() []catalog.Operation {
			return []catalog.Operation{
				catalog.NewOperation("trigger_dag_run",
					"Trigger a new run of a DAG, optionally with a configuration dictionary.",
					false,
					func(ctx context.Context, api airflow.API, in triggerDAGRunInput) (any, error) {
						if in.DAGID == "" {
							return nil, catalog.Invalidf("dag_id is required")
						}
						run, err := api.TriggerDAGRun(ctx, in.DAGID, airflow.TriggerDAGRunRequest{
							DAGRunID:    in.DAGRunID,
							LogicalDate: in.LogicalDate,
							Conf:        in.Conf,
							Note:        in.Note,
						})
						if err != nil {
							return nil, err
						}
						return dagRunWithURL(api, run), nil
					}),
				catalog.NewOperation("list_dag_runs",
					"List runs of a DAG with state and date filters.",
					true,
					func(ctx context.Context, api airflow.API, in listDAGRunsInput) (any, error) {
						if in.DAGID == "" {
							return nil, catalog.Invalidf("dag_id is required")
						}
						p := airflow.ListDAGRunsParams{
							ListParams:       in.params(),
							State:            in.State,
							ExecutionDateGTE: in.ExecutionDateGTE,
							ExecutionDateLTE: in.ExecutionDateLTE,
						}
						return api.ListDAGRuns(ctx, in.DAGID, p)
					}),
				catalog.NewOperation("get_dag_run",
					"Get a single DAG run.",
					true,
					func(ctx context.Context, api airflow.API, in dagRunInput) (any, error) {
						if err := validDAGRunRef(in.DAGID, in.DAGRunID); err != nil {
							return nil, err
						}
						run, err := api.GetDAGRun(ctx, in.DAGID, in.DAGRunID)
						if err != nil {
							return nil, err
						}
						return dagRunWithURL(api, run), nil
					}),
				catalog.NewOperation("update_dag_run_state",
					"Set the state of a DAG run to success, failed or queued.",
					false,
					func(ctx context.Context, api airflow.API, in updateDAGRunStateInput) (any, error) {
						if err := validDAGRunRef(in.DAGID, in.DAGRunID); err != nil {
							return nil, err
						}
						switch in.State {
						case "success", "failed", "queued":
						default:
							return nil, catalog.Invalidf("state must be one of success, failed, queued; got %q", in.State)
						}
						run, err := api.UpdateDAGRunState(ctx, in.DAGID, in.DAGRunID, in.State)
						if err != nil {
							return nil, err
						}
						return dagRunWithURL(api, run), nil
					}),
				catalog.NewOperation("clear_dag_run",
					"Clear a DAG run so its task instances are rescheduled.",
					false,
					func(ctx context.Context, api airflow.API, in clearDAGRunInput) (any, error) {
						if err := validDAGRunRef(in.DAGID, in.DAGRunID); err != nil {
							return nil, err
						}
						return api.ClearDAGRun(ctx, in.DAGID, in.DAGRunID, in.DryRun)
					}),
				catalog.NewOperation("delete_dag_run",
					"Delete a DAG run record.",
					false,
					func(ctx context.Context, api airflow.API, in dagRunInput) (any, error) {
						if err := validDAGRunRef(in.DAGID, in.DAGRunID); err != nil {
							return nil, err
						}
						if err := api.DeleteDAGRun(ctx, in.DAGID, in.DAGRunID); err != nil {
							return nil, err
						}
						return map[string]string{"deleted": in.DAGRunID, "dag_id": in.DAGID}, nil
					}),
			}
		},
	}
}
