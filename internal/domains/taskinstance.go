package domains

import (
	"context"

	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/airflow"
	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/catalog"
)

type listTaskInstancesInput struct {
	paginationInput

	DAGID    string   `json:"dag_id" jsonschema:"the DAG identifier, or ~ for all DAGs"`
	DAGRunID string   `json:"dag_run_id" jsonschema:"the DAG run identifier, or ~ for all runs"`
	State    []string `json:"state,omitempty" jsonschema:"only return task instances in these states"`
	Pool     []string `json:"pool,omitempty" jsonschema:"only return task instances in these pools"`
	Queue    []string `json:"queue,omitempty" jsonschema:"only return task instances in these queues"`
}

type taskInstanceInput struct {
	DAGID    string `json:"dag_id" jsonschema:"the DAG identifier"`
	DAGRunID string `json:"dag_run_id" jsonschema:"the DAG run identifier"`
	TaskID   string `json:"task_id" jsonschema:"the task identifier"`
}

type taskInstanceLogsInput struct {
	DAGID     string `json:"dag_id" jsonschema:"the DAG identifier"`
	DAGRunID  string `json:"dag_run_id" jsonschema:"the DAG run identifier"`
	TaskID    string `json:"task_id" jsonschema:"the task identifier"`
	TryNumber int    `json:"try_number,omitempty" jsonschema:"attempt number to fetch logs for, defaults to 1"`
}

type updateTaskInstanceStateInput struct {
	DAGID    string `json:"dag_id" jsonschema:"the DAG identifier"`
	DAGRunID string `json:"dag_run_id" jsonschema:"the DAG run identifier"`
	TaskID   string `json:"task_id" jsonschema:"the task identifier"`
	State    string `json:"state" jsonschema:"target state: success, failed or skipped"`
}

func validTaskRef(dagID, runID, taskID string) error {
	if err := validDAGRunRef(dagID, runID); err != nil {
		return err
	}
	if taskID == "" {
		return catalog.Invalidf("task_id is required")
	}
	return nil
}

func taskInstanceDomain() Domain {
	return Domain{
		name: "taskinstance",
		operations: func() []catalog.Operation {
			return []catalog.Operation{
				catalog.NewOperation("list_task_instances",
					"List task instances of a DAG run with state, pool and queue filters.",
					true,
					func(ctx context.Context, api airflow.API, in listTaskInstancesInput) (any, error) {
						if err := validDAGRunRef(in.DAGID, in.DAGRunID); err != nil {
							return nil, err
						}
						p := airflow.ListTaskInstancesParams{
							ListParams: in.params(),
							State:      in.State,
							Pool:       in.Pool,
							Queue:      in.Queue,
						}
						return api.ListTaskInstances(ctx, in.DAGID, in.DAGRunID, p)
					}),
				catalog.NewOperation("get_task_instance",
					"Get a single task instance of a DAG run.",
					true,
					func(ctx context.Context, api airflow.API, in taskInstanceInput) (any, error) {
						if err := validTaskRef(in.DAGID, in.DAGRunID, in.TaskID); err != nil {
							return nil, err
						}
						return api.GetTaskInstance(ctx, in.DAGID, in.DAGRunID, in.TaskID)
					}),
				catalog.NewOperation("get_task_instance_logs",
					"Fetch the log text of one task instance attempt.",
					true,
					func(ctx context.Context, api airflow.API, in taskInstanceLogsInput) (any, error) {
						if err := validTaskRef(in.DAGID, in.DAGRunID, in.TaskID); err != nil {
							return nil, err
						}
						tryNumber := in.TryNumber
						if tryNumber <= 0 {
							tryNumber = 1
						}
						return api.GetTaskInstanceLogs(ctx, in.DAGID, in.DAGRunID, in.TaskID, tryNumber)
					}),
				catalog.NewOperation("update_task_instance_state",
					"Set the state of a task instance to success, failed or skipped.",
					false,
					func(ctx context.Context, api airflow.API, in updateTaskInstanceStateInput) (any, error) {
						if err := validTaskRef(in.DAGID, in.DAGRunID, in.TaskID); err != nil {
							return nil, err
						}
						switch in.State {
						case "success", "failed", "skipped":
						default:
							return nil, catalog.Invalidf("state must be one of success, failed, skipped; got %q", in.State)
						}
						return api.UpdateTaskInstanceState(ctx, in.DAGID, in.DAGRunID, in.TaskID, in.State)
					}),
			}
		},
	}
}
