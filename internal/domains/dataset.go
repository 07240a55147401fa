package domains

import (
	"context"

	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/airflow"
	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/catalog"
)

type listDatasetsInput struct {
	paginationInput
}

type datasetURIInput struct {
	URI string `json:"uri" jsonschema:"the dataset URI"`
}

type listDatasetEventsInput struct {
	paginationInput

	DatasetID    int    `json:"dataset_id,omitempty" jsonschema:"only events for this dataset id"`
	SourceDAGID  string `json:"source_dag_id,omitempty" jsonschema:"only events produced by this DAG"`
	SourceTaskID string `json:"source_task_id,omitempty" jsonschema:"only events produced by this task"`
	SourceRunID  string `json:"source_run_id,omitempty" jsonschema:"only events produced by this DAG run"`
}

func datasetDomain() Domain {
	return Domain{
		name: "dataset",
		operations: func() []catalog.Operation {
			return []catalog.Operation{
				catalog.NewOperation("list_datasets",
					"List datasets known to the Airflow instance.",
					true,
					func(ctx context.Context, api airflow.API, in listDatasetsInput) (any, error) {
						return api.ListDatasets(ctx, in.params())
					}),
				catalog.NewOperation("get_dataset",
					"Get a dataset by URI.",
					true,
					func(ctx context.Context, api airflow.API, in datasetURIInput) (any, error) {
						if in.URI == "" {
							return nil, catalog.Invalidf("uri is required")
						}
						return api.GetDataset(ctx, in.URI)
					}),
				catalog.NewOperation("list_dataset_events",
					"List dataset update events, optionally filtered by dataset or producing task.",
					true,
					func(ctx context.Context, api airflow.API, in listDatasetEventsInput) (any, error) {
						p := airflow.ListDatasetEventsParams{
							ListParams:   in.params(),
							DatasetID:    in.DatasetID,
							SourceDAGID:  in.SourceDAGID,
							SourceTaskID: in.SourceTaskID,
							SourceRunID:  in.SourceRunID,
						}
						return api.ListDatasetEvents(ctx, p)
					}),
			}
		},
	}
}
