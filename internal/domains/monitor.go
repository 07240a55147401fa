package domains

import (
	"context"

	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/airflow"
	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/catalog"
)

// emptyInput is the argument type of tools that take no parameters.
type emptyInput struct{}

func monitorDomain() Domain {
	return Domain{
		name: "monitor",
		operations: func() []catalog.Operation {
			return []catalog.Operation{
				catalog.NewOperation("get_health",
					"Report the health of the Airflow metadatabase, scheduler and triggerer.",
					true,
					func(ctx context.Context, api airflow.API, _ emptyInput) (any, error) {
						return api.GetHealth(ctx)
					}),
				catalog.NewOperation("get_version",
					"Report the Airflow version of the backing instance.",
					true,
					func(ctx context.Context, api airflow.API, _ emptyInput) (any, error) {
						return api.GetVersion(ctx)
					}),
			}
		},
	}
}
