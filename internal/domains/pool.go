package domains

import (
	"context"

	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/airflow"
	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/catalog"
)

type listPoolsInput struct {
	paginationInput
}

type poolNameInput struct {
	Name string `json:"name" jsonschema:"the pool name"`
}

type writePoolInput struct {
	Name            string `json:"name" jsonschema:"the pool name"`
	Slots           int    `json:"slots" jsonschema:"total number of worker slots in the pool"`
	Description     string `json:"description,omitempty" jsonschema:"optional description"`
	IncludeDeferred bool   `json:"include_deferred,omitempty" jsonschema:"count deferred tasks against pool slots"`
}

func poolDomain() Domain {
	return Domain{
		name: "pool",
		operations: func() []catalog.Operation {
			return []catalog.Operation{
				catalog.NewOperation("list_pools",
					"List worker-slot pools with pagination.",
					true,
					func(ctx context.Context, api airflow.API, in listPoolsInput) (any, error) {
						return api.ListPools(ctx, in.params())
					}),
				catalog.NewOperation("get_pool",
					"Get a worker-slot pool by name.",
					true,
					func(ctx context.Context, api airflow.API, in poolNameInput) (any, error) {
						if in.Name == "" {
							return nil, catalog.Invalidf("name is required")
						}
						return api.GetPool(ctx, in.Name)
					}),
				catalog.NewOperation("create_pool",
					"Create a new worker-slot pool.",
					false,
					func(ctx context.Context, api airflow.API, in writePoolInput) (any, error) {
						if in.Name == "" {
							return nil, catalog.Invalidf("name is required")
						}
						if in.Slots <= 0 {
							return nil, catalog.Invalidf("slots must be positive; got %d", in.Slots)
						}
						return api.CreatePool(ctx, airflow.Pool{
							Name:            in.Name,
							Slots:           in.Slots,
							Description:     in.Description,
							IncludeDeferred: in.IncludeDeferred,
						})
					}),
				catalog.NewOperation("update_pool",
					"Update the slot count or description of a pool.",
					false,
					func(ctx context.Context, api airflow.API, in writePoolInput) (any, error) {
						if in.Name == "" {
							return nil, catalog.Invalidf("name is required")
						}
						return api.UpdatePool(ctx, airflow.Pool{
							Name:            in.Name,
							Slots:           in.Slots,
							Description:     in.Description,
							IncludeDeferred: in.IncludeDeferred,
						})
					}),
				catalog.NewOperation("delete_pool",
					"Delete a worker-slot pool by name.",
					false,
					func(ctx context.Context, api airflow.API, in poolNameInput) (any, error) {
						if in.Name == "" {
							return nil, catalog.Invalidf("name is required")
						}
						if err := api.DeletePool(ctx, in.Name); err != nil {
							return nil, err
						}
						return map[string]string{"deleted": in.Name}, nil
					}),
			}
		},
	}
}
