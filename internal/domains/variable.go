package domains

import (
	"context"

	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/airflow"
	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/catalog"
)

type listVariablesInput struct {
	paginationInput
}

type variableKeyInput struct {
	Key string `json:"key" jsonschema:"the variable key"`
}

type writeVariableInput struct {
	Key         string `json:"key" jsonschema:"the variable key"`
	Value       string `json:"value" jsonschema:"the variable value"`
	Description string `json:"description,omitempty" jsonschema:"optional description of the variable"`
}

func variableDomain() Domain {
	return Domain{
		name: "variable",
		operations: func() []catalog.Operation {
			return []catalog.Operation{
				catalog.NewOperation("list_variables",
					"List Airflow variables with pagination.",
					true,
					func(ctx context.Context, api airflow.API, in listVariablesInput) (any, error) {
						return api.ListVariables(ctx, in.params())
					}),
				catalog.NewOperation("get_variable",
					"Get an Airflow variable by key.",
					true,
					func(ctx context.Context, api airflow.API, in variableKeyInput) (any, error) {
						if in.Key == "" {
							return nil, catalog.Invalidf("key is required")
						}
						return api.GetVariable(ctx, in.Key)
					}),
				catalog.NewOperation("create_variable",
					"Create a new Airflow variable.",
					false,
					func(ctx context.Context, api airflow.API, in writeVariableInput) (any, error) {
						if in.Key == "" {
							return nil, catalog.Invalidf("key is required")
						}
						return api.CreateVariable(ctx, airflow.Variable{
							Key:         in.Key,
							Value:       in.Value,
							Description: in.Description,
						})
					}),
				catalog.NewOperation("update_variable",
					"Update the value or description of an existing Airflow variable.",
					false,
					func(ctx context.Context, api airflow.API, in writeVariableInput) (any, error) {
						if in.Key == "" {
							return nil, catalog.Invalidf("key is required")
						}
						return api.UpdateVariable(ctx, airflow.Variable{
							Key:         in.Key,
							Value:       in.Value,
							Description: in.Description,
						})
					}),
				catalog.NewOperation("delete_variable",
					"Delete an Airflow variable by key.",
					false,
					func(ctx context.Context, api airflow.API, in variableKeyInput) (any, error) {
						if in.Key == "" {
							return nil, catalog.Invalidf("key is required")
						}
						if err := api.DeleteVariable(ctx, in.Key); err != nil {
							return nil, err
						}
						return map[string]string{"deleted": in.Key}, nil
					}),
			}
		},
	}
}
