package domains

import (
	"context"

	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/airflow"
	"github.com/clarifyhealth/mcp-server-apache-airflow/internal/catalog"
)

type listConnectionsInput struct {
	paginationInput
}

type connectionIDInput struct {
	ConnectionID string `json:"connection_id" jsonschema:"the connection identifier"`
}

type writeConnectionInput struct {
	ConnectionID string `json:"connection_id" jsonschema:"the connection identifier"`
	ConnType     string `json:"conn_type" jsonschema:"the connection type, for example postgres or http"`
	Description  string `json:"description,omitempty" jsonschema:"optional description"`
	Host         string `json:"host,omitempty" jsonschema:"host name or address"`
	Schema       string `json:"schema,omitempty" jsonschema:"database schema"`
	Login        string `json:"login,omitempty" jsonschema:"login user name"`
	Password     string `json:"password,omitempty" jsonschema:"password; never returned by reads"`
	Port         int    `json:"port,omitempty" jsonschema:"port number"`
	Extra        string `json:"extra,omitempty" jsonschema:"extra configuration as a JSON string"`
}

func (in writeConnectionInput) connection() airflow.Connection {
	return airflow.Connection{
		ConnectionID: in.ConnectionID,
		ConnType:     in.ConnType,
		Description:  in.Description,
		Host:         in.Host,
		Schema:       in.Schema,
		Login:        in.Login,
		Password:     in.Password,
		Port:         in.Port,
		Extra:        in.Extra,
	}
}

func connectionDomain() Domain {
	return Domain{
		name: "connection",
		operations: func() []catalog.Operation {
			return []catalog.Operation{
				catalog.NewOperation("list_connections",
					"List Airflow connections with pagination. Passwords are never included.",
					true,
					func(ctx context.Context, api airflow.API, in listConnectionsInput) (any, error) {
						return api.ListConnections(ctx, in.params())
					}),
				catalog.NewOperation("get_connection",
					"Get an Airflow connection by identifier. The password is never included.",
					true,
					func(ctx context.Context, api airflow.API, in connectionIDInput) (any, error) {
						if in.ConnectionID == "" {
							return nil, catalog.Invalidf("connection_id is required")
						}
						return api.GetConnection(ctx, in.ConnectionID)
					}),
				catalog.NewOperation("create_connection",
					"Create a new Airflow connection.",
					false,
					func(ctx context.Context, api airflow.API, in writeConnectionInput) (any, error) {
						if in.ConnectionID == "" {
							return nil, catalog.Invalidf("connection_id is required")
						}
						if in.ConnType == "" {
							return nil, catalog.Invalidf("conn_type is required")
						}
						return api.CreateConnection(ctx, in.connection())
					}),
				catalog.NewOperation("update_connection",
					"Update fields of an existing Airflow connection.",
					false,
					func(ctx context.Context, api airflow.API, in writeConnectionInput) (any, error) {
						if in.ConnectionID == "" {
							return nil, catalog.Invalidf("connection_id is required")
						}
						return api.UpdateConnection(ctx, in.connection())
					}),
				catalog.NewOperation("delete_connection",
					"Delete an Airflow connection by identifier.",
					false,
					func(ctx context.Context, api airflow.API, in connectionIDInput) (any, error) {
						if in.ConnectionID == "" {
							return nil, catalog.Invalidf("connection_id is required")
						}
						if err := api.DeleteConnection(ctx, in.ConnectionID); err != nil {
							return nil, err
						}
						return map[string]string{"deleted": in.ConnectionID}, nil
					}),
				catalog.NewOperation("test_connection",
					"Test whether a connection configuration can reach its target system.",
					false,
					func(ctx context.Context, api airflow.API, in writeConnectionInput) (any, error) {
						if in.ConnType == "" {
							return nil, catalog.Invalidf("conn_type is required")
						}
						return api.TestConnection(ctx, in.connection())
					}),
			}
		},
	}
}
