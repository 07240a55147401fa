package domains

import "github.com/clarifyhealth/mcp-server-apache-airflow/internal/airflow"

// paginationInput is embedded by every list-style tool input. All fields
// are optional; the Airflow server applies its own defaults for omitted
// values.
type paginationInput struct {
	Limit   int    `json:"limit,omitempty" jsonschema:"maximum number of entries to return"`
	Offset  int    `json:"offset,omitempty" jsonschema:"number of entries to skip"`
	OrderBy string `json:"order_by,omitempty" jsonschema:"field to order results by, prefix with - for descending"`
}

func (p paginationInput) params() airflow.ListParams {
	return airflow.ListParams{
		Limit:   p.Limit,
		Offset:  p.Offset,
		OrderBy: p.OrderBy,
	}
}
