package airflow

import (
	"net/url"
	"strconv"
)

// ListParams are the common pagination controls shared by every collection
// endpoint. Zero values are omitted from the query string so the server
// applies its own defaults.
type ListParams struct {
	Limit   int
	Offset  int
	OrderBy string
}

func (p ListParams) query() url.Values {
	q := url.Values{}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}
	if p.OrderBy != "" {
		q.Set("order_by", p.OrderBy)
	}
	return q
}

// ListDAGsParams filter GET /dags.
type ListDAGsParams struct {
	ListParams

	Tags         []string
	OnlyActive   bool
	Paused       *bool
	DAGIDPattern string
}

func (p ListDAGsParams) query() url.Values {
	q := p.ListParams.query()
	for _, tag := range p.Tags {
		q.Add("tags", tag)
	}
	if p.OnlyActive {
		q.Set("only_active", "true")
	}
	if p.Paused != nil {
		q.Set("paused", strconv.FormatBool(*p.Paused))
	}
	if p.DAGIDPattern != "" {
		q.Set("dag_id_pattern", p.DAGIDPattern)
	}
	return q
}

// ListDAGRunsParams filter GET /dags/{dag_id}/dagRuns.
type ListDAGRunsParams struct {
	ListParams

	State            []string
	ExecutionDateGTE string
	ExecutionDateLTE string
}

func (p ListDAGRunsParams) query() url.Values {
	q := p.ListParams.query()
	for _, s := range p.State {
		q.Add("state", s)
	}
	if p.ExecutionDateGTE != "" {
		q.Set("execution_date_gte", p.ExecutionDateGTE)
	}
	if p.ExecutionDateLTE != "" {
		q.Set("execution_date_lte", p.ExecutionDateLTE)
	}
	return q
}

// ListTaskInstancesParams filter task-instance listings.
type ListTaskInstancesParams struct {
	ListParams

	State []string
	Pool  []string
	Queue []string
}

func (p ListTaskInstancesParams) query() url.Values {
	q := p.ListParams.query()
	for _, s := range p.State {
		q.Add("state", s)
	}
	for _, s := range p.Pool {
		q.Add("pool", s)
	}
	for _, s := range p.Queue {
		q.Add("queue", s)
	}
	return q
}

// ListDatasetEventsParams filter GET /datasets/events.
type ListDatasetEventsParams struct {
	ListParams

	DatasetID    int
	SourceDAGID  string
	SourceTaskID string
	SourceRunID  string
}

func (p ListDatasetEventsParams) query() url.Values {
	q := p.ListParams.query()
	if p.DatasetID > 0 {
		q.Set("dataset_id", strconv.Itoa(p.DatasetID))
	}
	if p.SourceDAGID != "" {
		q.Set("source_dag_id", p.SourceDAGID)
	}
	if p.SourceTaskID != "" {
		q.Set("source_task_id", p.SourceTaskID)
	}
	if p.SourceRunID != "" {
		q.Set("source_run_id", p.SourceRunID)
	}
	return q
}

// ListEventLogsParams filter GET /eventLogs.
type ListEventLogsParams struct {
	ListParams

	DAGID  string
	TaskID string
	Event  string
}

func (p ListEventLogsParams) query() url.Values {
	q := p.ListParams.query()
	if p.DAGID != "" {
		q.Set("dag_id", p.DAGID)
	}
	if p.TaskID != "" {
		q.Set("task_id", p.TaskID)
	}
	if p.Event != "" {
		q.Set("event", p.Event)
	}
	return q
}
