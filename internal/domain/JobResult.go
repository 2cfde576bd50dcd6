package domain

// JobResult é o desfecho de uma execução bem-sucedida do job de ETL
type JobResult struct {
	JobID      string
	RowsLoaded int
	NoData     bool
}
