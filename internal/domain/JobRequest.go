package domain

import "time"

// JobRequest é o pedido de ETL já validado: um intervalo fechado de datas
// [StartDate, EndDate]. As strings originais da requisição nunca saem do
// handler; a query GAQL é montada a partir destes time.Time.
type JobRequest struct {
	StartDate time.Time
	EndDate   time.Time
}
