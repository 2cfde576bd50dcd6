package utils

import "time"

// ParseDate interpreta uma data no formato YYYY-MM-DD de forma estrita.
// Datas malformadas nunca chegam à montagem da query GAQL.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(time.DateOnly, dateStr)
}

// FormatDate serializa a data de volta para o formato aceito pela GAQL
func FormatDate(date time.Time) string {
	return date.Format(time.DateOnly)
}
