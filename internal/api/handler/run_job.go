package handler

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/dataapps-variant/google-ads-compaign-stat/internal/domain"
	"github.com/dataapps-variant/google-ads-compaign-stat/internal/usecases/etljob"
	"github.com/dataapps-variant/google-ads-compaign-stat/pkg/log"
	"github.com/dataapps-variant/google-ads-compaign-stat/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Mensagens do contrato HTTP do job. Os corpos são texto puro.
const (
	invalidRequestMessage = "Invalid request: JSON payload with 'start_date' and 'end_date' is required."
	invalidDateMessage    = "Invalid request: 'start_date' and 'end_date' must be dates in the YYYY-MM-DD format."
	invalidRangeMessage   = "Invalid request: 'start_date' must not be after 'end_date'."
	noDataMessage         = "Successfully completed. No data to load."
)

type runJobRequest struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// RunJobHandler valida a requisição e dispara o pipeline de ETL. O extrator
// e o loader nunca são invocados para uma requisição inválida.
func RunJobHandler(service etljob.JobRunner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var payload runJobRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			logger.WithError(err).Warn("etl: request body is not valid JSON")
			writePlainText(w, http.StatusBadRequest, invalidRequestMessage)
			return
		}

		if payload.StartDate == nil || payload.EndDate == nil {
			logger.Warn("etl: missing start_date or end_date in payload")
			writePlainText(w, http.StatusBadRequest, invalidRequestMessage)
			return
		}

		startDate, err := utils.ParseDate(*payload.StartDate)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": *payload.StartDate,
				"error":      err.Error(),
			}).Warn("etl: invalid start_date parameter")
			writePlainText(w, http.StatusBadRequest, invalidDateMessage)
			return
		}

		endDate, err := utils.ParseDate(*payload.EndDate)
		if err != nil {
			logger.WithFields(log.Fields{
				"end_date": *payload.EndDate,
				"error":    err.Error(),
			}).Warn("etl: invalid end_date parameter")
			writePlainText(w, http.StatusBadRequest, invalidDateMessage)
			return
		}

		if endDate.Before(startDate) {
			logger.WithFields(log.Fields{
				"start_date": *payload.StartDate,
				"end_date":   *payload.EndDate,
			}).Warn("etl: start_date is after end_date")
			writePlainText(w, http.StatusBadRequest, invalidRangeMessage)
			return
		}

		result, err := service.Run(r.Context(), &domain.JobRequest{
			StartDate: startDate,
			EndDate:   endDate,
		})
		if err != nil {
			logger.WithFields(log.Fields{
				"kind":  string(etljob.KindOf(err)),
				"error": err.Error(),
			}).Error("etl: job failed")

			status := http.StatusInternalServerError
			if etljob.KindOf(err) == etljob.KindInvalidRequest {
				status = http.StatusBadRequest
			}

			writePlainText(w, status, fmt.Sprintf("An error occurred: %s", err.Error()))
			return
		}

		if result.NoData {
			writePlainText(w, http.StatusOK, noDataMessage)
			return
		}

		writePlainText(w, http.StatusOK, fmt.Sprintf("Success: Loaded %d rows.", result.RowsLoaded))
	})
}

func writePlainText(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(message)); err != nil {
		logrus.WithError(err).Warn("error writing response")
	}
}
