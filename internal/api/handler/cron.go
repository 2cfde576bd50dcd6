package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/dataapps-variant/google-ads-compaign-stat/internal/scheduler"
)

// CronJobTypeStatsSync identifica a cron job de sincronização de estatísticas
const CronJobTypeStatsSync = "stats-sync"

// RunCronJob executa manualmente a sincronização interna de estatísticas,
// fora do horário agendado
func RunCronJob(service *scheduler.StatsSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		if service == nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"message": "Serviço de sincronização de estatísticas não disponível",
			})
			return
		}

		service.TriggerManualSync()

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    CronJobTypeStatsSync,
		})
	}
}

// GetCronStatus retorna o status da cron job de sincronização
func GetCronStatus(service *scheduler.StatsSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		if service == nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"message": "Serviço de sincronização de estatísticas não disponível",
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			CronJobTypeStatsSync: service.GetStatus(),
		})
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao serializar a resposta")
	}
}
