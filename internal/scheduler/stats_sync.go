package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/dataapps-variant/google-ads-compaign-stat/internal/config"
	"github.com/dataapps-variant/google-ads-compaign-stat/internal/domain"
	"github.com/dataapps-variant/google-ads-compaign-stat/internal/usecases/etljob"
)

// StatsSyncConfig representa a configuração do agendador interno de
// sincronização de estatísticas de campanha
type StatsSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// StatsSyncService agenda a execução periódica do mesmo job de ETL exposto
// em POST /run, sobre uma janela de lookback. O serviço é opcional e vem
// desabilitado por padrão: o contrato principal continua sendo o agendador
// externo re-invocando o endpoint.
type StatsSyncService struct {
	scheduler           *gocron.Scheduler
	config              StatsSyncConfig
	jobService          etljob.JobRunner
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

// NewStatsSyncService cria uma nova instância do serviço de sincronização
func NewStatsSyncService(jobService etljob.JobRunner, appConfig *config.Config) *StatsSyncService {
	syncConfig := StatsSyncConfig{
		CronSchedule: appConfig.StatsSync.CronSchedule,
		LookbackDays: appConfig.StatsSync.LookbackDays,
		SyncEnabled:  appConfig.StatsSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de estatísticas de campanha carregada")

	return &StatsSyncService{
		scheduler:  gocron.NewScheduler(time.UTC),
		config:     syncConfig,
		jobService: jobService,
	}
}

// Start inicia o agendador
func (s *StatsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização interna de estatísticas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de estatísticas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncCampaignStats()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de estatísticas: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de estatísticas")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara a sincronização fora do horário agendado
func (s *StatsSyncService) TriggerManualSync() {
	go s.syncCampaignStats()
}

// GetStatus retorna o estado atual do agendador
func (s *StatsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":                s.config.SyncEnabled,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}

// syncCampaignStats executa o job de ETL para a janela de lookback
func (s *StatsSyncService) syncCampaignStats() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de estatísticas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	req := s.lookbackRange(time.Now().UTC())

	logrus.WithFields(logrus.Fields{
		"start_date": req.StartDate.Format(time.DateOnly),
		"end_date":   req.EndDate.Format(time.DateOnly),
	}).Info("Iniciando sincronização agendada de estatísticas de campanha")

	result, err := s.jobService.Run(context.Background(), req)
	if err != nil {
		s.syncMutex.Lock()
		s.lastSyncError = err.Error()
		s.syncMutex.Unlock()

		logrus.WithError(err).Error("Erro na sincronização agendada de estatísticas")
		return
	}

	s.syncMutex.Lock()
	s.lastSyncError = ""
	s.syncMutex.Unlock()

	if result.NoData {
		logrus.Info("Sincronização agendada concluída sem dados para carregar")
		return
	}

	logrus.WithFields(logrus.Fields{
		"job_id":      result.JobID,
		"rows_loaded": result.RowsLoaded,
	}).Info("Sincronização agendada concluída com sucesso")
}

// lookbackRange calcula a janela fechada [hoje-lookback, ontem]
func (s *StatsSyncService) lookbackRange(now time.Time) *domain.JobRequest {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return &domain.JobRequest{
		StartDate: today.AddDate(0, 0, -s.config.LookbackDays),
		EndDate:   today.AddDate(0, 0, -1),
	}
}
