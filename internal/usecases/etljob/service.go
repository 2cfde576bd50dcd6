package etljob

import (
	"context"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/dataapps-variant/google-ads-compaign-stat/internal/config"
	"github.com/dataapps-variant/google-ads-compaign-stat/internal/domain"
	"github.com/dataapps-variant/google-ads-compaign-stat/pkg/log"
	"github.com/dataapps-variant/google-ads-compaign-stat/pkg/utils"
)

type Service struct {
	cfg       *config.Config
	extractor Extractor
	loader    Loader
}

func NewService(cfg *config.Config, extractor Extractor, loader Loader) JobRunner {
	return &Service{
		cfg:       cfg,
		extractor: extractor,
		loader:    loader,
	}
}

// Run executa o pipeline extrair → carregar para uma requisição já validada.
// Nenhum estado sobrevive entre execuções e nenhuma transição é re-tentada;
// re-execução é responsabilidade do agendador que chama o serviço.
func (s *Service) Run(ctx context.Context, req *domain.JobRequest) (*domain.JobResult, error) {
	jobID, err := gonanoid.New()
	if err != nil {
		jobID = "unknown"
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"job_id":      jobID,
		"customer_id": s.cfg.Ads.CustomerID,
		"start_date":  utils.FormatDate(req.StartDate),
		"end_date":    utils.FormatDate(req.EndDate),
	})

	logger.Info("etl: starting campaign stats job")

	stats, err := s.extractor.FetchCampaignStats(ctx, req)
	if err != nil {
		logger.WithError(err).Error("etl: extraction failed")
		return nil, NewExtractionFailure(err)
	}

	if len(stats) == 0 {
		logger.Info("etl: no data returned from Google Ads")
		return &domain.JobResult{JobID: jobID, NoData: true}, nil
	}

	loaded, err := s.loader.InsertCampaignStats(ctx, stats)
	if err != nil {
		logger.WithError(err).Error("etl: load failed")
		return nil, NewLoadFailure(err)
	}

	logger.WithField("rows_loaded", loaded).Info("etl: job completed")

	return &domain.JobResult{JobID: jobID, RowsLoaded: loaded}, nil
}
