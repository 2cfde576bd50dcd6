package googleads

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/dataapps-variant/google-ads-compaign-stat/infrastructure/integrator/googleads/adsclient"
	"github.com/dataapps-variant/google-ads-compaign-stat/internal/config"
	"github.com/dataapps-variant/google-ads-compaign-stat/internal/domain"
	"github.com/dataapps-variant/google-ads-compaign-stat/pkg/utils"
)

type GoogleAdsIntegrator struct {
	cfg    *config.Config
	Client adsclient.Client
}

func New(cfg *config.Config, client adsclient.Client) *GoogleAdsIntegrator {
	return &GoogleAdsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// Query GAQL de estatísticas de campanha. As datas são re-serializadas a
// partir dos time.Time já validados, nunca das strings da requisição.
const campaignStatsQuery = `
        SELECT
            campaign.id,
            segments.date,
            metrics.cost_micros,
            segments.device,
            segments.ad_network_type,
            customer.id
        FROM campaign
        WHERE segments.date BETWEEN '%s' AND '%s'`

// FetchCampaignStats consulta a API do Google Ads para o intervalo pedido e
// mapeia cada registro para uma linha do esquema de destino, preservando a
// ordem dos resultados. Zero registros devolve uma fatia vazia, não um erro.
func (s *GoogleAdsIntegrator) FetchCampaignStats(ctx context.Context, req *domain.JobRequest) ([]*domain.CampaignStat, error) {
	query := fmt.Sprintf(campaignStatsQuery,
		utils.FormatDate(req.StartDate), utils.FormatDate(req.EndDate))

	batches, err := s.Client.SearchStream(ctx, s.cfg.Ads.CustomerID, query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": s.cfg.Ads.CustomerID,
			"error":       err.Error(),
		}).Error("stats: failed to query campaign stats from Google Ads")
		return nil, err
	}

	stats := make([]*domain.CampaignStat, 0)
	for _, batch := range batches {
		for _, row := range batch.Results {
			stats = append(stats, &domain.CampaignStat{
				EventDate:          row.Segments.Date,
				ExternalCustomerID: row.Customer.ID,
				CampaignID:         row.Campaign.ID,
				AdNetworkType:      row.Segments.AdNetworkType,
				Device:             row.Segments.Device,
				Cost:               domain.CostFromMicros(row.Metrics.CostMicros),
			})
		}
	}

	logrus.WithFields(logrus.Fields{
		"customer_id": s.cfg.Ads.CustomerID,
		"start_date":  utils.FormatDate(req.StartDate),
		"end_date":    utils.FormatDate(req.EndDate),
		"total_rows":  len(stats),
	}).Info("stats: campaign stats retrieved from Google Ads")

	return stats, nil
}
