package bigquery

import (
	"context"
	"fmt"
	"strings"

	bq "cloud.google.com/go/bigquery"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"github.com/dataapps-variant/google-ads-compaign-stat/internal/config"
	"github.com/dataapps-variant/google-ads-compaign-stat/internal/domain"
)

// inserter é o recorte do Inserter do BigQuery que o loader usa
type inserter interface {
	Put(ctx context.Context, src any) error
}

// CampaignStatLoader faz o insert streaming das linhas transformadas na
// tabela de destino configurada (project.dataset.table)
type CampaignStatLoader struct {
	cfg      *config.Config
	inserter inserter
}

// NewLoader cria o client do BigQuery e o loader apontando para a tabela de
// destino. O client usa Application Default Credentials quando nenhum
// arquivo de credenciais é configurado.
func NewLoader(ctx context.Context, cfg *config.Config) (*CampaignStatLoader, error) {
	opts := []option.ClientOption{}
	if cfg.BigQuery.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.BigQuery.CredentialsFile))
	}

	client, err := bq.NewClient(ctx, cfg.BigQuery.Project, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar o client do BigQuery")
	}

	return &CampaignStatLoader{
		cfg:      cfg,
		inserter: client.Dataset(cfg.BigQuery.Dataset).Table(cfg.BigQuery.Table).Inserter(),
	}, nil
}

// statRow adapta domain.CampaignStat para o insert streaming. O custo viaja
// como NUMERIC (big.Rat); o insertID vazio mantém a tabela append-only, sem
// deduplicação do lado do BigQuery.
type statRow struct {
	stat *domain.CampaignStat
}

func (r statRow) Save() (map[string]bq.Value, string, error) {
	return map[string]bq.Value{
		"event_date":           r.stat.EventDate,
		"external_customer_id": r.stat.ExternalCustomerID,
		"campaign_id":          r.stat.CampaignID,
		"ad_network_type":      r.stat.AdNetworkType,
		"device":               r.stat.Device,
		"cost":                 r.stat.Cost.Rat(),
	}, "", nil
}

// InsertCampaignStats submete todas as linhas como um único lote. Qualquer
// erro por linha reportado pelo destino é tratado como falha total do job,
// mesmo que parte das linhas tenha sido gravada; não há rollback.
func (l *CampaignStatLoader) InsertCampaignStats(ctx context.Context, stats []*domain.CampaignStat) (int, error) {
	rows := make([]statRow, 0, len(stats))
	for _, stat := range stats {
		rows = append(rows, statRow{stat: stat})
	}

	if err := l.inserter.Put(ctx, rows); err != nil {
		if multiErr, ok := err.(bq.PutMultiError); ok {
			logrus.WithFields(logrus.Fields{
				"table":       l.cfg.BigQuery.TableID(),
				"failed_rows": len(multiErr),
			}).Error("loader: BigQuery reported per-row insert errors")
			return 0, formatPutErrors(multiErr)
		}

		logrus.WithError(err).Error("loader: BigQuery streaming insert failed")
		return 0, errors.Wrap(err, "erro no insert streaming do BigQuery")
	}

	logrus.WithFields(logrus.Fields{
		"table":      l.cfg.BigQuery.TableID(),
		"total_rows": len(rows),
	}).Info("loader: rows inserted into BigQuery")

	return len(rows), nil
}

// formatPutErrors achata os erros por linha na mensagem propagada ao caller
func formatPutErrors(multiErr bq.PutMultiError) error {
	msgs := make([]string, 0, len(multiErr))
	for _, rowErr := range multiErr {
		msgs = append(msgs, fmt.Sprintf("linha %d: %s", rowErr.RowIndex, rowErr.Error()))
	}

	return fmt.Errorf("BigQuery load job failed: %s", strings.Join(msgs, "; "))
}
