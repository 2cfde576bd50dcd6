package etljob

import (
	"context"

	"github.com/dataapps-variant/google-ads-compaign-stat/internal/domain"
)

// Extractor busca todos os registros da plataforma de anúncios para o
// intervalo pedido, já mapeados para o esquema de destino
type Extractor interface {
	FetchCampaignStats(ctx context.Context, req *domain.JobRequest) ([]*domain.CampaignStat, error)
}

// Loader insere a sequência de linhas na tabela de destino como um único
// lote. Nunca é chamado com o lote vazio; o orquestrador curto-circuita.
type Loader interface {
	InsertCampaignStats(ctx context.Context, stats []*domain.CampaignStat) (int, error)
}

// JobRunner executa o pipeline completo de um job de ETL
type JobRunner interface {
	Run(ctx context.Context, req *domain.JobRequest) (*domain.JobResult, error)
}
