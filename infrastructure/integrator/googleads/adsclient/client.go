package adsclient

import (
	"context"
	"net/http"
	"time"

	adsdomain "github.com/dataapps-variant/google-ads-compaign-stat/infrastructure/integrator/googleads/domain"
	"github.com/dataapps-variant/google-ads-compaign-stat/internal/config"
)

type Client interface {
	SearchStream(ctx context.Context, customerID string, query string) ([]adsdomain.SearchStreamBatch, error)
}

type GoogleAdsClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	client := &GoogleAdsClient{
		Cfg: cfg,
		// A consulta não é cancelável depois de iniciada; o timeout do client
		// é o único limite aplicado deste lado
		HTTPClient: &http.Client{Timeout: 2 * time.Minute},
	}
	return client
}
