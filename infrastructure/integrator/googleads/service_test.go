package googleads

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	adsdomain "github.com/dataapps-variant/google-ads-compaign-stat/infrastructure/integrator/googleads/domain"
	"github.com/dataapps-variant/google-ads-compaign-stat/internal/config"
	"github.com/dataapps-variant/google-ads-compaign-stat/internal/domain"
)

// stubAdsClient captura a query submetida e devolve lotes pré-montados
type stubAdsClient struct {
	batches       []adsdomain.SearchStreamBatch
	err           error
	gotCustomerID string
	gotQuery      string
}

func (s *stubAdsClient) SearchStream(_ context.Context, customerID string, query string) ([]adsdomain.SearchStreamBatch, error) {
	s.gotCustomerID = customerID
	s.gotQuery = query

	if s.err != nil {
		return nil, s.err
	}
	return s.batches, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Ads.CustomerID = "1234567890"
	return cfg
}

func januaryRequest() *domain.JobRequest {
	return &domain.JobRequest{
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestFetchCampaignStats_MapsRowsInOrder(t *testing.T) {
	client := &stubAdsClient{
		batches: []adsdomain.SearchStreamBatch{
			{
				Results: []adsdomain.CampaignStatRow{
					{
						Campaign: adsdomain.Campaign{ID: 111},
						Segments: adsdomain.Segments{Date: "2024-01-01", Device: "MOBILE", AdNetworkType: "SEARCH"},
						Metrics:  adsdomain.Metrics{CostMicros: 1500000},
						Customer: adsdomain.Customer{ID: 9876543210},
					},
				},
			},
			{
				Results: []adsdomain.CampaignStatRow{
					{
						Campaign: adsdomain.Campaign{ID: 222},
						Segments: adsdomain.Segments{Date: "2024-01-02", Device: "DESKTOP", AdNetworkType: "CONTENT"},
						Metrics:  adsdomain.Metrics{CostMicros: 2000000},
						Customer: adsdomain.Customer{ID: 9876543210},
					},
				},
			},
		},
	}

	integrator := New(testConfig(), client)

	stats, err := integrator.FetchCampaignStats(context.Background(), januaryRequest())

	assert.NoError(t, err)
	assert.Len(t, stats, 2)

	// A ordem dos lotes e dos registros é preservada
	assert.Equal(t, "2024-01-01", stats[0].EventDate)
	assert.Equal(t, int64(111), stats[0].CampaignID)
	assert.Equal(t, int64(9876543210), stats[0].ExternalCustomerID)
	assert.Equal(t, "MOBILE", stats[0].Device)
	assert.Equal(t, "SEARCH", stats[0].AdNetworkType)
	assert.True(t, stats[0].Cost.Equal(decimal.RequireFromString("1.5")))

	assert.Equal(t, int64(222), stats[1].CampaignID)
	assert.True(t, stats[1].Cost.Equal(decimal.RequireFromString("2")))
}

func TestFetchCampaignStats_QueryUsesValidatedDates(t *testing.T) {
	client := &stubAdsClient{}

	integrator := New(testConfig(), client)

	_, err := integrator.FetchCampaignStats(context.Background(), januaryRequest())

	assert.NoError(t, err)
	assert.Equal(t, "1234567890", client.gotCustomerID)
	assert.Contains(t, client.gotQuery, "FROM campaign")
	assert.Contains(t, client.gotQuery, "segments.date BETWEEN '2024-01-01' AND '2024-01-31'")
	assert.Contains(t, client.gotQuery, "metrics.cost_micros")
	assert.Contains(t, client.gotQuery, "segments.ad_network_type")
	assert.Contains(t, client.gotQuery, "customer.id")
}

func TestFetchCampaignStats_EmptyResult(t *testing.T) {
	client := &stubAdsClient{batches: []adsdomain.SearchStreamBatch{}}

	integrator := New(testConfig(), client)

	stats, err := integrator.FetchCampaignStats(context.Background(), januaryRequest())

	// Zero registros é uma sequência vazia, não um erro
	assert.NoError(t, err)
	assert.NotNil(t, stats)
	assert.Empty(t, stats)
}

func TestFetchCampaignStats_PropagatesPlatformError(t *testing.T) {
	upstreamErr := errors.New("google ads api: the caller does not have permission (PERMISSION_DENIED)")
	client := &stubAdsClient{err: upstreamErr}

	integrator := New(testConfig(), client)

	stats, err := integrator.FetchCampaignStats(context.Background(), januaryRequest())

	assert.Nil(t, stats)
	assert.EqualError(t, err, upstreamErr.Error())
}
