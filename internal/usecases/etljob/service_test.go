package etljob

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dataapps-variant/google-ads-compaign-stat/internal/config"
	"github.com/dataapps-variant/google-ads-compaign-stat/internal/domain"
	"github.com/dataapps-variant/google-ads-compaign-stat/internal/usecases/etljob/mocks"
)

func testRequest() *domain.JobRequest {
	return &domain.JobRequest{
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestServiceRun_NoData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExtractor := mocks.NewMockExtractor(ctrl)
	mockLoader := mocks.NewMockLoader(ctrl)

	// Extração vazia: o loader não pode ser invocado
	mockExtractor.EXPECT().
		FetchCampaignStats(gomock.Any(), testRequest()).
		Return([]*domain.CampaignStat{}, nil)

	service := NewService(&config.Config{}, mockExtractor, mockLoader)

	result, err := service.Run(context.Background(), testRequest())

	assert.NoError(t, err)
	assert.True(t, result.NoData)
	assert.Equal(t, 0, result.RowsLoaded)
	assert.NotEmpty(t, result.JobID)
}

func TestServiceRun_LoadsExtractedRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExtractor := mocks.NewMockExtractor(ctrl)
	mockLoader := mocks.NewMockLoader(ctrl)

	stats := []*domain.CampaignStat{
		{
			EventDate:          "2024-01-01",
			ExternalCustomerID: 9876543210,
			CampaignID:         111,
			AdNetworkType:      "SEARCH",
			Device:             "MOBILE",
			Cost:               domain.CostFromMicros(1500000),
		},
		{
			EventDate:          "2024-01-02",
			ExternalCustomerID: 9876543210,
			CampaignID:         222,
			AdNetworkType:      "CONTENT",
			Device:             "DESKTOP",
			Cost:               domain.CostFromMicros(2000000),
		},
	}

	mockExtractor.EXPECT().
		FetchCampaignStats(gomock.Any(), testRequest()).
		Return(stats, nil)

	// O loader recebe exatamente a sequência extraída, na mesma ordem
	mockLoader.EXPECT().
		InsertCampaignStats(gomock.Any(), stats).
		DoAndReturn(func(_ context.Context, got []*domain.CampaignStat) (int, error) {
			assert.Len(t, got, 2)
			assert.True(t, got[0].Cost.Equal(decimal.RequireFromString("1.5")))
			assert.True(t, got[1].Cost.Equal(decimal.RequireFromString("2")))
			return len(got), nil
		})

	service := NewService(&config.Config{}, mockExtractor, mockLoader)

	result, err := service.Run(context.Background(), testRequest())

	assert.NoError(t, err)
	assert.False(t, result.NoData)
	assert.Equal(t, 2, result.RowsLoaded)
}

func TestServiceRun_ExtractionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExtractor := mocks.NewMockExtractor(ctrl)
	mockLoader := mocks.NewMockLoader(ctrl)

	upstreamErr := errors.New("google ads api: invalid customer id (INVALID_ARGUMENT)")

	// Falha na submissão da query: o loader não pode ser invocado
	mockExtractor.EXPECT().
		FetchCampaignStats(gomock.Any(), testRequest()).
		Return(nil, upstreamErr)

	service := NewService(&config.Config{}, mockExtractor, mockLoader)

	result, err := service.Run(context.Background(), testRequest())

	assert.Nil(t, result)
	assert.Equal(t, KindExtractionFailure, KindOf(err))
	assert.EqualError(t, err, upstreamErr.Error())
}

func TestServiceRun_LoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExtractor := mocks.NewMockExtractor(ctrl)
	mockLoader := mocks.NewMockLoader(ctrl)

	stats := []*domain.CampaignStat{
		{EventDate: "2024-01-01", CampaignID: 111, Cost: domain.CostFromMicros(1500000)},
	}
	upstreamErr := errors.New("BigQuery load job failed: linha 0: schema mismatch")

	mockExtractor.EXPECT().
		FetchCampaignStats(gomock.Any(), testRequest()).
		Return(stats, nil)

	mockLoader.EXPECT().
		InsertCampaignStats(gomock.Any(), stats).
		Return(0, upstreamErr)

	service := NewService(&config.Config{}, mockExtractor, mockLoader)

	result, err := service.Run(context.Background(), testRequest())

	assert.Nil(t, result)
	assert.Equal(t, KindLoadFailure, KindOf(err))
	assert.EqualError(t, err, upstreamErr.Error())
}

func TestKindOf_UnknownError(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(errors.New("erro qualquer")))
}
