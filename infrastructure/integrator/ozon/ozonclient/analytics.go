package ozonclient

import (
	"context"

	ozondomain "github.com/vfg2006/ozon-logistics-api/infrastructure/integrator/ozon/domain"
	"github.com/vfg2006/ozon-logistics-api/internal/domain"
)

const (
	analyticsDataPath       = "/v1/analytics/data"
	averageDeliveryTimePath = "/v1/analytics/average-delivery-time/summary"
)

func (c *OzonClient) GetAnalyticsData(ctx context.Context, creds domain.Credentials, req ozondomain.AnalyticsDataRequest) (*ozondomain.AnalyticsDataResponse, error) {
	var response ozondomain.AnalyticsDataResponse
	if err := c.post(ctx, creds, analyticsDataPath, req, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *OzonClient) GetAverageDeliveryTime(ctx context.Context, creds domain.Credentials) (*ozondomain.AverageDeliveryTimeSummaryResponse, error) {
	var response ozondomain.AverageDeliveryTimeSummaryResponse
	if err := c.post(ctx, creds, averageDeliveryTimePath, struct{}{}, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
