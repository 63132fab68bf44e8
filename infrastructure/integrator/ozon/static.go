package ozon

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/ozon-logistics-api/internal/domain"
)

// StaticDataSource serves a fixed demo data set. It is used when the service
// runs without Seller API access and in tests that need a stable snapshot.
type StaticDataSource struct{}

func NewStaticDataSource() *StaticDataSource {
	return &StaticDataSource{}
}

func (StaticDataSource) FetchAnalytics(ctx context.Context, _ domain.Period) (domain.AnalyticsSummary, error) {
	if err := ctx.Err(); err != nil {
		return domain.AnalyticsSummary{}, err
	}
	return domain.AnalyticsSummary{
		TotalOrders:         150,
		TotalRevenue:        decimal.RequireFromString("45000.50"),
		AverageDeliveryTime: decimal.RequireFromString("2.5"),
		ReturnRate:          decimal.RequireFromString("0.05"),
	}, nil
}

// FetchLogistics returns one delivered FBS order two days into the period and
// one FBO order still in transit.
func (StaticDataSource) FetchLogistics(ctx context.Context, period domain.Period) ([]domain.LogisticsRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	delivered := period.From.AddDate(0, 0, 2)
	return []domain.LogisticsRecord{
		{
			OrderID:      "12345678",
			DeliveryType: domain.DeliveryTypeFBS,
			Status:       domain.DeliveryStatusDelivered,
			Cost:         decimal.RequireFromString("150.00"),
			DeliveryDate: &delivered,
			Warehouse:    "Москва",
		},
		{
			OrderID:      "12345679",
			DeliveryType: domain.DeliveryTypeFBO,
			Status:       domain.DeliveryStatusInTransit,
			Cost:         decimal.RequireFromString("200.00"),
			Warehouse:    "Санкт-Петербург",
		},
	}, nil
}

func (StaticDataSource) FetchCatalog(ctx context.Context) ([]domain.ProductRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []domain.ProductRecord{
		{
			SKU:        "SKU001",
			Name:       "Тестовый товар 1",
			Price:      decimal.RequireFromString("1000.00"),
			StockCount: 50,
			Category:   "Электроника",
		},
		{
			SKU:        "SKU002",
			Name:       "Тестовый товар 2",
			Price:      decimal.RequireFromString("500.00"),
			StockCount: 25,
			Category:   "Книги",
		},
	}, nil
}
