package reporting_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/ozon-logistics-api/internal/domain"
)

var referenceNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func sampleAnalytics() domain.AnalyticsSummary {
	return domain.AnalyticsSummary{
		TotalOrders:         150,
		TotalRevenue:        decimal.RequireFromString("45000.50"),
		AverageDeliveryTime: decimal.RequireFromString("2.5"),
		ReturnRate:          decimal.RequireFromString("0.05"),
	}
}

func sampleLogistics(from time.Time) []domain.LogisticsRecord {
	delivered := from.AddDate(0, 0, 2)
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
	}
}

func sampleProducts() []domain.ProductRecord {
	return []domain.ProductRecord{
		{SKU: "SKU001", Name: "Тестовый товар 1", Price: decimal.RequireFromString("1000.00"), StockCount: 50, Category: "Электроника"},
		{SKU: "SKU002", Name: "Тестовый товар 2", Price: decimal.RequireFromString("500.00"), StockCount: 25, Category: "Книги"},
	}
}

func samplePeriod(days int) domain.Period {
	return domain.Period{From: referenceNow.AddDate(0, 0, -days), To: referenceNow, Days: days}
}
