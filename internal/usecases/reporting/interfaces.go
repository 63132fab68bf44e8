package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/ozon-logistics-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// DataSource provides the three data sets a report is built from.
// Implementations own their timeouts and retries.
type DataSource interface {
	FetchAnalytics(ctx context.Context, period domain.Period) (domain.AnalyticsSummary, error)
	FetchLogistics(ctx context.Context, period domain.Period) ([]domain.LogisticsRecord, error)
	// FetchCatalog returns a live snapshot, not scoped to a period.
	FetchCatalog(ctx context.Context) ([]domain.ProductRecord, error)
}

// DataSourceFactory builds a DataSource authorized with the seller credentials.
type DataSourceFactory interface {
	DataSource(creds domain.Credentials) DataSource
}

type SellerFinder interface {
	GetByTelegramID(ctx context.Context, telegramID int64) (*domain.Seller, error)
}

type SubscriptionChecker interface {
	Status(seller *domain.Seller, now time.Time) domain.SubscriptionStatus
}
