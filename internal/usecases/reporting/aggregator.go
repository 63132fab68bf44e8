package reporting

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/ozon-logistics-api/internal/domain"
	"github.com/vfg2006/ozon-logistics-api/pkg/log"
)

// Dataset is the joined result of the three fetches of a report request.
type Dataset struct {
	Analytics domain.AnalyticsSummary
	Logistics []domain.LogisticsRecord
	Products  []domain.ProductRecord
}

// Aggregate fetches analytics, logistics and the catalog concurrently.
// The first failure cancels the remaining fetches and no partial dataset is
// returned. Fetched records are validated; malformed payloads are treated as
// an unavailable data source.
func Aggregate(ctx context.Context, period domain.Period, source DataSource) (*Dataset, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"period_from": period.DateFrom(),
		"period_to":   period.DateTo(),
	})

	var (
		analytics domain.AnalyticsSummary
		logistics []domain.LogisticsRecord
		products  []domain.ProductRecord
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		result, err := source.FetchAnalytics(gctx, period)
		if err != nil {
			return newUnavailableError(DataSetAnalytics, err)
		}
		if err := result.Validate(); err != nil {
			return newUnavailableError(DataSetAnalytics, err)
		}
		analytics = result
		return nil
	})

	g.Go(func() error {
		result, err := source.FetchLogistics(gctx, period)
		if err != nil {
			return newUnavailableError(DataSetLogistics, err)
		}
		for _, record := range result {
			if err := record.Validate(); err != nil {
				return newUnavailableError(DataSetLogistics, err)
			}
		}
		logistics = result
		return nil
	})

	g.Go(func() error {
		result, err := source.FetchCatalog(gctx)
		if err != nil {
			return newUnavailableError(DataSetCatalog, err)
		}
		if err := domain.ValidateCatalog(result); err != nil {
			return newUnavailableError(DataSetCatalog, err)
		}
		products = result
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.WithError(err).Warn("report: data aggregation failed")
		return nil, err
	}

	logger.Debugf("report: aggregated %d logistics records and %d products", len(logistics), len(products))

	return &Dataset{
		Analytics: analytics,
		Logistics: logistics,
		Products:  products,
	}, nil
}
