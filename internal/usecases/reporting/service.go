package reporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/ozon-logistics-api/internal/config"
	"github.com/vfg2006/ozon-logistics-api/internal/domain"
	"github.com/vfg2006/ozon-logistics-api/pkg/apiErrors"
	"github.com/vfg2006/ozon-logistics-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type ReportService interface {
	GenerateReport(ctx context.Context, creds domain.Credentials, days int) (*domain.ReportDocument, error)
	GenerateSellerReport(ctx context.Context, telegramID int64, days int) (*domain.ReportDocument, error)
	AllowedPeriods() []int
}

type Service struct {
	sources       DataSourceFactory
	sellers       SellerFinder
	subscriptions SubscriptionChecker
	cfg           *config.Config
	now           func() time.Time
}

// NewService builds the report service. now defaults to time.Now.
func NewService(
	sources DataSourceFactory,
	sellers SellerFinder,
	subscriptions SubscriptionChecker,
	cfg *config.Config,
	now func() time.Time,
) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		sources:       sources,
		sellers:       sellers,
		subscriptions: subscriptions,
		cfg:           cfg,
		now:           now,
	}
}

func (s *Service) AllowedPeriods() []int {
	periods := make([]int, len(s.cfg.Report.AllowedPeriods))
	copy(periods, s.cfg.Report.AllowedPeriods)
	return periods
}

// GenerateReport builds a report for the given credentials over the last days.
// Input is validated before the data source is touched. When the report is
// degenerate both the document and an ErrDegenerateReport error are returned.
func (s *Service) GenerateReport(ctx context.Context, creds domain.Credentials, days int) (*domain.ReportDocument, error) {
	if err := creds.Validate(); err != nil {
		return nil, NewReportError(ErrMissingCredentials, apiErrors.ErrMissingRequiredData, "client_id and api_key must not be empty")
	}

	period, err := ResolvePeriod(days, s.now().UTC(), s.cfg.Report.MaxPeriodDays)
	if err != nil {
		return nil, err
	}

	return s.generate(ctx, creds, period)
}

// GenerateSellerReport builds a report for a registered seller. The seller must
// have Ozon connected and an active trial or subscription.
func (s *Service) GenerateSellerReport(ctx context.Context, telegramID int64, days int) (*domain.ReportDocument, error) {
	now := s.now().UTC()

	period, err := ResolvePeriod(days, now, s.cfg.Report.MaxPeriodDays)
	if err != nil {
		return nil, err
	}

	seller, err := s.sellers.GetByTelegramID(ctx, telegramID)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("report: error fetching seller")
		return nil, NewReportError(ErrSellerLookup, apiErrors.ErrDatabaseOperation, "failed to fetch seller")
	}
	if seller == nil {
		return nil, NewReportError(ErrSellerNotFound, apiErrors.ErrSellerNotFound, fmt.Sprintf("telegram id %d", telegramID))
	}
	if !seller.OzonConnected() {
		return nil, NewReportError(ErrOzonNotConnected, apiErrors.ErrOzonNotConnected, "connect an Ozon account before requesting reports")
	}
	if status := s.subscriptions.Status(seller, now); !status.Active() {
		return nil, NewReportError(ErrSubscriptionInactive, apiErrors.ErrSubscriptionInactive, "trial or subscription has expired")
	}

	return s.generate(ctx, *seller.Credentials, period)
}

func (s *Service) generate(ctx context.Context, creds domain.Credentials, period domain.Period) (*domain.ReportDocument, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"client_id": creds.ClientID,
		"days":      period.Days,
	})

	dataset, err := Aggregate(ctx, period, s.sources.DataSource(creds))
	if err != nil {
		return nil, err
	}

	doc, err := Synthesize(period, dataset.Analytics, dataset.Logistics, dataset.Products, s.now().UTC())
	if err != nil {
		if errors.Is(err, ErrDegenerateReport) {
			logger.Warn("report: generated with zero revenue, profit margin is undefined")
			return &doc, err
		}
		return nil, err
	}

	logger.Infof("report: generated for %d days with %d logistics records", period.Days, len(doc.LogisticsRecords))

	return &doc, nil
}
