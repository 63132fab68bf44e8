package subscribing

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ozon-logistics-api/infrastructure/repository"
	"github.com/vfg2006/ozon-logistics-api/internal/config"
	"github.com/vfg2006/ozon-logistics-api/internal/domain"
	"github.com/vfg2006/ozon-logistics-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// Plan codes accepted by Activate.
const (
	PlanOneMonth  = "1m"
	PlanSixMonths = "6m"
	PlanOneYear   = "1y"
)

type SubscriptionService interface {
	Status(seller *domain.Seller, now time.Time) domain.SubscriptionStatus
	Plans() []domain.SubscriptionPlan
	GetStatus(ctx context.Context, telegramID int64) (domain.SubscriptionStatus, error)
	Activate(ctx context.Context, telegramID int64, planCode string) (domain.SubscriptionStatus, error)
}

type Service struct {
	sellerRepository repository.SellerRepository
	cfg              *config.Config
	now              func() time.Time
}

func NewService(sellerRepository repository.SellerRepository, cfg *config.Config, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{
		sellerRepository: sellerRepository,
		cfg:              cfg,
		now:              now,
	}
}

// Status resolves the access state of a seller at now. A paid period takes
// precedence over the trial; a deactivated seller is always expired.
func (s *Service) Status(seller *domain.Seller, now time.Time) domain.SubscriptionStatus {
	status := domain.SubscriptionStatus{State: domain.SubscriptionStateExpired}
	if seller == nil {
		return status
	}

	status.ExpiresAt = seller.SubscriptionExpiresAt
	if seller.TrialStartedAt != nil {
		trialEnd := seller.TrialStartedAt.AddDate(0, 0, s.cfg.Subscription.TrialPeriodDays)
		status.TrialEndsAt = &trialEnd
	}

	if !seller.IsActive {
		return status
	}

	if seller.SubscriptionExpiresAt != nil && seller.SubscriptionExpiresAt.After(now) {
		status.State = domain.SubscriptionStateActive
		status.DaysLeft = daysBetween(now, *seller.SubscriptionExpiresAt)
		return status
	}

	if status.TrialEndsAt != nil && now.Before(*status.TrialEndsAt) {
		status.State = domain.SubscriptionStateTrial
		status.DaysLeft = daysBetween(now, *status.TrialEndsAt)
	}

	return status
}

func (s *Service) Plans() []domain.SubscriptionPlan {
	sub := s.cfg.Subscription

	return []domain.SubscriptionPlan{
		{Code: PlanOneMonth, Months: 1, Price: sub.PriceOneMonth, Currency: sub.Currency},
		{Code: PlanSixMonths, Months: 6, Price: sub.PriceSixMonths, Currency: sub.Currency},
		{Code: PlanOneYear, Months: 12, Price: sub.PriceOneYear, Currency: sub.Currency},
	}
}

func (s *Service) GetStatus(ctx context.Context, telegramID int64) (domain.SubscriptionStatus, error) {
	seller, err := s.findSeller(ctx, telegramID)
	if err != nil {
		return domain.SubscriptionStatus{}, err
	}

	return s.Status(seller, s.now().UTC()), nil
}

// Activate extends the paid period by the plan length. A running subscription
// is extended from its current end, otherwise from now. It is what the
// payment callback calls once the payment is confirmed.
func (s *Service) Activate(ctx context.Context, telegramID int64, planCode string) (domain.SubscriptionStatus, error) {
	plan, ok := s.plan(planCode)
	if !ok {
		return domain.SubscriptionStatus{}, NewSubscriptionError(ErrInvalidPlan, apiErrors.ErrInvalidPlan, fmt.Sprintf("plan %q", planCode))
	}

	seller, err := s.findSeller(ctx, telegramID)
	if err != nil {
		return domain.SubscriptionStatus{}, err
	}

	now := s.now().UTC()
	start := now
	if seller.IsActive && seller.SubscriptionExpiresAt != nil && seller.SubscriptionExpiresAt.After(now) {
		start = *seller.SubscriptionExpiresAt
	}
	expiresAt := start.AddDate(0, plan.Months, 0)

	if err := s.sellerRepository.UpdateSubscription(ctx, telegramID, expiresAt); err != nil {
		logrus.WithError(err).WithField("telegram_id", telegramID).Error("failed to update subscription")
		return domain.SubscriptionStatus{}, NewSubscriptionError(ErrUpdateSubscription, apiErrors.ErrDatabaseOperation, "")
	}

	logrus.WithFields(logrus.Fields{
		"telegram_id": telegramID,
		"plan":        plan.Code,
		"expires_at":  expiresAt.Format(time.DateOnly),
	}).Info("subscription activated")

	seller.IsActive = true
	seller.SubscriptionExpiresAt = &expiresAt

	return s.Status(seller, now), nil
}

func (s *Service) plan(code string) (domain.SubscriptionPlan, bool) {
	for _, plan := range s.Plans() {
		if plan.Code == code {
			return plan, true
		}
	}
	return domain.SubscriptionPlan{}, false
}

func (s *Service) findSeller(ctx context.Context, telegramID int64) (*domain.Seller, error) {
	seller, err := s.sellerRepository.GetByTelegramID(ctx, telegramID)
	if err != nil {
		logrus.WithError(err).WithField("telegram_id", telegramID).Error("failed to fetch seller")
		return nil, NewSubscriptionError(ErrFetchSeller, apiErrors.ErrDatabaseOperation, "")
	}
	if seller == nil {
		return nil, NewSubscriptionError(ErrSellerNotFound, apiErrors.ErrSellerNotFound, fmt.Sprintf("telegram id %d", telegramID))
	}
	return seller, nil
}

// daysBetween counts whole days left; a partial day rounds down.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
