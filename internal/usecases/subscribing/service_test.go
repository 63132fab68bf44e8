package subscribing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/ozon-logistics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ozon-logistics-api/internal/config"
	"github.com/vfg2006/ozon-logistics-api/internal/domain"
	"github.com/vfg2006/ozon-logistics-api/internal/usecases/subscribing"
	"github.com/vfg2006/ozon-logistics-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var referenceNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		Subscription: config.Subscription{
			TrialPeriodDays: 7,
			Currency:        "RUB",
			PriceOneMonth:   decimal.NewFromInt(990),
			PriceSixMonths:  decimal.NewFromInt(4990),
			PriceOneYear:    decimal.NewFromInt(8990),
		},
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func TestService_Status(t *testing.T) {
	service := subscribing.NewService(nil, testConfig(), nil)

	tests := []struct {
		name     string
		seller   *domain.Seller
		state    domain.SubscriptionState
		daysLeft int
	}{
		{
			name:     "trial started two days ago",
			seller:   &domain.Seller{IsActive: true, TrialStartedAt: timePtr(referenceNow.AddDate(0, 0, -2))},
			state:    domain.SubscriptionStateTrial,
			daysLeft: 5,
		},
		{
			name:     "trial ends in a few hours",
			seller:   &domain.Seller{IsActive: true, TrialStartedAt: timePtr(referenceNow.AddDate(0, 0, -7).Add(3 * time.Hour))},
			state:    domain.SubscriptionStateTrial,
			daysLeft: 0,
		},
		{
			name:   "trial over",
			seller: &domain.Seller{IsActive: true, TrialStartedAt: timePtr(referenceNow.AddDate(0, 0, -7))},
			state:  domain.SubscriptionStateExpired,
		},
		{
			name: "paid period wins over trial",
			seller: &domain.Seller{
				IsActive:              true,
				TrialStartedAt:        timePtr(referenceNow.AddDate(0, 0, -1)),
				SubscriptionExpiresAt: timePtr(referenceNow.AddDate(0, 0, 30)),
			},
			state:    domain.SubscriptionStateActive,
			daysLeft: 30,
		},
		{
			name: "paid period over",
			seller: &domain.Seller{
				IsActive:              true,
				TrialStartedAt:        timePtr(referenceNow.AddDate(0, -2, 0)),
				SubscriptionExpiresAt: timePtr(referenceNow.Add(-time.Minute)),
			},
			state: domain.SubscriptionStateExpired,
		},
		{
			name: "deactivated seller",
			seller: &domain.Seller{
				IsActive:              false,
				SubscriptionExpiresAt: timePtr(referenceNow.AddDate(0, 1, 0)),
			},
			state: domain.SubscriptionStateExpired,
		},
		{
			name:  "no seller",
			state: domain.SubscriptionStateExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := service.Status(tt.seller, referenceNow)
			assert.Equal(t, tt.state, status.State)
			assert.Equal(t, tt.daysLeft, status.DaysLeft)
			assert.Equal(t, tt.state != domain.SubscriptionStateExpired, status.Active())
		})
	}
}

func TestService_Status_TrialEndsAt(t *testing.T) {
	service := subscribing.NewService(nil, testConfig(), nil)
	start := referenceNow.AddDate(0, 0, -2)

	status := service.Status(&domain.Seller{IsActive: true, TrialStartedAt: &start}, referenceNow)

	require.NotNil(t, status.TrialEndsAt)
	assert.Equal(t, start.AddDate(0, 0, 7), *status.TrialEndsAt)
	assert.Nil(t, status.ExpiresAt)
}

func TestService_Plans(t *testing.T) {
	service := subscribing.NewService(nil, testConfig(), nil)

	plans := service.Plans()
	require.Len(t, plans, 3)

	assert.Equal(t, subscribing.PlanOneMonth, plans[0].Code)
	assert.True(t, plans[1].Price.Equal(decimal.NewFromInt(4990)))
	assert.Equal(t, 12, plans[2].Months)
	assert.True(t, plans[2].MonthlyPrice().Equal(decimal.NewFromInt(749)))
	assert.Equal(t, "RUB", plans[0].Currency)
}

func TestService_Activate(t *testing.T) {
	ctx := context.Background()
	clock := func() time.Time { return referenceNow }

	t.Run("starts from now when nothing is running", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockSellerRepository(ctrl)
		service := subscribing.NewService(repo, testConfig(), clock)

		expected := referenceNow.AddDate(0, 1, 0)
		repo.EXPECT().GetByTelegramID(ctx, int64(42)).
			Return(&domain.Seller{TelegramID: 42, IsActive: false}, nil)
		repo.EXPECT().UpdateSubscription(ctx, int64(42), expected).Return(nil)

		status, err := service.Activate(ctx, 42, subscribing.PlanOneMonth)
		require.NoError(t, err)
		assert.Equal(t, domain.SubscriptionStateActive, status.State)
		assert.Equal(t, expected, *status.ExpiresAt)
	})

	t.Run("extends a running subscription", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockSellerRepository(ctrl)
		service := subscribing.NewService(repo, testConfig(), clock)

		current := referenceNow.AddDate(0, 0, 10)
		repo.EXPECT().GetByTelegramID(ctx, int64(42)).
			Return(&domain.Seller{TelegramID: 42, IsActive: true, SubscriptionExpiresAt: &current}, nil)
		repo.EXPECT().UpdateSubscription(ctx, int64(42), current.AddDate(0, 6, 0)).Return(nil)

		status, err := service.Activate(ctx, 42, subscribing.PlanSixMonths)
		require.NoError(t, err)
		assert.Equal(t, current.AddDate(0, 6, 0), *status.ExpiresAt)
	})

	t.Run("unknown plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := subscribing.NewService(repomocks.NewMockSellerRepository(ctrl), testConfig(), clock)

		_, err := service.Activate(ctx, 42, "2w")
		assert.ErrorIs(t, err, subscribing.ErrInvalidPlan)

		var subErr *subscribing.SubscriptionError
		require.True(t, errors.As(err, &subErr))
		assert.Equal(t, apiErrors.ErrInvalidPlan, subErr.Code)
	})

	t.Run("unknown seller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockSellerRepository(ctrl)
		service := subscribing.NewService(repo, testConfig(), clock)

		repo.EXPECT().GetByTelegramID(ctx, int64(42)).Return(nil, nil)

		_, err := service.Activate(ctx, 42, subscribing.PlanOneYear)
		assert.ErrorIs(t, err, subscribing.ErrSellerNotFound)
	})

	t.Run("database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockSellerRepository(ctrl)
		service := subscribing.NewService(repo, testConfig(), clock)

		repo.EXPECT().GetByTelegramID(ctx, int64(42)).Return(&domain.Seller{TelegramID: 42}, nil)
		repo.EXPECT().UpdateSubscription(ctx, int64(42), gomock.Any()).Return(errors.New("deadlock"))

		_, err := service.Activate(ctx, 42, subscribing.PlanOneYear)
		assert.ErrorIs(t, err, subscribing.ErrUpdateSubscription)
	})
}

func TestService_GetStatus(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockSellerRepository(ctrl)
	service := subscribing.NewService(repo, testConfig(), func() time.Time { return referenceNow })

	start := referenceNow.AddDate(0, 0, -3)
	repo.EXPECT().GetByTelegramID(ctx, int64(42)).
		Return(&domain.Seller{TelegramID: 42, IsActive: true, TrialStartedAt: &start}, nil)

	status, err := service.GetStatus(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, domain.SubscriptionStateTrial, status.State)
	assert.Equal(t, 4, status.DaysLeft)
}
