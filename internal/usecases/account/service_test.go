package account_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ozon-logistics-api/infrastructure/integrator/ozon"
	"github.com/vfg2006/ozon-logistics-api/infrastructure/repository"
	repomocks "github.com/vfg2006/ozon-logistics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ozon-logistics-api/internal/domain"
	"github.com/vfg2006/ozon-logistics-api/internal/usecases/account"
	"github.com/vfg2006/ozon-logistics-api/internal/usecases/account/mocks"
	"github.com/vfg2006/ozon-logistics-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var referenceNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return referenceNow }

func accountErrorCode(t *testing.T, err error) string {
	t.Helper()
	var accountErr *account.AccountError
	require.True(t, errors.As(err, &accountErr), "expected *AccountError, got %v", err)
	return accountErr.Code
}

func TestService_RegisterSeller(t *testing.T) {
	ctx := context.Background()

	t.Run("new seller starts a trial", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockSellerRepository(ctrl)
		service := account.NewService(repo, mocks.NewMockCredentialsValidator(ctrl), fixedClock)

		repo.EXPECT().GetByTelegramID(ctx, int64(42)).Return(nil, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s *domain.Seller) (*domain.Seller, error) {
			s.ID = 1
			return s, nil
		})

		seller, created, err := service.RegisterSeller(ctx, 42)
		require.NoError(t, err)
		assert.True(t, created)
		assert.True(t, seller.IsActive)
		require.NotNil(t, seller.TrialStartedAt)
		assert.Equal(t, referenceNow, *seller.TrialStartedAt)
	})

	t.Run("known seller is returned unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockSellerRepository(ctrl)
		service := account.NewService(repo, mocks.NewMockCredentialsValidator(ctrl), fixedClock)

		existing := &domain.Seller{ID: 3, TelegramID: 42}
		repo.EXPECT().GetByTelegramID(ctx, int64(42)).Return(existing, nil)

		seller, created, err := service.RegisterSeller(ctx, 42)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Same(t, existing, seller)
	})

	t.Run("invalid telegram id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := account.NewService(repomocks.NewMockSellerRepository(ctrl), mocks.NewMockCredentialsValidator(ctrl), fixedClock)

		_, _, err := service.RegisterSeller(ctx, 0)
		assert.ErrorIs(t, err, account.ErrTelegramIDRequired)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, accountErrorCode(t, err))
	})

	t.Run("database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockSellerRepository(ctrl)
		service := account.NewService(repo, mocks.NewMockCredentialsValidator(ctrl), fixedClock)

		repo.EXPECT().GetByTelegramID(ctx, int64(42)).Return(nil, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("connection reset"))

		_, _, err := service.RegisterSeller(ctx, 42)
		assert.ErrorIs(t, err, account.ErrCreateSeller)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, accountErrorCode(t, err))
	})
}

func TestService_ConnectOzon(t *testing.T) {
	ctx := context.Background()
	creds := domain.Credentials{ClientID: "123456", APIKey: "0b1c2d3e-api-key"}

	tests := []struct {
		name      string
		creds     domain.Credentials
		setup     func(repo *repomocks.MockSellerRepository, validator *mocks.MockCredentialsValidator)
		wantErr   error
		wantCode  string
		connected bool
	}{
		{
			name:  "stores validated credentials",
			creds: domain.Credentials{ClientID: " 123456 ", APIKey: "0b1c2d3e-api-key\n"},
			setup: func(repo *repomocks.MockSellerRepository, validator *mocks.MockCredentialsValidator) {
				repo.EXPECT().GetByTelegramID(ctx, int64(42)).Return(&domain.Seller{TelegramID: 42}, nil)
				validator.EXPECT().ValidateCredentials(ctx, creds).Return(nil)
				repo.EXPECT().UpdateCredentials(ctx, int64(42), creds).Return(nil)
			},
			connected: true,
		},
		{
			name:     "empty api key",
			creds:    domain.Credentials{ClientID: "123456", APIKey: "  "},
			setup:    func(*repomocks.MockSellerRepository, *mocks.MockCredentialsValidator) {},
			wantErr:  account.ErrMissingCredentials,
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:  "unknown seller",
			creds: creds,
			setup: func(repo *repomocks.MockSellerRepository, _ *mocks.MockCredentialsValidator) {
				repo.EXPECT().GetByTelegramID(ctx, int64(42)).Return(nil, nil)
			},
			wantErr:  account.ErrSellerNotFound,
			wantCode: apiErrors.ErrSellerNotFound,
		},
		{
			name:  "rejected by ozon",
			creds: creds,
			setup: func(repo *repomocks.MockSellerRepository, validator *mocks.MockCredentialsValidator) {
				repo.EXPECT().GetByTelegramID(ctx, int64(42)).Return(&domain.Seller{TelegramID: 42}, nil)
				validator.EXPECT().ValidateCredentials(ctx, creds).
					Return(errors.Join(ozon.ErrCredentialsRejected, errors.New("401")))
			},
			wantErr:  account.ErrCredentialsRejected,
			wantCode: apiErrors.ErrInvalidOzonCredentials,
		},
		{
			name:  "ozon unreachable",
			creds: creds,
			setup: func(repo *repomocks.MockSellerRepository, validator *mocks.MockCredentialsValidator) {
				repo.EXPECT().GetByTelegramID(ctx, int64(42)).Return(&domain.Seller{TelegramID: 42}, nil)
				validator.EXPECT().ValidateCredentials(ctx, creds).Return(context.DeadlineExceeded)
			},
			wantErr:  account.ErrOzonUnavailable,
			wantCode: apiErrors.ErrExternalService,
		},
		{
			name:  "seller removed concurrently",
			creds: creds,
			setup: func(repo *repomocks.MockSellerRepository, validator *mocks.MockCredentialsValidator) {
				repo.EXPECT().GetByTelegramID(ctx, int64(42)).Return(&domain.Seller{TelegramID: 42}, nil)
				validator.EXPECT().ValidateCredentials(ctx, creds).Return(nil)
				repo.EXPECT().UpdateCredentials(ctx, int64(42), creds).Return(repository.ErrSellerNotFound)
			},
			wantErr:  account.ErrSellerNotFound,
			wantCode: apiErrors.ErrSellerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := repomocks.NewMockSellerRepository(ctrl)
			validator := mocks.NewMockCredentialsValidator(ctrl)
			tt.setup(repo, validator)

			service := account.NewService(repo, validator, fixedClock)
			seller, err := service.ConnectOzon(ctx, 42, tt.creds)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.wantCode, accountErrorCode(t, err))
				assert.Nil(t, seller)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.connected, seller.OzonConnected())
			assert.Equal(t, creds, *seller.Credentials)
		})
	}
}

func TestService_GetSeller(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockSellerRepository(ctrl)
	service := account.NewService(repo, mocks.NewMockCredentialsValidator(ctrl), fixedClock)

	repo.EXPECT().GetByTelegramID(ctx, int64(5)).Return(nil, errors.New("timeout"))

	_, err := service.GetSeller(ctx, 5)
	assert.ErrorIs(t, err, account.ErrFetchSeller)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, accountErrorCode(t, err))
}
