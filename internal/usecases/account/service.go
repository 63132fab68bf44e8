package account

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ozon-logistics-api/infrastructure/integrator/ozon"
	"github.com/vfg2006/ozon-logistics-api/infrastructure/repository"
	"github.com/vfg2006/ozon-logistics-api/internal/domain"
	"github.com/vfg2006/ozon-logistics-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type AccountService interface {
	RegisterSeller(ctx context.Context, telegramID int64) (*domain.Seller, bool, error)
	ConnectOzon(ctx context.Context, telegramID int64, creds domain.Credentials) (*domain.Seller, error)
	GetSeller(ctx context.Context, telegramID int64) (*domain.Seller, error)
}

// CredentialsValidator asks the marketplace whether a key pair is accepted.
type CredentialsValidator interface {
	ValidateCredentials(ctx context.Context, creds domain.Credentials) error
}

type Service struct {
	sellerRepository repository.SellerRepository
	validator        CredentialsValidator
	now              func() time.Time
}

func NewService(
	sellerRepository repository.SellerRepository,
	validator CredentialsValidator,
	now func() time.Time,
) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{
		sellerRepository: sellerRepository,
		validator:        validator,
		now:              now,
	}
}

// RegisterSeller creates the seller and starts the trial. Calling it again for
// a known seller returns the stored record and false.
func (s *Service) RegisterSeller(ctx context.Context, telegramID int64) (*domain.Seller, bool, error) {
	if telegramID <= 0 {
		return nil, false, NewAccountError(ErrTelegramIDRequired, apiErrors.ErrMissingRequiredData, telegramID, "")
	}

	existing, err := s.sellerRepository.GetByTelegramID(ctx, telegramID)
	if err != nil {
		logrus.WithError(err).WithField("telegram_id", telegramID).Error("failed to fetch seller")
		return nil, false, NewAccountError(ErrFetchSeller, apiErrors.ErrDatabaseOperation, telegramID, "")
	}
	if existing != nil {
		return existing, false, nil
	}

	trialStart := s.now().UTC()
	seller, err := s.sellerRepository.Create(ctx, &domain.Seller{
		TelegramID:     telegramID,
		IsActive:       true,
		TrialStartedAt: &trialStart,
	})
	if err != nil {
		logrus.WithError(err).WithField("telegram_id", telegramID).Error("failed to create seller")
		return nil, false, NewAccountError(ErrCreateSeller, apiErrors.ErrDatabaseOperation, telegramID, "")
	}

	logrus.WithField("telegram_id", telegramID).Info("seller registered, trial started")

	return seller, true, nil
}

// ConnectOzon checks the key pair against Ozon before storing it.
func (s *Service) ConnectOzon(ctx context.Context, telegramID int64, creds domain.Credentials) (*domain.Seller, error) {
	creds = domain.Credentials{
		ClientID: strings.TrimSpace(creds.ClientID),
		APIKey:   strings.TrimSpace(creds.APIKey),
	}
	if err := creds.Validate(); err != nil {
		return nil, NewAccountError(ErrMissingCredentials, apiErrors.ErrMissingRequiredData, telegramID, "")
	}

	seller, err := s.GetSeller(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	logger := logrus.WithFields(logrus.Fields{
		"telegram_id": telegramID,
		"client_id":   creds.ClientID,
	})

	if err := s.validator.ValidateCredentials(ctx, creds); err != nil {
		if errors.Is(err, ozon.ErrCredentialsRejected) {
			logger.Warn("ozon rejected the credentials")
			return nil, NewAccountError(ErrCredentialsRejected, apiErrors.ErrInvalidOzonCredentials, telegramID, "")
		}
		logger.WithError(err).Error("could not validate credentials with ozon")
		return nil, NewAccountError(ErrOzonUnavailable, apiErrors.ErrExternalService, telegramID, err.Error())
	}

	if err := s.sellerRepository.UpdateCredentials(ctx, telegramID, creds); err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return nil, NewAccountError(ErrSellerNotFound, apiErrors.ErrSellerNotFound, telegramID, "")
		}
		logger.WithError(err).Error("failed to store credentials")
		return nil, NewAccountError(ErrUpdateSeller, apiErrors.ErrDatabaseOperation, telegramID, "")
	}

	logger.Info("ozon account connected")

	seller.Credentials = &creds
	return seller, nil
}

func (s *Service) GetSeller(ctx context.Context, telegramID int64) (*domain.Seller, error) {
	seller, err := s.sellerRepository.GetByTelegramID(ctx, telegramID)
	if err != nil {
		logrus.WithError(err).WithField("telegram_id", telegramID).Error("failed to fetch seller")
		return nil, NewAccountError(ErrFetchSeller, apiErrors.ErrDatabaseOperation, telegramID, "")
	}
	if seller == nil {
		return nil, NewAccountError(ErrSellerNotFound, apiErrors.ErrSellerNotFound, telegramID, "")
	}

	return seller, nil
}
