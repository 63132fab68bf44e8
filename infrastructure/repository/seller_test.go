package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ozon-logistics-api/internal/domain"
	"github.com/vfg2006/ozon-logistics-api/pkg/secret"
)

var referenceNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestRepository(t *testing.T) (SellerRepository, sqlmock.Sqlmock, *secret.Box) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	box, err := secret.NewBox("test-key")
	require.NoError(t, err)

	return NewSellerRepository(db, box), mock, box
}

func TestSellerRepository_GetByTelegramID(t *testing.T) {
	repo, mock, box := newTestRepository(t)

	sealed, err := box.Encrypt("api-key-1")
	require.NoError(t, err)
	trialStart := referenceNow.AddDate(0, 0, -2)

	mock.ExpectQuery(`SELECT (.+) FROM sellers WHERE telegram_id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(sellerColumns).
			AddRow(int64(1), int64(42), "client-1", sealed, true, trialStart, nil, referenceNow, referenceNow))

	seller, err := repo.GetByTelegramID(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, seller)

	assert.Equal(t, int64(1), seller.ID)
	assert.True(t, seller.IsActive)
	require.NotNil(t, seller.Credentials)
	assert.Equal(t, "client-1", seller.Credentials.ClientID)
	assert.Equal(t, "api-key-1", seller.Credentials.APIKey)
	require.NotNil(t, seller.TrialStartedAt)
	assert.True(t, trialStart.Equal(*seller.TrialStartedAt))
	assert.Nil(t, seller.SubscriptionExpiresAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSellerRepository_GetByTelegramID_WithoutCredentials(t *testing.T) {
	repo, mock, _ := newTestRepository(t)

	mock.ExpectQuery(`SELECT (.+) FROM sellers WHERE telegram_id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(sellerColumns).
			AddRow(int64(1), int64(42), nil, nil, true, referenceNow, nil, referenceNow, referenceNow))

	seller, err := repo.GetByTelegramID(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, seller)
	assert.Nil(t, seller.Credentials)
	assert.False(t, seller.OzonConnected())
}

func TestSellerRepository_GetByTelegramID_NotFound(t *testing.T) {
	repo, mock, _ := newTestRepository(t)

	mock.ExpectQuery(`SELECT (.+) FROM sellers WHERE telegram_id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(sellerColumns))

	seller, err := repo.GetByTelegramID(context.Background(), 7)
	assert.NoError(t, err)
	assert.Nil(t, seller)
}

func TestSellerRepository_Create(t *testing.T) {
	repo, mock, _ := newTestRepository(t)

	trialStart := referenceNow
	mock.ExpectQuery(`INSERT INTO sellers \(telegram_id,is_active,trial_started_at\) VALUES \(\$1,\$2,\$3\) RETURNING id, created_at, updated_at`).
		WithArgs(int64(42), true, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(9), referenceNow, referenceNow))

	seller, err := repo.Create(context.Background(), &domain.Seller{
		TelegramID:     42,
		IsActive:       true,
		TrialStartedAt: &trialStart,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), seller.ID)
	assert.True(t, referenceNow.Equal(seller.CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSellerRepository_UpdateCredentials(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "updated", affected: 1},
		{name: "unknown seller", affected: 0, wantErr: ErrSellerNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, _ := newTestRepository(t)

			mock.ExpectExec(`UPDATE sellers SET client_id = \$1, api_key_encrypted = \$2, updated_at = NOW\(\) WHERE telegram_id = \$3`).
				WithArgs("client-1", sqlmock.AnyArg(), int64(42)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.UpdateCredentials(context.Background(), 42, domain.Credentials{ClientID: "client-1", APIKey: "plain"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSellerRepository_UpdateSubscription(t *testing.T) {
	repo, mock, _ := newTestRepository(t)

	expiresAt := referenceNow.AddDate(0, 1, 0)
	mock.ExpectExec(`UPDATE sellers SET subscription_expires_at = \$1, is_active = \$2, updated_at = NOW\(\) WHERE telegram_id = \$3`).
		WithArgs(expiresAt, true, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateSubscription(context.Background(), 42, expiresAt)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSellerRepository_ListExpired(t *testing.T) {
	repo, mock, _ := newTestRepository(t)

	trialStart := referenceNow.AddDate(0, 0, -10)
	mock.ExpectQuery(`SELECT (.+) FROM sellers WHERE \(is_active = \$1 AND (.+) ORDER BY id`).
		WithArgs(true, referenceNow, referenceNow.AddDate(0, 0, -7)).
		WillReturnRows(sqlmock.NewRows(sellerColumns).
			AddRow(int64(1), int64(42), nil, nil, true, trialStart, nil, referenceNow, referenceNow).
			AddRow(int64(2), int64(43), nil, nil, true, nil, nil, referenceNow, referenceNow))

	sellers, err := repo.ListExpired(context.Background(), 7, referenceNow)
	require.NoError(t, err)
	require.Len(t, sellers, 2)
	assert.Equal(t, int64(42), sellers[0].TelegramID)
	assert.Nil(t, sellers[1].TrialStartedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSellerRepository_Deactivate(t *testing.T) {
	repo, mock, _ := newTestRepository(t)

	mock.ExpectExec(`UPDATE sellers SET is_active = \$1, updated_at = NOW\(\) WHERE id IN \(\$2,\$3\)`).
		WithArgs(false, int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	affected, err := repo.Deactivate(context.Background(), []int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSellerRepository_Deactivate_Empty(t *testing.T) {
	repo, mock, _ := newTestRepository(t)

	affected, err := repo.Deactivate(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}
