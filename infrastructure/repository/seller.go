package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ozon-logistics-api/infrastructure/database/postgres"
	"github.com/vfg2006/ozon-logistics-api/internal/domain"
)

//go:generate mockgen -source=seller.go -destination=mocks/mock_seller.go -package=mocks -exclude_interfaces=Cipher,rowScanner

const sellersTable = "sellers"

var ErrSellerNotFound = errors.New("seller not found")

var sellerColumns = []string{
	"id",
	"telegram_id",
	"client_id",
	"api_key_encrypted",
	"is_active",
	"trial_started_at",
	"subscription_expires_at",
	"created_at",
	"updated_at",
}

type SellerRepository interface {
	GetByTelegramID(ctx context.Context, telegramID int64) (*domain.Seller, error)
	Create(ctx context.Context, seller *domain.Seller) (*domain.Seller, error)
	UpdateCredentials(ctx context.Context, telegramID int64, creds domain.Credentials) error
	UpdateSubscription(ctx context.Context, telegramID int64, expiresAt time.Time) error
	ListExpired(ctx context.Context, trialDays int, now time.Time) ([]*domain.Seller, error)
	Deactivate(ctx context.Context, ids []int64) (int64, error)
}

// Cipher seals api keys before they reach the table.
type Cipher interface {
	Encrypt(plain string) (string, error)
	Decrypt(encoded string) (string, error)
}

type sellerRepository struct {
	conn   postgres.Queryer
	cipher Cipher
}

func NewSellerRepository(conn postgres.Queryer, cipher Cipher) SellerRepository {
	return &sellerRepository{
		conn:   conn,
		cipher: cipher,
	}
}

func (r *sellerRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.Seller, error) {
	query, args, err := squirrel.
		Select(sellerColumns...).
		From(sellersTable).
		Where(squirrel.Eq{"telegram_id": telegramID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	seller, err := r.scanSeller(r.conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get seller %d", telegramID)
	}

	return seller, nil
}

func (r *sellerRepository) Create(ctx context.Context, seller *domain.Seller) (*domain.Seller, error) {
	query, args, err := squirrel.
		Insert(sellersTable).
		Columns("telegram_id", "is_active", "trial_started_at").
		Values(seller.TelegramID, seller.IsActive, seller.TrialStartedAt).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&seller.ID, &seller.CreatedAt, &seller.UpdatedAt)
	if err != nil {
		return nil, errors.Wrapf(err, "create seller %d", seller.TelegramID)
	}

	return seller, nil
}

func (r *sellerRepository) UpdateCredentials(ctx context.Context, telegramID int64, creds domain.Credentials) error {
	sealed, err := r.cipher.Encrypt(creds.APIKey)
	if err != nil {
		return errors.Wrap(err, "encrypt api key")
	}

	query, args, err := squirrel.
		Update(sellersTable).
		Set("client_id", creds.ClientID).
		Set("api_key_encrypted", sealed).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"telegram_id": telegramID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	return r.execOne(ctx, query, args...)
}

func (r *sellerRepository) UpdateSubscription(ctx context.Context, telegramID int64, expiresAt time.Time) error {
	query, args, err := squirrel.
		Update(sellersTable).
		Set("subscription_expires_at", expiresAt).
		Set("is_active", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"telegram_id": telegramID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	return r.execOne(ctx, query, args...)
}

// ListExpired returns active sellers with neither a running trial nor a paid period.
func (r *sellerRepository) ListExpired(ctx context.Context, trialDays int, now time.Time) ([]*domain.Seller, error) {
	trialCutoff := now.AddDate(0, 0, -trialDays)

	query, args, err := squirrel.
		Select(sellerColumns...).
		From(sellersTable).
		Where(squirrel.And{
			squirrel.Eq{"is_active": true},
			squirrel.Or{
				squirrel.Eq{"subscription_expires_at": nil},
				squirrel.LtOrEq{"subscription_expires_at": now},
			},
			squirrel.Or{
				squirrel.Eq{"trial_started_at": nil},
				squirrel.LtOrEq{"trial_started_at": trialCutoff},
			},
		}).
		OrderBy("id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list expired sellers")
	}
	defer rows.Close()

	var sellers []*domain.Seller
	for rows.Next() {
		seller, err := r.scanSeller(rows)
		if err != nil {
			return nil, err
		}
		sellers = append(sellers, seller)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sellers, nil
}

func (r *sellerRepository) Deactivate(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := squirrel.
		Update(sellersTable).
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "deactivate sellers")
	}

	return result.RowsAffected()
}

func (r *sellerRepository) execOne(ctx context.Context, query string, args ...interface{}) error {
	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return ErrSellerNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *sellerRepository) scanSeller(row rowScanner) (*domain.Seller, error) {
	var (
		seller       domain.Seller
		clientID     sql.NullString
		sealedKey    sql.NullString
		trialStarted sql.NullTime
		expiresAt    sql.NullTime
	)

	err := row.Scan(
		&seller.ID,
		&seller.TelegramID,
		&clientID,
		&sealedKey,
		&seller.IsActive,
		&trialStarted,
		&expiresAt,
		&seller.CreatedAt,
		&seller.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if trialStarted.Valid {
		seller.TrialStartedAt = &trialStarted.Time
	}
	if expiresAt.Valid {
		seller.SubscriptionExpiresAt = &expiresAt.Time
	}

	if clientID.Valid && sealedKey.Valid && sealedKey.String != "" {
		apiKey, err := r.cipher.Decrypt(sealedKey.String)
		if err != nil {
			// Key rotation leaves old rows unreadable; treat as not connected.
			logrus.WithFields(logrus.Fields{
				"telegram_id": seller.TelegramID,
			}).WithError(err).Warn("could not decrypt stored api key")
		} else {
			seller.Credentials = &domain.Credentials{ClientID: clientID.String, APIKey: apiKey}
		}
	}

	return &seller, nil
}
