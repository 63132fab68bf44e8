package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/ozon-logistics-api/infrastructure/database/postgres"
	"github.com/vfg2006/ozon-logistics-api/internal/config"
	"github.com/vfg2006/ozon-logistics-api/pkg/secret"
)

const createSellersTable = `
CREATE TABLE IF NOT EXISTS sellers (
	id                      BIGSERIAL PRIMARY KEY,
	telegram_id             BIGINT NOT NULL UNIQUE,
	client_id               VARCHAR(64),
	api_key_encrypted       TEXT,
	is_active               BOOLEAN NOT NULL DEFAULT TRUE,
	trial_started_at        TIMESTAMPTZ,
	subscription_expires_at TIMESTAMPTZ,
	created_at              TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at              TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

const createSellersActiveIndex = `
CREATE INDEX IF NOT EXISTS sellers_active_idx
	ON sellers (is_active, subscription_expires_at, trial_started_at)`

// legacyUser is one row of the bot's users export:
// telegram_id,client_id,api_key,is_active,trial_start_date,subscription_expires_at
type legacyUser struct {
	TelegramID            int64
	ClientID              string
	APIKey                string
	IsActive              bool
	TrialStartedAt        *time.Time
	SubscriptionExpiresAt *time.Time
}

var importPath string

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the sellers schema and optionally import the bot users export",
	RunE:  run,
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	rootCmd.Flags().StringVar(&importPath, "import", "", "CSV export of the legacy users table")

	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Fatal("migration failed")
	}
}

func run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	logrus.Info("connecting to the database")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	for _, stmt := range []string{createSellersTable, createSellersActiveIndex} {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "apply schema")
		}
	}
	logrus.Info("sellers schema is up to date")

	if importPath == "" {
		return nil
	}

	box, err := secret.NewBox(cfg.Crypto.CredentialsKey)
	if err != nil {
		return err
	}

	users, err := readLegacyUsers(importPath)
	if err != nil {
		return err
	}
	logrus.Infof("%d users read from %s", len(users), importPath)

	startTime := time.Now()
	var inserted, skipped int
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		inserted, skipped, err = insertLegacyUsers(ctx, tx, box, users)
		return err
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"inserted": inserted,
		"skipped":  skipped,
		"elapsed":  time.Since(startTime).String(),
	}).Info("legacy users imported")

	return nil
}

func readLegacyUsers(path string) ([]legacyUser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 6

	var users []legacyUser
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}

		if line == 1 && record[0] == "telegram_id" {
			continue
		}

		user, err := parseLegacyUser(record)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		users = append(users, user)
	}

	return users, nil
}

func parseLegacyUser(record []string) (legacyUser, error) {
	telegramID, err := strconv.ParseInt(strings.TrimSpace(record[0]), 10, 64)
	if err != nil {
		return legacyUser{}, errors.Wrap(err, "telegram_id")
	}

	isActive, err := strconv.ParseBool(strings.TrimSpace(record[3]))
	if err != nil {
		return legacyUser{}, errors.Wrap(err, "is_active")
	}

	trialStarted, err := parseLegacyTime(record[4])
	if err != nil {
		return legacyUser{}, errors.Wrap(err, "trial_start_date")
	}

	expiresAt, err := parseLegacyTime(record[5])
	if err != nil {
		return legacyUser{}, errors.Wrap(err, "subscription_expires_at")
	}

	return legacyUser{
		TelegramID:            telegramID,
		ClientID:              strings.TrimSpace(record[1]),
		APIKey:                strings.TrimSpace(record[2]),
		IsActive:              isActive,
		TrialStartedAt:        trialStarted,
		SubscriptionExpiresAt: expiresAt,
	}, nil
}

// parseLegacyTime accepts the sqlite datetime layouts the bot wrote.
func parseLegacyTime(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05.999999", time.DateTime, time.DateOnly} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed, nil
		}
	}

	return nil, errors.Errorf("unsupported time %q", value)
}

func insertLegacyUsers(ctx context.Context, tx *sql.Tx, box *secret.Box, users []legacyUser) (int, int, error) {
	var inserted, skipped int

	for i, user := range users {
		var clientID, sealed interface{}
		if user.ClientID != "" && user.APIKey != "" {
			encrypted, err := box.Encrypt(user.APIKey)
			if err != nil {
				return 0, 0, err
			}
			clientID, sealed = user.ClientID, encrypted
		}

		query, args, err := squirrel.
			Insert("sellers").
			Columns("telegram_id", "client_id", "api_key_encrypted", "is_active", "trial_started_at", "subscription_expires_at").
			Values(user.TelegramID, clientID, sealed, user.IsActive, user.TrialStartedAt, user.SubscriptionExpiresAt).
			Suffix("ON CONFLICT (telegram_id) DO NOTHING").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return 0, 0, err
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "insert telegram_id %d", user.TelegramID)
		}

		if affected, _ := result.RowsAffected(); affected == 0 {
			skipped++
		} else {
			inserted++
		}

		if i > 0 && i%100 == 0 {
			logrus.Infof("progress: %d/%d users processed", i+1, len(users))
		}
	}

	return inserted, skipped, nil
}
