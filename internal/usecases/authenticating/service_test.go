package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ozon-logistics-api/internal/config"
	"github.com/vfg2006/ozon-logistics-api/pkg/apiErrors"
)

var referenceNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestService(now time.Time) *Service {
	cfg := &config.Config{Auth: config.Auth{Secret: "test-secret", TokenTTL: time.Hour}}
	return NewService(cfg, func() time.Time { return now })
}

func authCode(t *testing.T, err error) string {
	t.Helper()
	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))
	return authErr.Code
}

func TestService_IssueAndValidate(t *testing.T) {
	service := newTestService(referenceNow)

	token, expiresAt, err := service.IssueToken("telegram-bot")
	require.NoError(t, err)
	assert.Equal(t, referenceNow.Add(time.Hour), expiresAt)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "telegram-bot", claims.Client)
	assert.Equal(t, issuer, claims.Issuer)
}

func TestService_IssueToken_EmptyClient(t *testing.T) {
	_, _, err := newTestService(referenceNow).IssueToken("  ")
	assert.ErrorIs(t, err, ErrClientRequired)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, authCode(t, err))
}

func TestService_ValidateToken_Expired(t *testing.T) {
	token, _, err := newTestService(referenceNow).IssueToken("telegram-bot")
	require.NoError(t, err)

	_, err = newTestService(referenceNow.Add(2 * time.Hour)).ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.Equal(t, apiErrors.ErrExpiredToken, authCode(t, err))
}

func TestService_ValidateToken_Invalid(t *testing.T) {
	service := newTestService(referenceNow)

	otherSecret := NewService(&config.Config{Auth: config.Auth{Secret: "other", TokenTTL: time.Hour}},
		func() time.Time { return referenceNow })
	forged, _, err := otherSecret.IssueToken("telegram-bot")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"client": "x", "iss": issuer}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "signed with another secret", token: forged},
		{name: "alg none", token: noneToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ValidateToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Equal(t, apiErrors.ErrInvalidToken, authCode(t, err))
		})
	}
}
