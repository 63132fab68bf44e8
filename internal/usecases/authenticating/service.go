package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/ozon-logistics-api/internal/config"
	"github.com/vfg2006/ozon-logistics-api/internal/domain"
	"github.com/vfg2006/ozon-logistics-api/pkg/apiErrors"
)

const issuer = "ozon-logistics-api"

type Authenticator interface {
	IssueToken(client string) (string, time.Time, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

// Service issues and checks the HS256 service tokens used by the bot and
// other internal callers.
type Service struct {
	cfg *config.Config
	now func() time.Time
}

func NewService(cfg *config.Config, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{
		cfg: cfg,
		now: now,
	}
}

func (s *Service) IssueToken(client string) (string, time.Time, error) {
	client = strings.TrimSpace(client)
	if client == "" {
		return "", time.Time{}, NewAuthError(ErrClientRequired, apiErrors.ErrMissingRequiredData, "")
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.cfg.Auth.TokenTTL)

	claims := &domain.Claims{
		Client: client,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   client,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Auth.Secret))
	if err != nil {
		return "", time.Time{}, NewAuthError(ErrSignToken, apiErrors.ErrInternalServer, err.Error())
	}

	return signed, expiresAt, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.Client == "" {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}
