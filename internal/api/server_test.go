package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ozon-logistics-api/infrastructure/render"
	"github.com/vfg2006/ozon-logistics-api/internal/api"
	"github.com/vfg2006/ozon-logistics-api/internal/api/handler"
	"github.com/vfg2006/ozon-logistics-api/internal/config"
	"github.com/vfg2006/ozon-logistics-api/internal/usecases/authenticating"
	reportmocks "github.com/vfg2006/ozon-logistics-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/ozon-logistics-api/pkg/apiErrors"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.Server{Host: "localhost", Port: "0", AllowedOrigins: []string{"https://bot.example"}},
		Ozon:   config.Ozon{RequestTimeout: time.Second, MaxRetries: 1},
		Auth:   config.Auth{Secret: "test-secret", TokenTTL: time.Hour},
	}
}

func TestNew_RequiresCoreServices(t *testing.T) {
	_, err := api.New(testConfig(), api.Services{})
	assert.Error(t, err)
}

func TestServer_MiddlewareChain(t *testing.T) {
	cfg := testConfig()
	ctrl := gomock.NewController(t)
	reports := reportmocks.NewMockReportService(ctrl)
	reports.EXPECT().AllowedPeriods().Return([]int{7, 28}).AnyTimes()

	authenticator := authenticating.NewService(cfg, nil)
	token, _, err := authenticator.IssueToken("telegram-bot")
	require.NoError(t, err)

	server, err := api.New(cfg, api.Services{
		Reports:  reports,
		Tokens:   authenticator,
		Delivery: handler.ReportDelivery{Registry: render.NewDefaultRegistry()},
	})
	require.NoError(t, err)

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
	}{
		{name: "healthcheck is public", method: http.MethodGet, path: "/healthcheck", wantStatus: http.StatusOK},
		{name: "missing token", method: http.MethodGet, path: "/v1/reports/periods", wantStatus: http.StatusUnauthorized},
		{name: "forged token", method: http.MethodGet, path: "/v1/reports/periods", token: "not-a-jwt", wantStatus: http.StatusUnauthorized},
		{name: "valid token", method: http.MethodGet, path: "/v1/reports/periods", token: token, wantStatus: http.StatusOK},
		{name: "preflight", method: http.MethodOptions, path: "/v1/reports", wantStatus: http.StatusNoContent},
		{name: "unknown route", method: http.MethodGet, path: "/v1/unknown", token: token, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(""))
			req.Header.Set("Origin", "https://bot.example")
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			server.Handler().ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "https://bot.example", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
		})
	}
}

func TestServer_RejectedTokenCode(t *testing.T) {
	cfg := testConfig()
	ctrl := gomock.NewController(t)

	server, err := api.New(cfg, api.Services{
		Reports:  reportmocks.NewMockReportService(ctrl),
		Tokens:   authenticating.NewService(cfg, nil),
		Delivery: handler.ReportDelivery{Registry: render.NewDefaultRegistry()},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/periods", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidToken)
}
