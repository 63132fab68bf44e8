package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ozon-logistics-api/internal/api/handler"
	"github.com/vfg2006/ozon-logistics-api/internal/api/handler/router"
	"github.com/vfg2006/ozon-logistics-api/internal/config"
	"github.com/vfg2006/ozon-logistics-api/internal/usecases/account"
	"github.com/vfg2006/ozon-logistics-api/internal/usecases/reporting"
	"github.com/vfg2006/ozon-logistics-api/internal/usecases/subscribing"
	"github.com/vfg2006/ozon-logistics-api/pkg/middleware"
)

// Services groups what the HTTP layer calls into.
type Services struct {
	Reports       reporting.ReportService
	Accounts      account.AccountService
	Subscriptions subscribing.SubscriptionService
	Tokens        middleware.TokenValidator
	Delivery      handler.ReportDelivery
	Database      handler.Pinger
	CronJobs      handler.CronJobServices
}

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if services.Reports == nil || services.Tokens == nil || services.Delivery.Registry == nil {
		return nil, fmt.Errorf("api: report service, token validator and renderer registry are required")
	}

	configs := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck(services.Database)...),
		router.WithRoutes(handler.Reports(services.Reports, services.Delivery)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	}
	if services.Accounts != nil && services.Subscriptions != nil {
		configs = append(configs,
			router.WithRoutes(handler.Sellers(services.Accounts, services.Subscriptions)...),
			router.WithRoutes(handler.Subscriptions(services.Subscriptions)...),
		)
	}

	rt := router.New(configs...)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Tokens),
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
			// Reports fan out to three Ozon endpoints with retries.
			WriteTimeout: cfg.Ozon.RequestTimeout*time.Duration(cfg.Ozon.MaxRetries+1) + 10*time.Second,
		},
	}, nil
}

// Handler exposes the full middleware chain, mainly for tests.
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithField("timeout", "15s").Info("shutting down server")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server stopped")
	return nil
}
