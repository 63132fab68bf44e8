package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ozon-logistics-api/infrastructure/database/postgres"
	"github.com/vfg2006/ozon-logistics-api/infrastructure/integrator/ozon"
	"github.com/vfg2006/ozon-logistics-api/infrastructure/integrator/ozon/ozonclient"
	"github.com/vfg2006/ozon-logistics-api/infrastructure/render"
	"github.com/vfg2006/ozon-logistics-api/infrastructure/repository"
	"github.com/vfg2006/ozon-logistics-api/infrastructure/storage"
	"github.com/vfg2006/ozon-logistics-api/internal/api"
	"github.com/vfg2006/ozon-logistics-api/internal/api/handler"
	"github.com/vfg2006/ozon-logistics-api/internal/config"
	"github.com/vfg2006/ozon-logistics-api/internal/scheduler"
	"github.com/vfg2006/ozon-logistics-api/internal/usecases/account"
	"github.com/vfg2006/ozon-logistics-api/internal/usecases/authenticating"
	"github.com/vfg2006/ozon-logistics-api/internal/usecases/reporting"
	"github.com/vfg2006/ozon-logistics-api/internal/usecases/subscribing"
	"github.com/vfg2006/ozon-logistics-api/pkg/log"
	"github.com/vfg2006/ozon-logistics-api/pkg/secret"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("log level set to %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	box, err := secret.NewBox(cfg.Crypto.CredentialsKey)
	if err != nil {
		logrus.WithError(err).Fatal("invalid credentials encryption key")
	}

	sellerRepo := repository.NewSellerRepository(pgConn, box)

	ozonFactory := ozon.NewFactory(cfg, ozonclient.NewClient(cfg))
	if cfg.Ozon.UseStub {
		logrus.Warn("reports are served from the static data set")
	}

	subscriptionService := subscribing.NewService(sellerRepo, cfg, nil)
	accountService := account.NewService(sellerRepo, ozonFactory, nil)
	reportService := reporting.NewService(ozonFactory, sellerRepo, subscriptionService, cfg, nil)
	authenticator := authenticating.NewService(cfg, nil)

	trialExpirySyncService := scheduler.NewTrialExpirySyncService(sellerRepo, subscriptionService, cfg, nil)
	if err := trialExpirySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("error starting the trial expiry scheduler")
	}

	delivery := handler.ReportDelivery{Registry: render.NewDefaultRegistry()}

	archive, err := storage.NewArchive(ctx, cfg.Storage)
	if err != nil {
		logrus.WithError(err).Error("report archive unavailable, reports will not be stored")
	} else if archive != nil {
		delivery.Archive = archive
	}

	server, err := api.New(cfg, api.Services{
		Reports:       reportService,
		Accounts:      accountService,
		Subscriptions: subscriptionService,
		Tokens:        authenticator,
		Delivery:      delivery,
		Database:      pgConn,
		CronJobs: handler.CronJobServices{
			handler.CronJobTypeTrialExpiry: trialExpirySyncService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource lets the config loader find the .env next to the sources.
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	os.Chdir(path.Dir(file))
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("error connecting to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("error pinging PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
