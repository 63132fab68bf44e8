package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ozon-logistics-api/infrastructure/repository"
	"github.com/vfg2006/ozon-logistics-api/internal/config"
	"github.com/vfg2006/ozon-logistics-api/internal/domain"
)

// StatusResolver decides whether a seller still has access.
type StatusResolver interface {
	Status(seller *domain.Seller, now time.Time) domain.SubscriptionStatus
}

// TrialExpirySyncService deactivates sellers whose trial and paid period are
// both over, so that the bot stops offering reports to them.
type TrialExpirySyncService struct {
	scheduler           *gocron.Scheduler
	config              config.TrialExpirySync
	trialDays           int
	sellerRepo          repository.SellerRepository
	subscriptions       StatusResolver
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastDeactivated     int64
	lastError           string
}

func NewTrialExpirySyncService(
	sellerRepo repository.SellerRepository,
	subscriptions StatusResolver,
	appConfig *config.Config,
	now func() time.Time,
) *TrialExpirySyncService {
	if now == nil {
		now = time.Now
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.TrialExpirySync.CronSchedule,
		"sync_enabled":  appConfig.TrialExpirySync.Enabled,
		"trial_days":    appConfig.Subscription.TrialPeriodDays,
	}).Info("trial expiry sync configuration loaded")

	return &TrialExpirySyncService{
		scheduler:     gocron.NewScheduler(time.UTC),
		config:        appConfig.TrialExpirySync,
		trialDays:     appConfig.Subscription.TrialPeriodDays,
		sellerRepo:    sellerRepo,
		subscriptions: subscriptions,
		now:           now,
	}
}

func (s *TrialExpirySyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("trial expiry sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting trial expiry sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncExpiredSellers(ctx)
	})
	if err != nil {
		return fmt.Errorf("error scheduling trial expiry sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping trial expiry sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync runs the sweep in the background unless one is running.
func (s *TrialExpirySyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("trial expiry sync already running, ignoring manual request")
		return false
	}

	logrus.Info("starting manual trial expiry sync")
	go s.syncExpiredSellers(context.Background())

	return true
}

func (s *TrialExpirySyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"trial_days":             s.trialDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_deactivated":       s.lastDeactivated,
		"last_error":             s.lastError,
	}
}

func (s *TrialExpirySyncService) syncExpiredSellers(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("trial expiry sync already running, skipping")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	deactivated, err := s.deactivateExpired(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastDeactivated = deactivated
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("trial expiry sync failed")
	}
}

func (s *TrialExpirySyncService) deactivateExpired(ctx context.Context) (int64, error) {
	now := s.now().UTC()

	candidates, err := s.sellerRepo.ListExpired(ctx, s.trialDays, now)
	if err != nil {
		return 0, fmt.Errorf("error listing expired sellers: %w", err)
	}

	// The query is coarse; the subscription rules have the final word.
	ids := make([]int64, 0, len(candidates))
	for _, seller := range candidates {
		if s.subscriptions.Status(seller, now).Active() {
			continue
		}
		ids = append(ids, seller.ID)
	}

	if len(ids) == 0 {
		logrus.Info("no expired sellers to deactivate")
		return 0, nil
	}

	affected, err := s.sellerRepo.Deactivate(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("error deactivating %d sellers: %w", len(ids), err)
	}

	logrus.WithFields(logrus.Fields{
		"candidates":  len(candidates),
		"deactivated": affected,
	}).Info("trial expiry sync completed")

	return affected, nil
}
