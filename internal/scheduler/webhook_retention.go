package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
)

// WebhookRetentionService apaga periodicamente os eventos de webhook mais antigos que a retenção configurada.
// O rastreamento de clientes não é afetado.
type WebhookRetentionService struct {
	scheduler          *gocron.Scheduler
	config             config.WebhookRetention
	eventRepo          repository.WebhookEventRepository
	now                func() time.Time
	running            bool
	mutex              sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastDeleted        int64
}

func NewWebhookRetentionService(
	eventRepo repository.WebhookEventRepository,
	appConfig *config.Config,
) *WebhookRetentionService {
	retention := appConfig.WebhookRetention

	logrus.WithFields(logrus.Fields{
		"cron_schedule":     retention.CronSchedule,
		"retention_days":    retention.Days,
		"retention_enabled": retention.Enabled,
	}).Info("scheduler: webhook retention configuration loaded")

	return &WebhookRetentionService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    retention,
		eventRepo: eventRepo,
		now:       time.Now,
	}
}

// Start agenda a limpeza e para o agendador quando ctx for cancelado
func (s *WebhookRetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("scheduler: webhook retention disabled by configuration")
		return nil
	}

	if s.config.Days <= 0 {
		return fmt.Errorf("webhook retention days must be positive, got %d", s.config.Days)
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("scheduler: starting webhook retention")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("schedule webhook retention: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: stopping webhook retention")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *WebhookRetentionService) run(ctx context.Context) {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("scheduler: webhook retention already running, skipping")
		return
	}
	s.running = true
	s.lastRunStartedAt = s.now()
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		s.running = false
		s.mutex.Unlock()
	}()

	deleted, err := s.purgeOldEvents(ctx)
	if err != nil {
		logrus.WithError(err).Error("scheduler: webhook retention failed")
		return
	}

	s.mutex.Lock()
	s.lastDeleted = deleted
	s.lastRunCompletedAt = s.now()
	s.mutex.Unlock()
}

func (s *WebhookRetentionService) purgeOldEvents(ctx context.Context) (int64, error) {
	cutoff := s.now().UTC().AddDate(0, 0, -s.config.Days)

	deleted, err := s.eventRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"cutoff":  cutoff.Format(time.RFC3339),
		"deleted": deleted,
	}).Info("scheduler: old webhook events removed")

	return deleted, nil
}

// GetStatus retorna o status atual do agendador
func (s *WebhookRetentionService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"retention_enabled":     s.config.Enabled,
		"retention_cron":        s.config.CronSchedule,
		"retention_days":        s.config.Days,
		"running":               s.running,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_deleted":          s.lastDeleted,
	}
}
