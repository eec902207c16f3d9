package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/api"
	"github.com/vfg2006/ads-dashboard-api/internal/api/handler"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/metrics"
	"github.com/vfg2006/ads-dashboard-api/internal/scheduler"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/tracking"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel, os.Stdout)
	logrus.Infof("log level set to %s", logrus.GetLevel())

	if cfg.Meta.AccessToken == "" || cfg.Meta.AdAccountID == "" {
		// o servidor sobe mesmo assim; /api/data responde 500 até a configuração ser corrigida
		logrus.Warn("FB_ACCESS_TOKEN or AD_ACCOUNT_ID not set, reports will fail")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.New()
	metrics.SetGlobal(m)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	reporter := reporting.NewService(cfg, metaIntegrator, metaIntegrator, metaIntegrator)
	tracker := tracking.NewService(cfg.Messenger)

	var cronServices handler.CronJobServices

	if cfg.Messenger.TrackingEnabled || cfg.WebhookRetention.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		webhookEventRepo := repository.NewWebhookEventRepository(pgConn)
		customerTrackingRepo := repository.NewCustomerTrackingRepository(pgConn)

		if cfg.Messenger.TrackingEnabled {
			tracker.WithStorage(webhookEventRepo, customerTrackingRepo)
			logrus.Info("webhook: customer tracking storage enabled")
		}

		if cfg.WebhookRetention.Enabled {
			retentionService := scheduler.NewWebhookRetentionService(webhookEventRepo, cfg)
			if err := retentionService.Start(ctx); err != nil {
				logrus.WithError(err).Error("scheduler: failed to start webhook retention")
			} else {
				cronServices.WebhookRetention = retentionService
			}
		}
	}

	server, err := api.New(cfg, reporter, tracker, m, cronServices)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("database: failed to connect to PostgreSQL")
	}

	logrus.Info("database: PostgreSQL connection established")
	return conn
}
