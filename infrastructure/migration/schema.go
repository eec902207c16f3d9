package migration

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
)

// Statements cria o schema usado pelo rastreamento do webhook. Todos são idempotentes.
var Statements = []string{
	`CREATE TABLE IF NOT EXISTS webhook_events (
		id VARCHAR(12) PRIMARY KEY,
		page_id TEXT NOT NULL DEFAULT '',
		sender_psid TEXT NOT NULL,
		recipient_id TEXT NOT NULL DEFAULT '',
		message_id TEXT NOT NULL DEFAULT '',
		text TEXT NOT NULL DEFAULT '',
		ad_id TEXT NOT NULL DEFAULT '',
		occurred_at TIMESTAMPTZ NOT NULL,
		payload JSONB NOT NULL DEFAULT '{}',
		received_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_webhook_events_received_at ON webhook_events (received_at)`,
	`CREATE INDEX IF NOT EXISTS idx_webhook_events_sender_psid ON webhook_events (sender_psid)`,
	`CREATE TABLE IF NOT EXISTS customer_tracking (
		id VARCHAR(12) PRIMARY KEY,
		user_psid TEXT NOT NULL UNIQUE,
		page_id TEXT NOT NULL DEFAULT '',
		ad_id TEXT NOT NULL DEFAULT '',
		ref TEXT NOT NULL DEFAULT '',
		source TEXT NOT NULL DEFAULT '',
		last_message_text TEXT NOT NULL DEFAULT '',
		message_count BIGINT NOT NULL DEFAULT 1,
		first_interaction TIMESTAMPTZ NOT NULL,
		last_message_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_customer_tracking_ad_id ON customer_tracking (ad_id)`,
}

// Apply executa todos os statements em uma única transação
func Apply(ctx context.Context, conn postgres.Conn) error {
	return conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		for i, statement := range Statements {
			if _, err := q.ExecContext(ctx, statement); err != nil {
				return errors.Wrapf(err, "migration statement %d", i+1)
			}
		}

		logrus.WithField("statements", len(Statements)).Info("migration: schema applied")
		return nil
	})
}
