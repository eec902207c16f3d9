package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

const webhookEventsTable = "webhook_events"

var webhookEventColumns = []string{
	"id", "page_id", "sender_psid", "recipient_id", "message_id",
	"text", "ad_id", "occurred_at", "payload", "received_at",
}

type WebhookEventRepository interface {
	// Save grava os eventos em um único INSERT. IDs vazios são gerados aqui.
	Save(ctx context.Context, events ...*domain.WebhookEvent) error
	// DeleteOlderThan remove eventos recebidos antes de cutoff e retorna quantos foram apagados
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type webhookEventRepository struct {
	conn postgres.Queryer
}

func NewWebhookEventRepository(conn postgres.Queryer) WebhookEventRepository {
	return &webhookEventRepository{
		conn: conn,
	}
}

func (r *webhookEventRepository) Save(ctx context.Context, events ...*domain.WebhookEvent) error {
	if len(events) == 0 {
		return nil
	}

	query, args, err := buildInsertWebhookEvents(events)
	if err != nil {
		return errors.Wrap(err, "build webhook events insert")
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "insert webhook events")
	}

	return nil
}

func (r *webhookEventRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := buildDeleteWebhookEvents(cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "build webhook events delete")
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "delete webhook events")
	}

	return result.RowsAffected()
}

func buildInsertWebhookEvents(events []*domain.WebhookEvent) (string, []interface{}, error) {
	queryBuilder := squirrel.
		Insert(webhookEventsTable).
		Columns(webhookEventColumns...).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	for _, event := range events {
		if event.ID == "" {
			id, err := utils.GenerateID()
			if err != nil {
				return "", nil, err
			}
			event.ID = id
		}

		payload := string(event.Payload)
		if payload == "" {
			payload = "{}"
		}

		queryBuilder = queryBuilder.Values(
			event.ID,
			event.PageID,
			event.SenderPSID,
			event.RecipientID,
			event.MessageID,
			event.Text,
			event.AdID,
			event.OccurredAt,
			payload,
			event.ReceivedAt,
		)
	}

	return queryBuilder.ToSql()
}

func buildDeleteWebhookEvents(cutoff time.Time) (string, []interface{}, error) {
	return squirrel.
		Delete(webhookEventsTable).
		Where(squirrel.Lt{"received_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
