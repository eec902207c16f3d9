package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

const customerTrackingTable = "customer_tracking"

// a origem (anúncio/ref) do primeiro contato não é sobrescrita por mensagens sem referral
const upsertCustomerTrackingSuffix = `ON CONFLICT (user_psid) DO UPDATE SET
	message_count = customer_tracking.message_count + 1,
	last_message_text = EXCLUDED.last_message_text,
	last_message_at = EXCLUDED.last_message_at,
	ad_id = COALESCE(NULLIF(EXCLUDED.ad_id, ''), customer_tracking.ad_id),
	ref = COALESCE(NULLIF(EXCLUDED.ref, ''), customer_tracking.ref),
	source = COALESCE(NULLIF(EXCLUDED.source, ''), customer_tracking.source),
	updated_at = EXCLUDED.updated_at
RETURNING id, message_count, first_interaction, created_at`

type CustomerTrackingRepository interface {
	// Upsert cria o registro do cliente ou incrementa message_count do existente
	Upsert(ctx context.Context, tracking *domain.CustomerTracking) error
	// GetByPSID retorna nil quando o cliente ainda não foi registrado
	GetByPSID(ctx context.Context, psid string) (*domain.CustomerTracking, error)
}

type customerTrackingRepository struct {
	conn postgres.Queryer
}

func NewCustomerTrackingRepository(conn postgres.Queryer) CustomerTrackingRepository {
	return &customerTrackingRepository{
		conn: conn,
	}
}

func (r *customerTrackingRepository) Upsert(ctx context.Context, tracking *domain.CustomerTracking) error {
	if tracking.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return errors.Wrap(err, "generate customer tracking id")
		}
		tracking.ID = id
	}

	query, args, err := buildUpsertCustomerTracking(tracking)
	if err != nil {
		return errors.Wrap(err, "build customer tracking upsert")
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&tracking.ID,
		&tracking.MessageCount,
		&tracking.FirstInteraction,
		&tracking.CreatedAt,
	)
	if err != nil {
		return errors.Wrapf(err, "upsert customer tracking %s", tracking.UserPSID)
	}

	return nil
}

func (r *customerTrackingRepository) GetByPSID(ctx context.Context, psid string) (*domain.CustomerTracking, error) {
	query, args, err := buildSelectCustomerTracking(psid)
	if err != nil {
		return nil, errors.Wrap(err, "build customer tracking select")
	}

	var tracking domain.CustomerTracking
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&tracking.ID,
		&tracking.UserPSID,
		&tracking.PageID,
		&tracking.AdID,
		&tracking.Ref,
		&tracking.Source,
		&tracking.LastMessageText,
		&tracking.MessageCount,
		&tracking.FirstInteraction,
		&tracking.LastMessageAt,
		&tracking.CreatedAt,
		&tracking.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get customer tracking %s", psid)
	}

	return &tracking, nil
}

func buildUpsertCustomerTracking(tracking *domain.CustomerTracking) (string, []interface{}, error) {
	return squirrel.
		Insert(customerTrackingTable).
		Columns(
			"id", "user_psid", "page_id", "ad_id", "ref", "source", "last_message_text",
			"message_count", "first_interaction", "last_message_at", "created_at", "updated_at",
		).
		Values(
			tracking.ID,
			tracking.UserPSID,
			tracking.PageID,
			tracking.AdID,
			tracking.Ref,
			tracking.Source,
			tracking.LastMessageText,
			1,
			tracking.FirstInteraction,
			tracking.LastMessageAt,
			tracking.CreatedAt,
			tracking.UpdatedAt,
		).
		Suffix(upsertCustomerTrackingSuffix).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildSelectCustomerTracking(psid string) (string, []interface{}, error) {
	return squirrel.
		Select(
			"id", "user_psid", "page_id", "ad_id", "ref", "source", "last_message_text",
			"message_count", "first_interaction", "last_message_at", "created_at", "updated_at",
		).
		From(customerTrackingTable).
		Where(squirrel.Eq{"user_psid": psid}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
