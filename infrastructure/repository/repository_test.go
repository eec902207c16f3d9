package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

func TestBuildInsertWebhookEvents(t *testing.T) {
	received := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)
	events := []*domain.WebhookEvent{
		{ID: "fixed", PageID: "p1", SenderPSID: "u1", Text: "oi", Payload: []byte(`{"a":1}`), ReceivedAt: received},
		{PageID: "p1", SenderPSID: "u2", ReceivedAt: received},
	}

	query, args, err := buildInsertWebhookEvents(events)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO webhook_events (id,page_id,sender_psid,recipient_id,message_id,text,ad_id,occurred_at,payload,received_at) VALUES")
	assert.Contains(t, query, "$20")
	assert.NotContains(t, query, "?")
	assert.Contains(t, query, "ON CONFLICT (id) DO NOTHING")
	require.Len(t, args, 20)

	assert.Equal(t, "fixed", args[0])
	assert.Equal(t, `{"a":1}`, args[8])
	assert.Equal(t, "{}", args[18])

	// id gerado para o segundo evento
	assert.Len(t, events[1].ID, 12)
	assert.Equal(t, events[1].ID, args[10])
}

func TestBuildDeleteWebhookEvents(t *testing.T) {
	cutoff := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := buildDeleteWebhookEvents(cutoff)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM webhook_events WHERE received_at < $1", query)
	assert.Equal(t, []interface{}{cutoff}, args)
}

func TestBuildUpsertCustomerTracking(t *testing.T) {
	now := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)
	tracking := &domain.CustomerTracking{
		ID:               "abc",
		UserPSID:         "u1",
		PageID:           "p1",
		AdID:             "ad9",
		LastMessageText:  "quero saber o preço",
		FirstInteraction: now,
		LastMessageAt:    now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	query, args, err := buildUpsertCustomerTracking(tracking)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO customer_tracking")
	assert.Contains(t, query, "ON CONFLICT (user_psid) DO UPDATE SET")
	assert.Contains(t, query, "message_count = customer_tracking.message_count + 1")
	assert.Contains(t, query, "RETURNING id, message_count, first_interaction, created_at")
	assert.Contains(t, query, "$12")
	require.Len(t, args, 12)
	assert.Equal(t, "u1", args[1])
	assert.Equal(t, 1, args[7])
}

func TestBuildSelectCustomerTracking(t *testing.T) {
	query, args, err := buildSelectCustomerTracking("u1")
	require.NoError(t, err)

	assert.Contains(t, query, "FROM customer_tracking WHERE user_psid = $1")
	assert.Equal(t, []interface{}{"u1"}, args)
}
