package tracking

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/metrics"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	subscribeMode   = "subscribe"
	signaturePrefix = "sha256="
)

type Service struct {
	cfg       config.Messenger
	events    repository.WebhookEventRepository
	customers repository.CustomerTrackingRepository
	now       func() time.Time
}

func NewService(cfg config.Messenger) *Service {
	return &Service{
		cfg: cfg,
		now: time.Now,
	}
}

// WithStorage liga a persistência dos eventos. Sem ela os eventos são apenas logados.
func (s *Service) WithStorage(events repository.WebhookEventRepository, customers repository.CustomerTrackingRepository) *Service {
	s.events = events
	s.customers = customers
	return s
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) VerifySubscription(mode, token, challenge string) (string, error) {
	if mode == "" || token == "" {
		return "", ErrMissingVerifyParams
	}

	if mode != subscribeMode || s.cfg.VerifyToken == "" ||
		subtle.ConstantTimeCompare([]byte(token), []byte(s.cfg.VerifyToken)) != 1 {
		log.L.WithField("mode", mode).Warn("webhook: verification rejected")
		return "", ErrVerificationFailed
	}

	log.L.Info("webhook: verified")
	return challenge, nil
}

func (s *Service) VerifySignature(body []byte, header string) error {
	if s.cfg.AppSecret == "" {
		return nil
	}

	if !strings.HasPrefix(header, signaturePrefix) {
		return ErrInvalidSignature
	}

	received, err := hex.DecodeString(strings.TrimPrefix(header, signaturePrefix))
	if err != nil {
		return ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, []byte(s.cfg.AppSecret))
	mac.Write(body)
	if !hmac.Equal(received, mac.Sum(nil)) {
		return ErrInvalidSignature
	}

	return nil
}

func (s *Service) HandleEvent(ctx context.Context, body []byte) (int, error) {
	logger := log.ForContext(ctx)

	var payload domain.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, errors.Wrap(ErrInvalidPayload, err.Error())
	}

	if payload.Object != domain.WebhookObjectPage {
		return 0, errors.Wrapf(ErrUnsupportedObject, "object %q", payload.Object)
	}

	receivedAt := s.now().UTC()
	inbound := make([]inboundMessage, 0)
	for _, entry := range payload.Entry {
		for _, messaging := range entry.Messaging {
			if messaging.Sender.ID == "" {
				continue
			}

			message := inboundMessage{
				event:    newWebhookEvent(entry, messaging, receivedAt),
				referral: messaging.ReferralInfo(),
			}
			logger.WithFields(log.Fields{
				"page_id":     message.event.PageID,
				"sender_psid": message.event.SenderPSID,
				"ad_id":       message.event.AdID,
			}).Info("webhook: messaging event received")

			inbound = append(inbound, message)
		}
	}

	if len(inbound) == 0 {
		return 0, nil
	}

	if s.events == nil || s.customers == nil {
		metrics.IncWebhookEvents("logged", len(inbound))
		return len(inbound), nil
	}

	s.store(ctx, inbound)
	return len(inbound), nil
}

type inboundMessage struct {
	event    *domain.WebhookEvent
	referral *domain.Referral
}

// store grava os eventos e atualiza o rastreamento de clientes.
// Falhas só são logadas; a resposta ao webhook continua 200.
func (s *Service) store(ctx context.Context, inbound []inboundMessage) {
	logger := log.ForContext(ctx)

	events := make([]*domain.WebhookEvent, 0, len(inbound))
	for _, message := range inbound {
		events = append(events, message.event)
	}

	if err := s.events.Save(ctx, events...); err != nil {
		logger.WithField("error", err.Error()).Error("webhook: failed to store events")
		metrics.IncWebhookEvents("storage_error", len(events))
	} else {
		metrics.IncWebhookEvents("stored", len(events))
	}

	for _, message := range inbound {
		tracking := newCustomerTracking(message.event, message.referral)
		if err := s.customers.Upsert(ctx, tracking); err != nil {
			logger.WithFields(log.Fields{
				"sender_psid": tracking.UserPSID,
				"error":       err.Error(),
			}).Error("webhook: failed to update customer tracking")
			continue
		}

		logger.WithFields(log.Fields{
			"sender_psid":   tracking.UserPSID,
			"message_count": tracking.MessageCount,
		}).Debug("webhook: customer tracking updated")
	}
}

// GetCustomer só funciona com o armazenamento ligado (TRACKING_ENABLED)
func (s *Service) GetCustomer(ctx context.Context, psid string) (*domain.CustomerTracking, error) {
	if s.customers == nil {
		return nil, ErrTrackingDisabled
	}

	customer, err := s.customers.GetByPSID(ctx, strings.TrimSpace(psid))
	if err != nil {
		return nil, errors.Wrap(err, "tracking: get customer")
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	return customer, nil
}

func newWebhookEvent(entry domain.WebhookEntry, messaging domain.MessagingEvent, receivedAt time.Time) *domain.WebhookEvent {
	event := &domain.WebhookEvent{
		PageID:      entry.ID,
		SenderPSID:  messaging.Sender.ID,
		RecipientID: messaging.Recipient.ID,
		OccurredAt:  receivedAt,
		ReceivedAt:  receivedAt,
	}

	if messaging.Timestamp > 0 {
		event.OccurredAt = time.UnixMilli(messaging.Timestamp).UTC()
	}

	if messaging.Message != nil {
		event.MessageID = messaging.Message.MID
		event.Text = messaging.Message.Text
	}

	if referral := messaging.ReferralInfo(); referral != nil {
		event.AdID = referral.AdID
	}

	if raw, err := json.Marshal(messaging); err == nil {
		event.Payload = raw
	}

	return event
}

func newCustomerTracking(event *domain.WebhookEvent, referral *domain.Referral) *domain.CustomerTracking {
	tracking := &domain.CustomerTracking{
		UserPSID:         event.SenderPSID,
		PageID:           event.PageID,
		AdID:             event.AdID,
		LastMessageText:  event.Text,
		FirstInteraction: event.OccurredAt,
		LastMessageAt:    event.OccurredAt,
		CreatedAt:        event.ReceivedAt,
		UpdatedAt:        event.ReceivedAt,
	}

	if referral != nil {
		tracking.Ref = referral.Ref
		tracking.Source = referral.Source
	}

	return tracking
}
