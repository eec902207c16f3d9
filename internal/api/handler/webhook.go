package handler

import (
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/tracking"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

const (
	maxWebhookBodyBytes = 1 << 20
	signatureHeader     = "X-Hub-Signature-256"
	eventReceived       = "EVENT_RECEIVED"
)

// VerifyWebhook atende o handshake GET /api/webhook?hub.mode=subscribe&hub.verify_token=...&hub.challenge=...
func VerifyWebhook(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		challenge, err := service.VerifySubscription(
			query.Get("hub.mode"),
			query.Get("hub.verify_token"),
			query.Get("hub.challenge"),
		)
		switch {
		case errors.Is(err, tracking.ErrMissingVerifyParams):
			writeText(w, http.StatusBadRequest, "Bad Request")
		case err != nil:
			writeText(w, http.StatusForbidden, "Forbidden")
		default:
			writeText(w, http.StatusOK, challenge)
		}
	})
}

// ReceiveWebhook atende POST /api/webhook com eventos de mensagens da página
func ReceiveWebhook(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodyBytes))
		if err != nil {
			logger.WithField("error", err.Error()).Warn("webhook: failed to read body")
			writeText(w, http.StatusBadRequest, "Bad Request")
			return
		}

		if err := service.VerifySignature(body, r.Header.Get(signatureHeader)); err != nil {
			logger.Warn("webhook: signature mismatch")
			writeText(w, http.StatusForbidden, "Forbidden")
			return
		}

		count, err := service.HandleEvent(r.Context(), body)
		switch {
		case errors.Is(err, tracking.ErrUnsupportedObject):
			logger.WithField("error", err.Error()).Warn("webhook: unsupported object")
			writeText(w, http.StatusNotFound, "Not Found")
			return
		case err != nil:
			logger.WithField("error", err.Error()).Warn("webhook: invalid payload")
			writeText(w, http.StatusBadRequest, "Bad Request")
			return
		}

		logger.WithField("events", count).Info("webhook: events processed")
		writeText(w, http.StatusOK, eventReceived)
	})
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
