package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/tracking"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/tracking/mocks"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestVerifyWebhook(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "handshake aceito ecoa o challenge", wantStatus: http.StatusOK, wantBody: "1158201444"},
		{name: "token incorreto", err: tracking.ErrVerificationFailed, wantStatus: http.StatusForbidden, wantBody: "Forbidden"},
		{name: "parâmetros ausentes", err: tracking.ErrMissingVerifyParams, wantStatus: http.StatusBadRequest, wantBody: "Bad Request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tracker := mocks.NewMockTracker(ctrl)

			challenge := ""
			if tt.err == nil {
				challenge = "1158201444"
			}
			tracker.EXPECT().VerifySubscription("subscribe", "segredo", "1158201444").Return(challenge, tt.err)

			rt := router.New(router.WithRoutes(Webhook(tracker)...))
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/webhook?hub.mode=subscribe&hub.verify_token=segredo&hub.challenge=1158201444", nil)
			rt.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestReceiveWebhook(t *testing.T) {
	log.SetupTestLogger()
	body := `{"object":"page","entry":[]}`

	tests := []struct {
		name       string
		setup      func(tracker *mocks.MockTracker)
		wantStatus int
		wantBody   string
	}{
		{
			name: "evento recebido",
			setup: func(tracker *mocks.MockTracker) {
				tracker.EXPECT().VerifySignature([]byte(body), "sha256=abc").Return(nil)
				tracker.EXPECT().HandleEvent(gomock.Any(), []byte(body)).Return(1, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "EVENT_RECEIVED",
		},
		{
			name: "assinatura inválida",
			setup: func(tracker *mocks.MockTracker) {
				tracker.EXPECT().VerifySignature(gomock.Any(), gomock.Any()).Return(tracking.ErrInvalidSignature)
			},
			wantStatus: http.StatusForbidden,
			wantBody:   "Forbidden",
		},
		{
			name: "objeto diferente de page",
			setup: func(tracker *mocks.MockTracker) {
				tracker.EXPECT().VerifySignature(gomock.Any(), gomock.Any()).Return(nil)
				tracker.EXPECT().HandleEvent(gomock.Any(), gomock.Any()).
					Return(0, errors.Wrap(tracking.ErrUnsupportedObject, `object "instagram"`))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "Not Found",
		},
		{
			name: "corpo inválido",
			setup: func(tracker *mocks.MockTracker) {
				tracker.EXPECT().VerifySignature(gomock.Any(), gomock.Any()).Return(nil)
				tracker.EXPECT().HandleEvent(gomock.Any(), gomock.Any()).
					Return(0, errors.Wrap(tracking.ErrInvalidPayload, "unexpected end of JSON input"))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Bad Request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tracker := mocks.NewMockTracker(ctrl)
			tt.setup(tracker)

			rt := router.New(router.WithRoutes(Webhook(tracker)...))
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/webhook", strings.NewReader(body))
			req.Header.Set("X-Hub-Signature-256", "sha256=abc")
			rt.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWebhook_MethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracker := mocks.NewMockTracker(ctrl)

	rt := router.New(
		router.WithRoutes(Webhook(tracker)...),
		router.WithMethodNotAllowed(MethodNotAllowed()),
	)

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/webhook", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, POST", rec.Header().Get("Allow"))
	assert.Equal(t, "Method PUT Not Allowed", rec.Body.String())
}
