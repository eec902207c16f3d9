package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
)

// StatusReporter é implementado pelos agendadores em internal/scheduler
type StatusReporter interface {
	GetStatus() map[string]any
}

// CronJobServices reúne os agendadores expostos em /api/cron/status
type CronJobServices struct {
	WebhookRetention StatusReporter
}

// GetCronStatus retorna o status de cada agendador configurado
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.WebhookRetention != nil {
			status["webhook_retention"] = services.WebhookRetention.GetStatus()
		}

		if len(status) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "no scheduler configured", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Error("cron: failed to encode scheduler status")
		}
	}
}
