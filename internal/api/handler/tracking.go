package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/tracking"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

// GetCustomerTracking atende GET /api/tracking/:psid
func GetCustomerTracking(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		psid := httprouter.ParamsFromContext(r.Context()).ByName("psid")

		customer, err := service.GetCustomer(r.Context(), psid)
		switch {
		case errors.Is(err, tracking.ErrTrackingDisabled):
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "customer tracking is disabled", nil)
			return
		case errors.Is(err, tracking.ErrCustomerNotFound):
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "customer not found", psid)
			return
		case err != nil:
			log.ForContext(r.Context()).WithFields(log.Fields{
				"sender_psid": psid,
				"error":       err.Error(),
			}).Error("tracking: failed to load customer")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "failed to load customer", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":  true,
			"customer": customer,
		})
	})
}
