package handler

import (
	"fmt"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetReport atende GET /api/data?since=DD-MM-YYYY&until=DD-MM-YYYY
func GetReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		since := r.URL.Query().Get("since")
		until := r.URL.Query().Get("until")

		logger.WithFields(log.Fields{
			"since": since,
			"until": until,
		}).Info("report: request received")

		report, err := service.GetReport(r.Context(), since, until)
		if err != nil {
			writeReportError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithField("error", err.Error()).Error("report: failed to encode response")
		}
	})
}

func writeReportError(w http.ResponseWriter, logger log.Logger, err error) {
	var (
		validationErr *reporting.ValidationError
		configErr     *reporting.ConfigurationError
		fatalErr      *reporting.FatalError
	)

	switch {
	case errors.As(err, &validationErr):
		logger.WithField("error", err.Error()).Warn("report: invalid date range")
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "invalid date range", validationDetails(validationErr))

	case errors.As(err, &configErr):
		logger.WithField("missing", configErr.Key).Error("report: server configuration incomplete")
		apiErrors.WriteError(w, apiErrors.ErrMissingConfiguration, "server configuration incomplete", "missing "+configErr.Key)

	case errors.As(err, &fatalErr):
		logger.WithField("error", err.Error()).Error("report: remote api failure")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, fatalErr.Op, remoteErrorDetails(fatalErr.Err))

	default:
		logger.WithField("error", err.Error()).Error("report: unexpected failure")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, apiErrors.FromError(err).Error, nil)
	}
}

// validationDetails descreve a restrição violada, ex.: "since: expected DD-MM-YYYY (got 2024-01-31)"
func validationDetails(err *reporting.ValidationError) string {
	details := err.Param + ": " + err.Reason
	if err.Value != "" {
		details += fmt.Sprintf(" (got %s)", err.Value)
	}
	return details
}

// remoteErrorDetails resume o erro da Graph API com type, code e fbtrace_id quando existirem
func remoteErrorDetails(err error) string {
	var appErr *metaclient.ApplicationError
	if !errors.As(err, &appErr) {
		return err.Error()
	}

	var attrs []string
	if appErr.Type != "" {
		attrs = append(attrs, "type "+appErr.Type)
	}
	if appErr.Code != 0 {
		attrs = append(attrs, fmt.Sprintf("code %d", appErr.Code))
	}
	if appErr.Subcode != 0 {
		attrs = append(attrs, fmt.Sprintf("subcode %d", appErr.Subcode))
	}
	if appErr.FBTraceID != "" {
		attrs = append(attrs, "fbtrace_id "+appErr.FBTraceID)
	}

	if len(attrs) == 0 {
		return appErr.Message
	}
	return fmt.Sprintf("%s (%s)", appErr.Message, strings.Join(attrs, ", "))
}
