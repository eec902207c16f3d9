package middleware

import (
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

const (
	CorrelationIDHeader  = "X-Correlation-ID"
	slowRequestThreshold = 5 * time.Second
)

// routeArea devolve o prefixo de log da rota. Rotas de infraestrutura
// (healthcheck, metrics) ficam em debug para não poluir o log.
func routeArea(path string) (area string, quiet bool) {
	switch {
	case strings.HasPrefix(path, "/api/data"):
		return "report", false
	case strings.HasPrefix(path, "/api/webhook"):
		return "webhook", false
	case strings.HasPrefix(path, "/api/tracking"):
		return "tracking", false
	case strings.HasPrefix(path, "/api/cron"):
		return "scheduler", false
	case path == "/healthcheck" || path == "/metrics":
		return "http", true
	}
	return "http", false
}

// LoggingMiddleware registra uma linha por requisição com rota, status e duração.
// Um X-Correlation-ID válido recebido do chamador é reaproveitado.
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if incoming, err := uuid.Parse(r.Header.Get(CorrelationIDHeader)); err == nil {
				ctx = log.ContextWithCorrelationID(ctx, incoming.String())
			} else {
				ctx, _ = log.WithCorrelationID(ctx)
			}
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, log.GetCorrelationID(ctx))

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(rec, r)

			elapsed := time.Since(start)
			area, quiet := routeArea(r.URL.Path)

			logger := log.ForContext(ctx).WithFields(log.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      rec.status,
				"bytes":       rec.bytes,
				"duration_ms": elapsed.Milliseconds(),
			})
			msg := fmt.Sprintf("%s: %s %s -> %d", area, r.Method, r.URL.Path, rec.status)

			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error(msg)
			case rec.status >= http.StatusBadRequest:
				logger.Warn(msg)
			case elapsed > slowRequestThreshold:
				logger.WithField("slow", true).Warn(msg)
			case quiet:
				logger.Debug(msg)
			default:
				logger.Info(msg)
			}
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}

// LogPanicMiddleware transforma um panic em 500 JSON e registra a pilha
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if recovered := recover(); recovered != nil {
					stack := make([]byte, 4096)
					stack = stack[:runtime.Stack(stack, false)]

					log.ForContext(r.Context()).WithFields(log.Fields{
						"panic":       fmt.Sprint(recovered),
						"method":      r.Method,
						"path":        r.URL.Path,
						"stack_trace": string(stack),
					}).Error("http: panic recovered")

					apiErrors.WriteError(w, apiErrors.ErrInternalServer, "internal server error", nil)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
