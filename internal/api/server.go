package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/internal/api/handler"
	"github.com/vfg2006/ads-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/metrics"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/tracking"
	"github.com/vfg2006/ads-dashboard-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	reporter reporting.Reporter,
	tracker tracking.Tracker,
	m *metrics.Metrics,
	cronServices handler.CronJobServices,
) (*Server, error) {
	if reporter == nil {
		return nil, fmt.Errorf("reporter is required")
	}

	routes := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Report(reporter)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
		router.WithNotFound(handler.NotFound()),
		router.WithMethodNotAllowed(handler.MethodNotAllowed()),
	}

	if tracker != nil {
		routes = append(routes,
			router.WithRoutes(handler.Webhook(tracker)...),
			router.WithRoutes(handler.Tracking(tracker)...),
		)
	}

	if m != nil {
		routes = append(routes, router.WithRoutes(handler.Metrics(m.Handler())...))
	}

	rt := router.New(routes...)

	middlewares := []alice.Constructor{
		middleware.LoggingMiddleware(),
		middleware.LogPanicMiddleware(),
		middleware.Cors(),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server: starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server: listen failed")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("server: interrupt signal received")
	case <-ctx.Done():
		logrus.Info("server: application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("server: graceful shutdown started")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("server: shutdown failed")
		return err
	}

	logrus.Info("server: stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
