package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	globalMetrics *Metrics
	globalMu      sync.RWMutex
)

// Metrics agrupa as métricas Prometheus do serviço
type Metrics struct {
	// Graph API
	RemoteRequestsTotal          *prometheus.CounterVec
	RemoteRequestDurationSeconds *prometheus.HistogramVec

	// Relatórios
	ReportsTotal          *prometheus.CounterVec
	ReportDurationSeconds prometheus.Histogram
	PartialFailuresTotal  *prometheus.CounterVec

	// Webhook
	WebhookEventsTotal *prometheus.CounterVec

	registry *prometheus.Registry
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		RemoteRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meta_remote_requests_total",
				Help: "Total number of Graph API requests by endpoint and outcome",
			},
			[]string{"endpoint", "outcome"},
		),
		RemoteRequestDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "meta_remote_request_duration_seconds",
				Help:    "Graph API request duration in seconds",
				Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"endpoint"},
		),
		ReportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_runs_total",
				Help: "Total number of report pipeline runs by result",
			},
			[]string{"result"},
		),
		ReportDurationSeconds: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_run_duration_seconds",
				Help:    "Report pipeline duration in seconds",
				Buckets: []float64{.5, 1, 2.5, 5, 10, 20, 40, 80},
			},
		),
		PartialFailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_partial_failures_total",
				Help: "Total number of recovered node failures by hierarchy level",
			},
			[]string{"level"},
		),
		WebhookEventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "webhook_events_total",
				Help: "Total number of messaging webhook events by outcome",
			},
			[]string{"outcome"},
		),
		registry: reg,
	}

	reg.MustRegister(
		m.RemoteRequestsTotal,
		m.RemoteRequestDurationSeconds,
		m.ReportsTotal,
		m.ReportDurationSeconds,
		m.PartialFailuresTotal,
		m.WebhookEventsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry retorna o registry Prometheus
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler expõe as métricas no formato Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// SetGlobal define a instância global de métricas
func SetGlobal(m *Metrics) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalMetrics = m
}

// Global retorna a instância global de métricas
func Global() *Metrics {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalMetrics
}

// ObserveRemoteRequest registra uma chamada à Graph API
func ObserveRemoteRequest(endpoint, outcome string, duration time.Duration) {
	m := Global()
	if m != nil {
		m.RemoteRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
		m.RemoteRequestDurationSeconds.WithLabelValues(endpoint).Observe(duration.Seconds())
	}
}

// ObserveReport registra uma execução do pipeline de relatório
func ObserveReport(result string, duration time.Duration) {
	m := Global()
	if m != nil {
		m.ReportsTotal.WithLabelValues(result).Inc()
		m.ReportDurationSeconds.Observe(duration.Seconds())
	}
}

// IncPartialFailure conta uma falha recuperada em um nó da hierarquia
func IncPartialFailure(level string) {
	m := Global()
	if m != nil {
		m.PartialFailuresTotal.WithLabelValues(level).Inc()
	}
}

// IncWebhookEvents conta eventos recebidos pelo webhook
func IncWebhookEvents(outcome string, n int) {
	m := Global()
	if m != nil && n > 0 {
		m.WebhookEventsTotal.WithLabelValues(outcome).Add(float64(n))
	}
}
