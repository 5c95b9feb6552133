package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the HTTP
// surface, roster mutations and snapshot persistence.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	rosterMutations *prometheus.CounterVec
	snapshotSaves   *prometheus.HistogramVec
	exportsTotal    *prometheus.CounterVec
	importRows      prometheus.Counter
}

// NewMetricsService registers the core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	rosterMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "roster_mutations_total",
		Help: "Total roster mutations by operation",
	}, []string{"op"})

	snapshotSaves := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "snapshot_save_duration_seconds",
		Help:    "Duration of snapshot persistence writes",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})

	exportsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "roster_exports_total",
		Help: "Total generated roster exports by format",
	}, []string{"format"})

	importRows := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "roster_import_rows_total",
		Help: "Total attendee rows appended through imports",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, rosterMutations, snapshotSaves, exportsTotal, importRows, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		rosterMutations: rosterMutations,
		snapshotSaves:   snapshotSaves,
		exportsTotal:    exportsTotal,
		importRows:      importRows,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// RecordRosterMutation counts one roster mutation by operation name.
func (m *MetricsService) RecordRosterMutation(op string) {
	if m == nil {
		return
	}
	m.rosterMutations.WithLabelValues(op).Inc()
}

// ObserveSnapshotSave records the duration and outcome of a snapshot write.
func (m *MetricsService) ObserveSnapshotSave(duration time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.snapshotSaves.WithLabelValues(outcome).Observe(duration.Seconds())
}

// RecordExport counts one generated export by format.
func (m *MetricsService) RecordExport(format string) {
	if m == nil {
		return
	}
	m.exportsTotal.WithLabelValues(format).Inc()
}

// RecordImport counts appended attendee rows.
func (m *MetricsService) RecordImport(rows int) {
	if m == nil {
		return
	}
	m.importRows.Add(float64(rows))
}
