package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// The metrics gauges only need collection sizes, so the store is
// consumed through a narrow counting interface.
type entityCounter interface {
	ProfessorCount() int
	DisciplineCount() int
	SemesterCount() int
}

// MetricsService encapsulates Prometheus instrumentation for the API.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	chatRequests    *prometheus.CounterVec
}

// NewMetricsService registers the core collectors. counts may be nil
// when no store gauges are wanted (tests).
func NewMetricsService(counts entityCounter) *MetricsService {
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

	chatRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_requests_total",
		Help: "Assistant turns by outcome (ok, navigation, error, rejected)",
	}, []string{"outcome"})

	registry.MustRegister(requestDuration, requestTotal, chatRequests)

	if counts != nil {
		registry.MustRegister(
			prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Name: "professors_total",
				Help: "Professors currently in the roster",
			}, func() float64 { return float64(counts.ProfessorCount()) }),
			prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Name: "disciplines_total",
				Help: "Disciplines currently in the catalog",
			}, func() float64 { return float64(counts.DisciplineCount()) }),
			prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Name: "semesters_total",
				Help: "Semesters currently registered",
			}, func() float64 { return float64(counts.SemesterCount()) }),
		)
	}

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		chatRequests:    chatRequests,
	}
}

// Handler exposes the Prometheus scrape endpoint.
func (s *MetricsService) Handler() http.Handler {
	return s.handler
}

// ObserveHTTPRequest records one completed request.
func (s *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := []string{method, path, strconv.Itoa(status)}
	s.requestDuration.WithLabelValues(labels...).Observe(duration.Seconds())
	s.requestTotal.WithLabelValues(labels...).Inc()
}

// ObserveChatOutcome counts one assistant turn result.
func (s *MetricsService) ObserveChatOutcome(outcome string) {
	s.chatRequests.WithLabelValues(outcome).Inc()
}
