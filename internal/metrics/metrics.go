// Package metrics holds the Prometheus collectors for the calculator
// service.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tapecalc/internal/domain"
	"tapecalc/internal/imperial"
)

// Metrics holds every collector, registered on its own registry.
type Metrics struct {
	Registry *prometheus.Registry

	CalculationsTotal      *prometheus.CounterVec
	CalculationErrorsTotal *prometheus.CounterVec
	LayoutMarksTotal       *prometheus.CounterVec
	RequestsTotal          *prometheus.CounterVec
	RequestDuration        *prometheus.HistogramVec
}

// New creates the collectors under namespace, plus the Go and process
// collectors.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		CalculationsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calculations_total",
				Help:      "Total number of evaluated expressions",
			},
			[]string{"op"},
		),
		CalculationErrorsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calculation_errors_total",
				Help:      "Total number of failed evaluations",
			},
			[]string{"kind"},
		),
		LayoutMarksTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "layout_marks_total",
				Help:      "Total number of layout marks generated",
			},
			[]string{"mode"},
		),
		RequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "route"},
		),
	}
}

// Calculated counts an evaluation and classifies its error, if any.
func (m *Metrics) Calculated(op string, err error) {
	m.CalculationsTotal.WithLabelValues(op).Inc()
	if err != nil {
		m.CalculationErrorsTotal.WithLabelValues(ErrorKind(err)).Inc()
	}
}

// LayoutGenerated counts the marks of one layout.
func (m *Metrics) LayoutGenerated(mode string, marks int) {
	m.LayoutMarksTotal.WithLabelValues(mode).Add(float64(marks))
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// ErrorKind maps an evaluation error onto a small label set.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, imperial.ErrDivideByZero):
		return "divide_by_zero"
	case errors.Is(err, imperial.ErrInvalidInput), errors.Is(err, domain.ErrInvalidMeasurement):
		return "invalid_input"
	case errors.Is(err, imperial.ErrNotFinite):
		return "not_finite"
	case errors.Is(err, imperial.ErrUnknownOperation):
		return "unknown_operation"
	}
	return "other"
}
