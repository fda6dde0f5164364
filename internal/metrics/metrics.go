package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names understood by the recorders
const (
	APIRequest              = "api.request"
	APIRequestDuration      = "api.request.duration"
	TokenRefresh            = "auth.token_refresh"
	SessionTransition       = "session.transition"
	AuthenticationEvent     = "authentication_event"
	CircuitBreakerState     = "circuit_breaker.state"
	ExpenseCacheSize        = "expense_cache.size"
	ExpenseCacheRefresh     = "expense_cache.refresh"
	SMSMessage              = "sms.message"
	BackendExpensesRecorded = "backend.expenses_recorded"
	BackendAPIError         = "backend.api_error"
)

// RecorderInterface records named counters, timings and gauges
type RecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type PrometheusMetrics struct {
	apiRequests          *prometheus.CounterVec
	apiRequestDuration   prometheus.Histogram
	tokenRefreshes       *prometheus.CounterVec
	sessionTransitions   *prometheus.CounterVec
	authenticationEvents *prometheus.CounterVec
	circuitBreakerState  *prometheus.GaugeVec
	expenseCacheSize     prometheus.Gauge
	expenseCacheRefresh  *prometheus.CounterVec
	smsMessages          *prometheus.CounterVec
	expensesRecorded     *prometheus.CounterVec
	backendErrors        *prometheus.CounterVec
}

// NewPrometheusMetrics registers the collectors on reg. A nil reg uses the
// default Prometheus registerer.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		apiRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expense_api_requests_total",
				Help: "Total number of API requests issued by the client",
			},
			[]string{"method", "status"},
		),
		apiRequestDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "expense_api_request_duration_milliseconds",
				Help:    "API request duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		tokenRefreshes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expense_token_refresh_total",
				Help: "Total number of access token refresh attempts",
			},
			[]string{"result"},
		),
		sessionTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expense_session_transitions_total",
				Help: "Total number of session state transitions",
			},
			[]string{"status"},
		),
		authenticationEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expense_authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "expense_circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		expenseCacheSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "expense_cache_records",
				Help: "Number of expense records held in the client cache",
			},
		),
		expenseCacheRefresh: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expense_cache_refresh_total",
				Help: "Total number of expense cache refreshes",
			},
			[]string{"status"},
		),
		smsMessages: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expense_sms_messages_total",
				Help: "Total number of SMS messages handled by the listener",
			},
			[]string{"result"},
		),
		expensesRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expense_backend_expenses_recorded_total",
				Help: "Total number of expenses stored by the development backend",
			},
			[]string{"source"},
		),
		backendErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expense_backend_api_errors_total",
				Help: "Total number of error responses written by the development backend",
			},
			[]string{"code", "status"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case APIRequest:
		m.apiRequests.WithLabelValues(tags["method"], tags["status"]).Inc()
	case TokenRefresh:
		if result := tags["result"]; result != "" {
			m.tokenRefreshes.WithLabelValues(result).Inc()
		}
	case SessionTransition:
		if status := tags["status"]; status != "" {
			m.sessionTransitions.WithLabelValues(status).Inc()
		}
	case AuthenticationEvent:
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEvents.WithLabelValues(eventType).Inc()
		}
	case ExpenseCacheRefresh:
		if status := tags["status"]; status != "" {
			m.expenseCacheRefresh.WithLabelValues(status).Inc()
		}
	case SMSMessage:
		if result := tags["result"]; result != "" {
			m.smsMessages.WithLabelValues(result).Inc()
		}
	case BackendExpensesRecorded:
		source := tags["source"]
		if source == "" {
			source = "api"
		}
		m.expensesRecorded.WithLabelValues(source).Inc()
	case BackendAPIError:
		m.backendErrors.WithLabelValues(tags["code"], tags["status"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	if name == APIRequestDuration {
		m.apiRequestDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case CircuitBreakerState:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case ExpenseCacheSize:
		m.expenseCacheSize.Set(value)
	}
}

// Noop discards every measurement
type Noop struct{}

func (Noop) IncrementCounter(string, map[string]string)    {}
func (Noop) RecordProcessingTime(string, time.Duration)    {}
func (Noop) RecordGauge(string, float64, map[string]string) {}

// OrNoop returns r, or a Noop recorder when r is nil
func OrNoop(r RecorderInterface) RecorderInterface {
	if r == nil {
		return Noop{}
	}
	return r
}
