package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// GatewayMetrics exposes counters/histograms for smstrade gateway calls.
type GatewayMetrics struct {
	requestsTotal   *prometheus.CounterVec
	transportErrors *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func NewGatewayMetrics(reg prometheus.Registerer) *GatewayMetrics {
	m := &GatewayMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "smstrade",
			Subsystem: "gateway",
			Name:      "requests_total",
			Help:      "Total gateway sends by route and provider result code",
		}, []string{"route", "code"}),
		transportErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "smstrade",
			Subsystem: "gateway",
			Name:      "transport_errors_total",
			Help:      "Gateway sends that failed before a result code was read",
		}, []string{"route"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "smstrade",
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "Latency of gateway HTTP round trips",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.transportErrors, m.requestDuration)
	return m
}

func (m *GatewayMetrics) ObserveResult(route string, code int) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

func (m *GatewayMetrics) ObserveTransportError(route string) {
	if m == nil {
		return
	}
	m.transportErrors.WithLabelValues(route).Inc()
}

func (m *GatewayMetrics) ObserveLatency(route string, seconds float64) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(route).Observe(seconds)
}
