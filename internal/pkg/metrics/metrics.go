package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "supply_checker"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests served, by route and status code.",
	}, []string{"path", "status"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"path"})

	RPCCallsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rpc_calls_total",
		Help:      "totalSupply calls by network and result.",
	}, []string{"network", "result"})

	RPCCallDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "rpc_call_duration_seconds",
		Help:      "totalSupply call latency by network.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network"})

	PriceFetchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "price_fetch_total",
		Help:      "Market price lookups by result.",
	}, []string{"result"})
)

var registerOnce sync.Once

// MustRegisterMetrics registers all collectors with reg. Subsequent calls are no-ops.
func MustRegisterMetrics(reg prometheus.Registerer) {
	registerOnce.Do(func() {
		reg.MustRegister(
			HTTPRequestsTotal,
			HTTPRequestDuration,
			RPCCallsTotal,
			RPCCallDuration,
			PriceFetchTotal,
		)
	})
}

// ObserveRPCCall records one totalSupply call.
func ObserveRPCCall(network string, started time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	RPCCallsTotal.WithLabelValues(network, result).Inc()
	RPCCallDuration.WithLabelValues(network).Observe(time.Since(started).Seconds())
}

// ObservePriceFetch records one price lookup outcome: "ok" or "unavailable".
func ObservePriceFetch(result string) {
	PriceFetchTotal.WithLabelValues(result).Inc()
}
