package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector exported by the service
var Registry = prometheus.NewRegistry()

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fastqr",
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fastqr",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	SettlementsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fastqr",
		Name:      "settlements_total",
		Help:      "QR payment settlements by result.",
	}, []string{"result"})

	OTPIssuedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fastqr",
		Name:      "otp_issued_total",
		Help:      "One-time codes issued by purpose.",
	}, []string{"purpose"})

	IntentsExpiredTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fastqr",
		Name:      "payment_intents_expired_total",
		Help:      "Payment intents marked expired by the expiry job.",
	})
)

func init() {
	Registry.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		SettlementsTotal,
		OTPIssuedTotal,
		IntentsExpiredTotal,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
}

// Handler exposes the registry in the prometheus text format
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Settlement results
const (
	ResultSuccess  = "success"
	ResultRejected = "rejected"
	ResultError    = "error"
)
