package dispatchhandlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vitalvas/prefixmux/dispatch"
)

// MetricsConfig configures the Metrics middleware behaviour.
type MetricsConfig struct {
	// Registerer receives the created collectors. Defaults to
	// prometheus.DefaultRegisterer when nil.
	Registerer prometheus.Registerer

	// Namespace is the metric namespace. Defaults to "prefixmux".
	Namespace string

	// DurationBuckets overrides the latency histogram buckets. Defaults
	// to prometheus.DefBuckets.
	DurationBuckets []float64
}

// dispatchMetrics holds the collectors recorded per dispatched request.
type dispatchMetrics struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
	defaultFallback  prometheus.Counter
}

// NewMetricsMiddleware returns a middleware that records Prometheus
// metrics per dispatched request: a request counter and a latency
// histogram labeled by matched prefix and status code, an in-flight gauge,
// and a counter of requests served by the default handler.
//
// Collector registration errors (typically duplicate registration on the
// same Registerer) are returned to the caller.
func NewMetricsMiddleware(cfg MetricsConfig) (dispatch.MiddlewareFunc, error) {
	registerer := cfg.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	namespace := cfg.Namespace
	if namespace == "" {
		namespace = "prefixmux"
	}

	buckets := cfg.DurationBuckets
	if buckets == nil {
		buckets = prometheus.DefBuckets
	}

	metrics, err := newDispatchMetrics(registerer, namespace, buckets)
	if err != nil {
		return nil, err
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			metrics.requestsInFlight.Inc()
			defer metrics.requestsInFlight.Dec()

			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			matched := dispatch.Matched(r)
			status := strconv.Itoa(rec.status)

			metrics.requestsTotal.WithLabelValues(matched, status).Inc()
			metrics.requestDuration.WithLabelValues(matched, status).Observe(time.Since(start).Seconds())

			if matched == "/" {
				metrics.defaultFallback.Inc()
			}
		})
	}, nil
}

func newDispatchMetrics(registerer prometheus.Registerer, namespace string, buckets []float64) (metrics *dispatchMetrics, err error) {
	// promauto panics on registration failure; surface it as an error.
	defer func() {
		if r := recover(); r != nil {
			metrics = nil
			if e, ok := r.(error); ok {
				err = fmt.Errorf("dispatchhandlers: register metrics: %w", e)
			} else {
				err = fmt.Errorf("dispatchhandlers: register metrics: %v", r)
			}
		}
	}()

	factory := promauto.With(registerer)

	metrics = &dispatchMetrics{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "dispatch",
				Name:      "requests_total",
				Help:      "Total number of dispatched requests",
			},
			[]string{"prefix", "code"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "dispatch",
				Name:      "request_duration_seconds",
				Help:      "Latency of dispatched requests",
				Buckets:   buckets,
			},
			[]string{"prefix", "code"},
		),
		requestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "dispatch",
				Name:      "requests_in_flight",
				Help:      "Number of requests currently being served",
			},
		),
		defaultFallback: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "dispatch",
				Name:      "default_handler_total",
				Help:      "Total number of requests served by the default handler",
			},
		),
	}

	return metrics, nil
}
