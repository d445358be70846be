// Package metrics содержит Prometheus-метрики шлюза: HTTP-запросы,
// исходы оптимистичных перестановок ячеек и попадания в кэш прокси изображений.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Исходы оптимистичной перестановки ячеек.
const (
	SwapApplied        = "applied"
	SwapRolledBack     = "rolled_back"
	SwapInvalidated    = "invalidated"
	SwapRejectedPinned = "rejected_pinned"
)

var (
	// Registry хранит коллекторы приложения.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "giftoutfit",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "giftoutfit",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "giftoutfit",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)

	cellSwaps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "giftoutfit",
			Subsystem: "album",
			Name:      "cell_swaps_total",
			Help:      "Optimistic cell swaps by outcome.",
		},
		[]string{"outcome"},
	)

	imageCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "giftoutfit",
			Subsystem: "image_proxy",
			Name:      "cache_lookups_total",
			Help:      "Image proxy cache lookups by result.",
		},
		[]string{"result"},
	)

	backendErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "giftoutfit",
			Subsystem: "backend",
			Name:      "errors_total",
			Help:      "Failed backend calls by operation.",
		},
		[]string{"op"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		cellSwaps,
		imageCache,
		backendErrors,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler отдаёт метрики в формате Prometheus.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// InstrumentHandler собирает метрики HTTP-запросов. Метка route берётся из
// шаблона маршрута chi, чтобы ID в пути не раздували кардинальность.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		method := strings.ToUpper(r.Method)

		httpRequests.WithLabelValues(method, route, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	})
}

// RecordSwap учитывает исход перестановки ячеек.
func RecordSwap(outcome string) {
	cellSwaps.WithLabelValues(outcome).Inc()
}

// RecordImageCache учитывает попадание (hit=true) или промах кэша изображений.
func RecordImageCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	imageCache.WithLabelValues(result).Inc()
}

// RecordBackendError учитывает неуспешный вызов бэкенда.
func RecordBackendError(op string) {
	backendErrors.WithLabelValues(op).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	return r.ResponseWriter.Write(b)
}
