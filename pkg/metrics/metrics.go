package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestSize     *prometheus.HistogramVec
	HTTPResponseSize    *prometheus.HistogramVec

	// Business metrics
	OrdersPlaced            prometheus.Counter
	OrdersCompleted         prometheus.Counter
	ItemPairsUpdated        prometheus.Counter
	RecommendationsServed   prometheus.Counter
	ImpressionsTracked      prometheus.Counter
	ConversionsTracked      prometheus.Counter
	WaiterAlertsRaised      prometheus.Counter
	LoginAttempts           *prometheus.CounterVec

	// Cache metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	m := &Metrics{
		// HTTP metrics
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: []float64{100, 1000, 5000, 10000, 50000, 100000, 500000, 1000000},
			},
			[]string{"method", "path"},
		),
		HTTPResponseSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 5000, 10000, 50000, 100000, 500000, 1000000},
			},
			[]string{"method", "path"},
		),

		// Business metrics
		OrdersPlaced: promauto.NewCounter(prometheus.CounterOpts{
			Name: "orders_placed_total",
			Help: "Total number of orders placed",
		}),
		OrdersCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "orders_completed_total",
			Help: "Total number of orders completed",
		}),
		ItemPairsUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "item_pairs_updated_total",
			Help: "Total number of item pair increments from completed orders",
		}),
		RecommendationsServed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Total number of recommendation lists served",
		}),
		ImpressionsTracked: promauto.NewCounter(prometheus.CounterOpts{
			Name: "recommendation_impressions_total",
			Help: "Total number of recommendation impressions tracked",
		}),
		ConversionsTracked: promauto.NewCounter(prometheus.CounterOpts{
			Name: "recommendation_conversions_total",
			Help: "Total number of recommendation conversions tracked",
		}),
		WaiterAlertsRaised: promauto.NewCounter(prometheus.CounterOpts{
			Name: "waiter_alerts_raised_total",
			Help: "Total number of waiter alerts raised",
		}),
		LoginAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "login_attempts_total",
				Help: "Total number of staff login attempts",
			},
			[]string{"status"}, // success, failed
		),

		// Cache metrics
		CacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"cache_type"},
		),
		CacheMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"cache_type"},
		),
	}

	return m
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // route pattern, not the actual path

			if req.ContentLength > 0 {
				m.HTTPRequestSize.WithLabelValues(req.Method, path).Observe(float64(req.ContentLength))
			}

			err := next(c)

			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)
			m.HTTPResponseSize.WithLabelValues(req.Method, path).Observe(float64(c.Response().Size))

			return err
		}
	}
}

// RecordOrderPlaced increments orders placed counter
func (m *Metrics) RecordOrderPlaced() {
	m.OrdersPlaced.Inc()
}

// RecordOrderCompleted increments orders completed counter
func (m *Metrics) RecordOrderCompleted() {
	m.OrdersCompleted.Inc()
}

// RecordItemPairsUpdated adds to the item pairs updated counter
func (m *Metrics) RecordItemPairsUpdated(count int) {
	m.ItemPairsUpdated.Add(float64(count))
}

// RecordRecommendationsServed increments recommendations served counter
func (m *Metrics) RecordRecommendationsServed() {
	m.RecommendationsServed.Inc()
}

// RecordImpression increments impressions tracked counter
func (m *Metrics) RecordImpression() {
	m.ImpressionsTracked.Inc()
}

// RecordConversion increments conversions tracked counter
func (m *Metrics) RecordConversion() {
	m.ConversionsTracked.Inc()
}

// RecordWaiterAlert increments waiter alerts raised counter
func (m *Metrics) RecordWaiterAlert() {
	m.WaiterAlertsRaised.Inc()
}

// RecordLoginAttempt increments login attempts counter
func (m *Metrics) RecordLoginAttempt(success bool) {
	status := "failed"
	if success {
		status = "success"
	}
	m.LoginAttempts.WithLabelValues(status).Inc()
}

// RecordCacheHit increments cache hits counter
func (m *Metrics) RecordCacheHit(cacheType string) {
	m.CacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss increments cache misses counter
func (m *Metrics) RecordCacheMiss(cacheType string) {
	m.CacheMisses.WithLabelValues(cacheType).Inc()
}
