// Package metrics provides Prometheus metrics collection for the basket service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// BasketQuotesTotal tracks basket quotes by outcome.
	BasketQuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "basket_quotes_total",
			Help: "Total number of basket quotes",
		},
		[]string{"status"},
	)

	// BasketQuoteDuration tracks how long pricing a basket takes.
	BasketQuoteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "basket_quote_duration_seconds",
			Help:    "Basket quote duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	// BasketQuoteValue tracks the distribution of quoted basket totals in USD.
	BasketQuoteValue = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "basket_quote_value_usd",
			Help:    "Quoted basket totals in USD",
			Buckets: []float64{5, 10, 25, 50, 75, 90, 150, 300, 1000},
		},
	)

	// CatalogProducts tracks the number of products in the active catalog.
	CatalogProducts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_products",
			Help: "Number of products in the active catalog",
		},
	)

	// CircuitBreakerState tracks breaker state by name: 0 closed, 1 open, 2 half-open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)

	// CatalogReloadsTotal tracks catalog reloads from the product store by outcome.
	CatalogReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_reloads_total",
			Help: "Total number of catalog reloads",
		},
		[]string{"source"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordBasketQuote records metrics for a basket quote.
func RecordBasketQuote(duration time.Duration, status string) {
	BasketQuoteDuration.Observe(duration.Seconds())
	BasketQuotesTotal.WithLabelValues(status).Inc()
}

// ObserveQuoteTotal records the total of a successful quote.
func ObserveQuoteTotal(total float64) {
	BasketQuoteValue.Observe(total)
}

// SetCatalogProducts updates the catalog size gauge.
func SetCatalogProducts(n int) {
	CatalogProducts.Set(float64(n))
}

// SetCircuitBreakerState records the numeric state of a named circuit breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordCatalogLoad counts a catalog load by where its products came from.
func RecordCatalogLoad(source string) {
	CatalogReloadsTotal.WithLabelValues(source).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
