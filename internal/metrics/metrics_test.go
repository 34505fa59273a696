package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/error", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "error")
	})

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{
			name:           "records metrics for successful request",
			path:           "/test",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "records metrics for error request",
			path:           "/error",
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRecordBasketQuote(t *testing.T) {
	before := testutil.ToFloat64(BasketQuotesTotal.WithLabelValues("success"))

	RecordBasketQuote(100*time.Microsecond, "success")
	RecordBasketQuote(50*time.Microsecond, "product_not_found")

	assert.Equal(t, before+1, testutil.ToFloat64(BasketQuotesTotal.WithLabelValues("success")))
}

func TestObserveQuoteTotal(t *testing.T) {
	ObserveQuoteTotal(54.37)
	ObserveQuoteTotal(98.27)

	assert.GreaterOrEqual(t, testutil.CollectAndCount(BasketQuoteValue), 1)
}

func TestSetCatalogProducts(t *testing.T) {
	SetCatalogProducts(3)
	assert.Equal(t, float64(3), testutil.ToFloat64(CatalogProducts))
}

func TestRecordCacheOperation(t *testing.T) {
	before := testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("get", "hit"))

	RecordCacheOperation("get", "hit")
	RecordCacheOperation("get", "miss")
	RecordCacheOperation("set", "success")

	assert.Equal(t, before+1, testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("get", "hit")))
}

func TestUpdateCacheMetrics(t *testing.T) {
	UpdateCacheMetrics(50, 100)
	UpdateCacheMetrics(75, 100)

	assert.Equal(t, float64(75), testutil.ToFloat64(CacheSize))
	assert.Equal(t, float64(100), testutil.ToFloat64(CacheCapacity))
}

func TestSetCircuitBreakerState(t *testing.T) {
	SetCircuitBreakerState("catalog-store", 1)
	assert.Equal(t, float64(1), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("catalog-store")))

	SetCircuitBreakerState("catalog-store", 0)
	assert.Equal(t, float64(0), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("catalog-store")))
}

func TestRecordCatalogLoad(t *testing.T) {
	before := testutil.ToFloat64(CatalogReloadsTotal.WithLabelValues("store"))

	RecordCatalogLoad("store")

	assert.Equal(t, before+1, testutil.ToFloat64(CatalogReloadsTotal.WithLabelValues("store")))
}
