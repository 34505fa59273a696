package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/basket-service/internal/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type readinessBody struct {
	Status string                 `json:"status"`
	Checks map[string]interface{} `json:"checks"`
}

func openBreaker(t *testing.T) *circuitbreaker.CircuitBreaker {
	t.Helper()
	cb := circuitbreaker.New(circuitbreaker.Config{FailureThreshold: 1, SuccessThreshold: 1, Timeout: time.Minute, Name: "products"})
	_ = cb.Execute(context.Background(), func() error { return errors.New("down") })
	require.True(t, cb.IsOpen())
	return cb
}

func failing(msg string) HealthCheckFunc {
	return func(context.Context) error { return errors.New(msg) }
}

func passing() HealthCheckFunc {
	return func(context.Context) error { return nil }
}

func TestHealthHandler_Liveness(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHealthHandler().Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Readiness(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		setupHandler   func(t *testing.T) *HealthHandler
		expectedStatus int
		expectedState  string
		expectedChecks map[string]interface{}
	}{
		{
			name: "no checkers",
			setupHandler: func(*testing.T) *HealthHandler {
				return NewHealthHandler()
			},
			expectedStatus: http.StatusOK,
			expectedState:  "ok",
			expectedChecks: map[string]interface{}{"service": "ok"},
		},
		{
			name: "healthy circuit breaker",
			setupHandler: func(*testing.T) *HealthHandler {
				h := NewHealthHandler()
				h.RegisterCircuitBreaker("products", circuitbreaker.New(circuitbreaker.DefaultConfig()))
				return h
			},
			expectedStatus: http.StatusOK,
			expectedState:  "ok",
			expectedChecks: map[string]interface{}{"products_circuit": "closed"},
		},
		{
			name: "open circuit breaker degrades",
			setupHandler: func(t *testing.T) *HealthHandler {
				h := NewHealthHandler()
				h.RegisterCircuitBreaker("products", openBreaker(t))
				return h
			},
			expectedStatus: http.StatusOK,
			expectedState:  "degraded",
			expectedChecks: map[string]interface{}{"products_circuit": "open"},
		},
		{
			name: "failing non-critical checker degrades",
			setupHandler: func(*testing.T) *HealthHandler {
				h := NewHealthHandler()
				h.RegisterChecker("mongodb", failing("no reachable servers"), false)
				h.RegisterChecker("catalog", passing(), true)
				return h
			},
			expectedStatus: http.StatusOK,
			expectedState:  "degraded",
			expectedChecks: map[string]interface{}{"mongodb": "no reachable servers", "catalog": "ok"},
		},
		{
			name: "failing critical checker is unavailable",
			setupHandler: func(*testing.T) *HealthHandler {
				h := NewHealthHandler()
				h.RegisterChecker("catalog", failing("catalog is empty"), true)
				h.RegisterChecker("mongodb", failing("no reachable servers"), false)
				return h
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedState:  "unavailable",
			expectedChecks: map[string]interface{}{"catalog": "catalog is empty", "mongodb": "no reachable servers"},
		},
		{
			name: "nil registrations are ignored",
			setupHandler: func(*testing.T) *HealthHandler {
				h := NewHealthHandler()
				h.RegisterChecker("nothing", nil, true)
				h.RegisterCircuitBreaker("nothing", nil)
				return h
			},
			expectedStatus: http.StatusOK,
			expectedState:  "ok",
			expectedChecks: map[string]interface{}{"service": "ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			tt.setupHandler(t).Register(router)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)

			var body readinessBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedState, body.Status)
			assert.Equal(t, tt.expectedChecks, body.Checks)
		})
	}
}

func TestHealthCheckFunc_ReceivesDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var hadDeadline bool
	h := NewHealthHandler()
	h.RegisterChecker("catalog", HealthCheckFunc(func(ctx context.Context) error {
		_, hadDeadline = ctx.Deadline()
		return nil
	}), true)

	router := gin.New()
	h.Register(router)
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.True(t, hadDeadline)
}
