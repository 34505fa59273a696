package http

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/basket-service/internal/circuitbreaker"
)

const (
	statusOK          = "ok"
	statusDegraded    = "degraded"
	statusUnavailable = "unavailable"

	defaultCheckTimeout = 2 * time.Second
)

// HealthChecker reports whether a dependency is usable.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HealthCheckFunc adapts a plain function to HealthChecker.
type HealthCheckFunc func(ctx context.Context) error

// Check calls f(ctx).
func (f HealthCheckFunc) Check(ctx context.Context) error {
	return f(ctx)
}

type registeredChecker struct {
	checker  HealthChecker
	critical bool
}

// HealthHandler serves the liveness and readiness probes.
//
// A failing critical checker makes the service unavailable (503). Failing
// non-critical checkers and open circuits only mark it degraded.
type HealthHandler struct {
	mu              sync.RWMutex
	checkers        map[string]registeredChecker
	circuitBreakers map[string]*circuitbreaker.CircuitBreaker
	checkTimeout    time.Duration
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checkers:        make(map[string]registeredChecker),
		circuitBreakers: make(map[string]*circuitbreaker.CircuitBreaker),
		checkTimeout:    defaultCheckTimeout,
	}
}

// RegisterChecker adds a named dependency check to the readiness probe.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker, critical bool) {
	if checker == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = registeredChecker{checker: checker, critical: critical}
}

// RegisterCircuitBreaker registers a circuit breaker for health monitoring.
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker) {
	if cb == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.circuitBreakers[name] = cb
}

// Register registers health endpoints on the router.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness returns 200 while the process is serving requests.
// @Summary     Liveness probe
// @Description Returns OK while the process is serving requests.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// Readiness runs every registered check and reports the aggregate state.
// @Summary     Readiness probe
// @Description Reports ok, degraded or unavailable. Only a failing catalog check makes the service unavailable.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{} "Service is ready or degraded"
// @Failure     503 {object} map[string]interface{} "Service is unavailable"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	h.mu.RLock()
	checkers := make(map[string]registeredChecker, len(h.checkers))
	for name, rc := range h.checkers {
		checkers[name] = rc
	}
	breakers := make(map[string]*circuitbreaker.CircuitBreaker, len(h.circuitBreakers))
	for name, cb := range h.circuitBreakers {
		breakers[name] = cb
	}
	h.mu.RUnlock()

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.checkTimeout)
	defer cancel()

	state := statusOK
	checks := make(map[string]interface{}, len(checkers)+len(breakers))

	for _, name := range sortedKeys(checkers) {
		rc := checkers[name]
		if err := rc.checker.Check(ctx); err != nil {
			checks[name] = err.Error()
			if rc.critical {
				state = statusUnavailable
			} else if state == statusOK {
				state = statusDegraded
			}
			continue
		}
		checks[name] = statusOK
	}

	for name, cb := range breakers {
		stats := cb.GetStats()
		checks[name+"_circuit"] = stats.State
		if !stats.IsHealthy && state == statusOK {
			state = statusDegraded
		}
	}

	if len(checks) == 0 {
		checks["service"] = statusOK
	}

	status := http.StatusOK
	if state == statusUnavailable {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status": state,
		"checks": checks,
	})
}

func sortedKeys(m map[string]registeredChecker) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
