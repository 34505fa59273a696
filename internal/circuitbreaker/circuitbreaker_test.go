package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStore = errors.New("store unavailable")

func failing() error { return errStore }
func passing() error { return nil }

func fastConfig() Config {
	return Config{
		FailureThreshold: 2,
		SuccessThreshold: 2,
		Timeout:          30 * time.Millisecond,
		Name:             "test",
	}
}

func TestCircuitBreaker_ClosedPassesThrough(t *testing.T) {
	cb := New(DefaultConfig())

	assert.NoError(t, cb.Execute(context.Background(), passing))
	assert.ErrorIs(t, cb.Execute(context.Background(), failing), errStore)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_OpensAtThreshold(t *testing.T) {
	cb := New(fastConfig())
	ctx := context.Background()

	_ = cb.Execute(ctx, failing)
	assert.Equal(t, StateClosed, cb.State())
	_ = cb.Execute(ctx, failing)
	assert.Equal(t, StateOpen, cb.State())
	assert.True(t, cb.IsOpen())

	called := false
	err := cb.Execute(ctx, func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb := New(fastConfig())
	ctx := context.Background()

	_ = cb.Execute(ctx, failing)
	_ = cb.Execute(ctx, passing)
	_ = cb.Execute(ctx, failing)

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, 1, cb.GetStats().FailureCount)
}

func TestCircuitBreaker_Recovery(t *testing.T) {
	cb := New(fastConfig())
	ctx := context.Background()

	_ = cb.Execute(ctx, failing)
	_ = cb.Execute(ctx, failing)
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(40 * time.Millisecond)

	require.NoError(t, cb.Execute(ctx, passing))
	assert.Equal(t, StateHalfOpen, cb.State())

	require.NoError(t, cb.Execute(ctx, passing))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := New(fastConfig())
	ctx := context.Background()

	_ = cb.Execute(ctx, failing)
	_ = cb.Execute(ctx, failing)
	time.Sleep(40 * time.Millisecond)

	assert.ErrorIs(t, cb.Execute(ctx, failing), errStore)
	assert.Equal(t, StateOpen, cb.State())
	assert.ErrorIs(t, cb.Execute(ctx, passing), ErrCircuitOpen)
}

func TestCircuitBreaker_ContextErrors(t *testing.T) {
	cb := New(Config{FailureThreshold: 1, SuccessThreshold: 1, Timeout: time.Minute, Name: "ctx"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, cb.Execute(ctx, passing), context.Canceled)

	err := cb.Execute(context.Background(), func() error { return context.Canceled })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_OnStateChange(t *testing.T) {
	type change struct{ from, to State }
	var changes []change

	cfg := fastConfig()
	cfg.SuccessThreshold = 1
	cfg.OnStateChange = func(name string, from, to State) {
		assert.Equal(t, "test", name)
		changes = append(changes, change{from, to})
	}
	cb := New(cfg)
	ctx := context.Background()

	_ = cb.Execute(ctx, failing)
	_ = cb.Execute(ctx, failing)
	time.Sleep(40 * time.Millisecond)
	_ = cb.Execute(ctx, passing)

	assert.Equal(t, []change{
		{StateClosed, StateOpen},
		{StateOpen, StateHalfOpen},
		{StateHalfOpen, StateClosed},
	}, changes)
}

func TestCircuitBreaker_Reset(t *testing.T) {
	cb := New(fastConfig())
	ctx := context.Background()

	_ = cb.Execute(ctx, failing)
	_ = cb.Execute(ctx, failing)
	require.True(t, cb.IsOpen())

	cb.Reset()
	assert.Equal(t, StateClosed, cb.State())
	assert.NoError(t, cb.Execute(ctx, passing))
}

func TestNew_ClampsThresholds(t *testing.T) {
	cb := New(Config{Name: "zero", Timeout: time.Minute})

	_ = cb.Execute(context.Background(), failing)
	assert.True(t, cb.IsOpen())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestCircuitBreaker_GetStats(t *testing.T) {
	cb := New(fastConfig())
	_ = cb.Execute(context.Background(), failing)

	stats := cb.GetStats()
	assert.Equal(t, "test", stats.Name)
	assert.Equal(t, "closed", stats.State)
	assert.Equal(t, 1, stats.FailureCount)
	assert.True(t, stats.IsHealthy)
	assert.False(t, stats.LastFailure.IsZero())
}
