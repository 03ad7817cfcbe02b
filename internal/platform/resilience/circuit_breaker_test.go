package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_BasicTransitions(t *testing.T) {
	b := NewCircuitBreaker(2, 5*time.Second, 1)

	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open trial call to pass, got %v", err)
	}
	if state := b.State(); state != CircuitStateHalfOpen {
		t.Fatalf("expected half-open state, got %s", state)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful half-open trial call, got %s", state)
	}
}

func TestCircuitBreaker_ExecuteCountsOnlyFailures(t *testing.T) {
	b := NewCircuitBreaker(1, time.Minute, 1)
	errNotFound := errors.New("not found")
	errTransient := errors.New("transient")
	isFailure := func(err error) bool { return errors.Is(err, errTransient) }

	err := b.Execute(context.Background(), func(context.Context) error { return errNotFound }, isFailure)
	if !errors.Is(err, errNotFound) {
		t.Fatalf("expected passthrough error, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after non-failure error, got %s", state)
	}

	_ = b.Execute(context.Background(), func(context.Context) error { return errTransient }, isFailure)
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after transient failure, got %s", state)
	}

	called := false
	err = b.Execute(context.Background(), func(context.Context) error {
		called = true
		return nil
	}, isFailure)
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
	if called {
		t.Fatalf("fn must not run while the circuit is open")
	}
}

func TestNewCircuitBreakerFromConfig_DisabledIsPassthrough(t *testing.T) {
	b := NewCircuitBreakerFromConfig(CircuitBreakerConfig{Enabled: false})
	if b != nil {
		t.Fatalf("expected nil breaker when disabled")
	}

	calls := 0
	for i := 0; i < 5; i++ {
		_ = b.Execute(context.Background(), func(context.Context) error {
			calls++
			return errors.New("down")
		}, nil)
	}
	if calls != 5 {
		t.Fatalf("expected every call to run, got %d", calls)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed state for nil breaker, got %s", state)
	}
}

func TestCircuitBreaker_OnStateChangeSeesEveryTransition(t *testing.T) {
	type change struct{ from, to CircuitState }
	var got []change

	b := NewCircuitBreakerFromConfig(CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 1,
		OpenTimeout:      time.Second,
		HalfOpenMaxReq:   1,
		OnStateChange: func(from, to CircuitState) {
			got = append(got, change{from, to})
		},
	})
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	b.RecordFailure()
	now = now.Add(2 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected trial call to pass: %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected second trial call to be rejected, got %v", err)
	}
	b.RecordFailure()
	now = now.Add(2 * time.Second)
	_ = b.Allow()
	b.RecordSuccess()

	want := []change{
		{CircuitStateClosed, CircuitStateOpen},
		{CircuitStateOpen, CircuitStateHalfOpen},
		{CircuitStateHalfOpen, CircuitStateOpen},
		{CircuitStateOpen, CircuitStateHalfOpen},
		{CircuitStateHalfOpen, CircuitStateClosed},
	}
	if len(got) != len(want) {
		t.Fatalf("unexpected transitions: %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("transition %d: want %+v, got %+v", i, want[i], got[i])
		}
	}
}
