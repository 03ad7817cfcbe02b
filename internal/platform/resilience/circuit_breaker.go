package resilience

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

// CircuitBreakerConfig mirrors the SCRAPER_CIRCUIT_* environment keys.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
	// OnStateChange runs outside the breaker lock after every transition.
	OnStateChange func(from, to CircuitState)
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 3,
		OpenTimeout:      30 * time.Second,
		HalfOpenMaxReq:   1,
	}
}

// CircuitBreaker trips after FailureThreshold consecutive failures, rejects
// calls for OpenTimeout and then lets HalfOpenMaxReq trial calls decide
// whether to close again. A nil *CircuitBreaker lets every call through.
type CircuitBreaker struct {
	cfg CircuitBreakerConfig
	now func() time.Time

	mu       sync.Mutex
	state    CircuitState
	failures int
	openedAt time.Time
	trials   int
	passed   int
}

func NewCircuitBreaker(failureThreshold int, openTimeout time.Duration, halfOpenMaxReq int) *CircuitBreaker {
	return newCircuitBreaker(CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: failureThreshold,
		OpenTimeout:      openTimeout,
		HalfOpenMaxReq:   halfOpenMaxReq,
	})
}

// NewCircuitBreakerFromConfig returns nil when the breaker is disabled.
func NewCircuitBreakerFromConfig(cfg CircuitBreakerConfig) *CircuitBreaker {
	if !cfg.Enabled {
		return nil
	}
	return newCircuitBreaker(cfg)
}

func newCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	defaults := DefaultCircuitBreakerConfig()
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = defaults.FailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaults.OpenTimeout
	}
	if cfg.HalfOpenMaxReq < 1 {
		cfg.HalfOpenMaxReq = defaults.HalfOpenMaxReq
	}
	return &CircuitBreaker{cfg: cfg, now: time.Now, state: CircuitStateClosed}
}

// Execute runs fn when the breaker allows it. Only errors for which
// isFailure returns true count against the breaker; a nil isFailure counts
// every error.
func (b *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error, isFailure func(error) bool) error {
	if b == nil {
		return fn(ctx)
	}
	if err := b.Allow(); err != nil {
		return err
	}

	err := fn(ctx)
	if err != nil && (isFailure == nil || isFailure(err)) {
		b.RecordFailure()
	} else {
		b.RecordSuccess()
	}
	return err
}

// Allow reserves a call slot or returns ErrCircuitOpen.
func (b *CircuitBreaker) Allow() error {
	var err error
	b.transition(func() CircuitState {
		next := b.state
		if next == CircuitStateOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
			next = CircuitStateHalfOpen
		}
		switch {
		case next == CircuitStateOpen:
			err = ErrCircuitOpen
		case next == CircuitStateHalfOpen && b.state == CircuitStateHalfOpen && b.trials >= b.cfg.HalfOpenMaxReq:
			err = ErrCircuitOpen
		}
		return next
	}, func() {
		if err == nil && b.state == CircuitStateHalfOpen {
			b.trials++
		}
	})
	return err
}

func (b *CircuitBreaker) RecordSuccess() {
	b.transition(func() CircuitState {
		switch b.state {
		case CircuitStateClosed:
			b.failures = 0
		case CircuitStateHalfOpen:
			b.releaseTrial()
			b.passed++
			if b.passed >= b.cfg.HalfOpenMaxReq && b.trials == 0 {
				return CircuitStateClosed
			}
		}
		return b.state
	}, nil)
}

func (b *CircuitBreaker) RecordFailure() {
	b.transition(func() CircuitState {
		switch b.state {
		case CircuitStateClosed:
			b.failures++
			if b.failures >= b.cfg.FailureThreshold {
				return CircuitStateOpen
			}
		case CircuitStateHalfOpen:
			b.releaseTrial()
			return CircuitStateOpen
		case CircuitStateOpen:
			b.openedAt = b.now()
		}
		return b.state
	}, nil)
}

// State reports half_open once the open timeout has elapsed, even before the
// next Allow call moves the breaker there.
func (b *CircuitBreaker) State() CircuitState {
	if b == nil {
		return CircuitStateClosed
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
		return CircuitStateHalfOpen
	}
	return b.state
}

// transition computes the next state under the lock, resets the counters when
// the state changes, applies after and then notifies OnStateChange unlocked.
func (b *CircuitBreaker) transition(decide func() CircuitState, after func()) {
	b.mu.Lock()
	from := b.state
	to := decide()
	if to != from {
		b.state = to
		b.failures = 0
		b.trials = 0
		b.passed = 0
		b.openedAt = time.Time{}
		if to == CircuitStateOpen {
			b.openedAt = b.now()
		}
	}
	if after != nil {
		after()
	}
	b.mu.Unlock()

	if to != from && b.cfg.OnStateChange != nil {
		b.cfg.OnStateChange(from, to)
	}
}

func (b *CircuitBreaker) releaseTrial() {
	if b.trials > 0 {
		b.trials--
	}
}
