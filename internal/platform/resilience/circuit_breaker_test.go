package resilience

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

var (
	errSource   = errors.New("source unavailable")
	errNoSeason = errors.New("season not found")
)

func TestCircuitBreaker_Transitions(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker(CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      5 * time.Second,
		HalfOpenMaxReq:   1,
	})
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	fail := func() error { return errSource }
	succeed := func() error { return nil }

	if err := b.Execute(fail); !errors.Is(err, errSource) {
		t.Fatalf("expected source error, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	_ = b.Execute(fail)
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	called := false
	err := b.Execute(func() error {
		called = true
		return nil
	})
	if !errors.Is(err, ErrCircuitOpen) || called {
		t.Fatalf("expected open breaker to short-circuit, err=%v called=%v", err, called)
	}

	now = now.Add(6 * time.Second)
	if state := b.State(); state != CircuitStateHalfOpen {
		t.Fatalf("expected half-open state, got %s", state)
	}
	if err := b.Execute(succeed); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful probe, got %s", state)
	}
}

func TestCircuitBreaker_DisabledAndNil(t *testing.T) {
	t.Parallel()

	var nilBreaker *CircuitBreaker
	if err := nilBreaker.Execute(func() error { return nil }); err != nil {
		t.Fatalf("nil breaker should run fn: %v", err)
	}

	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: false, FailureThreshold: 1})
	for i := 0; i < 3; i++ {
		if err := b.Execute(func() error { return errSource }); !errors.Is(err, errSource) {
			t.Fatalf("disabled breaker should pass errors through, got %v", err)
		}
	}
}

func TestCircuitBreaker_IgnoredErrorsDoNotOpen(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker(CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 1,
		OpenTimeout:      time.Minute,
		Ignore:           []error{errNoSeason},
	})

	for i := 0; i < 3; i++ {
		err := b.Execute(func() error { return fmt.Errorf("pbp_1999.parquet: %w", errNoSeason) })
		if !errors.Is(err, errNoSeason) {
			t.Fatalf("attempt %d: expected missing season, got %v", i, err)
		}
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after missing seasons, got %s", state)
	}

	_ = b.Execute(func() error { return errSource })
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after a source failure, got %s", state)
	}
}

func TestNormalizeCircuitBreakerConfig_SourceDefaults(t *testing.T) {
	t.Parallel()

	got := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{Enabled: true})
	want := DefaultSourceCircuitConfig()
	if got.FailureThreshold != want.FailureThreshold || got.OpenTimeout != want.OpenTimeout || got.HalfOpenMaxReq != want.HalfOpenMaxReq {
		t.Fatalf("expected source defaults %+v, got %+v", want, got)
	}

	kept := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{FailureThreshold: 7, OpenTimeout: time.Second, HalfOpenMaxReq: 4})
	if kept.FailureThreshold != 7 || kept.OpenTimeout != time.Second || kept.HalfOpenMaxReq != 4 {
		t.Fatalf("expected explicit values kept, got %+v", kept)
	}
}
