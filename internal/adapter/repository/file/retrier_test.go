package file

import (
	"context"
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestRetrierRetriesOnRetryableError(t *testing.T) {
	r := NewRetrier(2, zerolog.Nop())
	r.initialInterval = 1 * time.Millisecond
	r.maxInterval = 2 * time.Millisecond
	r.maxElapsedTime = 100 * time.Millisecond

	attempts := 0
	err := r.Retry(context.Background(), func() error {
		attempts++
		if attempts < 2 {
			return errors.New("device busy")
		}
		return nil
	})

	if err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", attempts)
	}
}

func TestRetrierStopsOnPermanentError(t *testing.T) {
	r := NewRetrier(3, zerolog.Nop())
	attempts := 0

	err := r.Retry(context.Background(), func() error {
		attempts++
		return fs.ErrPermission
	})

	if !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("expected permission error, got %v", err)
	}
	if attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", attempts)
	}
}

func TestRetrierGivesUpAfterBudget(t *testing.T) {
	r := NewRetrier(1, zerolog.Nop())
	r.initialInterval = 1 * time.Millisecond
	r.maxInterval = 1 * time.Millisecond

	attempts := 0
	transient := errors.New("transient")
	err := r.Retry(context.Background(), func() error {
		attempts++
		return transient
	})

	if !errors.Is(err, transient) {
		t.Fatalf("expected transient error, got %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", attempts)
	}
}

func TestIsRetryableError(t *testing.T) {
	if !isRetryableError(errors.New("short write")) {
		t.Fatalf("expected generic error to be retryable")
	}
	if isRetryableError(fs.ErrNotExist) {
		t.Fatalf("expected missing path to be permanent")
	}
}
