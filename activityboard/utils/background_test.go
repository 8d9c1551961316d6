package utils

import (
	"context"
	"testing"
	"time"
)

func TestWorkers_ShutdownCancelsContext(t *testing.T) {
	w := NewWorkers(context.Background())
	started := make(chan struct{})

	w.Go("probe", func(ctx context.Context) {
		close(started)
		<-ctx.Done()
	})
	<-started

	if n := w.Running(); n != 1 {
		t.Errorf("Running() = %d, want 1", n)
	}
	if err := w.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if n := w.Running(); n != 0 {
		t.Errorf("Running() = %d after shutdown, want 0", n)
	}
}

func TestWorkers_PanicIsContained(t *testing.T) {
	w := NewWorkers(context.Background())
	done := make(chan struct{})

	w.Go("boom", func(ctx context.Context) {
		panic("boom")
	})
	w.Go("ok", func(ctx context.Context) {
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second worker did not run")
	}
	if err := w.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
}

func TestWorkers_ShutdownTimeout(t *testing.T) {
	w := NewWorkers(context.Background())
	release := make(chan struct{})
	defer close(release)

	w.Go("stuck", func(ctx context.Context) {
		<-release
	})

	if err := w.Shutdown(10 * time.Millisecond); err != context.DeadlineExceeded {
		t.Errorf("Shutdown() error = %v, want DeadlineExceeded", err)
	}
}
