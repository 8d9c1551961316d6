package utils

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Workers runs named background goroutines that share one lifetime
type Workers struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
	names  map[string]struct{}
}

func NewWorkers(parent context.Context) *Workers {
	ctx, cancel := context.WithCancel(parent)
	return &Workers{
		ctx:    ctx,
		cancel: cancel,
		names:  make(map[string]struct{}),
	}
}

// Go starts fn once. A panic is logged and ends only this worker.
func (w *Workers) Go(name string, fn func(ctx context.Context)) {
	w.mu.Lock()
	w.names[name] = struct{}{}
	w.mu.Unlock()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			delete(w.names, name)
			w.mu.Unlock()
		}()
		defer func() {
			if r := recover(); r != nil {
				slog.Error("Background worker panic",
					slog.String("type", "sys"),
					slog.String("worker", name),
					slog.Any("panic", r))
			}
		}()

		slog.Debug("Background worker started", slog.String("type", "sys"), slog.String("worker", name))
		fn(w.ctx)
		slog.Debug("Background worker ended", slog.String("type", "sys"), slog.String("worker", name))
	}()
}

// Running reports how many workers have not returned yet
func (w *Workers) Running() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.names)
}

// Shutdown cancels every worker and waits up to timeout for them to return
func (w *Workers) Shutdown(timeout time.Duration) error {
	w.cancel()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		slog.Warn("Timeout waiting for background workers to stop",
			slog.String("type", "sys"),
			slog.Duration("timeout", timeout),
			slog.Int("running", w.Running()))
		return context.DeadlineExceeded
	}
}
