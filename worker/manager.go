package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Worker is a long-running loop that returns when ctx is cancelled.
type Worker interface {
	Start(ctx context.Context) error
}

// Manager starts and supervises a set of workers.
type Manager struct {
	workers []Worker
}

func NewManager(ws ...Worker) *Manager {
	return &Manager{workers: ws}
}

// Start runs every worker until ctx is cancelled and all of them have returned.
// The first worker error, if any, is returned.
func (m *Manager) Start(ctx context.Context) error {
	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	for i, w := range m.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := w.Start(ctx); err != nil {
				slog.Error("worker exited", "worker", fmt.Sprintf("%T#%d", w, i), "error", err)
				once.Do(func() { firstErr = err })
			}
		}()
	}
	<-ctx.Done()
	wg.Wait()
	return firstErr
}
