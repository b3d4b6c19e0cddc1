package staleaudit

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

func (w *Worker) worker(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(w.c.WorkerInterval)
	defer ticker.Stop()

	if w.c.RunOnStart {
		w.sweepAndLog(ctx)
	}

	for {
		select {
		case <-ticker.C:
			w.sweepAndLog(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (w *Worker) sweepAndLog(ctx context.Context) {
	n, err := w.Sweep(ctx)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't sweep drifted translations",
			slog.String("err", err.Error()),
		)
		return
	}
	if n > 0 {
		slog.Default().InfoContext(ctx, "drifted translations marked stale",
			slog.Int64("count", n),
		)
	}
}

// Sweep runs one audit pass and returns the number of rows moved to STALE.
func (w *Worker) Sweep(ctx context.Context) (int64, error) {
	n, err := w.repo.Translations().MarkDriftedStale(ctx)
	if err != nil {
		return 0, fmt.Errorf("can't mark drifted translations stale: %w", err)
	}
	return n, nil
}
