package worker

import (
	"context"
	"log/slog"

	audit "regate/pkg/platform/audit"
)

// Worker consumes audit events from a channel and persists them, keeping the
// request path free of sink latency. A failed append is logged and dropped
// rather than retried; the registration decision has already been returned.
type Worker struct {
	store  audit.Store
	inbox  <-chan audit.Event
	logger *slog.Logger
}

func NewWorker(store audit.Store, inbox <-chan audit.Event, logger *slog.Logger) *Worker {
	return &Worker{store: store, inbox: inbox, logger: logger}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.store.Append(ctx, event); err != nil {
				w.logger.ErrorContext(ctx, "audit append failed",
					"action", string(event.Action),
					"error", err.Error(),
				)
			}
		}
	}
}
