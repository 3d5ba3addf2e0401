package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/odelgado/product-catalog/internal/model"
	"github.com/odelgado/product-catalog/internal/repository"
	"github.com/odelgado/product-catalog/internal/sqs"
)

// eventBatchSize caps how many pending events one tick processes.
const eventBatchSize = 100

// OutboxWorker polls the catalog_events table and publishes pending events
// to SQS, marking them processed or failed.
type OutboxWorker struct {
	events    repository.Events
	publisher *sqs.Publisher
	interval  time.Duration
	stopChan  chan struct{}
}

// NewOutboxWorker creates a new OutboxWorker.
func NewOutboxWorker(events repository.Events, publisher *sqs.Publisher, interval time.Duration) *OutboxWorker {
	return &OutboxWorker{
		events:    events,
		publisher: publisher,
		interval:  interval,
		stopChan:  make(chan struct{}),
	}
}

// Start begins processing events from the outbox until the context is
// cancelled or Stop is called.
func (w *OutboxWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	slog.Info("Outbox worker started", slog.Duration("interval", w.interval))

	for {
		select {
		case <-ctx.Done():
			slog.Info("Outbox worker stopped by context")
			return
		case <-w.stopChan:
			slog.Info("Outbox worker stopped")
			return
		case <-ticker.C:
			w.processEvents(ctx)
		}
	}
}

// Stop stops the outbox worker.
func (w *OutboxWorker) Stop() {
	close(w.stopChan)
}

// processEvents retrieves and publishes pending events.
func (w *OutboxWorker) processEvents(ctx context.Context) {
	events, err := w.events.ListPending(ctx, eventBatchSize)
	if err != nil {
		slog.Error("Failed to retrieve pending events", slog.Any("err", err))
		return
	}

	if len(events) == 0 {
		return
	}

	slog.Info("Processing pending events", slog.Int("count", len(events)))

	for _, event := range events {
		if err := w.publisher.PublishRaw(ctx, event.EventData); err != nil {
			slog.Error("Failed to publish event",
				slog.String("event_id", event.ID.String()),
				slog.String("event_type", event.EventType),
				slog.Any("err", err))

			if updateErr := w.events.UpdateStatus(ctx, event.ID, model.EventStatusFailed); updateErr != nil {
				slog.Error("Failed to update event status to failed",
					slog.String("event_id", event.ID.String()),
					slog.Any("err", updateErr))
			}
			continue
		}

		if updateErr := w.events.UpdateStatus(ctx, event.ID, model.EventStatusProcessed); updateErr != nil {
			slog.Error("Failed to update event status to processed",
				slog.String("event_id", event.ID.String()),
				slog.Any("err", updateErr))
			continue
		}

		slog.Info("Event published",
			slog.String("event_id", event.ID.String()),
			slog.String("event_type", event.EventType))
	}
}
