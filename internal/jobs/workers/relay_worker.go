package workers

import (
	"context"
	"fmt"
	"time"

	"ads-billing/internal/clients/kafka"
	"ads-billing/internal/observability"
	"ads-billing/internal/store"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// maxRelayBatches bounds one relay run so a large backlog is drained over
// several runs.
const maxRelayBatches = 20

// RelayWorker ships the metering audit trail to kafka. Delivery is at least
// once: a crash between publish and mark re-sends the batch, and consumers
// dedupe on the event id.
type RelayWorker struct {
	store     RelayStore
	publisher EventPublisher
	batchSize int
	logger    *observability.Logger
}

func NewRelayWorker(store RelayStore, publisher EventPublisher, batchSize int, logger *observability.Logger) *RelayWorker {
	if batchSize <= 0 {
		batchSize = 500
	}
	return &RelayWorker{
		store:     store,
		publisher: publisher,
		batchSize: batchSize,
		logger:    logger,
	}
}

func (w *RelayWorker) ProcessRelayTask(ctx context.Context, _ *asynq.Task) error {
	_, err := w.Relay(ctx)
	return err
}

// Relay publishes unpublished events batch by batch and returns how many
// were relayed.
func (w *RelayWorker) Relay(ctx context.Context) (int, error) {
	total := 0
	for i := 0; i < maxRelayBatches; i++ {
		events, err := w.store.GetUnpublishedMeteringEvents(ctx, w.batchSize)
		if err != nil {
			return total, fmt.Errorf("failed to load metering events: %w", err)
		}
		if len(events) == 0 {
			break
		}

		messages := make([]kafka.EventMessage, 0, len(events))
		ids := make([]uuid.UUID, 0, len(events))
		for _, e := range events {
			messages = append(messages, toEventMessage(e))
			ids = append(ids, e.ID)
		}

		if err := w.publisher.PublishEvents(ctx, messages); err != nil {
			w.logger.Error(ctx, "failed to publish metering events", err)
			return total, fmt.Errorf("failed to publish metering events: %w", err)
		}
		if err := w.store.MarkMeteringEventsPublished(ctx, ids); err != nil {
			return total, fmt.Errorf("failed to mark metering events published: %w", err)
		}

		total += len(events)
		if len(events) < w.batchSize {
			break
		}
	}

	if total > 0 {
		w.logger.Info(ctx, fmt.Sprintf("relayed %d metering events", total))
	}
	return total, nil
}

func toEventMessage(e store.MeteringEvent) kafka.EventMessage {
	msg := kafka.EventMessage{
		ID:               e.ID.String(),
		Type:             string(e.EventType),
		AdID:             e.AdID.String(),
		SourceIdentifier: e.SourceIdentifier,
		Outcome:          e.Outcome,
		Billed:           e.Billed,
		Amount:           e.Amount.StringFixed(4),
		Timestamp:        e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if e.SellerID != nil {
		msg.SellerID = e.SellerID.String()
	}
	return msg
}
