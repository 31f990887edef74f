package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// CreateMeteringEventParams represents one audited metering call
type CreateMeteringEventParams struct {
	AdID             uuid.UUID
	SellerID         *uuid.UUID
	EventType        EventType
	SourceIdentifier string
	Outcome          string
	Billed           bool
	Amount           decimal.Decimal
}

const meteringEventColumns = `id, ad_id, seller_id, event_type, source_identifier, outcome, billed, amount, created_at`

const sqlCreateMeteringEvent = `
INSERT INTO metering_events (ad_id, seller_id, event_type, source_identifier, outcome, billed, amount)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + meteringEventColumns

// CreateMeteringEvent appends to the audit trail
func (s *Store) CreateMeteringEvent(ctx context.Context, params CreateMeteringEventParams) (MeteringEvent, error) {
	var event MeteringEvent
	err := s.conn(ctx).GetContext(ctx, &event, sqlCreateMeteringEvent,
		params.AdID,
		params.SellerID,
		params.EventType,
		params.SourceIdentifier,
		params.Outcome,
		params.Billed,
		params.Amount)
	if err != nil {
		s.logger.Error(ctx, "failed to create metering event", err)
		return MeteringEvent{}, fmt.Errorf("failed to create metering event: %w", err)
	}
	return event, nil
}

const sqlGetUnpublishedMeteringEvents = `
SELECT e.id, e.ad_id, e.seller_id, e.event_type, e.source_identifier, e.outcome, e.billed, e.amount, e.created_at
FROM metering_events e
LEFT JOIN metering_event_publications p ON p.event_id = e.id
WHERE p.event_id IS NULL
ORDER BY e.created_at
LIMIT $1
`

// GetUnpublishedMeteringEvents returns the oldest events not yet relayed
func (s *Store) GetUnpublishedMeteringEvents(ctx context.Context, limit int) ([]MeteringEvent, error) {
	events := []MeteringEvent{}
	err := s.conn(ctx).SelectContext(ctx, &events, sqlGetUnpublishedMeteringEvents, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to get unpublished metering events", err)
		return nil, fmt.Errorf("failed to get unpublished metering events: %w", err)
	}
	return events, nil
}

const sqlMarkMeteringEventsPublished = `
INSERT INTO metering_event_publications (event_id)
SELECT id FROM metering_events WHERE id IN (?)
ON CONFLICT (event_id) DO NOTHING
`

// MarkMeteringEventsPublished records that the given events were relayed
func (s *Store) MarkMeteringEventsPublished(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlx.In(sqlMarkMeteringEventsPublished, ids)
	if err != nil {
		return fmt.Errorf("failed to build publish query: %w", err)
	}
	conn := s.conn(ctx)
	if _, err := conn.ExecContext(ctx, conn.Rebind(query), args...); err != nil {
		s.logger.Error(ctx, "failed to mark metering events published", err)
		return fmt.Errorf("failed to mark metering events published: %w", err)
	}
	return nil
}
