package workers

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=workers

import (
	"context"
	"time"

	"ads-billing/internal/clients/kafka"
	"ads-billing/internal/store"

	"github.com/google/uuid"
)

type SweepStore interface {
	ResetStaleDailySpend(ctx context.Context, today time.Time) (int64, error)
	DeactivateEndedAds(ctx context.Context, today time.Time) (int64, error)
}

type RelayStore interface {
	GetUnpublishedMeteringEvents(ctx context.Context, limit int) ([]store.MeteringEvent, error)
	MarkMeteringEventsPublished(ctx context.Context, ids []uuid.UUID) error
}

type EventPublisher interface {
	PublishEvents(ctx context.Context, events []kafka.EventMessage) error
}
