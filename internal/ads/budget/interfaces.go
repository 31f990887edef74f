package budget

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=budget

import (
	"context"

	"ads-billing/internal/store"

	"github.com/google/uuid"
)

// BudgetStore defines the database operations required by Accountant
type BudgetStore interface {
	GetAdByID(ctx context.Context, adID uuid.UUID) (store.Ad, error)
	ReserveAdCapacity(ctx context.Context, params store.ReserveAdCapacityParams) (store.Ad, error)
	RecordAdDailySpend(ctx context.Context, params store.RecordAdDailySpendParams) error
}
