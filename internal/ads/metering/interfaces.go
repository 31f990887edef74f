package metering

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=metering

import (
	"context"

	"ads-billing/internal/ads/budget"
	"ads-billing/internal/ads/fraud"
	"ads-billing/internal/ads/wallet"
	"ads-billing/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GatewayStore defines the database operations required by Gateway
type GatewayStore interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetAdByID(ctx context.Context, adID uuid.UUID) (store.Ad, error)
	CreateMeteringEvent(ctx context.Context, params store.CreateMeteringEventParams) (store.MeteringEvent, error)
}

type FraudGuard interface {
	Admit(ctx context.Context, adID uuid.UUID, source string, eventType store.EventType) fraud.Verdict
	Release(ctx context.Context, v fraud.Verdict)
}

type BudgetAccountant interface {
	Reserve(ctx context.Context, ad store.Ad, eventType store.EventType) (budget.Reservation, error)
}

type WalletLedger interface {
	TryDebit(ctx context.Context, req wallet.DebitRequest) (wallet.Debit, error)
	GetBalance(ctx context.Context, sellerID uuid.UUID) (decimal.Decimal, error)
}

type LifecycleController interface {
	AutoPause(ctx context.Context, adID uuid.UUID, reason string) (bool, error)
}
