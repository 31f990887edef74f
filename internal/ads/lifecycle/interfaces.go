package lifecycle

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=lifecycle

import (
	"context"

	"ads-billing/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LifecycleStore defines the database operations required by Controller.
// Every transition is a compare-and-set on the ad row.
type LifecycleStore interface {
	GetAdByID(ctx context.Context, adID uuid.UUID) (store.Ad, error)
	ApproveAd(ctx context.Context, adID uuid.UUID) (store.Ad, error)
	RejectAd(ctx context.Context, adID uuid.UUID, reason string) (store.Ad, error)
	ActivateAd(ctx context.Context, adID uuid.UUID) (store.Ad, error)
	ResumeAd(ctx context.Context, adID uuid.UUID) (store.Ad, error)
	DeactivateAd(ctx context.Context, adID uuid.UUID) (store.Ad, error)
	PauseAd(ctx context.Context, adID uuid.UUID, reason string) (store.Ad, error)
}

// BalanceReader is the read side of the wallet ledger
type BalanceReader interface {
	GetBalance(ctx context.Context, sellerID uuid.UUID) (decimal.Decimal, error)
}
