package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"context"

	"ads-billing/internal/ads/lifecycle"
	"ads-billing/internal/ads/metering"
	"ads-billing/internal/ads/topup"
	"ads-billing/internal/ads/wallet"
	"ads-billing/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"
)

type Meter interface {
	RecordImpression(ctx context.Context, adID uuid.UUID, source string) metering.Result
	RecordClick(ctx context.Context, adID uuid.UUID, source string) metering.Result
	Eligible(ctx context.Context, adID uuid.UUID) (metering.Eligibility, error)
}

type Lifecycle interface {
	GetAd(ctx context.Context, adID uuid.UUID) (store.Ad, error)
	Approve(ctx context.Context, adID uuid.UUID) (store.Ad, error)
	Reject(ctx context.Context, adID uuid.UUID, reason string) (store.Ad, error)
	Activate(ctx context.Context, adID uuid.UUID) (lifecycle.Result, error)
	Deactivate(ctx context.Context, adID uuid.UUID) (store.Ad, error)
	Resume(ctx context.Context, adID uuid.UUID) (lifecycle.Result, error)
}

type Wallet interface {
	GetStatement(ctx context.Context, sellerID uuid.UUID, limit int) (wallet.Statement, error)
	Credit(ctx context.Context, req wallet.CreditRequest) (decimal.Decimal, error)
}

type TopUps interface {
	CreateTopUp(ctx context.Context, sellerID uuid.UUID, amount decimal.Decimal) (topup.TopUp, error)
	ConstructEvent(payload []byte, signature string) (stripe.Event, error)
	HandleWebhook(ctx context.Context, event stripe.Event) error
}
