package topup

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=topup

import (
	"context"

	"ads-billing/internal/ads/wallet"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"
)

// WalletCrediter is the credit side of the wallet ledger
type WalletCrediter interface {
	Credit(ctx context.Context, req wallet.CreditRequest) (decimal.Decimal, error)
}

// PaymentIntents creates Stripe PaymentIntents
type PaymentIntents interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}
