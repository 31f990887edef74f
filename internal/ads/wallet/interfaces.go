package wallet

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=wallet

import (
	"context"

	"ads-billing/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerStore defines the database operations required by Ledger
type LedgerStore interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetWalletBySellerID(ctx context.Context, sellerID uuid.UUID) (store.WalletAccount, error)
	DebitWallet(ctx context.Context, sellerID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
	CreditWallet(ctx context.Context, sellerID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
	CreateWalletTransaction(ctx context.Context, params store.CreateWalletTransactionParams) (store.WalletTransaction, error)
	ListWalletTransactions(ctx context.Context, sellerID uuid.UUID, limit int) ([]store.WalletTransaction, error)
}
