// Package wallet is the only writer of seller wallet balances.
package wallet

import (
	"context"
	"errors"

	"ads-billing/internal/observability"
	"ads-billing/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrDuplicateCredit means a credit with the same reference was already applied.
	ErrDuplicateCredit = errors.New("credit already applied")
	ErrLedgerFailed    = errors.New("wallet ledger unavailable")
)

type DebitOutcome int

const (
	DebitOK DebitOutcome = iota
	DebitInsufficientFunds
)

func (o DebitOutcome) String() string {
	if o == DebitOK {
		return "ok"
	}
	return "insufficient_funds"
}

// Debit is the result of TryDebit. NewBalance is only set on DebitOK.
type Debit struct {
	Outcome    DebitOutcome
	NewBalance decimal.Decimal
}

func (d Debit) OK() bool {
	return d.Outcome == DebitOK
}

// DebitRequest describes one charge against a seller wallet
type DebitRequest struct {
	SellerID    uuid.UUID
	Amount      decimal.Decimal
	AdID        *uuid.UUID
	Description string
}

// CreditRequest describes money added to a seller wallet. Reference, when
// set, makes the credit idempotent.
type CreditRequest struct {
	SellerID    uuid.UUID
	Amount      decimal.Decimal
	Description string
	Reference   *string
}

// Statement is a point-in-time view of a wallet and its latest entries
type Statement struct {
	SellerID           uuid.UUID                 `json:"seller_id"`
	Balance            decimal.Decimal           `json:"balance"`
	PendingWithdrawals decimal.Decimal           `json:"pending_withdrawals"`
	Transactions       []store.WalletTransaction `json:"transactions"`
}

type Ledger struct {
	store  LedgerStore
	logger *observability.Logger
}

func New(store LedgerStore, logger *observability.Logger) *Ledger {
	return &Ledger{
		store:  store,
		logger: logger,
	}
}

// TryDebit takes amount from the seller's balance in one conditional write,
// journalling the debit alongside. Concurrent debits can never drive the
// balance below zero. When called inside an outer store transaction the
// debit joins it.
func (l *Ledger) TryDebit(ctx context.Context, req DebitRequest) (Debit, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "seller_id", Value: req.SellerID.String()},
		observability.Field{Key: "amount", Value: req.Amount.String()},
	)

	if !req.Amount.IsPositive() {
		return Debit{}, ErrInvalidAmount
	}

	var result Debit
	err := l.store.WithinTx(ctx, func(ctx context.Context) error {
		balance, err := l.store.DebitWallet(ctx, req.SellerID, req.Amount)
		if errors.Is(err, store.ErrConditionNotMet) {
			result = Debit{Outcome: DebitInsufficientFunds}
			return nil
		}
		if err != nil {
			return err
		}

		_, err = l.store.CreateWalletTransaction(ctx, store.CreateWalletTransactionParams{
			SellerID:     req.SellerID,
			Type:         store.TransactionTypeDebit,
			Amount:       req.Amount,
			BalanceAfter: balance,
			Description:  req.Description,
			AdID:         req.AdID,
		})
		if err != nil {
			return err
		}
		result = Debit{Outcome: DebitOK, NewBalance: balance}
		return nil
	})
	if err != nil {
		l.logger.Error(ctx, "failed to debit wallet", err)
		return Debit{}, errors.Join(ErrLedgerFailed, err)
	}
	return result, nil
}

// Credit adds amount to the seller's balance and journals it.
func (l *Ledger) Credit(ctx context.Context, req CreditRequest) (decimal.Decimal, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "seller_id", Value: req.SellerID.String()},
		observability.Field{Key: "amount", Value: req.Amount.String()},
	)

	if !req.Amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}

	var balance decimal.Decimal
	err := l.store.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		balance, err = l.store.CreditWallet(ctx, req.SellerID, req.Amount)
		if err != nil {
			return err
		}
		_, err = l.store.CreateWalletTransaction(ctx, store.CreateWalletTransactionParams{
			SellerID:     req.SellerID,
			Type:         store.TransactionTypeCredit,
			Amount:       req.Amount,
			BalanceAfter: balance,
			Description:  req.Description,
			Reference:    req.Reference,
		})
		return err
	})
	if errors.Is(err, store.ErrDuplicate) {
		l.logger.Info(ctx, "credit reference already applied")
		return decimal.Zero, ErrDuplicateCredit
	}
	if err != nil {
		l.logger.Error(ctx, "failed to credit wallet", err)
		return decimal.Zero, errors.Join(ErrLedgerFailed, err)
	}

	l.logger.Info(ctx, "wallet credited")
	return balance, nil
}

// GetBalance is a point-in-time read. A seller without a wallet has a zero
// balance.
func (l *Ledger) GetBalance(ctx context.Context, sellerID uuid.UUID) (decimal.Decimal, error) {
	wallet, err := l.store.GetWalletBySellerID(ctx, sellerID)
	if errors.Is(err, store.ErrNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, errors.Join(ErrLedgerFailed, err)
	}
	return wallet.Balance, nil
}

// GetStatement returns the balance and the latest limit journal entries.
func (l *Ledger) GetStatement(ctx context.Context, sellerID uuid.UUID, limit int) (Statement, error) {
	statement := Statement{SellerID: sellerID, Transactions: []store.WalletTransaction{}}

	wallet, err := l.store.GetWalletBySellerID(ctx, sellerID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return statement, nil
	case err != nil:
		return Statement{}, errors.Join(ErrLedgerFailed, err)
	}
	statement.Balance = wallet.Balance
	statement.PendingWithdrawals = wallet.PendingWithdrawals

	txns, err := l.store.ListWalletTransactions(ctx, sellerID, limit)
	if err != nil {
		return Statement{}, errors.Join(ErrLedgerFailed, err)
	}
	statement.Transactions = txns
	return statement, nil
}
