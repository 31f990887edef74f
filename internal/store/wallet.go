package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const sqlGetWalletBySellerID = `
SELECT seller_id, balance, pending_withdrawals, created_at, updated_at
FROM seller_wallets
WHERE seller_id = $1
`

// GetWalletBySellerID retrieves a seller's wallet
func (s *Store) GetWalletBySellerID(ctx context.Context, sellerID uuid.UUID) (WalletAccount, error) {
	var wallet WalletAccount
	err := s.conn(ctx).GetContext(ctx, &wallet, sqlGetWalletBySellerID, sellerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return WalletAccount{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get wallet", err)
		return WalletAccount{}, fmt.Errorf("failed to get wallet: %w", err)
	}
	return wallet, nil
}

// Only balance is written; pending_withdrawals on the same row is untouched.
const sqlDebitWallet = `
UPDATE seller_wallets
SET balance = balance - $2, updated_at = NOW()
WHERE seller_id = $1 AND balance >= $2
RETURNING balance
`

// DebitWallet subtracts amount if and only if the balance covers it, in one
// statement. ErrConditionNotMet means insufficient funds or no wallet.
func (s *Store) DebitWallet(ctx context.Context, sellerID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := s.conn(ctx).GetContext(ctx, &balance, sqlDebitWallet, sellerID, amount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, ErrConditionNotMet
		}
		s.logger.Error(ctx, "failed to debit wallet", err)
		return decimal.Zero, fmt.Errorf("failed to debit wallet: %w", err)
	}
	return balance, nil
}

const sqlCreditWallet = `
INSERT INTO seller_wallets (seller_id, balance)
VALUES ($1, $2)
ON CONFLICT (seller_id) DO UPDATE
SET balance = seller_wallets.balance + EXCLUDED.balance, updated_at = NOW()
RETURNING balance
`

// CreditWallet adds amount to the seller's balance, creating the wallet on
// first credit
func (s *Store) CreditWallet(ctx context.Context, sellerID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := s.conn(ctx).GetContext(ctx, &balance, sqlCreditWallet, sellerID, amount)
	if err != nil {
		s.logger.Error(ctx, "failed to credit wallet", err)
		return decimal.Zero, fmt.Errorf("failed to credit wallet: %w", err)
	}
	return balance, nil
}

// CreateWalletTransactionParams represents one journal entry
type CreateWalletTransactionParams struct {
	SellerID     uuid.UUID
	Type         TransactionType
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
	Description  string
	AdID         *uuid.UUID
	Reference    *string
}

const walletTransactionColumns = `id, seller_id, type, amount, balance_after, description, ad_id, reference, created_at`

const sqlCreateWalletTransaction = `
INSERT INTO wallet_transactions (seller_id, type, amount, balance_after, description, ad_id, reference)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + walletTransactionColumns

// CreateWalletTransaction appends a journal entry. ErrDuplicate means the
// reference was already used.
func (s *Store) CreateWalletTransaction(ctx context.Context, params CreateWalletTransactionParams) (WalletTransaction, error) {
	var txn WalletTransaction
	err := s.conn(ctx).GetContext(ctx, &txn, sqlCreateWalletTransaction,
		params.SellerID,
		params.Type,
		params.Amount,
		params.BalanceAfter,
		params.Description,
		params.AdID,
		params.Reference)
	if err != nil {
		if isUniqueViolation(err) {
			return WalletTransaction{}, ErrDuplicate
		}
		s.logger.Error(ctx, "failed to create wallet transaction", err)
		return WalletTransaction{}, fmt.Errorf("failed to create wallet transaction: %w", err)
	}
	return txn, nil
}

const sqlListWalletTransactions = `
SELECT ` + walletTransactionColumns + `
FROM wallet_transactions
WHERE seller_id = $1
ORDER BY created_at DESC
LIMIT $2
`

// ListWalletTransactions returns the most recent journal entries for a seller
func (s *Store) ListWalletTransactions(ctx context.Context, sellerID uuid.UUID, limit int) ([]WalletTransaction, error) {
	txns := []WalletTransaction{}
	err := s.conn(ctx).SelectContext(ctx, &txns, sqlListWalletTransactions, sellerID, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to list wallet transactions", err)
		return nil, fmt.Errorf("failed to list wallet transactions: %w", err)
	}
	return txns, nil
}
