package metering

import (
	"context"
	"sync"
	"time"

	"ads-billing/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type fakeTxKey struct{}

// fakeStore is an in-memory stand-in for the postgres store. One mutex
// stands in for row locks; WithinTx snapshots state and restores it when fn
// fails.
type fakeStore struct {
	mu      sync.Mutex
	ads     map[uuid.UUID]store.Ad
	wallets map[uuid.UUID]store.WalletAccount
	txns    []store.WalletTransaction
	events  []store.MeteringEvent
	spend   map[string]store.AdDailySpend
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		ads:     make(map[uuid.UUID]store.Ad),
		wallets: make(map[uuid.UUID]store.WalletAccount),
		spend:   make(map[string]store.AdDailySpend),
	}
}

func (f *fakeStore) inTx(ctx context.Context) bool {
	return ctx.Value(fakeTxKey{}) != nil
}

func (f *fakeStore) locked(ctx context.Context, fn func()) {
	if f.inTx(ctx) {
		fn()
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	fn()
}

func (f *fakeStore) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.inTx(ctx) {
		return fn(ctx)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	ads := make(map[uuid.UUID]store.Ad, len(f.ads))
	for k, v := range f.ads {
		ads[k] = v
	}
	wallets := make(map[uuid.UUID]store.WalletAccount, len(f.wallets))
	for k, v := range f.wallets {
		wallets[k] = v
	}
	spend := make(map[string]store.AdDailySpend, len(f.spend))
	for k, v := range f.spend {
		spend[k] = v
	}
	txns, events := len(f.txns), len(f.events)

	if err := fn(context.WithValue(ctx, fakeTxKey{}, true)); err != nil {
		f.ads, f.wallets, f.spend = ads, wallets, spend
		f.txns, f.events = f.txns[:txns], f.events[:events]
		return err
	}
	return nil
}

func (f *fakeStore) putAd(ad store.Ad) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ads[ad.ID] = ad
}

func (f *fakeStore) putWallet(sellerID uuid.UUID, balance string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.wallets[sellerID] = store.WalletAccount{SellerID: sellerID, Balance: decimal.RequireFromString(balance)}
}

func (f *fakeStore) ad(id uuid.UUID) store.Ad {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ads[id]
}

func (f *fakeStore) balance(sellerID uuid.UUID) decimal.Decimal {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.wallets[sellerID].Balance
}

func (f *fakeStore) auditTrail() []store.MeteringEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]store.MeteringEvent(nil), f.events...)
}

func (f *fakeStore) debits() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, txn := range f.txns {
		if txn.Type == store.TransactionTypeDebit {
			n++
		}
	}
	return n
}

func (f *fakeStore) GetAdByID(ctx context.Context, adID uuid.UUID) (ad store.Ad, err error) {
	f.locked(ctx, func() {
		var ok bool
		if ad, ok = f.ads[adID]; !ok || ad.DeletedAt != nil {
			ad, err = store.Ad{}, store.ErrNotFound
		}
	})
	return ad, err
}

func (f *fakeStore) ReserveAdCapacity(ctx context.Context, p store.ReserveAdCapacityParams) (ad store.Ad, err error) {
	f.locked(ctx, func() {
		cur, ok := f.ads[p.AdID]
		if !ok || cur.Status != store.AdStatusActive || cur.ApprovalStatus != store.ApprovalStatusApproved {
			err = store.ErrConditionNotMet
			return
		}
		spent := cur.CurrentDaySpent
		if cur.LastSpendResetDate == nil || !cur.LastSpendResetDate.Equal(p.Today) {
			spent = decimal.Zero
		}
		clicks := 0
		if p.ConsumeClick {
			clicks = 1
		}
		if cur.RemainingClicks < clicks {
			err = store.ErrConditionNotMet
			return
		}
		if cur.DailyBudget.IsPositive() && spent.Add(p.Amount).GreaterThan(cur.DailyBudget) {
			err = store.ErrConditionNotMet
			return
		}
		today := p.Today
		cur.CurrentDaySpent = spent.Add(p.Amount)
		cur.LastSpendResetDate = &today
		cur.RemainingClicks -= clicks
		f.ads[p.AdID] = cur
		ad = cur
	})
	return ad, err
}

func (f *fakeStore) RecordAdDailySpend(ctx context.Context, p store.RecordAdDailySpendParams) error {
	f.locked(ctx, func() {
		key := p.AdID.String() + p.SpendDate.Format(time.DateOnly)
		row := f.spend[key]
		row.AdID, row.SpendDate = p.AdID, p.SpendDate
		row.Amount = row.Amount.Add(p.Amount)
		if p.EventType == store.EventTypeClick {
			row.Clicks++
		} else {
			row.Impressions++
		}
		f.spend[key] = row
	})
	return nil
}

func (f *fakeStore) transition(ctx context.Context, adID uuid.UUID, allowed func(store.Ad) bool, apply func(*store.Ad)) (ad store.Ad, err error) {
	f.locked(ctx, func() {
		cur, ok := f.ads[adID]
		if !ok || !allowed(cur) {
			err = store.ErrConditionNotMet
			return
		}
		apply(&cur)
		f.ads[adID] = cur
		ad = cur
	})
	return ad, err
}

func (f *fakeStore) PauseAd(ctx context.Context, adID uuid.UUID, reason string) (store.Ad, error) {
	return f.transition(ctx, adID,
		func(a store.Ad) bool { return a.Status == store.AdStatusActive && !a.AutoPaused },
		func(a *store.Ad) {
			a.Status, a.AutoPaused, a.PauseReason = store.AdStatusInactive, true, &reason
		})
}

func (f *fakeStore) ResumeAd(ctx context.Context, adID uuid.UUID) (store.Ad, error) {
	return f.transition(ctx, adID,
		func(a store.Ad) bool { return a.AutoPaused && a.ApprovalStatus == store.ApprovalStatusApproved },
		func(a *store.Ad) {
			a.Status, a.AutoPaused, a.PauseReason = store.AdStatusActive, false, nil
		})
}

func (f *fakeStore) ActivateAd(ctx context.Context, adID uuid.UUID) (store.Ad, error) {
	return f.transition(ctx, adID,
		func(a store.Ad) bool { return a.ApprovalStatus == store.ApprovalStatusApproved },
		func(a *store.Ad) {
			a.Status, a.AutoPaused, a.PauseReason = store.AdStatusActive, false, nil
		})
}

func (f *fakeStore) DeactivateAd(ctx context.Context, adID uuid.UUID) (store.Ad, error) {
	ad, err := f.transition(ctx, adID,
		func(store.Ad) bool { return true },
		func(a *store.Ad) { a.Status = store.AdStatusInactive })
	if err != nil {
		return store.Ad{}, store.ErrNotFound
	}
	return ad, nil
}

func (f *fakeStore) ApproveAd(ctx context.Context, adID uuid.UUID) (store.Ad, error) {
	return f.transition(ctx, adID,
		func(a store.Ad) bool { return a.ApprovalStatus == store.ApprovalStatusPending },
		func(a *store.Ad) { a.ApprovalStatus = store.ApprovalStatusApproved })
}

func (f *fakeStore) RejectAd(ctx context.Context, adID uuid.UUID, reason string) (store.Ad, error) {
	return f.transition(ctx, adID,
		func(a store.Ad) bool { return a.ApprovalStatus == store.ApprovalStatusPending },
		func(a *store.Ad) {
			a.ApprovalStatus, a.Status, a.RejectionReason = store.ApprovalStatusRejected, store.AdStatusInactive, &reason
		})
}

func (f *fakeStore) GetWalletBySellerID(ctx context.Context, sellerID uuid.UUID) (w store.WalletAccount, err error) {
	f.locked(ctx, func() {
		var ok bool
		if w, ok = f.wallets[sellerID]; !ok {
			err = store.ErrNotFound
		}
	})
	return w, err
}

func (f *fakeStore) DebitWallet(ctx context.Context, sellerID uuid.UUID, amount decimal.Decimal) (balance decimal.Decimal, err error) {
	f.locked(ctx, func() {
		w, ok := f.wallets[sellerID]
		if !ok || w.Balance.LessThan(amount) {
			err = store.ErrConditionNotMet
			return
		}
		w.Balance = w.Balance.Sub(amount)
		f.wallets[sellerID] = w
		balance = w.Balance
	})
	return balance, err
}

func (f *fakeStore) CreditWallet(ctx context.Context, sellerID uuid.UUID, amount decimal.Decimal) (balance decimal.Decimal, err error) {
	f.locked(ctx, func() {
		w := f.wallets[sellerID]
		w.SellerID = sellerID
		w.Balance = w.Balance.Add(amount)
		f.wallets[sellerID] = w
		balance = w.Balance
	})
	return balance, nil
}

func (f *fakeStore) CreateWalletTransaction(ctx context.Context, p store.CreateWalletTransactionParams) (txn store.WalletTransaction, err error) {
	f.locked(ctx, func() {
		if p.Reference != nil {
			for _, existing := range f.txns {
				if existing.Reference != nil && *existing.Reference == *p.Reference {
					err = store.ErrDuplicate
					return
				}
			}
		}
		txn = store.WalletTransaction{
			ID: uuid.New(), SellerID: p.SellerID, Type: p.Type, Amount: p.Amount,
			BalanceAfter: p.BalanceAfter, Description: p.Description, AdID: p.AdID, Reference: p.Reference,
		}
		f.txns = append(f.txns, txn)
	})
	return txn, err
}

func (f *fakeStore) ListWalletTransactions(ctx context.Context, sellerID uuid.UUID, limit int) (out []store.WalletTransaction, err error) {
	f.locked(ctx, func() {
		for i := len(f.txns) - 1; i >= 0 && len(out) < limit; i-- {
			if f.txns[i].SellerID == sellerID {
				out = append(out, f.txns[i])
			}
		}
	})
	return out, nil
}

func (f *fakeStore) CreateMeteringEvent(ctx context.Context, p store.CreateMeteringEventParams) (event store.MeteringEvent, err error) {
	f.locked(ctx, func() {
		event = store.MeteringEvent{
			ID: uuid.New(), AdID: p.AdID, SellerID: p.SellerID, EventType: p.EventType,
			SourceIdentifier: p.SourceIdentifier, Outcome: p.Outcome, Billed: p.Billed, Amount: p.Amount,
		}
		f.events = append(f.events, event)
	})
	return event, nil
}
