package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Fixtures provides factory functions for creating test data.
// All factory methods use testify/require to fail fast on errors.
type Fixtures struct {
	t      *testing.T
	testDB *TestDB
	ctx    context.Context
}

// NewFixtures creates a new Fixtures instance for test data generation.
func NewFixtures(t *testing.T, testDB *TestDB) *Fixtures {
	t.Helper()
	return &Fixtures{
		t:      t,
		testDB: testDB,
		ctx:    context.Background(),
	}
}

// --- Ad Fixtures ---

// AdOpts customizes ad creation.
type AdOpts struct {
	SellerID          uuid.UUID
	BillingType       BillingType
	PerClickRate      decimal.Decimal
	PerImpressionRate decimal.Decimal
	DailyBudget       decimal.Decimal
	TotalClicks       int
	Approved          bool
	Active            bool
	CurrentDaySpent   decimal.Decimal
	LastResetDate     *time.Time
	EndDate           *time.Time
}

// DefaultAdOpts returns an approved, active per-click ad with 10 clicks at 2.00.
func DefaultAdOpts() AdOpts {
	return AdOpts{
		SellerID:          uuid.New(),
		BillingType:       BillingTypePerClick,
		PerClickRate:      decimal.RequireFromString("2.00"),
		PerImpressionRate: decimal.Zero,
		DailyBudget:       decimal.Zero,
		TotalClicks:       10,
		Approved:          true,
		Active:            true,
		CurrentDaySpent:   decimal.Zero,
	}
}

// CreateAd creates a test ad and moves it through approval/activation as asked.
func (f *Fixtures) CreateAd(opts ...func(*AdOpts)) Ad {
	f.t.Helper()
	o := DefaultAdOpts()
	for _, fn := range opts {
		fn(&o)
	}

	s := &f.testDB.Store
	ad, err := s.CreateAd(f.ctx, CreateAdParams{
		SellerID:          o.SellerID,
		AdTypeID:          uuid.New(),
		BillingType:       o.BillingType,
		PerClickRate:      o.PerClickRate,
		PerImpressionRate: o.PerImpressionRate,
		DailyBudget:       o.DailyBudget,
		TotalClicks:       o.TotalClicks,
		EndDate:           o.EndDate,
	})
	require.NoError(f.t, err, "failed to create test ad")

	if o.Approved {
		ad, err = s.ApproveAd(f.ctx, ad.ID)
		require.NoError(f.t, err, "failed to approve test ad")
	}
	if o.Active {
		ad, err = s.ActivateAd(f.ctx, ad.ID)
		require.NoError(f.t, err, "failed to activate test ad")
	}
	if !o.CurrentDaySpent.IsZero() || o.LastResetDate != nil {
		f.testDB.MustExec(f.t,
			`UPDATE ads SET current_day_spent = $2, last_spend_reset_date = $3 WHERE id = $1`,
			ad.ID, o.CurrentDaySpent, o.LastResetDate)
		ad, err = s.GetAdByID(f.ctx, ad.ID)
		require.NoError(f.t, err)
	}
	return ad
}

// --- Wallet Fixtures ---

// CreateWallet funds a seller wallet with the given balance.
func (f *Fixtures) CreateWallet(sellerID uuid.UUID, balance string) WalletAccount {
	f.t.Helper()
	s := &f.testDB.Store
	_, err := s.CreditWallet(f.ctx, sellerID, decimal.RequireFromString(balance))
	require.NoError(f.t, err, "failed to create test wallet")
	wallet, err := s.GetWalletBySellerID(f.ctx, sellerID)
	require.NoError(f.t, err)
	return wallet
}
