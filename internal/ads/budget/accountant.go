// Package budget owns an ad's billing counters: the click quota, today's
// spend and the date that spend belongs to.
package budget

import (
	"context"
	"errors"
	"time"

	"ads-billing/internal/biztime"
	"ads-billing/internal/observability"
	"ads-billing/internal/store"

	"github.com/shopspring/decimal"
)

var ErrBudgetUnavailable = errors.New("budget counters unavailable")

type Outcome int

const (
	Granted Outcome = iota
	Exhausted
	// Inactive means the ad stopped being billable between load and
	// reservation, e.g. a concurrent pause won the row.
	Inactive
)

func (o Outcome) String() string {
	switch o {
	case Granted:
		return "granted"
	case Exhausted:
		return "exhausted"
	default:
		return "inactive"
	}
}

// Reservation is the result of Reserve. Ad carries the counters after the
// reservation was applied when Outcome is Granted.
type Reservation struct {
	Outcome Outcome
	Amount  decimal.Decimal
	Ad      store.Ad
}

func (r Reservation) Granted() bool {
	return r.Outcome == Granted
}

type Accountant struct {
	store  BudgetStore
	clock  biztime.Clock
	logger *observability.Logger
}

func New(store BudgetStore, clock biztime.Clock, logger *observability.Logger) *Accountant {
	return &Accountant{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// Reserve takes one billable unit of eventType from the ad. The stale-day
// reset, the quota and daily-cap checks and the counter writes are a single
// conditional update, so two concurrent reservations can never both see the
// last unit as free. Run it inside the billing transaction so a failed debit
// rolls the reservation back.
func (a *Accountant) Reserve(ctx context.Context, ad store.Ad, eventType store.EventType) (Reservation, error) {
	amount := ad.RateFor(eventType)
	today := a.clock.Today()

	updated, err := a.store.ReserveAdCapacity(ctx, store.ReserveAdCapacityParams{
		AdID:         ad.ID,
		Amount:       amount,
		ConsumeClick: consumesClick(ad, eventType),
		Today:        today,
	})
	if errors.Is(err, store.ErrConditionNotMet) {
		return a.classify(ctx, ad, amount)
	}
	if err != nil {
		return Reservation{}, errors.Join(ErrBudgetUnavailable, err)
	}

	err = a.store.RecordAdDailySpend(ctx, store.RecordAdDailySpendParams{
		AdID:      ad.ID,
		SpendDate: today,
		Amount:    amount,
		EventType: eventType,
	})
	if err != nil {
		return Reservation{}, errors.Join(ErrBudgetUnavailable, err)
	}

	return Reservation{Outcome: Granted, Amount: amount, Ad: updated}, nil
}

// classify tells a rejected reservation apart: the ad either has no room
// left or is no longer billable at all.
func (a *Accountant) classify(ctx context.Context, ad store.Ad, amount decimal.Decimal) (Reservation, error) {
	current, err := a.store.GetAdByID(ctx, ad.ID)
	if errors.Is(err, store.ErrNotFound) {
		return Reservation{Outcome: Inactive, Amount: amount, Ad: ad}, nil
	}
	if err != nil {
		return Reservation{}, errors.Join(ErrBudgetUnavailable, err)
	}
	if !Billable(current) {
		return Reservation{Outcome: Inactive, Amount: amount, Ad: current}, nil
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "ad_id", Value: ad.ID.String()},
		observability.Field{Key: "remaining_clicks", Value: current.RemainingClicks},
		observability.Field{Key: "current_day_spent", Value: current.CurrentDaySpent.String()},
	)
	a.logger.Info(ctx, "ad budget exhausted")
	return Reservation{Outcome: Exhausted, Amount: amount, Ad: current}, nil
}

// Billable reports whether events against ad may be charged at all.
func Billable(ad store.Ad) bool {
	return ad.DeletedAt == nil &&
		ad.Status == store.AdStatusActive &&
		ad.ApprovalStatus == store.ApprovalStatusApproved
}

// SpentToday is the ad's spend for today, treating a counter left over from
// an earlier day as zero.
func SpentToday(ad store.Ad, today time.Time) decimal.Decimal {
	if ad.LastSpendResetDate == nil || !biztime.SameDay(*ad.LastSpendResetDate, today) {
		return decimal.Zero
	}
	return ad.CurrentDaySpent
}

// IsExhausted reports whether ad has no room for one more unit of the event
// it is billed by. It reads the snapshot only and never writes.
func IsExhausted(ad store.Ad, today time.Time) bool {
	if ad.BillingType == store.BillingTypePerClick && ad.RemainingClicks <= 0 {
		return true
	}
	if ad.DailyBudget.IsPositive() {
		return SpentToday(ad, today).Add(ad.UnitRate()).GreaterThan(ad.DailyBudget)
	}
	return false
}

func consumesClick(ad store.Ad, eventType store.EventType) bool {
	return ad.BillingType == store.BillingTypePerClick && eventType == store.EventTypeClick
}
