package metering

import (
	"context"
	"errors"

	"ads-billing/internal/ads/budget"
	"ads-billing/internal/ads/lifecycle"
	"ads-billing/internal/observability"
	"ads-billing/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrEligibilityUnavailable = errors.New("eligibility unavailable")

const (
	reasonNotFound          = "Ad not found"
	reasonNotActive         = "Ad is not active"
	reasonOutOfSchedule     = "Ad is outside its schedule"
	reasonQuotaExhausted    = "All clicks exhausted"
	reasonBudgetExhausted   = "Daily budget exhausted"
	reasonRateNotSet        = "Billing rate not set"
	reasonInsufficientFunds = "Insufficient wallet balance"
)

// Eligibility answers whether an ad may be shown right now.
type Eligibility struct {
	Eligible bool            `json:"eligible"`
	Reason   string          `json:"reason,omitempty"`
	Balance  decimal.Decimal `json:"balance"`
}

// Eligible is the pre-render check for the ad selection side. It reads
// only, except that an active ad whose wallet can no longer cover one unit
// is auto-paused so it drops out of rotation.
func (g *Gateway) Eligible(ctx context.Context, adID uuid.UUID) (Eligibility, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "ad_id", Value: adID.String()})

	ad, err := g.store.GetAdByID(ctx, adID)
	if errors.Is(err, store.ErrNotFound) {
		return Eligibility{Reason: reasonNotFound}, nil
	}
	if err != nil {
		return Eligibility{}, errors.Join(ErrEligibilityUnavailable, err)
	}

	today := g.clock.Today()
	if !budget.Billable(ad) {
		return Eligibility{Reason: reasonNotActive}, nil
	}
	if !lifecycle.InSchedule(ad, today) {
		return Eligibility{Reason: reasonOutOfSchedule}, nil
	}
	if budget.IsExhausted(ad, today) {
		if ad.BillingType == store.BillingTypePerClick && ad.RemainingClicks <= 0 {
			return Eligibility{Reason: reasonQuotaExhausted}, nil
		}
		return Eligibility{Reason: reasonBudgetExhausted}, nil
	}

	balance, err := g.wallet.GetBalance(ctx, ad.SellerID)
	if err != nil {
		return Eligibility{}, errors.Join(ErrEligibilityUnavailable, err)
	}

	rate := ad.UnitRate()
	if !rate.IsPositive() {
		return Eligibility{Reason: reasonRateNotSet, Balance: balance}, nil
	}
	if balance.LessThan(rate) {
		g.autoPause(ctx, ad.ID, lifecycle.PauseReasonInsufficientFunds)
		return Eligibility{Reason: reasonInsufficientFunds, Balance: balance}, nil
	}

	return Eligibility{Eligible: true, Balance: balance}, nil
}
