package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const adColumns = `id, seller_id, ad_type_id, product_id, billing_type, per_click_rate, per_impression_rate,
daily_budget, total_clicks, remaining_clicks, current_day_spent, last_spend_reset_date, approval_status,
status, auto_paused, pause_reason, rejection_reason, start_date, end_date, duration_days, created_at,
updated_at, deleted_at`

const sqlGetAdByID = `
SELECT ` + adColumns + `
FROM ads
WHERE id = $1 AND deleted_at IS NULL
`

// GetAdByID retrieves an ad by ID
func (s *Store) GetAdByID(ctx context.Context, adID uuid.UUID) (Ad, error) {
	var ad Ad
	err := s.conn(ctx).GetContext(ctx, &ad, sqlGetAdByID, adID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Ad{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get ad by id", err)
		return Ad{}, fmt.Errorf("failed to get ad by id: %w", err)
	}
	return ad, nil
}

// CreateAdParams represents parameters for registering an ad's billing state
type CreateAdParams struct {
	SellerID          uuid.UUID
	AdTypeID          uuid.UUID
	ProductID         *uuid.UUID
	BillingType       BillingType
	PerClickRate      decimal.Decimal
	PerImpressionRate decimal.Decimal
	DailyBudget       decimal.Decimal
	TotalClicks       int
	StartDate         *time.Time
	EndDate           *time.Time
	DurationDays      int
}

const sqlCreateAd = `
INSERT INTO ads (seller_id, ad_type_id, product_id, billing_type, per_click_rate, per_impression_rate,
                 daily_budget, total_clicks, remaining_clicks, start_date, end_date, duration_days)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8, $9, $10, $11)
RETURNING ` + adColumns

// CreateAd registers an ad as pending and inactive with a full click quota
func (s *Store) CreateAd(ctx context.Context, params CreateAdParams) (Ad, error) {
	var ad Ad
	err := s.conn(ctx).GetContext(ctx, &ad, sqlCreateAd,
		params.SellerID,
		params.AdTypeID,
		params.ProductID,
		params.BillingType,
		params.PerClickRate,
		params.PerImpressionRate,
		params.DailyBudget,
		params.TotalClicks,
		params.StartDate,
		params.EndDate,
		params.DurationDays)
	if err != nil {
		s.logger.Error(ctx, "failed to create ad", err)
		return Ad{}, fmt.Errorf("failed to create ad: %w", err)
	}
	return ad, nil
}

// ReserveAdCapacityParams describes one billable unit being taken from an ad
type ReserveAdCapacityParams struct {
	AdID         uuid.UUID
	Amount       decimal.Decimal
	ConsumeClick bool
	Today        time.Time
}

// The daily reset, both capacity checks and both counter writes happen in
// one statement so concurrent events on the same ad serialize on the row.
const sqlReserveAdCapacity = `
UPDATE ads
SET current_day_spent = (CASE WHEN last_spend_reset_date = $2::date THEN current_day_spent ELSE 0 END) + $3,
    last_spend_reset_date = $2::date,
    remaining_clicks = remaining_clicks - $4,
    updated_at = NOW()
WHERE id = $1
  AND deleted_at IS NULL
  AND status = 'active'
  AND approval_status = 'approved'
  AND remaining_clicks >= $4
  AND (daily_budget = 0
       OR (CASE WHEN last_spend_reset_date = $2::date THEN current_day_spent ELSE 0 END) + $3 <= daily_budget)
RETURNING ` + adColumns

// ReserveAdCapacity atomically resets stale daily spend, checks the click
// quota and daily budget, and applies the reservation. It returns
// ErrConditionNotMet when the ad is not billable or has no room left.
func (s *Store) ReserveAdCapacity(ctx context.Context, params ReserveAdCapacityParams) (Ad, error) {
	clicks := 0
	if params.ConsumeClick {
		clicks = 1
	}

	var ad Ad
	err := s.conn(ctx).GetContext(ctx, &ad, sqlReserveAdCapacity,
		params.AdID,
		params.Today,
		params.Amount,
		clicks)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Ad{}, ErrConditionNotMet
		}
		s.logger.Error(ctx, "failed to reserve ad capacity", err)
		return Ad{}, fmt.Errorf("failed to reserve ad capacity: %w", err)
	}
	return ad, nil
}

const sqlPauseAd = `
UPDATE ads
SET status = 'inactive', auto_paused = TRUE, pause_reason = $2, updated_at = NOW()
WHERE id = $1 AND status = 'active' AND auto_paused = FALSE AND deleted_at IS NULL
RETURNING ` + adColumns

// PauseAd flips an active ad to auto-paused. ErrConditionNotMet means the ad
// was already paused or inactive.
func (s *Store) PauseAd(ctx context.Context, adID uuid.UUID, reason string) (Ad, error) {
	return s.transitionAd(ctx, "pause ad", sqlPauseAd, adID, reason)
}

const sqlActivateAd = `
UPDATE ads
SET status = 'active', auto_paused = FALSE, pause_reason = NULL, updated_at = NOW()
WHERE id = $1 AND approval_status = 'approved' AND deleted_at IS NULL
RETURNING ` + adColumns

// ActivateAd sets an approved ad active and clears any pause
func (s *Store) ActivateAd(ctx context.Context, adID uuid.UUID) (Ad, error) {
	return s.transitionAd(ctx, "activate ad", sqlActivateAd, adID)
}

const sqlResumeAd = `
UPDATE ads
SET status = 'active', auto_paused = FALSE, pause_reason = NULL, updated_at = NOW()
WHERE id = $1 AND auto_paused = TRUE AND approval_status = 'approved' AND deleted_at IS NULL
RETURNING ` + adColumns

// ResumeAd reactivates an auto-paused ad
func (s *Store) ResumeAd(ctx context.Context, adID uuid.UUID) (Ad, error) {
	return s.transitionAd(ctx, "resume ad", sqlResumeAd, adID)
}

const sqlDeactivateAd = `
UPDATE ads
SET status = 'inactive', updated_at = NOW()
WHERE id = $1 AND deleted_at IS NULL
RETURNING ` + adColumns

// DeactivateAd sets an ad inactive regardless of its current state
func (s *Store) DeactivateAd(ctx context.Context, adID uuid.UUID) (Ad, error) {
	ad, err := s.transitionAd(ctx, "deactivate ad", sqlDeactivateAd, adID)
	if errors.Is(err, ErrConditionNotMet) {
		return Ad{}, ErrNotFound
	}
	return ad, err
}

const sqlApproveAd = `
UPDATE ads
SET approval_status = 'approved', rejection_reason = NULL, updated_at = NOW()
WHERE id = $1 AND approval_status = 'pending' AND deleted_at IS NULL
RETURNING ` + adColumns

// ApproveAd moves a pending ad to approved
func (s *Store) ApproveAd(ctx context.Context, adID uuid.UUID) (Ad, error) {
	return s.transitionAd(ctx, "approve ad", sqlApproveAd, adID)
}

const sqlRejectAd = `
UPDATE ads
SET approval_status = 'rejected', status = 'inactive', rejection_reason = $2, updated_at = NOW()
WHERE id = $1 AND approval_status = 'pending' AND deleted_at IS NULL
RETURNING ` + adColumns

// RejectAd moves a pending ad to rejected and records why
func (s *Store) RejectAd(ctx context.Context, adID uuid.UUID, reason string) (Ad, error) {
	return s.transitionAd(ctx, "reject ad", sqlRejectAd, adID, reason)
}

func (s *Store) transitionAd(ctx context.Context, op, query string, adID uuid.UUID, args ...interface{}) (Ad, error) {
	var ad Ad
	err := s.conn(ctx).GetContext(ctx, &ad, query, append([]interface{}{adID}, args...)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Ad{}, ErrConditionNotMet
		}
		s.logger.Error(ctx, "failed to "+op, err)
		return Ad{}, fmt.Errorf("failed to %s: %w", op, err)
	}
	return ad, nil
}

const sqlResetStaleDailySpend = `
UPDATE ads
SET current_day_spent = 0, last_spend_reset_date = $1::date, updated_at = NOW()
WHERE deleted_at IS NULL
  AND current_day_spent > 0
  AND (last_spend_reset_date IS NULL OR last_spend_reset_date < $1::date)
`

// ResetStaleDailySpend zeroes daily spend on every ad whose counter belongs
// to an earlier day. Rows already touched today are left alone, so this is
// safe to run next to the lazy reset in ReserveAdCapacity.
func (s *Store) ResetStaleDailySpend(ctx context.Context, today time.Time) (int64, error) {
	res, err := s.conn(ctx).ExecContext(ctx, sqlResetStaleDailySpend, today)
	if err != nil {
		s.logger.Error(ctx, "failed to reset stale daily spend", err)
		return 0, fmt.Errorf("failed to reset stale daily spend: %w", err)
	}
	return res.RowsAffected()
}

const sqlDeactivateEndedAds = `
UPDATE ads
SET status = 'inactive', updated_at = NOW()
WHERE status = 'active' AND deleted_at IS NULL AND end_date IS NOT NULL AND end_date < $1::date
`

// DeactivateEndedAds stops every active ad whose schedule ended before today
func (s *Store) DeactivateEndedAds(ctx context.Context, today time.Time) (int64, error) {
	res, err := s.conn(ctx).ExecContext(ctx, sqlDeactivateEndedAds, today)
	if err != nil {
		s.logger.Error(ctx, "failed to deactivate ended ads", err)
		return 0, fmt.Errorf("failed to deactivate ended ads: %w", err)
	}
	return res.RowsAffected()
}
