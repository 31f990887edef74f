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

// RecordAdDailySpendParams is one billed event added to the daily rollup
type RecordAdDailySpendParams struct {
	AdID      uuid.UUID
	SpendDate time.Time
	Amount    decimal.Decimal
	EventType EventType
}

const sqlRecordAdDailySpend = `
INSERT INTO ad_daily_spend (ad_id, spend_date, amount, clicks, impressions)
VALUES ($1, $2::date, $3, $4, $5)
ON CONFLICT (ad_id, spend_date) DO UPDATE
SET amount = ad_daily_spend.amount + EXCLUDED.amount,
    clicks = ad_daily_spend.clicks + EXCLUDED.clicks,
    impressions = ad_daily_spend.impressions + EXCLUDED.impressions,
    updated_at = NOW()
`

// RecordAdDailySpend upserts the per-day spend rollup for an ad
func (s *Store) RecordAdDailySpend(ctx context.Context, params RecordAdDailySpendParams) error {
	clicks, impressions := 0, 0
	if params.EventType == EventTypeClick {
		clicks = 1
	} else {
		impressions = 1
	}

	_, err := s.conn(ctx).ExecContext(ctx, sqlRecordAdDailySpend,
		params.AdID,
		params.SpendDate,
		params.Amount,
		clicks,
		impressions)
	if err != nil {
		s.logger.Error(ctx, "failed to record ad daily spend", err)
		return fmt.Errorf("failed to record ad daily spend: %w", err)
	}
	return nil
}

const sqlGetAdDailySpend = `
SELECT ad_id, spend_date, amount, clicks, impressions, updated_at
FROM ad_daily_spend
WHERE ad_id = $1 AND spend_date = $2::date
`

// GetAdDailySpend returns one day's rollup for an ad
func (s *Store) GetAdDailySpend(ctx context.Context, adID uuid.UUID, day time.Time) (AdDailySpend, error) {
	var spend AdDailySpend
	err := s.conn(ctx).GetContext(ctx, &spend, sqlGetAdDailySpend, adID, day)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AdDailySpend{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get ad daily spend", err)
		return AdDailySpend{}, fmt.Errorf("failed to get ad daily spend: %w", err)
	}
	return spend, nil
}
