package workers

import (
	"context"
	"fmt"

	"ads-billing/internal/biztime"
	"ads-billing/internal/observability"

	"github.com/hibiken/asynq"
)

// SweepWorker runs the once-a-day housekeeping over the ads table.
type SweepWorker struct {
	store  SweepStore
	clock  biztime.Clock
	logger *observability.Logger
}

func NewSweepWorker(store SweepStore, clock biztime.Clock, logger *observability.Logger) *SweepWorker {
	return &SweepWorker{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// ProcessDailyResetTask zeroes yesterday's spend counters ahead of the lazy
// reset done on the first billed event of the day.
func (w *SweepWorker) ProcessDailyResetTask(ctx context.Context, _ *asynq.Task) error {
	today := w.clock.Today()
	ctx = observability.WithFields(ctx, observability.Field{Key: "business_date", Value: biztime.Format(today)})

	n, err := w.store.ResetStaleDailySpend(ctx, today)
	if err != nil {
		w.logger.Error(ctx, "daily spend reset failed", err)
		return fmt.Errorf("daily spend reset failed: %w", err)
	}

	w.logger.Info(ctx, fmt.Sprintf("reset daily spend on %d ads", n))
	return nil
}

// ProcessExpireSchedulesTask deactivates active ads whose end date passed.
func (w *SweepWorker) ProcessExpireSchedulesTask(ctx context.Context, _ *asynq.Task) error {
	today := w.clock.Today()
	ctx = observability.WithFields(ctx, observability.Field{Key: "business_date", Value: biztime.Format(today)})

	n, err := w.store.DeactivateEndedAds(ctx, today)
	if err != nil {
		w.logger.Error(ctx, "schedule expiry sweep failed", err)
		return fmt.Errorf("schedule expiry sweep failed: %w", err)
	}

	w.logger.Info(ctx, fmt.Sprintf("deactivated %d ads past their end date", n))
	return nil
}
