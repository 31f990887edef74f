package jobs

import (
	"context"
	"fmt"
	"time"

	"ads-billing/internal/observability"
)

// Pruner drops expired entries from an in-process fraud window.
type Pruner interface {
	Prune(ctx context.Context) int
}

// FraudPruneJob keeps the in-memory fraud window from growing without bound
// when the API runs without redis.
type FraudPruneJob struct {
	window   Pruner
	logger   *observability.Logger
	interval time.Duration
}

func NewFraudPruneJob(window Pruner, logger *observability.Logger, interval time.Duration) *FraudPruneJob {
	if interval <= 0 {
		interval = time.Minute
	}
	return &FraudPruneJob{
		window:   window,
		logger:   logger,
		interval: interval,
	}
}

func (j *FraudPruneJob) Name() string {
	return "fraud_window_prune"
}

func (j *FraudPruneJob) Schedule() time.Duration {
	return j.interval
}

func (j *FraudPruneJob) Run(ctx context.Context) error {
	if n := j.window.Prune(ctx); n > 0 {
		j.logger.Debug(ctx, fmt.Sprintf("pruned %d fraud window entries", n))
	}
	return nil
}
