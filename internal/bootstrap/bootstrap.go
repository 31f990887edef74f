package bootstrap

import (
	"context"
	"fmt"

	"ads-billing/internal/ads/budget"
	"ads-billing/internal/ads/fraud"
	adsHandler "ads-billing/internal/ads/handler"
	"ads-billing/internal/ads/lifecycle"
	"ads-billing/internal/ads/metering"
	"ads-billing/internal/ads/topup"
	"ads-billing/internal/ads/wallet"
	"ads-billing/internal/auth"
	"ads-billing/internal/biztime"
	redisClient "ads-billing/internal/clients/redis"
	"ads-billing/internal/config"
	"ads-billing/internal/idempotency"
	"ads-billing/internal/jobs/scheduler"
	schedulerJobs "ads-billing/internal/jobs/scheduler/jobs"
	"ads-billing/internal/observability"
	"ads-billing/internal/store"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store   store.Store
	Redis   *redisClient.Client
	Clock   biztime.Clock
	Logger  *observability.Logger
	Metrics *observability.Metrics

	// Middleware
	Verifier    *auth.Verifier
	Idempotency *idempotency.Service

	// Handlers
	AdsHandler adsHandler.Handler

	// In-process jobs
	Scheduler *scheduler.Scheduler
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger:    logger,
		Metrics:   observability.NewMetrics(),
		Scheduler: scheduler.New(logger),
	}

	var err error
	if deps.Clock, err = biztime.NewClock(cfg.Billing.Timezone); err != nil {
		return nil, fmt.Errorf("failed to load billing timezone: %w", err)
	}

	// Initialize database store
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Redis is optional: without it the fraud guard keeps its windows in
	// process and idempotency replay is off.
	deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	var window fraud.Window
	if deps.Redis.IsEnabled() {
		window = fraud.NewRedisWindow(deps.Redis)
	} else {
		memory := fraud.NewMemoryWindow(deps.Clock)
		deps.Scheduler.Register(schedulerJobs.NewFraudPruneJob(memory, logger, cfg.Fraud.MemoryPruneInterval))
		window = memory
	}

	// Billing core
	ledger := wallet.New(&deps.Store, logger)
	accountant := budget.New(&deps.Store, deps.Clock, logger)
	controller := lifecycle.New(&deps.Store, ledger, deps.Clock, deps.Metrics, logger)
	guard := fraud.New(cfg.Fraud, window, deps.Clock, deps.Metrics, logger)
	gateway := metering.New(
		&deps.Store,
		guard,
		accountant,
		ledger,
		controller,
		deps.Clock,
		cfg.Billing.Timeout,
		deps.Metrics,
		logger,
	)
	topUps := topup.New(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret, cfg.Stripe.Currency, ledger, logger)

	deps.AdsHandler = adsHandler.New(gateway, controller, ledger, topUps, logger)
	deps.Verifier = auth.NewVerifier(cfg.Auth, logger)
	deps.Idempotency = idempotency.NewService(deps.Redis, cfg.Billing.IdempotencyTTL, logger)

	if !guard.Enabled() {
		logger.Info(ctx, "fraud guard is disabled, every well-formed event is billable")
	}

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if d.Redis != nil {
		d.Redis.Close()
	}
	d.Store.Close()
}
