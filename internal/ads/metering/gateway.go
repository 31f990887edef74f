// Package metering is the entry point for impressions and clicks. It runs
// each event through fraud checks, budget reservation and the wallet debit,
// auto-pauses ads that run dry and audits every call. Metering is a side
// effect of browsing: callers always get an answer and never an error.
package metering

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ads-billing/internal/ads/budget"
	"ads-billing/internal/ads/lifecycle"
	"ads-billing/internal/ads/wallet"
	"ads-billing/internal/biztime"
	"ads-billing/internal/observability"
	"ads-billing/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Outcome string

const (
	OutcomeBilled             Outcome = "billed"
	OutcomeFree               Outcome = "free"
	OutcomeNotFound           Outcome = "not_found"
	OutcomeNotActive          Outcome = "not_active"
	OutcomeFraudRejected      Outcome = "fraud_rejected"
	OutcomeBudgetExhausted    Outcome = "budget_exhausted"
	OutcomeInsufficientFunds  Outcome = "insufficient_funds"
	OutcomeStorageUnavailable Outcome = "storage_unavailable"
)

const DefaultTimeout = 250 * time.Millisecond

// Result describes what happened to one event. Only OutcomeBilled moves
// money.
type Result struct {
	Billed  bool            `json:"billed"`
	Outcome Outcome         `json:"outcome"`
	Amount  decimal.Decimal `json:"amount"`
}

// errRollback aborts the billing transaction for a business outcome that
// must leave no counter change behind.
var errRollback = errors.New("billing rolled back")

type Gateway struct {
	store     GatewayStore
	fraud     FraudGuard
	budget    BudgetAccountant
	wallet    WalletLedger
	lifecycle LifecycleController
	clock     biztime.Clock
	timeout   time.Duration
	metrics   *observability.Metrics
	logger    *observability.Logger
}

func New(
	store GatewayStore,
	fraud FraudGuard,
	budget BudgetAccountant,
	wallet WalletLedger,
	lifecycle LifecycleController,
	clock biztime.Clock,
	timeout time.Duration,
	metrics *observability.Metrics,
	logger *observability.Logger,
) *Gateway {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Gateway{
		store:     store,
		fraud:     fraud,
		budget:    budget,
		wallet:    wallet,
		lifecycle: lifecycle,
		clock:     clock,
		timeout:   timeout,
		metrics:   metrics,
		logger:    logger,
	}
}

// RecordImpression meters one render of an ad.
func (g *Gateway) RecordImpression(ctx context.Context, adID uuid.UUID, source string) Result {
	return g.Record(ctx, adID, store.EventTypeImpression, source)
}

// RecordClick meters one click-through on an ad.
func (g *Gateway) RecordClick(ctx context.Context, adID uuid.UUID, source string) Result {
	return g.Record(ctx, adID, store.EventTypeClick, source)
}

// Record meters one event. It returns within the gateway timeout even when
// storage hangs; a timed out event is reported unbilled.
func (g *Gateway) Record(ctx context.Context, adID uuid.UUID, eventType store.EventType, source string) Result {
	start := time.Now()
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "ad_id", Value: adID.String()},
		observability.Field{Key: "event_type", Value: string(eventType)},
	)

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	done := make(chan Result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				g.logger.Error(ctx, "metering panicked", fmt.Errorf("panic: %v", r))
				done <- Result{Outcome: OutcomeStorageUnavailable}
			}
		}()
		done <- g.meter(ctx, adID, eventType, source)
	}()

	var res Result
	select {
	case res = <-done:
	case <-ctx.Done():
		g.logger.WarnWithError(ctx, "metering timed out, event not billed", ctx.Err())
		res = Result{Outcome: OutcomeStorageUnavailable}
	}

	g.metrics.ObserveEvent(string(eventType), string(res.Outcome), time.Since(start).Seconds())
	return res
}

func (g *Gateway) meter(ctx context.Context, adID uuid.UUID, eventType store.EventType, source string) Result {
	event := store.CreateMeteringEventParams{
		AdID:             adID,
		EventType:        eventType,
		SourceIdentifier: source,
		Amount:           decimal.Zero,
	}

	ad, err := g.store.GetAdByID(ctx, adID)
	if errors.Is(err, store.ErrNotFound) {
		return g.finish(ctx, event, OutcomeNotFound)
	}
	if err != nil {
		return g.storageFailure(ctx, event, err)
	}
	event.SellerID = &ad.SellerID
	ctx = observability.WithFields(ctx, observability.Field{Key: "seller_id", Value: ad.SellerID.String()})

	if !budget.Billable(ad) || !lifecycle.InSchedule(ad, g.clock.Today()) {
		return g.finish(ctx, event, OutcomeNotActive)
	}

	verdict := g.fraud.Admit(ctx, adID, source, eventType)
	if !verdict.Admit {
		return g.finish(observability.WithFields(ctx, observability.Field{Key: "rule", Value: verdict.Rule}), event, OutcomeFraudRejected)
	}

	billed := false
	defer func() {
		if !billed {
			g.fraud.Release(ctx, verdict)
		}
	}()

	amount := ad.RateFor(eventType)
	if !amount.IsPositive() {
		return g.finish(ctx, event, OutcomeFree)
	}
	event.Amount = amount

	var (
		outcome     Outcome
		reservation budget.Reservation
	)
	err = g.store.WithinTx(ctx, func(ctx context.Context) error {
		res, err := g.budget.Reserve(ctx, ad, eventType)
		if err != nil {
			return err
		}
		switch res.Outcome {
		case budget.Exhausted:
			outcome = OutcomeBudgetExhausted
			return errRollback
		case budget.Inactive:
			outcome = OutcomeNotActive
			return errRollback
		}

		debit, err := g.wallet.TryDebit(ctx, wallet.DebitRequest{
			SellerID:    ad.SellerID,
			Amount:      res.Amount,
			AdID:        &ad.ID,
			Description: fmt.Sprintf("Ad %s - %s charge", ad.ID, eventType),
		})
		if err != nil {
			return err
		}
		if !debit.OK() {
			outcome = OutcomeInsufficientFunds
			return errRollback
		}

		billedEvent := event
		billedEvent.Billed = true
		billedEvent.Outcome = string(OutcomeBilled)
		if _, err := g.store.CreateMeteringEvent(ctx, billedEvent); err != nil {
			return err
		}
		outcome = OutcomeBilled
		reservation = res
		return nil
	})

	switch {
	case err == nil:
		billed = true
		return g.billed(ctx, ad, eventType, reservation)
	case errors.Is(err, errRollback):
		switch outcome {
		case OutcomeBudgetExhausted:
			g.autoPause(ctx, ad.ID, lifecycle.PauseReasonBudgetExhausted)
		case OutcomeInsufficientFunds:
			g.autoPause(ctx, ad.ID, lifecycle.PauseReasonInsufficientFunds)
		}
		event.Amount = decimal.Zero
		return g.finish(ctx, event, outcome)
	default:
		event.Amount = decimal.Zero
		return g.storageFailure(ctx, event, err)
	}
}

// billed runs the after-commit work for a charged event. The audit row was
// written inside the billing transaction.
func (g *Gateway) billed(ctx context.Context, ad store.Ad, eventType store.EventType, res budget.Reservation) Result {
	amount, _ := res.Amount.Float64()
	g.metrics.AddBilled(string(eventType), amount)

	ctx = observability.WithFields(ctx, observability.Field{Key: "amount", Value: res.Amount.String()})
	g.logger.Info(ctx, "event billed")

	// the click that took the last unit of quota pauses the ad straight away
	if ad.BillingType == store.BillingTypePerClick && eventType == store.EventTypeClick && res.Ad.RemainingClicks <= 0 {
		g.autoPause(ctx, ad.ID, lifecycle.PauseReasonQuotaExhausted)
	}

	return Result{Billed: true, Outcome: OutcomeBilled, Amount: res.Amount}
}

// autoPause outlives the caller's deadline: the charge that triggered it has
// already committed.
func (g *Gateway) autoPause(ctx context.Context, adID uuid.UUID, reason string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), g.timeout)
	defer cancel()
	if _, err := g.lifecycle.AutoPause(ctx, adID, reason); err != nil {
		g.logger.Error(ctx, "failed to auto-pause ad after billing attempt", err)
	}
}

// finish audits an unbilled event and builds its result.
func (g *Gateway) finish(ctx context.Context, event store.CreateMeteringEventParams, outcome Outcome) Result {
	event.Outcome = string(outcome)
	event.Billed = false

	ctx = observability.WithFields(ctx, observability.Field{Key: "outcome", Value: string(outcome)})
	switch outcome {
	case OutcomeFraudRejected, OutcomeBudgetExhausted, OutcomeInsufficientFunds:
		g.logger.Warn(ctx, "event not billed")
	default:
		g.logger.Debug(ctx, "event not billed")
	}

	g.audit(ctx, event)
	return Result{Outcome: outcome, Amount: decimal.Zero}
}

func (g *Gateway) storageFailure(ctx context.Context, event store.CreateMeteringEventParams, err error) Result {
	g.logger.WarnWithError(ctx, "billing storage unavailable, event not billed", err)
	event.Outcome = string(OutcomeStorageUnavailable)
	g.audit(ctx, event)
	return Result{Outcome: OutcomeStorageUnavailable, Amount: decimal.Zero}
}

func (g *Gateway) audit(ctx context.Context, event store.CreateMeteringEventParams) {
	if ctx.Err() != nil {
		return
	}
	if _, err := g.store.CreateMeteringEvent(ctx, event); err != nil {
		g.logger.Error(ctx, "failed to audit metering event", err)
	}
}
