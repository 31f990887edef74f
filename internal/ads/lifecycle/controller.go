// Package lifecycle owns an ad's status flags: approval, activation,
// auto-pause and resume. Transitions are compare-and-set updates so a
// concurrent transition on the same ad can never be lost.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ads-billing/internal/ads/budget"
	"ads-billing/internal/biztime"
	"ads-billing/internal/observability"
	"ads-billing/internal/store"

	"github.com/google/uuid"
)

var (
	ErrAdNotFound         = errors.New("ad not found")
	ErrNotApproved        = errors.New("ad is not approved")
	ErrNotPaused          = errors.New("ad is not auto-paused")
	ErrInvalidTransition  = errors.New("invalid ad transition")
	ErrStorageUnavailable = errors.New("ad storage unavailable")
)

const (
	PauseReasonBudgetExhausted   = "budget_exhausted"
	PauseReasonInsufficientFunds = "insufficient_funds"
	PauseReasonQuotaExhausted    = "quota_exhausted"
)

const (
	msgActivated        = "Ad activated successfully"
	msgAlreadyActive    = "Ad is already active"
	msgResumed          = "Ad resumed successfully"
	msgInsufficientFund = "Insufficient wallet balance"
	msgBudgetExhausted  = "Ad budget is exhausted"
	msgNotStarted       = "Ad schedule has not started yet"
	msgEnded            = "Ad schedule has ended"
)

// Result is the answer to a seller action. A false Success carries the
// reason in Message and leaves the ad unchanged.
type Result struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Ad      store.Ad `json:"ad"`
}

type Controller struct {
	store   LifecycleStore
	wallet  BalanceReader
	clock   biztime.Clock
	metrics *observability.Metrics
	logger  *observability.Logger
}

func New(store LifecycleStore, wallet BalanceReader, clock biztime.Clock, metrics *observability.Metrics, logger *observability.Logger) *Controller {
	return &Controller{
		store:   store,
		wallet:  wallet,
		clock:   clock,
		metrics: metrics,
		logger:  logger,
	}
}

// GetAd loads an ad for a caller that needs its current state.
func (c *Controller) GetAd(ctx context.Context, adID uuid.UUID) (store.Ad, error) {
	ad, err := c.store.GetAdByID(ctx, adID)
	if err != nil {
		return store.Ad{}, mapStoreError(err)
	}
	return ad, nil
}

// Approve moves a pending ad to approved.
func (c *Controller) Approve(ctx context.Context, adID uuid.UUID) (store.Ad, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "ad_id", Value: adID.String()})

	ad, err := c.store.ApproveAd(ctx, adID)
	if err != nil {
		return store.Ad{}, c.transitionError(ctx, adID, err)
	}
	c.logger.Info(ctx, "ad approved")
	return ad, nil
}

// Reject moves a pending ad to rejected, keeps it inactive and records the
// reason.
func (c *Controller) Reject(ctx context.Context, adID uuid.UUID, reason string) (store.Ad, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "ad_id", Value: adID.String()})

	ad, err := c.store.RejectAd(ctx, adID, reason)
	if err != nil {
		return store.Ad{}, c.transitionError(ctx, adID, err)
	}
	c.logger.Info(ctx, "ad rejected")
	return ad, nil
}

// Activate starts an approved ad once the seller's wallet covers at least
// one billable unit.
func (c *Controller) Activate(ctx context.Context, adID uuid.UUID) (Result, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "ad_id", Value: adID.String()})

	ad, err := c.GetAd(ctx, adID)
	if err != nil {
		return Result{}, err
	}
	if ad.ApprovalStatus != store.ApprovalStatusApproved {
		return Result{}, ErrNotApproved
	}
	if ad.Status == store.AdStatusActive {
		return Result{Success: true, Message: msgAlreadyActive, Ad: ad}, nil
	}

	if res, ok, err := c.checkStartable(ctx, ad); err != nil || !ok {
		return res, err
	}

	activated, err := c.store.ActivateAd(ctx, adID)
	if err != nil {
		return Result{}, c.transitionError(ctx, adID, err)
	}
	c.logger.Info(ctx, "ad activated")
	return Result{Success: true, Message: msgActivated, Ad: activated}, nil
}

// Deactivate stops an ad at the seller's request regardless of its state.
func (c *Controller) Deactivate(ctx context.Context, adID uuid.UUID) (store.Ad, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "ad_id", Value: adID.String()})

	ad, err := c.store.DeactivateAd(ctx, adID)
	if err != nil {
		return store.Ad{}, mapStoreError(err)
	}
	c.logger.Info(ctx, "ad deactivated")
	return ad, nil
}

// AutoPause takes an active ad offline after a billing attempt found it out
// of budget or funds. It reports whether this call did the pausing; pausing
// an ad that is already paused or inactive is a no-op.
func (c *Controller) AutoPause(ctx context.Context, adID uuid.UUID, reason string) (bool, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "ad_id", Value: adID.String()},
		observability.Field{Key: "pause_reason", Value: reason},
	)

	_, err := c.store.PauseAd(ctx, adID, reason)
	if errors.Is(err, store.ErrConditionNotMet) {
		return false, nil
	}
	if err != nil {
		c.logger.Error(ctx, "failed to auto-pause ad", err)
		return false, errors.Join(ErrStorageUnavailable, err)
	}

	c.metrics.IncAutoPause(reason)
	c.logger.Warn(ctx, "ad auto-paused")
	return true, nil
}

// Resume brings an auto-paused ad back after re-running the activation
// checks. On failure the ad stays paused and the reason is returned.
func (c *Controller) Resume(ctx context.Context, adID uuid.UUID) (Result, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "ad_id", Value: adID.String()})

	ad, err := c.GetAd(ctx, adID)
	if err != nil {
		return Result{}, err
	}
	if !ad.AutoPaused {
		return Result{}, ErrNotPaused
	}
	if ad.ApprovalStatus != store.ApprovalStatusApproved {
		return Result{}, ErrNotApproved
	}

	if res, ok, err := c.checkStartable(ctx, ad); err != nil || !ok {
		return res, err
	}

	resumed, err := c.store.ResumeAd(ctx, adID)
	if err != nil {
		return Result{}, c.transitionError(ctx, adID, err)
	}
	c.logger.Info(ctx, "ad resumed")
	return Result{Success: true, Message: msgResumed, Ad: resumed}, nil
}

// checkStartable runs the shared activate/resume gate: schedule, remaining
// budget and wallet affordability.
func (c *Controller) checkStartable(ctx context.Context, ad store.Ad) (Result, bool, error) {
	today := c.clock.Today()

	if msg, ok := scheduleMessage(ad, today); !ok {
		return Result{Message: msg, Ad: ad}, false, nil
	}
	if budget.IsExhausted(ad, today) {
		return Result{Message: msgBudgetExhausted, Ad: ad}, false, nil
	}

	balance, err := c.wallet.GetBalance(ctx, ad.SellerID)
	if err != nil {
		c.logger.Error(ctx, "failed to read wallet balance", err)
		return Result{}, false, errors.Join(ErrStorageUnavailable, err)
	}
	if need := ad.UnitRate(); balance.LessThan(need) {
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "balance", Value: balance.String()},
			observability.Field{Key: "required", Value: need.String()},
		)
		c.logger.Info(ctx, "ad start rejected for insufficient balance")
		return Result{
			Message: fmt.Sprintf("%s: at least %s is required", msgInsufficientFund, need.StringFixed(2)),
			Ad:      ad,
		}, false, nil
	}
	return Result{}, true, nil
}

// InSchedule reports whether today falls within the ad's start and end
// dates. Missing dates leave that side open.
func InSchedule(ad store.Ad, today time.Time) bool {
	_, ok := scheduleMessage(ad, today)
	return ok
}

func scheduleMessage(ad store.Ad, today time.Time) (string, bool) {
	if ad.StartDate != nil && today.Before(biztime.DateOf(*ad.StartDate, time.UTC)) {
		return msgNotStarted, false
	}
	if ad.EndDate != nil && today.After(biztime.DateOf(*ad.EndDate, time.UTC)) {
		return msgEnded, false
	}
	return "", true
}

// transitionError tells a lost compare-and-set apart from a missing ad.
func (c *Controller) transitionError(ctx context.Context, adID uuid.UUID, err error) error {
	if !errors.Is(err, store.ErrConditionNotMet) {
		c.logger.Error(ctx, "failed to transition ad", err)
		return mapStoreError(err)
	}
	if _, getErr := c.store.GetAdByID(ctx, adID); getErr != nil {
		return mapStoreError(getErr)
	}
	return ErrInvalidTransition
}

func mapStoreError(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrAdNotFound
	}
	return errors.Join(ErrStorageUnavailable, err)
}
