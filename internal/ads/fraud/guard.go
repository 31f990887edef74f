// Package fraud suppresses repeated or abusive metering events before they
// reach billing. Checks are best effort: a slow or failing history store
// admits the event rather than holding up the caller.
package fraud

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"ads-billing/internal/biztime"
	"ads-billing/internal/config"
	"ads-billing/internal/observability"
	"ads-billing/internal/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

const (
	RuleDuplicateClick      = "duplicate_click"
	RuleClickVelocity       = "click_velocity"
	RuleDailyUniqueAds      = "daily_unique_ads"
	RuleDuplicateImpression = "duplicate_impression"
)

// Verdict is the guard's answer for one event. A rejected verdict names the
// rule that fired. Degraded is set when the history store could not be
// consulted and the event was admitted anyway.
type Verdict struct {
	Admit    bool
	Rule     string
	Degraded bool

	undo []func(ctx context.Context) error
}

func admitted() Verdict {
	return Verdict{Admit: true}
}

func rejected(rule string) Verdict {
	return Verdict{Rule: rule}
}

type Guard struct {
	cfg     config.FraudConfig
	window  Window
	clock   biztime.Clock
	metrics *observability.Metrics
	logger  *observability.Logger
}

func New(cfg config.FraudConfig, window Window, clock biztime.Clock, metrics *observability.Metrics, logger *observability.Logger) *Guard {
	return &Guard{
		cfg:     cfg,
		window:  window,
		clock:   clock,
		metrics: metrics,
		logger:  logger,
	}
}

// Enabled reports whether events are checked at all.
func (g *Guard) Enabled() bool {
	return g.cfg.Enabled
}

// Admit decides whether an event may proceed to billing. It never touches
// wallets or ad counters.
func (g *Guard) Admit(ctx context.Context, adID uuid.UUID, source string, eventType store.EventType) Verdict {
	if !g.cfg.Enabled {
		return admitted()
	}

	if g.cfg.CheckTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.CheckTimeout)
		defer cancel()
	}

	src := hashSource(source)
	var (
		verdict Verdict
		err     error
	)
	if eventType == store.EventTypeClick {
		verdict, err = g.admitClick(ctx, adID, src)
	} else {
		verdict, err = g.admitImpression(ctx, adID, src)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "ad_id", Value: adID.String()},
		observability.Field{Key: "event_type", Value: string(eventType)},
		observability.Field{Key: "source_hash", Value: src},
	)
	if err != nil {
		g.logger.WarnWithError(ctx, "fraud check unavailable, admitting event", err)
		g.rollback(context.WithoutCancel(ctx), verdict.undo)
		return Verdict{Admit: true, Degraded: true}
	}
	if !verdict.Admit {
		g.metrics.IncFraudRejection(verdict.Rule)
		g.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "rule", Value: verdict.Rule}), "event rejected by fraud guard")
	}
	return verdict
}

// Release forgets the history an admitted event left behind. The gateway
// calls it when the event ended up unbilled so the source is not held to a
// cooldown for a charge that never happened.
func (g *Guard) Release(ctx context.Context, v Verdict) {
	if !v.Admit || len(v.undo) == 0 {
		return
	}
	ctx = context.WithoutCancel(ctx)
	if g.cfg.CheckTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.CheckTimeout)
		defer cancel()
	}
	g.rollback(ctx, v.undo)
}

func (g *Guard) admitClick(ctx context.Context, adID uuid.UUID, src string) (Verdict, error) {
	verdict := admitted()

	if g.cfg.ClickCooldown > 0 {
		dupKey := fmt.Sprintf("fraud:click:dup:%s:%s", adID, src)
		claimed, err := g.window.Claim(ctx, dupKey, g.cfg.ClickCooldown)
		if err != nil {
			return verdict, err
		}
		if !claimed {
			return rejected(RuleDuplicateClick), nil
		}
		verdict.undo = append(verdict.undo, func(ctx context.Context) error {
			return g.window.Unclaim(ctx, dupKey)
		})
	}

	if g.cfg.ClickVelocityLimit > 0 {
		rateKey := fmt.Sprintf("fraud:click:rate:%s:%s", adID, src)
		member := uuid.NewString()
		count, err := g.window.Hit(ctx, rateKey, member, g.clock.Now(), g.cfg.ClickVelocityWindow)
		if err != nil {
			return verdict, err
		}
		verdict.undo = append(verdict.undo, func(ctx context.Context) error {
			return g.window.Unhit(ctx, rateKey, member)
		})
		if count > int64(g.cfg.ClickVelocityLimit) {
			g.rollback(ctx, verdict.undo)
			return rejected(RuleClickVelocity), nil
		}
	}

	if g.cfg.DailyUniqueAdsLimit > 0 {
		setKey := fmt.Sprintf("fraud:source:ads:%s:%s", biztime.Format(g.clock.Today()), src)
		added, size, err := g.window.AddDistinct(ctx, setKey, adID.String(), 48*time.Hour)
		if err != nil {
			return verdict, err
		}
		if added {
			verdict.undo = append(verdict.undo, func(ctx context.Context) error {
				return g.window.RemoveDistinct(ctx, setKey, adID.String())
			})
		}
		if size > int64(g.cfg.DailyUniqueAdsLimit) {
			g.rollback(ctx, verdict.undo)
			return rejected(RuleDailyUniqueAds), nil
		}
	}

	return verdict, nil
}

func (g *Guard) admitImpression(ctx context.Context, adID uuid.UUID, src string) (Verdict, error) {
	if g.cfg.ImpressionCooldown <= 0 {
		return admitted(), nil
	}

	dupKey := fmt.Sprintf("fraud:impression:dup:%s:%s", adID, src)
	claimed, err := g.window.Claim(ctx, dupKey, g.cfg.ImpressionCooldown)
	if err != nil {
		return admitted(), err
	}
	if !claimed {
		return rejected(RuleDuplicateImpression), nil
	}

	verdict := admitted()
	verdict.undo = append(verdict.undo, func(ctx context.Context) error {
		return g.window.Unclaim(ctx, dupKey)
	})
	return verdict, nil
}

// rollback runs undo steps newest first.
func (g *Guard) rollback(ctx context.Context, undo []func(ctx context.Context) error) {
	var errs []error
	for i := len(undo) - 1; i >= 0; i-- {
		if err := undo[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		g.logger.WarnWithError(ctx, "failed to release fraud history", errors.Join(errs...))
	}
}

// hashSource keeps raw client addresses out of the history store.
func hashSource(source string) string {
	sum := blake2b.Sum256([]byte(source))
	return hex.EncodeToString(sum[:16])
}
