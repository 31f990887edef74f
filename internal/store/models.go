package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BillingType string

const (
	BillingTypePerClick      BillingType = "per_click"
	BillingTypePerImpression BillingType = "per_impression"
)

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

type AdStatus string

const (
	AdStatusInactive AdStatus = "inactive"
	AdStatusActive   AdStatus = "active"
)

type EventType string

const (
	EventTypeImpression EventType = "impression"
	EventTypeClick      EventType = "click"
)

type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "debit"
	TransactionTypeCredit TransactionType = "credit"
)

// Ad is the billing view of one advertising campaign.
type Ad struct {
	ID                 uuid.UUID       `db:"id" json:"id"`
	SellerID           uuid.UUID       `db:"seller_id" json:"seller_id"`
	AdTypeID           uuid.UUID       `db:"ad_type_id" json:"ad_type_id"`
	ProductID          *uuid.UUID      `db:"product_id" json:"product_id,omitempty"`
	BillingType        BillingType     `db:"billing_type" json:"billing_type"`
	PerClickRate       decimal.Decimal `db:"per_click_rate" json:"per_click_rate"`
	PerImpressionRate  decimal.Decimal `db:"per_impression_rate" json:"per_impression_rate"`
	DailyBudget        decimal.Decimal `db:"daily_budget" json:"daily_budget"`
	TotalClicks        int             `db:"total_clicks" json:"total_clicks"`
	RemainingClicks    int             `db:"remaining_clicks" json:"remaining_clicks"`
	CurrentDaySpent    decimal.Decimal `db:"current_day_spent" json:"current_day_spent"`
	LastSpendResetDate *time.Time      `db:"last_spend_reset_date" json:"last_spend_reset_date,omitempty"`
	ApprovalStatus     ApprovalStatus  `db:"approval_status" json:"approval_status"`
	Status             AdStatus        `db:"status" json:"status"`
	AutoPaused         bool            `db:"auto_paused" json:"auto_paused"`
	PauseReason        *string         `db:"pause_reason" json:"pause_reason,omitempty"`
	RejectionReason    *string         `db:"rejection_reason" json:"rejection_reason,omitempty"`
	StartDate          *time.Time      `db:"start_date" json:"start_date,omitempty"`
	EndDate            *time.Time      `db:"end_date" json:"end_date,omitempty"`
	DurationDays       int             `db:"duration_days" json:"duration_days"`
	CreatedAt          time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at" json:"updated_at"`
	DeletedAt          *time.Time      `db:"deleted_at" json:"deleted_at,omitempty"`
}

// RateFor is the price of one event of the given type. Impressions on a
// per-click ad are free whatever per_impression_rate holds.
func (a Ad) RateFor(eventType EventType) decimal.Decimal {
	if eventType == EventTypeClick {
		return a.PerClickRate
	}
	if a.BillingType == BillingTypePerClick {
		return decimal.Zero
	}
	return a.PerImpressionRate
}

// UnitRate is the price of the event the ad is billed by.
func (a Ad) UnitRate() decimal.Decimal {
	if a.BillingType == BillingTypePerClick {
		return a.PerClickRate
	}
	return a.PerImpressionRate
}

// WalletAccount is one seller's prepaid balance. PendingWithdrawals shares
// the row but is never written by billing.
type WalletAccount struct {
	SellerID           uuid.UUID       `db:"seller_id" json:"seller_id"`
	Balance            decimal.Decimal `db:"balance" json:"balance"`
	PendingWithdrawals decimal.Decimal `db:"pending_withdrawals" json:"pending_withdrawals"`
	CreatedAt          time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at" json:"updated_at"`
}

type WalletTransaction struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	SellerID     uuid.UUID       `db:"seller_id" json:"seller_id"`
	Type         TransactionType `db:"type" json:"type"`
	Amount       decimal.Decimal `db:"amount" json:"amount"`
	BalanceAfter decimal.Decimal `db:"balance_after" json:"balance_after"`
	Description  string          `db:"description" json:"description"`
	AdID         *uuid.UUID      `db:"ad_id" json:"ad_id,omitempty"`
	Reference    *string         `db:"reference" json:"reference,omitempty"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

type AdDailySpend struct {
	AdID        uuid.UUID       `db:"ad_id" json:"ad_id"`
	SpendDate   time.Time       `db:"spend_date" json:"spend_date"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Clicks      int             `db:"clicks" json:"clicks"`
	Impressions int             `db:"impressions" json:"impressions"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// MeteringEvent is one row of the append-only audit trail.
type MeteringEvent struct {
	ID               uuid.UUID       `db:"id" json:"id"`
	AdID             uuid.UUID       `db:"ad_id" json:"ad_id"`
	SellerID         *uuid.UUID      `db:"seller_id" json:"seller_id,omitempty"`
	EventType        EventType       `db:"event_type" json:"event_type"`
	SourceIdentifier string          `db:"source_identifier" json:"source_identifier"`
	Outcome          string          `db:"outcome" json:"outcome"`
	Billed           bool            `db:"billed" json:"billed"`
	Amount           decimal.Decimal `db:"amount" json:"amount"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
}
