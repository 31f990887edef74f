// Package topup funds seller wallets through Stripe. A top-up is a
// PaymentIntent tagged with the seller; the wallet is credited once, when
// Stripe reports the intent succeeded.
package topup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ads-billing/internal/ads/wallet"
	"ads-billing/internal/observability"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
	"github.com/stripe/stripe-go/v79/webhook"
)

var (
	ErrInvalidAmount               = errors.New("top-up amount must be positive")
	ErrInvalidSignature            = errors.New("invalid webhook signature")
	ErrFailedToCreatePaymentIntent = errors.New("failed to create payment intent")
	ErrMalformedEvent              = errors.New("malformed webhook event")
)

const (
	purposeWalletTopUp = "wallet_topup"
	metaPurpose        = "purpose"
	metaSellerID       = "seller_id"
)

// TopUp is what the seller's browser needs to confirm the payment.
type TopUp struct {
	PaymentIntentID string          `json:"payment_intent_id"`
	ClientSecret    string          `json:"client_secret"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
}

type stripePaymentIntents struct{}

func (stripePaymentIntents) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	return paymentintent.New(params)
}

type Processor struct {
	webhookSecret string
	currency      string
	wallet        WalletCrediter
	intents       PaymentIntents
	logger        *observability.Logger
}

func New(secretKey, webhookSecret, currency string, wallet WalletCrediter, logger *observability.Logger) *Processor {
	stripe.Key = secretKey
	return NewWithIntents(webhookSecret, currency, wallet, stripePaymentIntents{}, logger)
}

// NewWithIntents builds a processor on a caller-supplied PaymentIntent API.
func NewWithIntents(webhookSecret, currency string, wallet WalletCrediter, intents PaymentIntents, logger *observability.Logger) *Processor {
	return &Processor{
		webhookSecret: webhookSecret,
		currency:      currency,
		wallet:        wallet,
		intents:       intents,
		logger:        logger,
	}
}

// CreateTopUp opens a PaymentIntent for amount on behalf of the seller.
func (p *Processor) CreateTopUp(ctx context.Context, sellerID uuid.UUID, amount decimal.Decimal) (TopUp, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "seller_id", Value: sellerID.String()},
		observability.Field{Key: "amount", Value: amount.String()},
	)

	minor := amount.Shift(2).Truncate(0)
	if !minor.IsPositive() {
		return TopUp{}, ErrInvalidAmount
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(minor.IntPart()),
		Currency: stripe.String(p.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata(metaPurpose, purposeWalletTopUp)
	params.AddMetadata(metaSellerID, sellerID.String())

	pi, err := p.intents.New(params)
	if err != nil {
		p.logger.Error(ctx, "failed to create payment intent", err)
		return TopUp{}, ErrFailedToCreatePaymentIntent
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "payment_intent_id", Value: pi.ID}), "top-up payment intent created")
	return TopUp{
		PaymentIntentID: pi.ID,
		ClientSecret:    pi.ClientSecret,
		Amount:          decimal.New(minor.IntPart(), -2),
		Currency:        p.currency,
	}, nil
}

// ConstructEvent verifies the Stripe-Signature header and parses the event.
func (p *Processor) ConstructEvent(payload []byte, signature string) (stripe.Event, error) {
	event, err := webhook.ConstructEvent(payload, signature, p.webhookSecret)
	if err != nil {
		return stripe.Event{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	return event, nil
}

// HandleWebhook applies one verified Stripe event. Only succeeded wallet
// top-ups move money; everything else is acknowledged and ignored. The
// PaymentIntent id is the credit reference, so redelivery is harmless.
func (p *Processor) HandleWebhook(ctx context.Context, event stripe.Event) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "stripe_event_id", Value: event.ID},
		observability.Field{Key: "stripe_event_type", Value: string(event.Type)},
	)

	if event.Type != "payment_intent.succeeded" {
		p.logger.Debug(ctx, "ignoring stripe event")
		return nil
	}

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		p.logger.Error(ctx, "failed to unmarshal payment intent", err)
		return fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if pi.Metadata[metaPurpose] != purposeWalletTopUp {
		p.logger.Debug(ctx, "payment intent is not a wallet top-up")
		return nil
	}
	return p.PaymentIntentSucceeded(ctx, pi)
}

// PaymentIntentSucceeded credits the seller named in the intent metadata.
func (p *Processor) PaymentIntentSucceeded(ctx context.Context, pi stripe.PaymentIntent) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "payment_intent_id", Value: pi.ID})

	sellerID, err := uuid.Parse(pi.Metadata[metaSellerID])
	if err != nil {
		p.logger.Error(ctx, "payment intent has no valid seller id", err)
		return fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}

	received := pi.AmountReceived
	if received == 0 {
		received = pi.Amount
	}
	reference := pi.ID

	_, err = p.wallet.Credit(ctx, wallet.CreditRequest{
		SellerID:    sellerID,
		Amount:      decimal.New(received, -2),
		Description: "Wallet top-up",
		Reference:   &reference,
	})
	if errors.Is(err, wallet.ErrDuplicateCredit) {
		p.logger.Info(ctx, "top-up already credited")
		return nil
	}
	if err != nil {
		return err
	}

	p.logger.Info(ctx, "wallet topped up")
	return nil
}
