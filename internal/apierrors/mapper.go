package apierrors

import (
	"errors"

	"ads-billing/internal/ads/lifecycle"
	"ads-billing/internal/ads/metering"
	"ads-billing/internal/ads/topup"
	"ads-billing/internal/ads/wallet"

	"github.com/gin-gonic/gin"
)

// RespondWithError maps a domain error to its HTTP response. Unknown errors
// become a sanitized 500.
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, lifecycle.ErrAdNotFound):
		NotFound(c, "Ad not found")

	case errors.Is(err, lifecycle.ErrNotApproved):
		Conflict(c, "AD_NOT_APPROVED", "Ad must be approved first")
	case errors.Is(err, lifecycle.ErrNotPaused):
		Conflict(c, "AD_NOT_PAUSED", "Only auto-paused ads can be resumed")
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		Conflict(c, "INVALID_TRANSITION", "Ad cannot move to the requested status")
	case errors.Is(err, wallet.ErrDuplicateCredit):
		Conflict(c, "DUPLICATE_CREDIT", "Credit has already been applied")

	case errors.Is(err, wallet.ErrInvalidAmount), errors.Is(err, topup.ErrInvalidAmount):
		BadRequest(c, "INVALID_AMOUNT", "Amount must be positive")
	case errors.Is(err, topup.ErrInvalidSignature):
		BadRequest(c, "INVALID_SIGNATURE", "Invalid webhook signature")
	case errors.Is(err, topup.ErrMalformedEvent):
		BadRequest(c, "MALFORMED_EVENT", "Malformed webhook event")

	case errors.Is(err, lifecycle.ErrStorageUnavailable),
		errors.Is(err, wallet.ErrLedgerFailed),
		errors.Is(err, metering.ErrEligibilityUnavailable):
		ServiceUnavailable(c, "STORAGE_UNAVAILABLE", "Billing storage is unavailable. Please try again later.", err)
	case errors.Is(err, topup.ErrFailedToCreatePaymentIntent):
		ServiceUnavailable(c, "PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider is unavailable. Please try again later.", err)

	default:
		InternalError(c, err)
	}
}
