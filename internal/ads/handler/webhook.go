package handler

import (
	"io"
	"net/http"

	"ads-billing/internal/apierrors"

	"github.com/gin-gonic/gin"
)

const maxWebhookBody = 65536

func (h *Handler) HandleStripeWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		h.logger.Error(ctx, "failed to read request body", err)
		apierrors.BadRequest(c, "INVALID_INPUT", "invalid request")
		return
	}

	signatureHeader := c.GetHeader("Stripe-Signature")
	if signatureHeader == "" {
		apierrors.BadRequest(c, "INVALID_SIGNATURE", "missing Stripe-Signature header")
		return
	}

	event, err := h.topups.ConstructEvent(payload, signatureHeader)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	if err := h.topups.HandleWebhook(ctx, event); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success"})
}
