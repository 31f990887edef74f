package handler

import (
	"net/http"

	"ads-billing/internal/ads/wallet"
	"ads-billing/internal/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type RejectAdRequest struct {
	Reason string `json:"reason" binding:"required,max=1000"`
}

type CreditWalletRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Reference   string          `json:"reference" binding:"required,max=255"`
	Description string          `json:"description" binding:"max=255"`
}

func (h *Handler) HandleApproveAd(c *gin.Context) {
	adID, ok := adIDParam(c)
	if !ok {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid ad ID")
		return
	}

	ad, err := h.lifecycle.Approve(c.Request.Context(), adID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ad)
}

func (h *Handler) HandleRejectAd(c *gin.Context) {
	adID, ok := adIDParam(c)
	if !ok {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid ad ID")
		return
	}

	var req RejectAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	ad, err := h.lifecycle.Reject(c.Request.Context(), adID, req.Reason)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, ad)
}

// HandleCreditWallet applies a manual credit. The reference makes retries
// safe; a repeated reference answers 409.
func (h *Handler) HandleCreditWallet(c *gin.Context) {
	sellerID, ok := sellerIDParam(c)
	if !ok {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid seller ID")
		return
	}

	var req CreditWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	description := req.Description
	if description == "" {
		description = "Manual wallet credit"
	}
	reference := req.Reference

	balance, err := h.wallet.Credit(c.Request.Context(), wallet.CreditRequest{
		SellerID:    sellerID,
		Amount:      req.Amount,
		Description: description,
		Reference:   &reference,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"seller_id": sellerID, "balance": balance})
}
