package handler

import (
	"net/http"
	"strconv"

	"ads-billing/internal/ads/lifecycle"
	"ads-billing/internal/apierrors"
	"ads-billing/internal/auth"
	"ads-billing/internal/observability"
	"ads-billing/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateTopUpRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *Handler) HandleGetWallet(c *gin.Context) {
	ctx := c.Request.Context()

	sellerID, ok := auth.UserID(c)
	if !ok {
		apierrors.Unauthorized(c, "unauthorized")
		return
	}

	limit := defaultStatementLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > 500 {
			apierrors.BadRequest(c, "INVALID_INPUT", "limit must be between 1 and 500")
			return
		}
		limit = n
	}

	statement, err := h.wallet.GetStatement(ctx, sellerID, limit)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, statement)
}

func (h *Handler) HandleCreateTopUp(c *gin.Context) {
	ctx := c.Request.Context()

	sellerID, ok := auth.UserID(c)
	if !ok {
		apierrors.Unauthorized(c, "unauthorized")
		return
	}

	var req CreateTopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	topUp, err := h.topups.CreateTopUp(ctx, sellerID, req.Amount)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, topUp)
}

func (h *Handler) HandleGetAd(c *gin.Context) {
	ad, ok := h.ownedAd(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ad)
}

func (h *Handler) HandleActivateAd(c *gin.Context) {
	ad, ok := h.ownedAd(c)
	if !ok {
		return
	}

	result, err := h.lifecycle.Activate(c.Request.Context(), ad.ID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	respondResult(c, result)
}

func (h *Handler) HandleResumeAd(c *gin.Context) {
	ad, ok := h.ownedAd(c)
	if !ok {
		return
	}

	result, err := h.lifecycle.Resume(c.Request.Context(), ad.ID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	respondResult(c, result)
}

func (h *Handler) HandleDeactivateAd(c *gin.Context) {
	ad, ok := h.ownedAd(c)
	if !ok {
		return
	}

	updated, err := h.lifecycle.Deactivate(c.Request.Context(), ad.ID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// respondResult sends 200 for a started ad and 422 with the reason when a
// precondition such as the wallet balance was not met.
func respondResult(c *gin.Context, result lifecycle.Result) {
	if !result.Success {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ownedAd loads the :ad_id ad and checks it belongs to the caller. Ads of
// other sellers are reported as not found.
func (h *Handler) ownedAd(c *gin.Context) (store.Ad, bool) {
	ctx := c.Request.Context()

	sellerID, ok := auth.UserID(c)
	if !ok {
		apierrors.Unauthorized(c, "unauthorized")
		return store.Ad{}, false
	}

	adID, ok := adIDParam(c)
	if !ok {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid ad ID")
		return store.Ad{}, false
	}

	ad, err := h.lifecycle.GetAd(ctx, adID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return store.Ad{}, false
	}
	if ad.SellerID != sellerID {
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "ad_id", Value: adID.String()},
			observability.Field{Key: "seller_id", Value: sellerID.String()},
		)
		h.logger.Warn(ctx, "seller requested an ad it does not own")
		apierrors.RespondWithError(c, lifecycle.ErrAdNotFound)
		return store.Ad{}, false
	}
	return ad, true
}

func sellerIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("seller_id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
