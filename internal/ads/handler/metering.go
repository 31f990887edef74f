package handler

import (
	"net/http"

	"ads-billing/internal/apierrors"
	"ads-billing/internal/observability"
	"ads-billing/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MeteringRequest struct {
	AdID             string `json:"ad_id" binding:"required,uuid"`
	SourceIdentifier string `json:"source_identifier" binding:"max=255"`
}

type MeteringResponse struct {
	Billed bool `json:"billed"`
}

func (h *Handler) HandleRecordImpression(c *gin.Context) {
	h.handleMetering(c, store.EventTypeImpression)
}

func (h *Handler) HandleRecordClick(c *gin.Context) {
	h.handleMetering(c, store.EventTypeClick)
}

// handleMetering answers 200 for every well-formed call. The caller only
// learns whether the event was billed.
func (h *Handler) handleMetering(c *gin.Context, eventType store.EventType) {
	ctx := c.Request.Context()

	var req MeteringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}
	adID := uuid.MustParse(req.AdID)

	source := req.SourceIdentifier
	if source == "" {
		source = observability.GetRealClientIP(c)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "ad_id", Value: adID.String()},
		observability.Field{Key: "event_type", Value: string(eventType)},
	)

	var billed bool
	switch eventType {
	case store.EventTypeClick:
		billed = h.meter.RecordClick(ctx, adID, source).Billed
	default:
		billed = h.meter.RecordImpression(ctx, adID, source).Billed
	}

	c.JSON(http.StatusOK, MeteringResponse{Billed: billed})
}

func (h *Handler) HandleGetEligibility(c *gin.Context) {
	ctx := c.Request.Context()

	adID, ok := adIDParam(c)
	if !ok {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid ad ID")
		return
	}

	eligibility, err := h.meter.Eligible(ctx, adID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, eligibility)
}
