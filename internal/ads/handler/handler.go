// Package handler exposes the billing engine over HTTP: the metering calls
// made by the storefront, the seller wallet and ad controls, the admin
// moderation endpoints and the Stripe webhook.
package handler

import (
	"ads-billing/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultStatementLimit = 50

type Handler struct {
	meter     Meter
	lifecycle Lifecycle
	wallet    Wallet
	topups    TopUps
	logger    *observability.Logger
}

func New(meter Meter, lifecycle Lifecycle, wallet Wallet, topups TopUps, logger *observability.Logger) Handler {
	return Handler{
		meter:     meter,
		lifecycle: lifecycle,
		wallet:    wallet,
		topups:    topups,
		logger:    logger,
	}
}

// adIDParam parses the :ad_id path parameter.
func adIDParam(c *gin.Context) (uuid.UUID, bool) {
	adID, err := uuid.Parse(c.Param("ad_id"))
	if err != nil {
		return uuid.Nil, false
	}
	return adID, true
}
