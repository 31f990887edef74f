package api

import (
	"context"
	"net/http"
	"time"

	adsHandler "ads-billing/internal/ads/handler"
	"ads-billing/internal/auth"
	"ads-billing/internal/idempotency"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type API struct {
	router      *gin.RouterGroup
	adsHandler  adsHandler.Handler
	verifier    *auth.Verifier
	idempotency *idempotency.Service
	db          Pinger
	metrics     http.Handler
}

func New(
	router *gin.RouterGroup,
	adsHandler adsHandler.Handler,
	verifier *auth.Verifier,
	idempotency *idempotency.Service,
	db Pinger,
	metrics http.Handler,
) API {
	return API{
		router:      router,
		adsHandler:  adsHandler,
		verifier:    verifier,
		idempotency: idempotency,
		db:          db,
		metrics:     metrics,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	a.router.GET("/metrics", gin.WrapH(a.metrics))

	apiGroup := a.router.Group("/api")

	// Called by the storefront for every render and click; unauthenticated.
	meteringGroup := apiGroup.Group("/metering")
	{
		meteringGroup.POST("/impressions", a.idempotency.Middleware(), a.adsHandler.HandleRecordImpression)
		meteringGroup.POST("/clicks", a.idempotency.Middleware(), a.adsHandler.HandleRecordClick)
		meteringGroup.GET("/ads/:ad_id/eligibility", a.adsHandler.HandleGetEligibility)
	}

	sellerGroup := apiGroup.Group("/seller", auth.Middleware(a.verifier), auth.RequireRole(auth.RoleSeller))
	{
		sellerGroup.GET("/wallet", a.adsHandler.HandleGetWallet)
		sellerGroup.POST("/wallet/topups", a.adsHandler.HandleCreateTopUp)
		sellerGroup.GET("/ads/:ad_id", a.adsHandler.HandleGetAd)
		sellerGroup.POST("/ads/:ad_id/activate", a.adsHandler.HandleActivateAd)
		sellerGroup.POST("/ads/:ad_id/deactivate", a.adsHandler.HandleDeactivateAd)
		sellerGroup.POST("/ads/:ad_id/resume", a.adsHandler.HandleResumeAd)
	}

	adminGroup := apiGroup.Group("/admin", auth.Middleware(a.verifier), auth.RequireRole(auth.RoleAdmin))
	{
		adminGroup.POST("/ads/:ad_id/approve", a.adsHandler.HandleApproveAd)
		adminGroup.POST("/ads/:ad_id/reject", a.adsHandler.HandleRejectAd)
		adminGroup.POST("/wallets/:seller_id/credits", a.idempotency.Middleware(), a.adsHandler.HandleCreditWallet)
	}

	apiGroup.POST("/billing/stripe/webhook", a.adsHandler.HandleStripeWebhook)
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := a.db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "database unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
