package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/solforge/fairmint/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, auth *middleware.Authenticator) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/prices/:mint", handler.GetPrice)

		// Quote lifecycle
		v1.POST("/quotes", handler.IssueQuote)
		v1.DELETE("/quotes/:quote_id", handler.CancelQuote)
		v1.POST("/burns", handler.SettleBurn)

		// Event views (public read access)
		v1.GET("/events/active", handler.GetActiveEvent)
		v1.GET("/events/:event_id", handler.GetEvent)
		v1.GET("/events/:event_id/tokens", handler.ListEventTokens)
		v1.GET("/events/:event_id/allocations", handler.ListAllocations)
		v1.GET("/events/:event_id/allocations/:wallet", handler.GetAllocation)
		v1.GET("/events/:event_id/allocations/:wallet/claimable", handler.GetClaimable)

		v1.POST("/events/:event_id/claims", handler.Claim)

		// Finalization (requires JWT or API key)
		v1.POST("/events/:event_id/finalize", middleware.Auth(auth), handler.FinalizeEvent)
	}
}
