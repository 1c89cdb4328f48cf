package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/mintbay/nft-marketplace/internal/api/middleware"
)

// SetupRoutes configures all REST API routes. Mutating routes sit behind the
// auth middleware, mirroring the signed-transaction boundary; reads are open.
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	auth := middleware.Auth(authCfg)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Token registry endpoints
		v1.POST("/tokens", auth, handler.MintToken)
		v1.GET("/tokens/:id", handler.GetToken)
		v1.GET("/tokens", handler.ListTokensByOwner)
		v1.POST("/tokens/:id/transfer", auth, handler.TransferToken)
		v1.GET("/accounts/:address/balance", handler.GetBalance)
		v1.GET("/registry/supply", handler.GetSupply)

		// Operator approval endpoints
		v1.POST("/approvals", auth, handler.SetApproval)
		v1.GET("/approvals", handler.GetApproval)

		// Listing endpoints
		v1.POST("/listings", auth, handler.CreateListing)
		v1.GET("/listings", handler.ListListings)
		v1.GET("/listings/:id", handler.GetListing)
		v1.POST("/listings/:id/buy", auth, handler.BuyListing)
		v1.POST("/listings/:id/cancel", auth, handler.CancelListing)

		// Marketplace state endpoints; the admin address check happens in the
		// marketplace service on top of the auth middleware
		v1.GET("/marketplace/state", handler.GetState)
		v1.PUT("/marketplace/fee", auth, handler.UpdateFee)
		v1.POST("/marketplace/fees/withdraw", auth, handler.WithdrawFees)

		// Seller proceeds endpoints
		v1.GET("/proceeds/:address", handler.GetProceeds)
		v1.POST("/proceeds/:address/withdraw", auth, handler.WithdrawProceeds)
	}
}
