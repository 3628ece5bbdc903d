package main

import (
	"fastqr.backend/internal/interfaces/http/handlers"
	"fastqr.backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

type routeDeps struct {
	authHandler        *handlers.AuthHandler
	walletHandler      *handlers.WalletHandler
	transactionHandler *handlers.TransactionHandler
	authMiddleware     gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		v1.POST("/register", d.authHandler.Register)
		v1.POST("/login", d.authHandler.Login)
		v1.POST("/logout", d.authHandler.Logout)
		v1.POST("/verify-account", d.authHandler.VerifyAccount)
		v1.POST("/resend-verification", d.authHandler.ResendVerification)
		v1.POST("/reset-password", d.authHandler.ResetPassword)
		v1.POST("/update-password", d.authHandler.UpdatePassword)

		// Wallet routes (protected, owner only)
		wallet := v1.Group("/wallet/:userId")
		wallet.Use(d.authMiddleware, middleware.RequireOwner())
		{
			wallet.POST("", d.walletHandler.CreatePin)
			wallet.PATCH("", d.walletHandler.UpdatePin)
			wallet.GET("", d.walletHandler.GetWallet)
		}

		// Transaction routes (protected, owner only)
		transactions := v1.Group("/transactions/:userId")
		transactions.Use(d.authMiddleware, middleware.RequireOwner())
		{
			transactions.GET("", d.transactionHandler.ListTransactions)
			transactions.POST("/generate", d.transactionHandler.GeneratePaymentRequest)
			transactions.POST("/process", middleware.IdempotencyMiddleware(), d.transactionHandler.ProcessPayment)
			transactions.GET("/:transactionId", d.transactionHandler.GetTransaction)
		}
	}
}
