package router

import (
	"go-admin-console/internal/handler"
	"go-admin-console/internal/middleware"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type RouteConfig struct {
	App              *gin.Engine
	AuthHandler      handler.AuthHandler
	ResourceHandler  handler.ResourceHandler
	ActionHandler    handler.ActionHandler
	AuditHandler     handler.AuditHandler
	AuthMiddleware   *middleware.AuthMiddleware
	LoggerMiddleware gin.HandlerFunc
}

func (c *RouteConfig) SetupRoute() {
	c.App.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "admin-console-api",
		})
	})

	c.App.Use(c.LoggerMiddleware)

	v1 := c.App.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", c.AuthHandler.Login)
			auth.POST("/logout", c.AuthHandler.Logout)
		}

		protected := v1.Group("")
		protected.Use(c.AuthMiddleware.SessionAuth())
		{
			resources := protected.Group("/resources")
			{
				resources.GET("/:resource", c.ResourceHandler.List)
				resources.GET("/:resource/export", c.ResourceHandler.Export)
				resources.GET("/:resource/records/:id", c.ResourceHandler.Detail)
			}

			actions := protected.Group("/actions")
			{
				actions.PATCH("/kyc/:id", c.ActionHandler.KycDecision)
				actions.POST("/wallets/adjust", c.ActionHandler.WalletAdjust)
				actions.POST("/notifications", c.ActionHandler.NotificationSend)
			}

			protected.GET("/audit", c.AuditHandler.List)
		}
	}
}
