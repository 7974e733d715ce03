package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/shared/middleware"
	"catalog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/health", healthCheckHandler(c))

	setupAuthRoutes(router, c)
	setupAccountRoutes(router, c)
	setupAuthorRoutes(router, c)
	setupBookRoutes(router, c)

	return router
}

// requireAuth builds the bearer-token gate shared by all protected
// route groups.
func requireAuth(c *container.Container) gin.HandlerFunc {
	return middleware.AuthMiddleware(c.JWTManager, c.AccountRepo)
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(router *gin.Engine, c *container.Container) {
	auth := router.Group("/auth")
	{
		auth.POST("/token", c.AccountHandler.Login)
		auth.POST("/refresh/token", c.AccountHandler.RefreshToken)
	}
}

// ========================================
// ACCOUNT ROUTES
// ========================================
func setupAccountRoutes(router *gin.Engine, c *container.Container) {
	accounts := router.Group("/accounts")
	{
		// Self-registration is the only unauthenticated account operation.
		accounts.POST("/", c.AccountHandler.Create)

		protected := accounts.Group("")
		protected.Use(requireAuth(c))
		{
			protected.GET("/", c.AccountHandler.List)
			protected.GET("/:id", c.AccountHandler.GetByID)
			protected.PUT("/:id", c.AccountHandler.Update)
			protected.DELETE("/:id", c.AccountHandler.Delete)
		}
	}
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(router *gin.Engine, c *container.Container) {
	authors := router.Group("/authors")
	authors.Use(requireAuth(c))
	{
		authors.POST("/", c.AuthorHandler.Create)
		authors.GET("/", c.AuthorHandler.List)
		authors.GET("/:id", c.AuthorHandler.GetByID)
		authors.PATCH("/:id", c.AuthorHandler.Update)
		authors.DELETE("/:id", c.AuthorHandler.Delete)
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(router *gin.Engine, c *container.Container) {
	books := router.Group("/books")
	books.Use(requireAuth(c))
	{
		books.POST("/", c.BookHandler.Create)
		books.GET("/", c.BookHandler.List)
		books.GET("/:id", c.BookHandler.GetByID)
		books.PATCH("/:id", c.BookHandler.Update)
		books.DELETE("/:id", c.BookHandler.Delete)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": c.Config.App.Version,
		})
	}
}
