// Package routes defines HTTP routes for the recipe service.
package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/GunarsK-portfolio/recipe-service/internal/config"
	"github.com/GunarsK-portfolio/recipe-service/internal/handlers"
	"github.com/GunarsK-portfolio/recipe-service/internal/metrics"
	"github.com/GunarsK-portfolio/recipe-service/internal/middleware"
	"github.com/GunarsK-portfolio/recipe-service/internal/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Auth    *handlers.AuthHandler
	Recipes *handlers.RecipeHandler
	Health  *handlers.HealthHandler
}

// Setup configures all HTTP routes for the application.
func Setup(router *gin.Engine, h Handlers, sessions session.Store, cfg *config.Config, metricsCollector *metrics.Metrics, metricsHandler http.Handler, logger *slog.Logger) {
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(metricsCollector.Middleware())

	// Cross-origin browsers need CORS with credentials plus origin checks
	// on state-changing requests.
	if len(cfg.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Content-Type"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
		router.Use(middleware.CSRF(middleware.CSRFConfig{AllowedOrigins: cfg.AllowedOrigins}))
	}

	router.GET("/health", h.Health.Check)
	router.GET("/metrics", gin.WrapH(metricsHandler))

	router.POST("/signup", h.Auth.Signup)
	router.POST("/login", h.Auth.Login)

	authenticated := router.Group("/")
	authenticated.Use(middleware.RequireSession(sessions))
	{
		authenticated.GET("/check_session", h.Auth.CheckSession)
		authenticated.DELETE("/logout", h.Auth.Logout)
		authenticated.GET("/recipes", h.Recipes.List)
		authenticated.POST("/recipes", h.Recipes.Create)
	}
}
