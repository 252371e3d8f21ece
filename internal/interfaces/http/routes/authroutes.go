package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/TeodorSim/TransfIT/internal/interfaces/http/handlers"
	"github.com/TeodorSim/TransfIT/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler *handlers.AuthHandler
	RateLimiter *middleware.RateLimiter // may be nil when rate limiting is disabled
}

// SetupAuthRoutes configures the OAuth routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		if cfg.RateLimiter != nil {
			auth.GET("/google", cfg.RateLimiter.Limit(), cfg.AuthHandler.InitiateOAuth)
		} else {
			auth.GET("/google", cfg.AuthHandler.InitiateOAuth)
		}
		auth.GET("/google/callback", cfg.AuthHandler.HandleOAuthCallback)
		auth.GET("/success", cfg.AuthHandler.ShowSuccess)
		auth.GET("/error", cfg.AuthHandler.ShowError)
	}
}
