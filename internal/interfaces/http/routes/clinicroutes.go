package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/TeodorSim/TransfIT/internal/interfaces/http/handlers"
)

// ClinicRouteConfig holds dependencies for clinic routes.
type ClinicRouteConfig struct {
	ClinicHandler *handlers.ClinicHandler
}

// SetupClinicRoutes configures clinic integration routes.
func SetupClinicRoutes(engine *gin.Engine, cfg *ClinicRouteConfig) {
	api := engine.Group("/api")
	{
		api.GET("/clinics/:clinicId/integration", cfg.ClinicHandler.GetIntegration)
		api.DELETE("/clinics/:clinicId/integration", cfg.ClinicHandler.DeprovisionIntegration)
	}
}
