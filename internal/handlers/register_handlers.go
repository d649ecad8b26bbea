package handlers

import (
	"github.com/assetverse/assetverse_backend/cmd/docs"
	"github.com/assetverse/assetverse_backend/internal/core/domain"
	portssvc "github.com/assetverse/assetverse_backend/internal/core/ports/services"
	"github.com/assetverse/assetverse_backend/internal/middleware"
	"github.com/assetverse/assetverse_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	dbPool *pgxpool.Pool,
) {
	registerHomeRoutes(r, dbPool)

	// Public authentication routes (rate limited where sensitive)
	registerAuthRoutes(r, cfg, services)

	// Authenticated /api/v1 routes
	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to role-scoped registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User)

	// HR tenant routes
	hr := v1.Group("/hr", middleware.RequireRole(services.User, domain.RoleHR))
	RegisterAssetRoutes(hr, services.Asset)
	registerTenantWorkflowRoutes(hr, services.Workflow)
	registerAffiliationRoutes(hr, services.Affiliation)
	registerPaymentRoutes(hr, services.Payment)
	registerAnalyticsRoutes(hr, services.Analytics)

	// Employee routes
	employee := v1.Group("/employee", middleware.RequireRole(services.User, domain.RoleEmployee))
	registerEmployeeAssetRoutes(employee, services.Asset)
	registerEmployeeWorkflowRoutes(employee, services.Workflow)
	registerEmployeeAffiliationRoutes(employee, services.Affiliation)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
