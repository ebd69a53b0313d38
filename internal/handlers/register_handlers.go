package handlers

import (
	"github.com/SscSPs/almacen_erp_lite/cmd/docs"
	portssvc "github.com/SscSPs/almacen_erp_lite/internal/core/ports/services"
	"github.com/SscSPs/almacen_erp_lite/internal/middleware"
	"github.com/SscSPs/almacen_erp_lite/internal/platform/config"
	"github.com/SscSPs/almacen_erp_lite/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouteDeps carries the infrastructure the routes need besides the services.
type RouteDeps struct {
	LoginLimiter *limiter.Limiter
	StoreChecks  map[string]StoreCheck
	Posthog      *utils.PosthogClientWrapper
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	registerHealthRoutes(r, services, deps.StoreChecks)

	// Public authentication routes
	registerAuthRoutes(r, cfg, services, deps.LoginLimiter)

	setupAPIV1Routes(r, cfg, services, deps)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret, middleware.WithRevocationCheck(services.TokenService)),
		middleware.PosthogMiddleware(deps.Posthog),
	)

	registerSessionRoutes(v1, cfg, services)
	registerUserRoutes(v1, services.User)
	registerSupplierRoutes(v1, services.Supplier)
	registerCarrierRoutes(v1, services.Carrier)
	registerPurchaseRoutes(v1, services.Purchase)
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
