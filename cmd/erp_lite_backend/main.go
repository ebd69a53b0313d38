package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/almacen_erp_lite/internal/core/services"
	"github.com/SscSPs/almacen_erp_lite/internal/handlers"
	"github.com/SscSPs/almacen_erp_lite/internal/middleware"
	"github.com/SscSPs/almacen_erp_lite/internal/platform/config"
	"github.com/SscSPs/almacen_erp_lite/internal/repositories/cache/redisstore"
	"github.com/SscSPs/almacen_erp_lite/internal/repositories/database/pgsql"
	"github.com/SscSPs/almacen_erp_lite/internal/utils"
	"github.com/SscSPs/almacen_erp_lite/pkg/cache"
	"github.com/SscSPs/almacen_erp_lite/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// @title Almacen ERP Lite API
// @version 1.0
// @description Purchases, suppliers and carriers for a raw material warehouse.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	storeChecks := map[string]handlers.StoreCheck{
		"postgres": dbPool.Ping,
	}

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = cache.New(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Error("Failed to connect to redis", slog.String("addr", cfg.RedisAddr), slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.Error("Error closing redis client", slog.String("error", cerr.Error()))
			}
		}()
		logger.Info("Redis client connected", slog.String("addr", cfg.RedisAddr))

		repos.TokenRevocations = redisstore.NewTokenRevocations(redisClient)
		if cfg.PurchaseCodeSequence == config.SequenceBackendRedis {
			repos.PurchaseSequence = redisstore.NewPurchaseCodeSequence(redisClient, repos.PurchaseRepo)
		}
		storeChecks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}
	logger.Info("Purchase code sequence selected", slog.String("backend", cfg.PurchaseCodeSequence))

	serviceContainer := services.NewServiceContainer(cfg, repos)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	loginLimiter, err := handlers.NewLoginLimiter(cfg, redisClient)
	if err != nil {
		logger.Error("Failed to create login rate limiter", slog.String("rate", cfg.LoginRateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterValidators(cfg.TaxIDLength, cfg.InterbankCodeLength); err != nil {
		logger.Error("Failed to register request validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendBaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, handlers.RouteDeps{
		LoginLimiter: loginLimiter,
		StoreChecks:  storeChecks,
		Posthog:      posthogClient,
	})

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
