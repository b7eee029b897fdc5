package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apperrors "github.com/YeshwantRaoB/organizon-web/common/errors"
	"github.com/YeshwantRaoB/organizon-web/common/logger"
	"github.com/YeshwantRaoB/organizon-web/controllers"
	"github.com/YeshwantRaoB/organizon-web/database"
	"github.com/YeshwantRaoB/organizon-web/identity"
	"github.com/YeshwantRaoB/organizon-web/middleware"
	awspkg "github.com/YeshwantRaoB/organizon-web/pkg/aws"
	"github.com/YeshwantRaoB/organizon-web/repository"
	"github.com/YeshwantRaoB/organizon-web/routes"
	"github.com/YeshwantRaoB/organizon-web/services"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const serviceName = "organizon-api"

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Initialize(getEnv("APP_ENV", "development"))

	cfg, err := LoadConfig(ctx)
	if err != nil {
		logger.Log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// --- 1. AWS (optional pieces) ---
	var awsCfg *sdkaws.Config
	if cfg.CloudWatchEnabled || cfg.ImageBucket != "" {
		c, err := awspkg.LoadAWSConfig(ctx, "")
		if err != nil {
			logger.Log.Warn("AWS config unavailable, CloudWatch and image hosting disabled", zap.Error(err))
		} else {
			awsCfg = &c
		}
	}

	metricsClient := awspkg.DisabledMetrics()
	if awsCfg != nil && cfg.CloudWatchEnabled {
		metricsClient = awspkg.NewMetricsClient(*awsCfg, cfg.CloudWatchNamespace, true)
		if cfg.CloudWatchLogGroup != "" {
			cwLogs, err := awspkg.NewCloudWatchLogsClient(ctx, *awsCfg, cfg.CloudWatchLogGroup, serviceName)
			if err != nil {
				logger.Log.Warn("CloudWatch Logs unavailable, logging to stdout only", zap.Error(err))
			} else {
				logger.InitializeWithWriter(cfg.AppEnv, cwLogs)
			}
		}
	}
	defer func() { _ = logger.Log.Sync() }()

	// --- 2. Datastores ---
	mongoClient, db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := database.Close(mongoClient); err != nil {
			logger.Log.Error("Failed to close MongoDB", zap.Error(err))
		}
	}()

	redisClient, err := database.ConnectRedis(ctx, cfg.RedisURL)
	if err != nil {
		logger.Log.Warn("Redis unavailable, product cache disabled", zap.Error(err))
	}
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}

	productRepo := repository.NewProductRepository(db)
	if err := productRepo.EnsureIndexes(ctx); err != nil {
		logger.Log.Warn("Failed to ensure product indexes", zap.Error(err))
	}

	// --- 3. Identity ---
	var (
		verifier  identity.Verifier
		userAdmin identity.UserAdmin
	)
	switch cfg.IdentityMode {
	case IdentityModeJWT:
		v, err := identity.NewJWTVerifier(cfg.JWTSecret)
		if err != nil {
			logger.Log.Fatal("Failed to build JWT verifier", zap.Error(err))
		}
		verifier = v
	default:
		authClient, err := identity.NewFirebaseAuth(ctx, identity.FirebaseConfig{
			ProjectID:       cfg.FirebaseProjectID,
			ClientEmail:     cfg.FirebaseClientEmail,
			PrivateKey:      cfg.FirebasePrivateKey,
			CredentialsJSON: cfg.FirebaseCredentialsJSON,
		})
		if err != nil {
			logger.Log.Fatal("Failed to initialise Firebase", zap.Error(err))
		}
		verifier = identity.NewFirebaseVerifier(authClient)
		userAdmin = identity.NewFirebaseUserAdmin(authClient)
	}
	policy := identity.NewAdminPolicy(cfg.AdminEmails)

	// --- 4. Services ---
	var imageStore services.ImageStore
	if awsCfg != nil && cfg.ImageBucket != "" {
		imageStore = awspkg.NewImageStore(*awsCfg, cfg.ImageBucket, awspkg.CustomEndpoint(), cfg.ImagePublicBaseURL)
	}

	cache := services.NewProductCache(redisClient, cfg.ProductCacheTTL)
	productService := services.NewProductService(productRepo, cache, metricsClient)
	cartService := services.NewCartService(repository.NewCartRepository(db), metricsClient)
	orderRepo := repository.NewOrderRepository(db)
	orderService := services.NewOrderService(orderRepo, services.OrderServiceConfig{
		StrictTransitions: cfg.StrictOrderTransitions,
	}, metricsClient)
	addressService := services.NewAddressService(repository.NewAddressRepository(db), repository.NewAuditRepository(db))
	adminService := services.NewAdminService(productRepo, orderRepo,
		repository.NewSettingsRepository(db), repository.NewPageRepository(db), userAdmin)
	imageService := services.NewImageService(imageStore, cfg.ImagePrefix)

	// --- 5. HTTP server & middleware ---
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	httpMetrics := middleware.NewHTTPMetrics(registry, "organizon")

	limiter := middleware.NewRateLimiter(rate.Limit(20), 40, 10*time.Minute)
	go limiter.RunSweeper(ctx)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger.Log))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.RateLimitMiddleware(limiter))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(httpMetrics.Middleware())
	r.Use(middleware.CloudWatchMetrics(metricsClient, serviceName))
	r.Use(apperrors.ErrorMiddleware())

	routes.RegisterRoutes(r, routes.Controllers{
		Auth:     controllers.NewAuthController(policy),
		Cart:     controllers.NewCartController(cartService),
		Orders:   controllers.NewOrderController(orderService),
		Products: controllers.NewProductController(productService),
		Bulk:     controllers.NewBulkImportController(productService),
		Address:  controllers.NewAddressController(addressService),
		Admin:    controllers.NewAdminController(adminService),
		Images:   controllers.NewImageController(imageService),
	}, routes.Guards{Verifier: verifier, Policy: policy, Metrics: httpMetrics})

	// --- 6. Graceful shutdown ---
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("Storefront API starting",
			zap.String("port", cfg.Port),
			zap.String("identity_mode", cfg.IdentityMode),
			zap.Bool("cache", redisClient != nil),
			zap.Bool("images", imageStore != nil),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Failed to start server", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Log.Info("Shutting down Storefront API...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}
	logger.Log.Info("Storefront API stopped gracefully")
}
