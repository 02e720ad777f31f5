package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/common/logger"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/config"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/controllers"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/database"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/repository"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/routes"
	"github.com/iamsuryasonar/Apparel-store-limo-backend/services"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	if err := database.Connect(cfg); err != nil {
		logger.Log.Fatal("Database connection failed", zap.Error(err))
	}

	// Redis backs the checkout idempotency guard; the engine works without it.
	var idempotency repository.IdempotencyGuard
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Log.Fatal("Invalid REDIS_URL", zap.Error(err))
		}
		idempotency = repository.NewIdempotencyStore(redis.NewClient(opts), 24*time.Hour)
	}

	gateway := services.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	verifier := services.NewPaymentVerifier(cfg.RazorpayKeySecret)
	refunder := services.NewGatewayRefunder(gateway)

	cartRepo := repository.NewGormCartRepository(database.DB)
	catalogRepo := repository.NewGormCatalogRepository(database.DB)
	addressRepo := repository.NewGormAddressRepository(database.DB)
	orderRepo := repository.NewGormOrderRepository(database.DB)
	checkoutRepo := repository.NewGormCheckoutRepository(database.DB)

	serializer := services.NewCartMutationSerializer(64)
	defer serializer.Close()

	cartService := services.NewCartService(cartRepo, catalogRepo, serializer, logger.Log)
	checkoutService := services.NewCheckoutService(
		verifier, checkoutRepo, cartRepo, addressRepo, catalogRepo,
		refunder, gateway, idempotency, logger.Log,
	)
	orderService := services.NewOrderService(orderRepo, logger.Log)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())

	routes.RegisterRoutes(
		r,
		cfg.JWTSecret,
		controllers.NewCartController(cartService),
		controllers.NewCheckoutController(checkoutService),
		controllers.NewOrderController(orderService),
	)

	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal("Server failed", zap.Error(err))
	}
}
