package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ohJeez/e-commerece-website/internal/api/handler"
	"github.com/ohJeez/e-commerece-website/internal/api/middleware"
	"github.com/ohJeez/e-commerece-website/internal/core/service"
	mongodb "github.com/ohJeez/e-commerece-website/internal/infrastructure/db/mongo"
	redisdb "github.com/ohJeez/e-commerece-website/internal/infrastructure/db/redis"
	"github.com/ohJeez/e-commerece-website/internal/infrastructure/storage"
)

// RouterConfig carries everything NewRouter needs beyond the live connections.
type RouterConfig struct {
	JWTSecret  string
	TokenTTL   time.Duration
	UploadsDir string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("ecoshop"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	cartRepo := mongodb.NewCartRepository(db)

	catalogCache := redisdb.NewCatalogCache(rdb, log)
	uploads, err := storage.NewUploadStore(cfg.UploadsDir)
	if err != nil {
		return nil, err
	}

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	productService := service.NewProductService(productRepo, catalogCache, log)
	cartService := service.NewCartService(cartRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService, uploads)
	cartHandler := handler.NewCartHandler(cartService)

	requireAuth := middleware.Auth(cfg.JWTSecret)
	requireAdmin := middleware.RBAC("admin")

	// --- Probes and metrics (no auth required) ---
	e.GET("/api/ping", handler.NewPingHandler().Ping)
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(db, rdb).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Auth ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.GET("/api/users/me", authHandler.Me, requireAuth)

	// --- Products ---
	e.GET("/api/products", productHandler.List)
	e.GET("/api/products/:id", productHandler.Get)
	e.POST("/api/products", productHandler.Create, requireAuth, requireAdmin)
	e.PUT("/api/products/:id", productHandler.Update, requireAuth, requireAdmin)
	e.DELETE("/api/products/:id", productHandler.Delete, requireAuth, requireAdmin)

	// --- Cart ---
	e.GET("/api/cart", cartHandler.Get, requireAuth)
	e.POST("/api/cart", cartHandler.Upsert, requireAuth)
	e.DELETE("/api/cart/:productId", cartHandler.Remove, requireAuth)

	// --- Uploaded images ---
	e.Static("/uploads", uploads.Dir())

	return e, nil
}
