package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ohJeez/e-commerece-website/internal/api"
	"github.com/ohJeez/e-commerece-website/internal/core/domain"
	"github.com/ohJeez/e-commerece-website/internal/infrastructure/db/mongo"
	"github.com/ohJeez/e-commerece-website/internal/infrastructure/db/redis"
	"github.com/ohJeez/e-commerece-website/internal/pkg/config"
	"github.com/ohJeez/e-commerece-website/pkg/logger"
)

const tokenTTL = 7 * 24 * time.Hour

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:     cfg.LogLevel,
		Pretty:    cfg.Env == "development",
		Component: "server",
		Output:    os.Stdout,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	userRepo := mongo.NewUserRepository(db)
	cartRepo := mongo.NewCartRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := cartRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("cart index creation failed")
	}

	if err := seedAdmin(ctx, userRepo); err != nil {
		log.Fatal().Err(err).Msg("admin seeding failed")
	}

	e, err := api.NewRouter(db, rdb, api.RouterConfig{
		JWTSecret:  cfg.JWTSecret,
		TokenTTL:   tokenTTL,
		UploadsDir: cfg.UploadsDir,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("API listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// seedAdmin guarantees the default admin account exists. Registration only
// produces customers; this is the sole admin entry point.
func seedAdmin(ctx context.Context, users *mongo.MongoUserRepository) error {
	const adminEmail = "admin@gmail.com"

	_, err := users.FindByEmail(ctx, adminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = users.Create(ctx, &domain.User{
		Name:         "Admin",
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	return err
}
