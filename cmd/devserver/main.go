package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"couponscan/internal/config"
	handlers "couponscan/internal/handlers/api"
	"couponscan/internal/repositories/memory"
	"couponscan/pkg/logger"
	"couponscan/pkg/storage"
	"couponscan/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger); err != nil {
		appLogger.WithError(err).Fatal("Dev server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, appLogger *logger.Logger) error {
	users := memory.NewUserRepository()
	coupons := memory.NewCouponRepository()
	redemptions := memory.NewRedemptionRepository()

	seed := memory.DefaultSeed()
	if cfg.DevServer.SeedFile != "" {
		data, err := memory.LoadSeedFile(cfg.DevServer.SeedFile)
		if err != nil {
			return err
		}
		seed = data
	}
	if err := memory.Seed(ctx, seed, users, coupons); err != nil {
		return fmt.Errorf("failed to seed data: %w", err)
	}

	provider, err := storage.NewProvider(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage provider: %w", err)
	}

	// Initialize handlers
	h := &routes.Handlers{
		Auth:   handlers.NewAuthHandler(users, cfg.DevServer.JWTSecret, cfg.DevServer.TokenTTL, appLogger),
		Coupon: handlers.NewCouponHandler(coupons, redemptions, appLogger),
		Upload: handlers.NewUploadHandler(provider, cfg.Upload.MaxBytes, appLogger),
	}

	router := routes.NewRouter(h, cfg.DevServer.JWTSecret, cfg.App.Version, appLogger)
	if cfg.Storage.Provider == config.StorageLocal {
		router.Static("/uploads", cfg.Storage.Local.BasePath)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.DevServer.Host, cfg.DevServer.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.WithFields(map[string]interface{}{
			"addr":    srv.Addr,
			"storage": cfg.Storage.Provider,
			"users":   len(seed.Users),
			"coupons": len(seed.Coupons),
		}).Info("Starting dev server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down dev server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
