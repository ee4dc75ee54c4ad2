package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justdesigndev/citys-residences-contact-form/config"
	_ "github.com/justdesigndev/citys-residences-contact-form/docs" // Important for Swagger
	v1 "github.com/justdesigndev/citys-residences-contact-form/internal/delivery/http/v1"
	"github.com/justdesigndev/citys-residences-contact-form/internal/usecase"
	"github.com/justdesigndev/citys-residences-contact-form/pkg/geodata"
	"github.com/justdesigndev/citys-residences-contact-form/pkg/i18n"
	"github.com/justdesigndev/citys-residences-contact-form/pkg/lead"
	"github.com/justdesigndev/citys-residences-contact-form/pkg/logger"
	"github.com/justdesigndev/citys-residences-contact-form/pkg/redis"
)

// @title           City's Residences Contact API
// @version         1.0
// @description     Lead-capture backend for the City's Residences marketing site.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting contact-form backend", "port", cfg.Port)

	// 3. Translation bundles. A missing form key is fatal here rather than
	// an empty error message next to a field in production.
	if err := i18n.Init(); err != nil {
		logger.Log.Error("Failed to load translation bundles", "error", err)
		os.Exit(1)
	}

	// 4. Reference data
	geo, err := geodata.New()
	if err != nil {
		logger.Log.Error("Failed to load geodata", "error", err)
		os.Exit(1)
	}

	// 5. Optional Redis (shared region cache + rate limiting)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 6. Setup UseCases
	leadClient := lead.NewClient(cfg.LeadEndpointURL)
	contactUC := usecase.NewContactUsecase(leadClient)
	locationUC := usecase.NewLocationUsecase(geo, cfg.RegionCacheTTL)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:  contactUC,
		LocationUC: locationUC,
		Config:     cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// 8. Run with graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Forced shutdown", "error", err)
	}
}
