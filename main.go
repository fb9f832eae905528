package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/directpro/directpro-api/internal/app"
	"github.com/directpro/directpro-api/internal/config"
	"github.com/directpro/directpro-api/internal/server"
	"github.com/directpro/directpro-api/internal/storage"
	"github.com/directpro/directpro-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	appLogger, err := logger.SetupLogging()
	if err != nil {
		appLogger = logger.SetupFallbackLogger()
	}
	defer logger.CloseLogger()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	if err := cfg.EnsureDataDir(); err != nil {
		appLogger.Fatalf("Failed to create data directory: %v", err)
	}

	store, err := storage.Open(cfg.DataDir)
	if err != nil {
		appLogger.Fatalf("Failed to open storage: %v", err)
	}
	defer store.Close()

	application, err := app.NewApp(context.Background(), cfg, appLogger, store)
	if err != nil {
		appLogger.Fatalf("Failed to initialize application: %v", err)
	}
	if !application.Refiner.Enabled() {
		appLogger.Println("GEMINI_API_KEY not set, AI refinement disabled")
	}

	srv := server.NewServer(application, cfg)
	srv.SetupRoutes()

	if err := srv.Start(); err != nil {
		appLogger.Fatalf("Failed to start server: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Printf("Shutdown error: %v", err)
	}
}
