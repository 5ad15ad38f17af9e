package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/config"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/logger"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/server"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/storage"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	logFormat := cfg.LogFormat
	if logFormat == "auto" {
		logFormat = "text"
		if cfg.DeploymentMode == config.DeploymentGCS {
			logFormat = "json"
		}
	}
	logger.Configure(cfg.LogLevel, logFormat)

	logger.Infof("Starting DataFlow Intelligence Platform v%s on port %s", config.GetVersion(), cfg.Port)
	logger.Infof("Deployment mode: %s", cfg.DeploymentMode)
	if cfg.DeploymentMode == config.DeploymentGCS {
		logger.Infof("GCS bucket: %s", cfg.GCSBucket)
	} else {
		logger.Infof("Reports directory: %s", cfg.ReportsDir)
	}

	storageClient, err := storage.NewStorageClient(ctx, cfg)
	if err != nil {
		logger.Fatalf("Failed to initialize storage: %v", err)
	}

	srv := server.NewServer(cfg, storageClient)
	defer srv.Close()

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.SetupRoutes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Dashboard generation can run long
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("Server listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Fatalf("HTTP server error: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Infof("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server shutdown error: %v", err)
	}

	logger.Infof("Server stopped")
}
