/*
Package main is the standalone HTTP entry point for the upload-authorization service.

It is responsible for loading configuration, initializing the global logging system,
wiring the storage backend and upload service, setting up the HTTP server, and
gracefully handling operating system interrupt signals (SIGINT, SIGTERM) to ensure
a smooth server shutdown.
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/JerryTarus/secure-s3-upload/internal/app/storage"
	"github.com/JerryTarus/secure-s3-upload/internal/app/upload"
	"github.com/JerryTarus/secure-s3-upload/internal/configs"
	"github.com/JerryTarus/secure-s3-upload/internal/handler"
	"github.com/JerryTarus/secure-s3-upload/internal/pkg/logx"
)

func main() {
	// Load .env if present. Deployed environments set variables directly.
	_ = godotenv.Load()

	// Load configuration from environment variables
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	logx.InitGlobalLogger(cfg.Environment == "development")
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Str("region", cfg.Region).
		Str("bucket", cfg.BucketName).
		Dur("signed_url_expire", cfg.SignedURLExpire).
		Msg("Configuration loaded successfully")

	// Create a context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize storage backend and upload service
	storageService, err := storage.NewStorageService(storage.ServiceConfig{
		Region:          cfg.Region,
		BucketName:      cfg.BucketName,
		Endpoint:        cfg.S3Endpoint,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
	})
	if err != nil {
		logx.Fatal(err, "Failed to initialize storage service")
	}

	uploads := upload.NewService(storageService, cfg.SignedURLExpire)

	// Setup HTTP server and routes
	deps := &handler.AppDeps{
		Config:  cfg,
		Uploads: uploads,
	}
	router := handler.Router(deps)

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("Secure S3 Upload Service starting on http://localhost%s", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 5 seconds.
	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Fatal(err, "Server forced to shutdown")
	}

	logx.Info("Server gracefully stopped.")
}
