/*
Package configs is responsible for loading and parsing the application's configuration settings.

It configures server and storage parameters by reading operating system environment variables,
including the running environment, port, signing region, target bucket, and the validity
window of issued upload URLs. Configuration is loaded once at startup and treated as
immutable afterwards.
*/
package configs

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DefaultSignedURLExpire is the validity window applied when SIGNED_URL_EXPIRE is not set.
const DefaultSignedURLExpire = 120 * time.Second

// AppConfig contains all configuration parameters required for the application to run.
// All configuration values are loaded from environment variables.
type AppConfig struct {
	// General Server Settings
	Environment string
	Port        int

	// Signing Settings
	Region          string
	BucketName      string
	SignedURLExpire time.Duration

	// Optional S3-compatible endpoint settings (MinIO and friends).
	// When unset, the client talks to AWS proper with the default credential chain.
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
}

// LoadConfig reads and parses the application configuration from environment variables.
// It provides default values for optional settings, performs type conversions and
// validation, and fails fast when a required variable is absent.
// It returns a pointer to the AppConfig struct and any error encountered.
func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}

	// --- General Server Settings ---
	// Environment
	cfg.Environment = os.Getenv("ENVIRONMENT")
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	// Port
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT environment variable: %w", err)
	}
	cfg.Port = port

	if cfg.Port < 1024 || cfg.Port > 65535 {
		return nil, fmt.Errorf("port number %d is outside the recommended range (%d-%d) to avoid privileged ports", cfg.Port, 1024, 65535)
	}

	// --- Signing Settings ---
	// Region
	cfg.Region = os.Getenv("REGION")
	if cfg.Region == "" {
		return nil, fmt.Errorf("REGION environment variable is required for URL signing")
	}

	// Bucket Name
	cfg.BucketName = os.Getenv("BUCKET_NAME")
	if cfg.BucketName == "" {
		return nil, fmt.Errorf("BUCKET_NAME environment variable is required for URL signing")
	}

	// Signed URL Expiry
	expireStr := os.Getenv("SIGNED_URL_EXPIRE")
	if expireStr == "" {
		cfg.SignedURLExpire = DefaultSignedURLExpire
	} else {
		expireSeconds, err := strconv.Atoi(expireStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SIGNED_URL_EXPIRE environment variable: %w", err)
		}
		if expireSeconds <= 0 {
			return nil, fmt.Errorf("SIGNED_URL_EXPIRE must be a positive number of seconds, got %d", expireSeconds)
		}
		cfg.SignedURLExpire = time.Duration(expireSeconds) * time.Second
	}

	// --- Optional S3-Compatible Endpoint Settings ---
	cfg.S3Endpoint = os.Getenv("S3_ENDPOINT")

	cfg.S3AccessKeyID = os.Getenv("S3_ACCESS_KEY_ID")
	cfg.S3SecretAccessKey = os.Getenv("S3_SECRET_ACCESS_KEY")
	if (cfg.S3AccessKeyID == "") != (cfg.S3SecretAccessKey == "") {
		return nil, fmt.Errorf("S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY must be provided together")
	}

	return cfg, nil
}
