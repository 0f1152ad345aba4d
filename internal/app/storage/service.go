package storage

import (
	"context"
	"errors"
	"time"
)

// ServiceConfig holds the configuration required to connect to the storage service.
type ServiceConfig struct {
	Region     string
	BucketName string

	// Endpoint optionally points the client at an S3-compatible service
	// (MinIO and friends). Empty means AWS proper.
	Endpoint string

	// AccessKeyID and SecretAccessKey optionally pin static credentials.
	// When empty, the SDK's default credential chain is used.
	AccessKeyID     string
	SecretAccessKey string
}

// StorageService defines the public interface for the upload storage backend.
// The single presign operation keeps the seam small enough to fake in tests.
type StorageService interface {
	// PresignUpload generates a pre-signed PUT URL authorizing one upload of
	// the given content type under the given key, valid for the given duration.
	PresignUpload(ctx context.Context, key string, contentType string, duration time.Duration) (string, error)
}

// NewStorageService is the factory function for StorageService.
// It validates the configuration and returns a concrete implementation.
func NewStorageService(cfg ServiceConfig) (StorageService, error) {
	if cfg.Region == "" {
		return nil, errors.New("storage: region is required")
	}
	if cfg.BucketName == "" {
		return nil, errors.New("storage: bucket name is required")
	}
	if (cfg.AccessKeyID == "") != (cfg.SecretAccessKey == "") {
		return nil, errors.New("storage: access key id and secret access key must be provided together")
	}

	// Currently, only S3 compatible implementations are supported.
	return newS3Client(cfg)
}
