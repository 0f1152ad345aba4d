package storage_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JerryTarus/secure-s3-upload/internal/app/storage"
)

func TestNewStorageServiceValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     storage.ServiceConfig
		wantErr string
	}{
		{
			name:    "missing region",
			cfg:     storage.ServiceConfig{BucketName: "uploads-test"},
			wantErr: "region is required",
		},
		{
			name:    "missing bucket",
			cfg:     storage.ServiceConfig{Region: "us-east-1"},
			wantErr: "bucket name is required",
		},
		{
			name: "half a credential pair",
			cfg: storage.ServiceConfig{
				Region:      "us-east-1",
				BucketName:  "uploads-test",
				AccessKeyID: "minioadmin",
			},
			wantErr: "provided together",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := storage.NewStorageService(tt.cfg)
			require.Error(t, err)
			assert.Nil(t, svc)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// Presigning is a local signature computation, so it runs without any live
// endpoint as long as static credentials are pinned.
func TestPresignUpload(t *testing.T) {
	svc, err := storage.NewStorageService(storage.ServiceConfig{
		Region:          "us-east-1",
		BucketName:      "uploads-test",
		Endpoint:        "http://127.0.0.1:9000",
		AccessKeyID:     "minioadmin",
		SecretAccessKey: "minioadmin",
	})
	require.NoError(t, err)

	url, err := svc.PresignUpload(context.Background(), "uploads/1700000000-a1b2c3.png", "image/png", 120*time.Second)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://127.0.0.1:9000/uploads-test/uploads/1700000000-a1b2c3.png"),
		"path-style URL should address the configured bucket and key, got %s", url)
	assert.Contains(t, url, "X-Amz-Expires=120")
	assert.Contains(t, url, "X-Amz-Signature=")
}
