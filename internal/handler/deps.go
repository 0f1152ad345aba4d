package handler

import (
	"github.com/JerryTarus/secure-s3-upload/internal/app/upload"
	"github.com/JerryTarus/secure-s3-upload/internal/configs"
)

// AppDeps bundles the process-wide dependencies handlers close over.
// Everything here is constructed once at startup and read-only afterwards.
type AppDeps struct {
	Config  *configs.AppConfig
	Uploads *upload.Service
}
