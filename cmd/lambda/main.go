/*
Package main is the AWS Lambda entry point for the upload-authorization service.

It builds the process-wide dependencies once per execution environment, then
serves API Gateway proxy events through the shared handler core. Logging is
always JSON here so CloudWatch ingests structured entries.
*/
package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/JerryTarus/secure-s3-upload/internal/app/storage"
	"github.com/JerryTarus/secure-s3-upload/internal/app/upload"
	"github.com/JerryTarus/secure-s3-upload/internal/configs"
	"github.com/JerryTarus/secure-s3-upload/internal/handler"
	"github.com/JerryTarus/secure-s3-upload/internal/pkg/logx"
)

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logx.InitGlobalLogger(false)

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

	deps := &handler.AppDeps{
		Config:  cfg,
		Uploads: uploads,
	}

	lambda.Start(handler.APIGatewayHandler(deps))
}
