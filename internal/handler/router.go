/*
Package handler provides the HTTP handlers, routing setup, and the Lambda
adapter for the upload-authorization service.

This file defines the main Router, applying middleware like logging, CORS
preflight handling, and IP-based rate limiting before delegating requests to
the presign handler.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"github.com/JerryTarus/secure-s3-upload/internal/pkg/limiter"
	"github.com/JerryTarus/secure-s3-upload/internal/pkg/logx"
	"github.com/JerryTarus/secure-s3-upload/internal/pkg/resp"
)

const (
	// PresignRate and PresignBurst bound per-IP traffic on the presign route.
	// Issuing a URL is cheap but each one authorizes a bucket write, so the
	// burst stays modest.
	PresignRate  = 5
	PresignBurst = 20
)

// Router sets up the main HTTP routing table (chi.Router) for the application.
// It initializes the per-IP rate limiter, configures permissive CORS for
// browser uploads, and applies global and per-route middleware.
func Router(deps *AppDeps) http.Handler {
	presignLimiter := limiter.NewIPRateLimiter(rate.Limit(PresignRate), PresignBurst)

	r := chi.NewRouter()

	// Preflight handling. The CORS headers on actual responses are set in
	// resp so they are present on every status, middleware or not.
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{},
		MaxAge:         300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		data := map[string]string{
			"status":      "ok",
			"service":     "Secure S3 Upload Service",
			"environment": deps.Config.Environment,
		}
		resp.RespondSuccess(w, r, data)
	})

	r.Route("/api", func(api chi.Router) {
		rateLimitedPresign := presignLimiter.Middleware(HandleCreateUploadURL(deps))
		api.Post("/uploads/presign", http.HandlerFunc(rateLimitedPresign.ServeHTTP))
	})

	return r
}
