/*
Package upload implements the upload-authorization core: request parsing,
content-type validation, object-key derivation, and delegation to the storage
backend for URL signing.

The package is transport-agnostic. Both the HTTP handlers and the Lambda
adapter feed raw request bytes through ParseRequest and hand the result to
Service.Authorize, so the two surfaces cannot drift apart.
*/
package upload

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/JerryTarus/secure-s3-upload/internal/app/storage"
	"github.com/JerryTarus/secure-s3-upload/internal/pkg/errs"
	"github.com/JerryTarus/secure-s3-upload/internal/pkg/logx"
	"github.com/JerryTarus/secure-s3-upload/internal/pkg/randx"
)

// ObjectKeyPrefix is the bucket folder all issued keys live under.
const ObjectKeyPrefix = "uploads"

// Request describes one desired upload.
type Request struct {
	// FileName is an optional client-side hint. It is accepted for
	// compatibility but never used in key derivation.
	FileName string `json:"fileName"`

	// ContentType is the MIME type the client will send with the upload.
	ContentType string `json:"contentType"`
}

// Result is a granted upload authorization.
type Result struct {
	// URL is the time-limited signed URL the client PUTs the object to.
	URL string `json:"url"`

	// Key is the object key the upload will be stored under.
	Key string `json:"key"`
}

// ParseRequest decodes a raw JSON request body. A missing or malformed body
// yields the zero Request, so validation rejects it on the absent content
// type rather than surfacing a parse error.
func ParseRequest(body []byte) Request {
	var input Request
	if len(body) == 0 {
		return input
	}

	if err := json.Unmarshal(body, &input); err != nil {
		return Request{}
	}

	return input
}

// NewObjectKey derives a fresh object key for an upload of the given content
// type: "uploads/<unix-timestamp>-<random-suffix>.<extension>", where the
// extension is the subtype text after the last slash. Uniqueness comes from
// the timestamp plus the random suffix; no collision check is performed.
func NewObjectKey(contentType string) string {
	timestamp := time.Now().Unix()
	ext := contentType[strings.LastIndex(contentType, "/")+1:]

	return fmt.Sprintf("%s/%d-%s.%s", ObjectKeyPrefix, timestamp, randx.KeySuffix(), ext)
}

// Service issues upload authorizations against a storage backend.
type Service struct {
	storage storage.StorageService
	expire  time.Duration
	logger  zerolog.Logger
}

// NewService constructs the upload Service. expire is the validity window
// applied to every issued URL.
func NewService(store storage.StorageService, expire time.Duration) *Service {
	return &Service{
		storage: store,
		expire:  expire,
		logger:  logx.Logger().With().Str("component", "upload").Logger(),
	}
}

// Authorize validates the request, derives a unique object key, and asks the
// storage backend to sign an upload URL for it.
//
// Validation failures come back as client-safe 400 errors. Any storage
// failure is logged with detail here and reported to the caller as the
// generic internal error, so backend specifics never leak.
func (s *Service) Authorize(ctx context.Context, input Request) (*Result, *errs.CustomError) {
	if customErr := ValidateContentType(input.ContentType); customErr != nil {
		return nil, customErr
	}

	key := NewObjectKey(input.ContentType)

	url, err := s.storage.PresignUpload(ctx, key, input.ContentType, s.expire)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("key", key).
			Str("content_type", input.ContentType).
			Msg("Presign request to storage backend failed")
		return nil, errs.NewError(errs.ErrSignFailed)
	}

	return &Result{URL: url, Key: key}, nil
}
