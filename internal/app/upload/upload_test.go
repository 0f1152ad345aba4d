package upload_test

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JerryTarus/secure-s3-upload/internal/app/upload"
	"github.com/JerryTarus/secure-s3-upload/internal/pkg/errs"
)

// fakeStorage records presign calls and returns a canned URL or error.
type fakeStorage struct {
	url string
	err error

	calls           int
	lastKey         string
	lastContentType string
	lastDuration    time.Duration
}

func (f *fakeStorage) PresignUpload(ctx context.Context, key string, contentType string, duration time.Duration) (string, error) {
	f.calls++
	f.lastKey = key
	f.lastContentType = contentType
	f.lastDuration = duration

	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func TestValidateContentType(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		wantCode    int
		wantMessage string
	}{
		{
			name:        "missing content type",
			contentType: "",
			wantCode:    errs.ErrInvalidContentType,
			wantMessage: `Invalid contentType. Must start with "image/".`,
		},
		{
			name:        "non-image type",
			contentType: "application/pdf",
			wantCode:    errs.ErrInvalidContentType,
			wantMessage: `Invalid contentType. Must start with "image/".`,
		},
		{
			name:        "uppercase prefix is not accepted",
			contentType: "IMAGE/PNG",
			wantCode:    errs.ErrInvalidContentType,
			wantMessage: `Invalid contentType. Must start with "image/".`,
		},
		{
			name:        "image type outside the allowed set",
			contentType: "image/svg+xml",
			wantCode:    errs.ErrUnsupportedImageType,
			wantMessage: "Unsupported image type: image/svg+xml. Allowed: image/jpeg, image/png, image/gif, image/webp",
		},
		{
			name:        "tiff is not allowed",
			contentType: "image/tiff",
			wantCode:    errs.ErrUnsupportedImageType,
			wantMessage: "Unsupported image type: image/tiff. Allowed: image/jpeg, image/png, image/gif, image/webp",
		},
		{name: "jpeg allowed", contentType: "image/jpeg"},
		{name: "png allowed", contentType: "image/png"},
		{name: "gif allowed", contentType: "image/gif"},
		{name: "webp allowed", contentType: "image/webp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customErr := upload.ValidateContentType(tt.contentType)

			if tt.wantCode == 0 {
				assert.Nil(t, customErr)
				return
			}

			require.NotNil(t, customErr)
			assert.Equal(t, tt.wantCode, customErr.Code)
			assert.Equal(t, tt.wantMessage, customErr.Message)
			assert.Equal(t, 400, customErr.Status)
		})
	}
}

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
		want upload.Request
	}{
		{
			name: "well-formed body",
			body: `{"fileName":"cat.png","contentType":"image/png"}`,
			want: upload.Request{FileName: "cat.png", ContentType: "image/png"},
		},
		{
			name: "unknown fields tolerated",
			body: `{"contentType":"image/gif","somethingElse":true}`,
			want: upload.Request{ContentType: "image/gif"},
		},
		{name: "empty body", body: ""},
		{name: "empty object", body: "{}"},
		{name: "not json at all", body: "just some text"},
		{name: "json but not an object", body: `"image/png"`},
		{name: "wrong field type", body: `{"contentType":42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := upload.ParseRequest([]byte(tt.body))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewObjectKey(t *testing.T) {
	keyPattern := regexp.MustCompile(`^uploads/\d+-[0-9a-f]{6}\.png$`)

	key := upload.NewObjectKey("image/png")
	assert.Regexp(t, keyPattern, key)

	t.Run("extension is the subtype", func(t *testing.T) {
		assert.True(t, strings.HasSuffix(upload.NewObjectKey("image/jpeg"), ".jpeg"))
		assert.True(t, strings.HasSuffix(upload.NewObjectKey("image/webp"), ".webp"))
	})

	t.Run("same-second keys are distinct", func(t *testing.T) {
		first := upload.NewObjectKey("image/png")
		second := upload.NewObjectKey("image/png")
		assert.NotEqual(t, first, second)
	})
}

func TestServiceAuthorize(t *testing.T) {
	ctx := context.Background()

	t.Run("issues url and key for an allowed type", func(t *testing.T) {
		fake := &fakeStorage{url: "https://uploads-test.example/signed"}
		svc := upload.NewService(fake, 120*time.Second)

		result, customErr := svc.Authorize(ctx, upload.Request{ContentType: "image/png"})

		require.Nil(t, customErr)
		require.NotNil(t, result)
		assert.Equal(t, "https://uploads-test.example/signed", result.URL)
		assert.Regexp(t, `^uploads/\d+-[0-9a-f]{6}\.png$`, result.Key)

		assert.Equal(t, 1, fake.calls)
		assert.Equal(t, result.Key, fake.lastKey)
		assert.Equal(t, "image/png", fake.lastContentType)
		assert.Equal(t, 120*time.Second, fake.lastDuration)
	})

	t.Run("validation failure never reaches storage", func(t *testing.T) {
		fake := &fakeStorage{url: "https://uploads-test.example/signed"}
		svc := upload.NewService(fake, 120*time.Second)

		result, customErr := svc.Authorize(ctx, upload.Request{ContentType: "text/plain"})

		require.NotNil(t, customErr)
		assert.Nil(t, result)
		assert.Equal(t, errs.ErrInvalidContentType, customErr.Code)
		assert.Equal(t, 0, fake.calls)
	})

	t.Run("storage failure returns the generic internal error", func(t *testing.T) {
		fake := &fakeStorage{err: errors.New("dial tcp: connection refused")}
		svc := upload.NewService(fake, 120*time.Second)

		result, customErr := svc.Authorize(ctx, upload.Request{ContentType: "image/jpeg"})

		require.NotNil(t, customErr)
		assert.Nil(t, result)
		assert.Equal(t, errs.ErrSignFailed, customErr.Code)
		assert.Equal(t, 500, customErr.Status)
		assert.Equal(t, "Internal server error. Failed to generate upload URL.", customErr.Message)
		assert.NotContains(t, customErr.Message, "connection refused")
	})
}
