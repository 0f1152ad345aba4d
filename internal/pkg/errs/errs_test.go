package errs_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JerryTarus/secure-s3-upload/internal/pkg/errs"
)

func TestNewError(t *testing.T) {
	t.Run("known code carries its mapped message and status", func(t *testing.T) {
		customErr := errs.NewError(errs.ErrInvalidContentType)
		require.NotNil(t, customErr)

		assert.Equal(t, errs.ErrInvalidContentType, customErr.Code)
		assert.Equal(t, `Invalid contentType. Must start with "image/".`, customErr.Message)
		assert.Equal(t, http.StatusBadRequest, customErr.Status)
	})

	t.Run("details fill the message template", func(t *testing.T) {
		customErr := errs.NewError(errs.ErrUnsupportedImageType, "image/bmp", "image/jpeg, image/png")
		require.NotNil(t, customErr)

		assert.Equal(t, "Unsupported image type: image/bmp. Allowed: image/jpeg, image/png", customErr.Message)
		assert.Equal(t, http.StatusBadRequest, customErr.Status)
	})

	t.Run("unknown code falls back to ErrUnknown", func(t *testing.T) {
		customErr := errs.NewError(987654)
		require.NotNil(t, customErr)

		assert.Equal(t, errs.ErrUnknown, customErr.Code)
		assert.Equal(t, http.StatusInternalServerError, customErr.Status)
	})

	t.Run("template is not mutated across calls", func(t *testing.T) {
		first := errs.NewError(errs.ErrUnsupportedImageType, "image/bmp", "image/png")
		second := errs.NewError(errs.ErrUnsupportedImageType, "image/avif", "image/png")

		assert.NotEqual(t, first.Message, second.Message)
		assert.Contains(t, second.Message, "image/avif")
	})
}

func TestCustomErrorError(t *testing.T) {
	customErr := errs.NewError(errs.ErrSignFailed)

	msg := customErr.Error()
	assert.Contains(t, msg, "5001")
	assert.Contains(t, msg, "500")
	assert.Contains(t, msg, "Internal server error. Failed to generate upload URL.")
}
