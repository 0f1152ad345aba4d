package handler

import (
	"io"
	"net/http"

	"github.com/JerryTarus/secure-s3-upload/internal/app/upload"
	"github.com/JerryTarus/secure-s3-upload/internal/pkg/resp"
)

// MaxPresignRequestBytes caps the presign request body. The expected payload
// is a two-field JSON object, so anything past this is not a legitimate request.
const MaxPresignRequestBytes int64 = 4 << 10 // 4 KB

// HandleCreateUploadURL creates an HTTP HandlerFunc that issues a time-limited,
// pre-signed upload URL for the requested image content type.
//
// Body handling is deliberately lenient: an absent, oversized, or malformed
// body degrades to the empty request, which validation then rejects on the
// missing content type. Clients get one consistent 400 for every bad body.
func HandleCreateUploadURL(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxPresignRequestBytes))
		if err != nil {
			body = nil
		}

		input := upload.ParseRequest(body)

		result, customErr := deps.Uploads.Authorize(r.Context(), input)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, result)
	}
}
