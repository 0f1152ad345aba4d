/*
Package resp provides helper functions for constructing and sending HTTP JSON responses.

Successful responses carry the payload directly; failures carry an ErrorBody built from
a CustomError. Every response, regardless of status, includes the permissive CORS headers
the browser clients depend on, so they are set here rather than left to middleware.
*/
package resp

import (
	"encoding/json"
	"net/http"

	"github.com/JerryTarus/secure-s3-upload/internal/pkg/errs"
	"github.com/JerryTarus/secure-s3-upload/internal/pkg/logx"
)

// ErrorBody is the JSON error shape returned to clients on any failure.
// It is shared with the Lambda adapter so both transports answer identically.
type ErrorBody struct {
	// Error is the client-safe description of the failure.
	Error string `json:"error"`
}

// RespondJSON is the generic response function used to set headers and send the JSON payload.
// The CORS headers are attached to every response, success or failure.
func RespondJSON(w http.ResponseWriter, r *http.Request, httpStatus int, payload any) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	response, err := json.Marshal(payload)
	if err != nil {
		logx.Error(
			err,
			"Error encoding JSON response",
			"http_status", httpStatus,
		)

		http.Error(w, "Error encoding JSON response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(httpStatus)
	w.Write(response)
}

// RespondSuccess sends a successful HTTP response (HTTP 200 OK) with the given payload.
func RespondSuccess(w http.ResponseWriter, r *http.Request, data any) {
	RespondJSON(w, r, http.StatusOK, data)
}

// RespondError sends an HTTP response containing custom error information.
func RespondError(w http.ResponseWriter, r *http.Request, customErr *errs.CustomError) {
	if customErr == nil {
		customErr = errs.NewError(errs.ErrUnknown)
	}

	RespondJSON(w, r, customErr.Status, ErrorBody{Error: customErr.Message})
}
