/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to standardize
HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the detailed CustomError struct corresponding to every application error code.
// The key is the error code (int), and the value contains the user message and HTTP status code.
// Messages here are part of the wire contract; clients match on them.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrRateLimitExceeded: {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},

	// 2xxx: Upload Authorization Errors
	ErrInvalidContentType:   {Code: ErrInvalidContentType, Message: `Invalid contentType. Must start with "image/".`, Status: http.StatusBadRequest},
	ErrUnsupportedImageType: {Code: ErrUnsupportedImageType, Message: "Unsupported image type: %s. Allowed: %s", Status: http.StatusBadRequest},

	// 5xxx: Internal System Errors
	ErrUnknown:    {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
	ErrSignFailed: {Code: ErrSignFailed, Message: "Internal server error. Failed to generate upload URL.", Status: http.StatusInternalServerError},
}
