/*
Package errs provides custom error types and application-level error code constants.

These error codes are used to clearly identify specific business or system errors
both internally within the server and in communication with clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrRateLimitExceeded indicates that the request rate has exceeded the set limit.
	ErrRateLimitExceeded = 1001
)

// 2xxx: Upload Authorization Errors
const (
	// ErrInvalidContentType indicates that the requested content type is missing
	// or does not carry the image/ prefix.
	ErrInvalidContentType = 2001

	// ErrUnsupportedImageType indicates an image content type outside the allowed set.
	ErrUnsupportedImageType = 2002
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000

	// ErrSignFailed indicates that the storage backend rejected or failed the
	// presigning call. The underlying detail is logged, never returned.
	ErrSignFailed = 5001
)
