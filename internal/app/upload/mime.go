package upload

import (
	"strings"

	"github.com/JerryTarus/secure-s3-upload/internal/pkg/errs"
)

// MIMEPrefix is the prefix every acceptable content type must carry.
const MIMEPrefix = "image/"

// AllowedMIMEList lists the permitted image MIME types in the order they are
// reported to clients. Matching is exact and case-sensitive.
var AllowedMIMEList = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
}

// AllowedMIMETypes is the membership set backing AllowedMIMEList.
var AllowedMIMETypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// ValidateContentType checks the requested content type against the upload policy.
// Checks short-circuit: a missing or non-image type is reported before set
// membership, so the two rejection messages stay distinct.
func ValidateContentType(contentType string) *errs.CustomError {
	if !strings.HasPrefix(contentType, MIMEPrefix) {
		return errs.NewError(errs.ErrInvalidContentType)
	}

	if _, ok := AllowedMIMETypes[contentType]; !ok {
		return errs.NewError(errs.ErrUnsupportedImageType, contentType, strings.Join(AllowedMIMEList, ", "))
	}

	return nil
}
