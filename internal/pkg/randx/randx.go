/*
Package randx provides functions for generating random identifiers.

It is primarily used to generate the short random suffix that makes derived
object keys unique across same-second uploads.
*/
package randx

import (
	"github.com/google/uuid"
)

// KeySuffixLength is the fixed length of the random object-key suffix.
const KeySuffixLength = 6

// KeySuffix generates the random component of an object key: the first
// KeySuffixLength characters of a fresh UUID v4 string. Uniqueness is
// probabilistic; callers pair it with a timestamp rather than checking
// for collisions.
func KeySuffix() string {
	return uuid.New().String()[:KeySuffixLength]
}
