package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// IntegrityError reports a payload whose SHA-256 does not match the pinned
// digest. It signals a corrupted transfer, upstream change, or tampering.
type IntegrityError struct {
	Expected string
	Actual   string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("sha256 mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// Sum returns the lowercase hex SHA-256 digest of data.
func Sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Verify checks data against an expected hex digest. The comparison is
// case-insensitive; any mismatch returns *IntegrityError.
func Verify(data []byte, expectedHex string) error {
	actual := Sum(data)
	if !strings.EqualFold(actual, expectedHex) {
		return &IntegrityError{Expected: strings.ToLower(expectedHex), Actual: actual}
	}
	return nil
}
