package app

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"time"
)

// referenceCodeLength is the random suffix length of tracking ids and order numbers
const referenceCodeLength = 6

// newReferenceCode returns PREFIX-YYYYMMDD-XXXXXX with a random base32 suffix
func newReferenceCode(prefix string, now time.Time) (string, error) {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate reference code: %w", err)
	}
	suffix := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(buf)[:referenceCodeLength]
	return fmt.Sprintf("%s-%s-%s", prefix, now.Format("20060102"), suffix), nil
}
