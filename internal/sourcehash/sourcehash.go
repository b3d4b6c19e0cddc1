// Package sourcehash fingerprints source strings so that upstream text
// changes can be detected regardless of Unicode composition or padding.
package sourcehash

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize applies NFC normalization and trims surrounding whitespace.
func Normalize(text string) string {
	return strings.TrimSpace(norm.NFC.String(text))
}

// Compute returns the hex encoded SHA-256 digest of the normalized text.
// Absent text hashes the same as the empty string.
func Compute(text string) string {
	sum := sha256.Sum256([]byte(Normalize(text)))
	return hex.EncodeToString(sum[:])
}
