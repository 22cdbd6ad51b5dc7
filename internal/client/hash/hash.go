// Package hash digests passwords for the offline identity path. Remote mode
// never touches this: the service hashes with bcrypt on its side.
package hash

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
)

// Digest returns the lowercase hex SHA-256 of password. Deterministic, so
// stored digests can be compared for equality without keeping plaintext.
func Digest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// legacyDigest is the weak fallback encoding produced by clients running
// without a crypto primitive: plain base64, trivially reversible. We never
// write it, but digests created that way still exist in old stores.
func legacyDigest(password string) string {
	return base64.StdEncoding.EncodeToString([]byte(password))
}

// Matches reports whether password corresponds to a stored digest, accepting
// both the SHA-256 form and the legacy base64 form.
func Matches(password, digest string) bool {
	if digest == "" {
		return false
	}
	return Digest(password) == digest || legacyDigest(password) == digest
}
