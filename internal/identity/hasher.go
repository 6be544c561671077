package identity

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hasher derives a stable anonymous key from a client IP. The key is used
// for rate limiting, duplicate-report detection and history lookups so raw
// IPs never reach the database.
type Hasher struct {
	secret string
}

func NewHasher(secret string) *Hasher {
	return &Hasher{secret: secret}
}

// Hash returns the lowercase hex SHA-256 digest of ip + secret.
func (h *Hasher) Hash(rawIP string) string {
	sum := sha256.Sum256([]byte(rawIP + h.secret))
	return hex.EncodeToString(sum[:])
}
