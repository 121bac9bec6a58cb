package impl

import (
	"crypto/sha256"
	"encoding/hex"
)

// hashToken returns the hex SHA-256 of a raw refresh token. Only the hash is stored.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
