package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the hex SHA-256 of the password concatenated with
// the registry passphrase. The passphrase acts as a fixed pepper, not a
// per-user salt, so identical passwords hash identically across users;
// a per-user salt (or bcrypt) would be the fix. Kept for compatibility
// with existing registries.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password + encryptionPassphrase))
	return hex.EncodeToString(sum[:])
}

// verifyPassword compares a candidate password against a stored hash in
// constant time.
func verifyPassword(password, storedHash string) bool {
	candidate := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(storedHash)) == 1
}
