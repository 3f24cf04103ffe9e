package auth

import (
	"crypto/sha1"
	"encoding/hex"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// Unsalted SHA1 hex digests from the legacy PHP application.
var legacyHashPattern = regexp.MustCompile(`^[a-f0-9]{40}$`)

// IsLegacyHash reports whether a stored hash is a legacy SHA1 digest.
// Anything that is not exactly 40 lowercase hex characters is treated as
// bcrypt.
func IsLegacyHash(hash string) bool {
	return legacyHashPattern.MatchString(hash)
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// VerifyPassword checks a raw password against a stored hash, supporting
// both legacy SHA1 and bcrypt encodings.
func VerifyPassword(password, hash string) bool {
	if IsLegacyHash(hash) {
		sum := sha1.Sum([]byte(password))
		return hex.EncodeToString(sum[:]) == hash
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
