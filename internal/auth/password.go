package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
)

const saltBytes = 16

// GenerateSalt returns 16 random bytes from crypto/rand, base64 encoded.
func GenerateSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}

// HashPassword computes an HMAC-SHA512 digest of the password keyed by
// the salt, base64 encoded. Deterministic for a given (password, salt).
func HashPassword(password, salt string) string {
	mac := hmac.New(sha512.New, []byte(salt))
	mac.Write([]byte(password))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// VerifyPassword recomputes the hash with the stored salt and compares
// in constant time.
func VerifyPassword(password, storedHash, storedSalt string) bool {
	computed := HashPassword(password, storedSalt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}
