package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	errs "github.com/ONSdigital/dp-applications-api/apierrors"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const tokenBytes = 32

// HashPassword hashes a plaintext password for storage
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plaintext password matches the stored hash
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword checks a candidate password against the minimum length
// for the caller's role
func ValidatePassword(password string, minLength int) error {
	if len(password) < minLength {
		return errs.ErrPasswordTooShort
	}
	return nil
}

// GenerateToken issues an opaque bearer token. Only its hash is ever stored.
func GenerateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "failed to generate token")
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// HashToken returns the hex encoded SHA-256 of a bearer token
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
