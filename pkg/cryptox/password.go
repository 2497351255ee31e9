package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor used for new password hashes. Existing
// hashes keep whatever cost they were created with; bcrypt encodes the
// cost alongside the salt so verification doesn't need it.
const BcryptCost = 12

// MaxPasswordLength is the longest password bcrypt will accept, in bytes.
const MaxPasswordLength = 72

var (
	ErrPasswordMismatch = errors.New("cryptox: password does not match")

	// ErrPasswordTooLong reports a password over MaxPasswordLength bytes.
	// Callers surface it as a validation error rather than truncating.
	ErrPasswordTooLong = errors.New("cryptox: password exceeds 72 bytes")
)

// HashPassword hashes a plaintext password with bcrypt. The returned string
// embeds the per-call random salt and the cost parameter. Passwords over
// MaxPasswordLength bytes fail with ErrPasswordTooLong.
func HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordLength {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a stored bcrypt hash.
// It returns ErrPasswordMismatch for a wrong password and for any malformed
// hash, so callers can't tell the two apart. The underlying comparison is
// constant-time.
func VerifyPassword(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err != nil {
		return ErrPasswordMismatch
	}
	return nil
}
