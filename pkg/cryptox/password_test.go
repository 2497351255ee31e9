package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 70)},
		{"boundary length password", strings.Repeat("a", MaxPasswordLength)},
		{"unicode password", "пароль密码"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)
			require.NotEmpty(t, hash)

			// The hash must never equal the plaintext.
			require.NotEqual(t, tt.password, hash)

			// bcrypt modular crypt format
			require.True(t, strings.HasPrefix(hash, "$2"),
				"hash should be in bcrypt format")

			require.NoError(t, VerifyPassword(tt.password, hash))
		})
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"one byte over", strings.Repeat("a", MaxPasswordLength+1)},
		{"far over", strings.Repeat("a", 200)},
		{"multibyte runes over the byte limit", strings.Repeat("密", 25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// bcrypt only reads 72 bytes; anything longer is rejected up
			// front instead of being silently truncated.
			_, err := HashPassword(tt.password)
			require.ErrorIs(t, err, ErrPasswordTooLong)
		})
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	password := "samepassword"

	hash1, err := HashPassword(password)
	require.NoError(t, err)

	hash2, err := HashPassword(password)
	require.NoError(t, err)

	// Each hash should differ thanks to the embedded random salt.
	require.NotEqual(t, hash1, hash2)

	// But both should verify the same password.
	require.NoError(t, VerifyPassword(password, hash1))
	require.NoError(t, VerifyPassword(password, hash2))
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("correct-password")
	require.NoError(t, err)

	tests := []struct {
		name          string
		wrongPassword string
	}{
		{"completely wrong", "wrong-password"},
		{"case difference", "Correct-Password"},
		{"extra space", "correct-password "},
		{"empty password", ""},
		{"truncated", "correct-passwor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyPassword(tt.wrongPassword, hash)
			require.ErrorIs(t, err, ErrPasswordMismatch)
		})
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	tests := []struct {
		name        string
		invalidHash string
	}{
		{"empty hash", ""},
		{"not a hash", "plaintext"},
		{"wrong scheme", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"truncated bcrypt", "$2a$12$tooshort"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Malformed hashes must report a mismatch, never panic and
			// never reveal why verification failed.
			err := VerifyPassword("any-password", tt.invalidHash)
			require.ErrorIs(t, err, ErrPasswordMismatch)
		})
	}
}
