package domain

import "time"

// User is the principal record. The password field always holds a bcrypt
// hash, never plaintext; only the credential workflows mutate it. The reset
// fields hold at most one active password-reset token and are cleared on a
// successful reset.
type User struct {
	ID           string // UUID
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	Bio          *string
	Avatar       *string

	ResetToken        *string
	ResetTokenExpires *time.Time // UTC

	CreatedAt time.Time
	UpdatedAt time.Time
}
