package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/showcasify/showcasify/internal/mail"
	"github.com/showcasify/showcasify/internal/store"
	"github.com/showcasify/showcasify/pkg/cryptox"
	"github.com/showcasify/showcasify/pkg/slogx"
)

// ErrInvalidResetToken covers every consume-time failure: a token that never
// existed, one that expired and one that was already used are all reported
// the same way.
var ErrInvalidResetToken = errors.New("invalid or expired token")

// DefaultResetTokenTTL is how long a password-reset token stays valid.
const DefaultResetTokenTTL = 24 * time.Hour

// PasswordService owns the reset-token lifecycle. A user holds at most one
// active token: issuing a new one overwrites the previous, and a successful
// reset clears the stored token so it is single-use.
type PasswordService struct {
	Store  store.Store
	Mailer mail.Mailer

	// TokenTTL defaults to DefaultResetTokenTTL when zero.
	TokenTTL time.Duration

	// Now is the clock used for expiry stamps and checks. Tests override it.
	Now func() time.Time
}

func (s *PasswordService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *PasswordService) ttl() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return DefaultResetTokenTTL
}

// Request issues a reset token for the account registered under email and
// hands it to the mailer. It returns nil for unknown emails too: the caller
// must not be able to tell whether an address is registered. Mail delivery
// failure is logged but does not fail the request, the token is already
// persisted and a retry will overwrite it anyway.
func (s *PasswordService) Request(ctx context.Context, email string) error {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("password reset requested for unknown email")
			return nil
		}
		log.Error("failed to fetch user for password reset", slog.Any("error", err))
		return err
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate reset token", slog.Any("error", err))
		return err
	}
	expires := s.now().Add(s.ttl())

	// Overwrites any previous token: single-active-token-per-user policy.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().SetResetToken(ctx, user.ID, token, expires)
	})
	if err != nil {
		log.Error("failed to store reset token", slog.Any("error", err))
		return err
	}

	if err := s.Mailer.SendPasswordReset(ctx, user.Email, user.Name, token); err != nil {
		log.Error("failed to send reset email",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
	}

	log.Debug("reset token issued",
		slog.String("user_id", user.ID),
		slog.Time("expires_at", expires),
	)
	return nil
}

// Reset consumes a token: it finds the user holding an unexpired matching
// token, replaces the password hash and clears the token, all in one
// transaction so the token can never be spent twice.
func (s *PasswordService) Reset(ctx context.Context, token, newPassword string) error {
	log := slogx.FromContext(ctx)

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		log.Error("failed to hash new password", slog.Any("error", err))
		return err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByResetToken(ctx, token, s.now())
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				log.Warn("password reset attempted with invalid or expired token")
				return ErrInvalidResetToken
			}
			return err
		}

		if err := tx.Users().UpdatePasswordHash(ctx, user.ID, hash); err != nil {
			return err
		}
		if err := tx.Users().ClearResetToken(ctx, user.ID); err != nil {
			return err
		}

		log.Info("password reset completed", slog.String("user_id", user.ID))
		return nil
	})
	if err != nil && !errors.Is(err, ErrInvalidResetToken) {
		log.Error("password reset transaction failed", slog.Any("error", err))
	}
	return err
}
