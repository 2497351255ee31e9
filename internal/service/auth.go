package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/showcasify/showcasify/internal/domain"
	"github.com/showcasify/showcasify/internal/store"
	"github.com/showcasify/showcasify/pkg/cryptox"
	"github.com/showcasify/showcasify/pkg/jwtx"
	"github.com/showcasify/showcasify/pkg/slogx"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login responses can't be used to probe which emails are registered.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrUnauthenticated covers every bearer-token failure: bad signature,
	// expiry, malformed subject and unknown principal all look the same to
	// the caller. The real cause is logged, never surfaced.
	ErrUnauthenticated = errors.New("could not validate credentials")

	// ErrForbidden is the uniform denial for authorization failures,
	// independent of which rule failed.
	ErrForbidden = errors.New("not enough permissions")
)

type AuthService struct {
	Store store.Store
	Codec *jwtx.Codec
}

// Login verifies the email/password pair and issues an access token carrying
// the user's ID as subject.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login attempt for unknown email")
			return "", ErrInvalidCredentials
		}
		log.Error("failed to fetch user for login", slog.Any("error", err))
		return "", err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Warn("login attempt with wrong password", slog.String("user_id", user.ID))
		return "", ErrInvalidCredentials
	}

	token, err := s.Codec.Sign(user.ID)
	if err != nil {
		log.Error("failed to sign access token", slog.Any("error", err))
		return "", err
	}

	log.Debug("login succeeded", slog.String("user_id", user.ID))
	return token, nil
}

// Resolve recovers the authenticated principal from a bearer token. Decode
// failure, a malformed subject and a missing principal all fail as
// ErrUnauthenticated.
func (s *AuthService) Resolve(ctx context.Context, token string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	subject, err := s.Codec.Verify(token)
	if err != nil {
		log.Warn("token verification failed")
		return domain.User{}, ErrUnauthenticated
	}

	return s.ResolveSubject(ctx, subject)
}

// ResolveSubject loads the principal behind an already-verified token
// subject.
func (s *AuthService) ResolveSubject(ctx context.Context, subject string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if _, err := uuid.Parse(subject); err != nil {
		log.Warn("token subject is not a valid user id")
		return domain.User{}, ErrUnauthenticated
	}

	user, err := s.Store.Users().GetUserByID(ctx, subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("token subject no longer exists", slog.String("user_id", subject))
			return domain.User{}, ErrUnauthenticated
		}
		log.Error("failed to fetch user for token", slog.Any("error", err))
		return domain.User{}, err
	}

	return user, nil
}
