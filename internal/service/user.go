package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/showcasify/showcasify/internal/domain"
	"github.com/showcasify/showcasify/internal/store"
	"github.com/showcasify/showcasify/pkg/cryptox"
	"github.com/showcasify/showcasify/pkg/slogx"
)

// ErrDuplicateEmail is safe to surface explicitly: registration already
// discloses whether an email exists.
var ErrDuplicateEmail = errors.New("email already registered")

type UserService struct {
	Store store.Store
}

// RegisterInput carries the public registration fields.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
	Role     domain.Role // defaults to RoleUser
}

// UpdateInput carries optional user mutations; nil fields are left as-is.
type UpdateInput struct {
	Email    *string
	Name     *string
	Password *string
	Bio      *string
	Avatar   *string
	Role     *domain.Role
}

// Register creates a new user with a hashed password.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if _, err := s.Store.Users().GetUserByEmail(ctx, in.Email); err == nil {
		return domain.User{}, ErrDuplicateEmail
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check email availability", slog.Any("error", err))
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: hash,
		Role:         in.Role.Normalize(),
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		// The unique index is authoritative under concurrent registration.
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrDuplicateEmail
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user registered", slog.String("user_id", user.ID))
	return user, nil
}

// Get fetches a user by id.
func (s *UserService) Get(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// List returns users ordered by creation date.
func (s *UserService) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.Store.Users().ListUsers(ctx, limit, offset)
}

// Update applies the provided mutations to the target user. An email change
// is rejected when another account already holds the address; a password
// change is rehashed before storage.
func (s *UserService) Update(ctx context.Context, userID string, in UpdateInput) (domain.User, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	if in.Email != nil && *in.Email != user.Email {
		existing, err := s.Store.Users().GetUserByEmail(ctx, *in.Email)
		if err == nil && existing.ID != userID {
			return domain.User{}, ErrDuplicateEmail
		}
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return domain.User{}, err
		}
		user.Email = *in.Email
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Bio != nil {
		user.Bio = in.Bio
	}
	if in.Avatar != nil {
		user.Avatar = in.Avatar
	}
	if in.Role != nil && in.Role.Valid() {
		user.Role = *in.Role
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdateUser(ctx, user); err != nil {
			return err
		}
		if in.Password != nil {
			hash, err := cryptox.HashPassword(*in.Password)
			if err != nil {
				return err
			}
			user.PasswordHash = hash
			return tx.Users().UpdatePasswordHash(ctx, userID, hash)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrDuplicateEmail
		}
		log.Error("failed to update user", slog.String("user_id", userID), slog.Any("error", err))
		return domain.User{}, err
	}

	return user, nil
}

// Delete removes a user; the schema cascades to all portfolio records.
func (s *UserService) Delete(ctx context.Context, userID string) error {
	return s.Store.Users().DeleteUser(ctx, userID)
}
