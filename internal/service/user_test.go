package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/showcasify/showcasify/internal/domain"
	"github.com/showcasify/showcasify/internal/service"
	"github.com/showcasify/showcasify/internal/store"
	"github.com/showcasify/showcasify/pkg/cryptox"
)

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := &service.UserService{Store: st}

	t.Run("creates a user with a hashed password", func(t *testing.T) {
		user, err := users.Register(ctx, service.RegisterInput{
			Email:    "alice@example.com",
			Name:     "Alice",
			Password: "correct horse",
		})
		require.NoError(t, err)

		_, err = uuid.Parse(user.ID)
		require.NoError(t, err)
		require.Equal(t, domain.RoleUser, user.Role)
		require.NotEqual(t, "correct horse", user.PasswordHash)
		require.NoError(t, cryptox.VerifyPassword("correct horse", user.PasswordHash))
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		_, err := users.Register(ctx, service.RegisterInput{
			Email:    "alice@example.com",
			Name:     "Another Alice",
			Password: "other password",
		})
		require.ErrorIs(t, err, service.ErrDuplicateEmail)
	})

	t.Run("rejects a password over the bcrypt input limit", func(t *testing.T) {
		_, err := users.Register(ctx, service.RegisterInput{
			Email:    "longpass@example.com",
			Name:     "Long",
			Password: strings.Repeat("a", cryptox.MaxPasswordLength+1),
		})
		require.ErrorIs(t, err, cryptox.ErrPasswordTooLong)
	})

	t.Run("keeps an explicit admin role", func(t *testing.T) {
		user, err := users.Register(ctx, service.RegisterInput{
			Email:    "admin@example.com",
			Name:     "Admin",
			Password: "admin password",
			Role:     domain.RoleAdmin,
		})
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, user.Role)
	})
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := &service.UserService{Store: st}

	alice := registerTestUser(t, st, "alice@example.com", "old password", domain.RoleUser)
	registerTestUser(t, st, "bob@example.com", "bob password", domain.RoleUser)

	t.Run("updates profile fields", func(t *testing.T) {
		name := "Alice Cooper"
		bio := "musician"
		updated, err := users.Update(ctx, alice.ID, service.UpdateInput{
			Name: &name,
			Bio:  &bio,
		})
		require.NoError(t, err)
		require.Equal(t, "Alice Cooper", updated.Name)
		require.NotNil(t, updated.Bio)
		require.Equal(t, "musician", *updated.Bio)
	})

	t.Run("rehashes a changed password", func(t *testing.T) {
		password := "new password"
		_, err := users.Update(ctx, alice.ID, service.UpdateInput{Password: &password})
		require.NoError(t, err)

		stored, err := st.Users().GetUserByID(ctx, alice.ID)
		require.NoError(t, err)
		require.NoError(t, cryptox.VerifyPassword("new password", stored.PasswordHash))
	})

	t.Run("rejects an email already held by another account", func(t *testing.T) {
		email := "bob@example.com"
		_, err := users.Update(ctx, alice.ID, service.UpdateInput{Email: &email})
		require.ErrorIs(t, err, service.ErrDuplicateEmail)
	})

	t.Run("unknown user", func(t *testing.T) {
		name := "Nobody"
		_, err := users.Update(ctx, uuid.NewString(), service.UpdateInput{Name: &name})
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestUserService_Delete_Cascades(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := &service.UserService{Store: st}

	alice := registerTestUser(t, st, "alice@example.com", "password one", domain.RoleUser)

	todos := &service.TodoService{Store: st}
	todo, err := todos.Create(ctx, alice, service.TodoInput{Title: "write tests"})
	require.NoError(t, err)

	require.NoError(t, users.Delete(ctx, alice.ID))

	_, err = st.Users().GetUserByID(ctx, alice.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Todos().GetByID(ctx, todo.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}
