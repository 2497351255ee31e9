package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/showcasify/showcasify/internal/domain"
	"github.com/showcasify/showcasify/internal/service"
	"github.com/showcasify/showcasify/pkg/jwtx"
)

func newTestCodec(t *testing.T) *jwtx.Codec {
	t.Helper()

	codec, err := jwtx.New(jwtx.Config{
		Secret:    []byte("test-secret-key"),
		Algorithm: "HS256",
		TTL:       30 * time.Minute,
	})
	require.NoError(t, err)
	return codec
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	user := registerTestUser(t, st, "alice@example.com", "correct horse", domain.RoleUser)

	auth := &service.AuthService{Store: st, Codec: newTestCodec(t)}

	t.Run("valid credentials issue a token for the user", func(t *testing.T) {
		token, err := auth.Login(ctx, "alice@example.com", "correct horse")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		resolved, err := auth.Resolve(ctx, token)
		require.NoError(t, err)
		require.Equal(t, user.ID, resolved.ID)
		require.Equal(t, user.Email, resolved.Email)
	})

	t.Run("wrong password fails", func(t *testing.T) {
		_, err := auth.Login(ctx, "alice@example.com", "battery staple")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown email fails with the same error", func(t *testing.T) {
		_, err := auth.Login(ctx, "nobody@example.com", "correct horse")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_Resolve(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	user := registerTestUser(t, st, "alice@example.com", "correct horse", domain.RoleUser)

	codec := newTestCodec(t)
	auth := &service.AuthService{Store: st, Codec: codec}

	t.Run("garbage token", func(t *testing.T) {
		_, err := auth.Resolve(ctx, "not-a-jwt")
		require.ErrorIs(t, err, service.ErrUnauthenticated)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		other, err := jwtx.New(jwtx.Config{Secret: []byte("some-other-secret"), Algorithm: "HS256"})
		require.NoError(t, err)

		token, err := other.Sign(user.ID)
		require.NoError(t, err)

		_, err = auth.Resolve(ctx, token)
		require.ErrorIs(t, err, service.ErrUnauthenticated)
	})

	t.Run("valid token whose subject is not a uuid", func(t *testing.T) {
		token, err := codec.Sign("definitely-not-a-uuid")
		require.NoError(t, err)

		_, err = auth.Resolve(ctx, token)
		require.ErrorIs(t, err, service.ErrUnauthenticated)
	})

	t.Run("valid token for a deleted user", func(t *testing.T) {
		ghost := registerTestUser(t, st, "ghost@example.com", "pw-for-ghost", domain.RoleUser)
		token, err := codec.Sign(ghost.ID)
		require.NoError(t, err)

		users := &service.UserService{Store: st}
		require.NoError(t, users.Delete(ctx, ghost.ID))

		_, err = auth.Resolve(ctx, token)
		require.ErrorIs(t, err, service.ErrUnauthenticated)
	})
}
