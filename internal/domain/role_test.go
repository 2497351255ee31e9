package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoleNormalize(t *testing.T) {
	t.Parallel()

	require.Equal(t, RoleUser, Role("").Normalize())
	require.Equal(t, RoleAdmin, RoleAdmin.Normalize())
	require.Equal(t, RoleUser, RoleUser.Normalize())
}

func TestRoleValid(t *testing.T) {
	t.Parallel()

	require.True(t, RoleAdmin.Valid())
	require.True(t, RoleUser.Valid())
	require.False(t, Role("").Valid())
	require.False(t, Role("superuser").Valid())
}

func TestCanManage(t *testing.T) {
	t.Parallel()

	admin := User{ID: "admin-id", Role: RoleAdmin}
	alice := User{ID: "alice-id", Role: RoleUser}

	t.Run("admin may act on any owner", func(t *testing.T) {
		require.True(t, admin.CanManage("alice-id"))
		require.True(t, admin.CanManage("admin-id"))
		require.True(t, admin.CanManage("someone-else"))
	})

	t.Run("user may act on own resources only", func(t *testing.T) {
		require.True(t, alice.CanManage("alice-id"))
		require.False(t, alice.CanManage("bob-id"))
	})
}
