package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/showcasify/showcasify/internal/domain"
	"github.com/showcasify/showcasify/internal/service"
	"github.com/showcasify/showcasify/internal/store"
	"github.com/showcasify/showcasify/internal/store/drivers/sqlite"
)

// newTestStore returns a migrated in-memory store, closed with the test.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// registerTestUser creates a user through the service layer so the password
// is hashed the same way production does it.
func registerTestUser(t *testing.T, st store.Store, email, password string, role domain.Role) domain.User {
	t.Helper()

	users := &service.UserService{Store: st}
	user, err := users.Register(context.Background(), service.RegisterInput{
		Email:    email,
		Name:     "Test User",
		Password: password,
		Role:     role,
	})
	require.NoError(t, err)
	return user
}
