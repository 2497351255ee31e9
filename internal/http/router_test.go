package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	httpapi "github.com/showcasify/showcasify/internal/http"
	"github.com/showcasify/showcasify/internal/service"
	"github.com/showcasify/showcasify/internal/store"
	"github.com/showcasify/showcasify/internal/store/drivers/sqlite"
	"github.com/showcasify/showcasify/pkg/jwtx"
)

type capturedMail struct {
	to    string
	token string
}

type testMailer struct {
	sent []capturedMail
}

func (m *testMailer) SendPasswordReset(_ context.Context, to, _ string, token string) error {
	m.sent = append(m.sent, capturedMail{to: to, token: token})
	return nil
}

type testEnv struct {
	server *httptest.Server
	store  store.Store
	mailer *testMailer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	codec, err := jwtx.New(jwtx.Config{
		Secret:    []byte("router-test-secret"),
		Algorithm: "HS256",
		TTL:       30 * time.Minute,
	})
	require.NoError(t, err)

	mailer := &testMailer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := httpapi.NewRouter(codec, "test", st, logger)
	router.AuthService = &service.AuthService{Store: st, Codec: codec}
	router.UserService = &service.UserService{Store: st}
	router.PasswordService = &service.PasswordService{Store: st, Mailer: mailer}
	router.ProfileService = &service.ProfileService{Store: st}
	router.EducationService = &service.EducationService{Store: st}
	router.ExperienceService = &service.ExperienceService{Store: st}
	router.ProjectService = &service.ProjectService{Store: st}
	router.PreferenceService = &service.PreferenceService{Store: st}
	router.TodoService = &service.TodoService{Store: st}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testEnv{server: server, store: st, mailer: mailer}
}

func (e *testEnv) postJSON(t *testing.T, path, bearer string, body any) *http.Response {
	t.Helper()
	return e.do(t, http.MethodPost, path, bearer, body)
}

func (e *testEnv) do(t *testing.T, method, path, bearer string, body any) *http.Response {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, e.server.URL+path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := e.server.Client().Do(req)
	require.NoError(t, err)
	return resp
}

// login exchanges credentials for a bearer token via the token endpoint.
func (e *testEnv) login(t *testing.T, email, password string) (string, int) {
	t.Helper()

	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	resp, err := e.server.Client().Post(
		e.server.URL+"/v1/auth/token",
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	require.NoError(t, err)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", resp.StatusCode
	}

	var body struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "bearer", body.TokenType)
	require.NotZero(t, body.ExpiresIn)
	return body.AccessToken, resp.StatusCode
}

func (e *testEnv) register(t *testing.T, email, name, password string) string {
	t.Helper()

	resp := e.postJSON(t, "/v1/users", "", map[string]string{
		"email":    email,
		"name":     name,
		"password": password,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.ID
}

func decodeBody(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

func TestCredentialLifecycle(t *testing.T) {
	env := newTestEnv(t)

	aliceID := env.register(t, "alice@example.com", "Alice", "old password")

	t.Run("duplicate registration is rejected", func(t *testing.T) {
		resp := env.postJSON(t, "/v1/users", "", map[string]string{
			"email":    "alice@example.com",
			"name":     "Impostor",
			"password": "whatever",
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	token, code := env.login(t, "alice@example.com", "old password")
	require.Equal(t, http.StatusOK, code)

	t.Run("me returns the authenticated user", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/v1/me", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var me struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Role  string `json:"role"`
		}
		decodeBody(t, resp, &me)
		require.Equal(t, aliceID, me.ID)
		require.Equal(t, "alice@example.com", me.Email)
		require.Equal(t, "user", me.Role)
	})

	t.Run("me without a token is challenged", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/v1/me", "", nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Contains(t, resp.Header.Get("WWW-Authenticate"), "Bearer")
	})

	t.Run("reset flow rotates the password", func(t *testing.T) {
		resp := env.postJSON(t, "/v1/password/reset", "", map[string]string{
			"email": "alice@example.com",
		})
		resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
		require.Len(t, env.mailer.sent, 1)
		require.Equal(t, "alice@example.com", env.mailer.sent[0].to)

		resetToken := env.mailer.sent[0].token
		resp = env.postJSON(t, "/v1/password/reset/confirm", "", map[string]string{
			"token":        resetToken,
			"new_password": "new password",
		})
		resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		_, code := env.login(t, "alice@example.com", "old password")
		require.Equal(t, http.StatusUnauthorized, code)

		_, code = env.login(t, "alice@example.com", "new password")
		require.Equal(t, http.StatusOK, code)
	})

	t.Run("spent reset token is rejected", func(t *testing.T) {
		resp := env.postJSON(t, "/v1/password/reset/confirm", "", map[string]string{
			"token":        env.mailer.sent[0].token,
			"new_password": "sneaky password",
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("reset request for unknown email still returns 204", func(t *testing.T) {
		resp := env.postJSON(t, "/v1/password/reset", "", map[string]string{
			"email": "nobody@example.com",
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
		require.Len(t, env.mailer.sent, 1)
	})
}

func TestPasswordLengthLimit(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice@example.com", "Alice", "alice password")
	token, code := env.login(t, "alice@example.com", "alice password")
	require.Equal(t, http.StatusOK, code)

	// One byte past the 72-byte bcrypt input limit.
	long := strings.Repeat("a", 73)

	t.Run("registration rejects an over-length password", func(t *testing.T) {
		resp := env.postJSON(t, "/v1/users", "", map[string]string{
			"email":    "bob@example.com",
			"name":     "Bob",
			"password": long,
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("self update rejects an over-length password", func(t *testing.T) {
		resp := env.do(t, http.MethodPut, "/v1/me", token, map[string]string{
			"password": long,
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("reset confirm rejects an over-length password", func(t *testing.T) {
		resp := env.postJSON(t, "/v1/password/reset", "", map[string]string{
			"email": "alice@example.com",
		})
		resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
		require.Len(t, env.mailer.sent, 1)

		resp = env.postJSON(t, "/v1/password/reset/confirm", "", map[string]string{
			"token":        env.mailer.sent[0].token,
			"new_password": long,
		})
		resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		// The rejected confirm must not burn the token.
		resp = env.postJSON(t, "/v1/password/reset/confirm", "", map[string]string{
			"token":        env.mailer.sent[0].token,
			"new_password": "a sensible password",
		})
		resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
	})
}

func TestLogin_InvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice@example.com", "Alice", "correct horse")

	t.Run("wrong password", func(t *testing.T) {
		_, code := env.login(t, "alice@example.com", "battery staple")
		require.Equal(t, http.StatusUnauthorized, code)
	})

	t.Run("unknown email matches the wrong-password status", func(t *testing.T) {
		_, code := env.login(t, "nobody@example.com", "correct horse")
		require.Equal(t, http.StatusUnauthorized, code)
	})
}

func TestUserAuthorization(t *testing.T) {
	env := newTestEnv(t)

	aliceID := env.register(t, "alice@example.com", "Alice", "alice password")
	bobID := env.register(t, "bob@example.com", "Bob", "bob password")

	// Promote alice through the store; registration never grants admin.
	ctx := context.Background()
	alice, err := env.store.Users().GetUserByID(ctx, aliceID)
	require.NoError(t, err)
	alice.Role = "admin"
	require.NoError(t, env.store.Users().UpdateUser(ctx, alice))

	aliceToken, code := env.login(t, "alice@example.com", "alice password")
	require.Equal(t, http.StatusOK, code)
	bobToken, code := env.login(t, "bob@example.com", "bob password")
	require.Equal(t, http.StatusOK, code)

	t.Run("non-admin cannot update another user", func(t *testing.T) {
		resp := env.do(t, http.MethodPut, "/v1/users/"+aliceID, bobToken, map[string]string{
			"name": "Hijacked",
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("non-admin cannot grant roles to themselves", func(t *testing.T) {
		resp := env.do(t, http.MethodPut, "/v1/users/"+bobID, bobToken, map[string]string{
			"role": "admin",
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("self update is allowed", func(t *testing.T) {
		resp := env.do(t, http.MethodPut, "/v1/users/"+bobID, bobToken, map[string]string{
			"name": "Robert",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Name string `json:"name"`
		}
		decodeBody(t, resp, &body)
		require.Equal(t, "Robert", body.Name)
	})

	t.Run("non-admin cannot delete users", func(t *testing.T) {
		resp := env.do(t, http.MethodDelete, "/v1/users/"+aliceID, bobToken, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin can update and delete another user", func(t *testing.T) {
		resp := env.do(t, http.MethodPut, "/v1/users/"+bobID, aliceToken, map[string]string{
			"name": "Bob Again",
		})
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = env.do(t, http.MethodDelete, "/v1/users/"+bobID, aliceToken, nil)
		resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		// Bob's token no longer resolves to a principal.
		resp = env.do(t, http.MethodGet, "/v1/me", bobToken, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestPortfolioRoutes(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice@example.com", "Alice", "alice password")
	token, code := env.login(t, "alice@example.com", "alice password")
	require.Equal(t, http.StatusOK, code)

	t.Run("profile put then get", func(t *testing.T) {
		resp := env.do(t, http.MethodPut, "/v1/profile", token, map[string]any{
			"full_name": "Alice Example",
			"skills":    []string{"go", "sqlite"},
		})
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = env.do(t, http.MethodGet, "/v1/profile", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var profile struct {
			FullName string   `json:"full_name"`
			Skills   []string `json:"skills"`
		}
		decodeBody(t, resp, &profile)
		require.Equal(t, "Alice Example", profile.FullName)
		require.Equal(t, []string{"go", "sqlite"}, profile.Skills)
	})

	t.Run("preferences default then override", func(t *testing.T) {
		resp := env.do(t, http.MethodGet, "/v1/preferences", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var prefs struct {
			Theme    string `json:"theme"`
			Language string `json:"language"`
		}
		decodeBody(t, resp, &prefs)
		require.Equal(t, "light", prefs.Theme)
		require.Equal(t, "en", prefs.Language)

		resp = env.do(t, http.MethodPut, "/v1/preferences", token, map[string]string{
			"theme": "dark",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		decodeBody(t, resp, &prefs)
		require.Equal(t, "dark", prefs.Theme)
	})

	t.Run("todo create list delete", func(t *testing.T) {
		resp := env.postJSON(t, "/v1/todos", token, map[string]string{
			"title": "finish portfolio",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var todo struct {
			ID string `json:"id"`
		}
		decodeBody(t, resp, &todo)
		require.NotEmpty(t, todo.ID)

		resp = env.do(t, http.MethodGet, "/v1/todos", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var todos []struct {
			Title string `json:"title"`
		}
		decodeBody(t, resp, &todos)
		require.Len(t, todos, 1)

		resp = env.do(t, http.MethodDelete, "/v1/todos/"+todo.ID, token, nil)
		resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("cannot mutate another user's project", func(t *testing.T) {
		env.register(t, "mallory@example.com", "Mallory", "mallory password")
		malloryToken, code := env.login(t, "mallory@example.com", "mallory password")
		require.Equal(t, http.StatusOK, code)

		resp := env.postJSON(t, "/v1/projects", token, map[string]string{
			"title": "Showcase",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var project struct {
			ID string `json:"id"`
		}
		decodeBody(t, resp, &project)

		resp = env.do(t, http.MethodDelete, "/v1/projects/"+project.ID, malloryToken, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.server.Client().Get(env.server.URL + "/livez")
	require.NoError(t, err)
	var live struct {
		Status string `json:"status"`
	}
	decodeBody(t, resp, &live)
	require.Equal(t, "ok", live.Status)

	resp, err = env.server.Client().Get(env.server.URL + "/readyz")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var ready struct {
		Status string `json:"status"`
		Checks struct {
			Database string `json:"database"`
		} `json:"checks"`
	}
	decodeBody(t, resp, &ready)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks.Database)
}
