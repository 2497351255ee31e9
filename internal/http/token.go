package http

import (
	"errors"
	"net/http"

	"github.com/showcasify/showcasify/internal/service"
	"github.com/showcasify/showcasify/pkg/httpx"
)

type TokenHandler struct {
	AuthService *service.AuthService
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ServeHTTP exchanges an email/password pair for a bearer token. The request
// is form-encoded in the password-grant shape, with the email carried in the
// username field.
func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	email := r.FormValue("username")
	if email == "" {
		email = r.FormValue("email")
	}
	password := r.FormValue("password")

	if email == "" || password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	token, err := h.AuthService.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			httpx.WriteError(w, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
			return
		}
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(h.AuthService.Codec.TTL().Seconds()),
	})
}
