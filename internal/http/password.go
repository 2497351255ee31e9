package http

import (
	"net/http"

	"github.com/showcasify/showcasify/internal/service"
	"github.com/showcasify/showcasify/pkg/httpx"
)

type PasswordHandler struct {
	PasswordService *service.PasswordService
}

type passwordResetRequest struct {
	Email string `json:"email"`
}

type passwordResetConfirm struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// HandleRequest starts a password reset. The response is 204 whether or not
// the email is registered.
func (h *PasswordHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	var req passwordResetRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}
	if req.Email == "" {
		httpx.WriteError(w, http.StatusBadRequest, "email is required")
		return
	}

	if err := h.PasswordService.Request(r.Context(), req.Email); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleConfirm consumes a reset token and sets the new password.
func (h *PasswordHandler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	var req passwordResetConfirm
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}
	if req.Token == "" || req.NewPassword == "" {
		httpx.WriteError(w, http.StatusBadRequest, "token and new_password are required")
		return
	}

	if err := h.PasswordService.Reset(r.Context(), req.Token, req.NewPassword); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
