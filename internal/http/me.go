package http

import (
	"net/http"

	"github.com/showcasify/showcasify/internal/service"
	"github.com/showcasify/showcasify/pkg/httpx"
)

type MeHandler struct {
	AuthService *service.AuthService
	UserService *service.UserService
}

func (h *MeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.AuthService, w, r)
	if !ok {
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(p))
}

// HandleUpdate lets the principal edit their own account. Role changes are
// not accepted here; they go through the admin user endpoint.
func (h *MeHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.AuthService, w, r)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}
	if req.Role != nil {
		httpx.WriteForbidden(w)
		return
	}

	user, err := h.UserService.Update(r.Context(), p.ID, service.UpdateInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Bio:      req.Bio,
		Avatar:   req.Avatar,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}
