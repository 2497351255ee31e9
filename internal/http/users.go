package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/showcasify/showcasify/internal/domain"
	"github.com/showcasify/showcasify/internal/service"
	"github.com/showcasify/showcasify/pkg/httpx"
)

type UsersHandler struct {
	AuthService *service.AuthService
	UserService *service.UserService
}

// userResponse is the public view of a user. Credential fields never leave
// the service.
type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Bio       *string   `json:"bio,omitempty"`
	Avatar    *string   `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		Bio:       u.Bio,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type createUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	Email    *string `json:"email"`
	Name     *string `json:"name"`
	Password *string `json:"password"`
	Bio      *string `json:"bio"`
	Avatar   *string `json:"avatar"`
	Role     *string `json:"role"`
}

// HandleCreate registers a new account. Registration is public and always
// produces a regular user; roles are granted by an admin afterwards.
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}
	if req.Email == "" || req.Name == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "email, name and password are required")
		return
	}

	user, err := h.UserService.Register(r.Context(), service.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(user))
}

func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if _, ok := principal(h.AuthService, w, r); !ok {
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	users, err := h.UserService.List(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if _, ok := principal(h.AuthService, w, r); !ok {
		return
	}

	user, err := h.UserService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// HandleUpdate mutates a user. Admin-or-self; role changes are admin only.
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.AuthService, w, r)
	if !ok {
		return
	}

	targetID := r.PathValue("id")
	if !p.CanManage(targetID) {
		httpx.WriteForbidden(w)
		return
	}

	var req updateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	in := service.UpdateInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Bio:      req.Bio,
		Avatar:   req.Avatar,
	}
	if req.Role != nil {
		if !p.Role.IsAdmin() {
			httpx.WriteForbidden(w)
			return
		}
		role := domain.Role(*req.Role)
		if !role.Valid() {
			httpx.WriteError(w, http.StatusBadRequest, "invalid role")
			return
		}
		in.Role = &role
	}

	user, err := h.UserService.Update(r.Context(), targetID, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// HandleDelete removes a user. Admin only.
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.AuthService, w, r)
	if !ok {
		return
	}
	if !p.Role.IsAdmin() {
		httpx.WriteForbidden(w)
		return
	}

	// Surface 404 for unknown IDs instead of silently succeeding.
	targetID := r.PathValue("id")
	if _, err := h.UserService.Get(r.Context(), targetID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.UserService.Delete(r.Context(), targetID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
