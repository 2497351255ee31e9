package http

import (
	"net/http"
	"time"

	"github.com/showcasify/showcasify/internal/domain"
	"github.com/showcasify/showcasify/internal/service"
	"github.com/showcasify/showcasify/pkg/httpx"
)

type ProjectsHandler struct {
	AuthService    *service.AuthService
	ProjectService *service.ProjectService
}

type projectResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	ProjectURL  *string   `json:"project_url,omitempty"`
	GithubURL   *string   `json:"github_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toProjectResponse(p domain.Project) projectResponse {
	return projectResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Title:       p.Title,
		Description: p.Description,
		ProjectURL:  p.ProjectURL,
		GithubURL:   p.GithubURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type projectRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	ProjectURL  *string `json:"project_url"`
	GithubURL   *string `json:"github_url"`
}

func (req projectRequest) input() service.ProjectInput {
	return service.ProjectInput{
		Title:       req.Title,
		Description: req.Description,
		ProjectURL:  req.ProjectURL,
		GithubURL:   req.GithubURL,
	}
}

func (h *ProjectsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.AuthService, w, r)
	if !ok {
		return
	}

	items, err := h.ProjectService.List(r.Context(), p.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]projectResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toProjectResponse(item))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *ProjectsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.AuthService, w, r)
	if !ok {
		return
	}

	var req projectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}
	if req.Title == "" {
		httpx.WriteError(w, http.StatusBadRequest, "title is required")
		return
	}

	created, err := h.ProjectService.Create(r.Context(), p, req.input())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toProjectResponse(created))
}

func (h *ProjectsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.AuthService, w, r)
	if !ok {
		return
	}

	var req projectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}
	if req.Title == "" {
		httpx.WriteError(w, http.StatusBadRequest, "title is required")
		return
	}

	updated, err := h.ProjectService.Update(r.Context(), p, r.PathValue("id"), req.input())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProjectResponse(updated))
}

func (h *ProjectsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.AuthService, w, r)
	if !ok {
		return
	}

	if err := h.ProjectService.Delete(r.Context(), p, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
