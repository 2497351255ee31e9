package http

import (
	"net/http"
	"time"

	"github.com/showcasify/showcasify/internal/domain"
	"github.com/showcasify/showcasify/internal/service"
	"github.com/showcasify/showcasify/pkg/httpx"
)

type ExperiencesHandler struct {
	AuthService       *service.AuthService
	ExperienceService *service.ExperienceService
}

type experienceResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Description *string    `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toExperienceResponse(e domain.Experience) experienceResponse {
	return experienceResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		Title:       e.Title,
		Company:     e.Company,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

type experienceRequest struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Description *string    `json:"description"`
}

func (req experienceRequest) validate(w http.ResponseWriter) bool {
	if req.Title == "" || req.Company == "" || req.StartDate.IsZero() {
		httpx.WriteError(w, http.StatusBadRequest, "title, company and start_date are required")
		return false
	}
	return true
}

func (req experienceRequest) input() service.ExperienceInput {
	return service.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	}
}

func (h *ExperiencesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.AuthService, w, r)
	if !ok {
		return
	}

	items, err := h.ExperienceService.List(r.Context(), p.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]experienceResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toExperienceResponse(e))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *ExperiencesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.AuthService, w, r)
	if !ok {
		return
	}

	var req experienceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}
	if !req.validate(w) {
		return
	}

	created, err := h.ExperienceService.Create(r.Context(), p, req.input())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toExperienceResponse(created))
}

func (h *ExperiencesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.AuthService, w, r)
	if !ok {
		return
	}

	var req experienceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}
	if !req.validate(w) {
		return
	}

	updated, err := h.ExperienceService.Update(r.Context(), p, r.PathValue("id"), req.input())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toExperienceResponse(updated))
}

func (h *ExperiencesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.AuthService, w, r)
	if !ok {
		return
	}

	if err := h.ExperienceService.Delete(r.Context(), p, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
