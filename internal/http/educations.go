package http

import (
	"net/http"
	"time"

	"github.com/showcasify/showcasify/internal/domain"
	"github.com/showcasify/showcasify/internal/service"
	"github.com/showcasify/showcasify/pkg/httpx"
)

type EducationsHandler struct {
	AuthService      *service.AuthService
	EducationService *service.EducationService
}

type educationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	School    string    `json:"school"`
	Degree    *string   `json:"degree,omitempty"`
	StartYear *int      `json:"start_year,omitempty"`
	EndYear   *int      `json:"end_year,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toEducationResponse(e domain.Education) educationResponse {
	return educationResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		School:    e.School,
		Degree:    e.Degree,
		StartYear: e.StartYear,
		EndYear:   e.EndYear,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

type educationRequest struct {
	School    string  `json:"school"`
	Degree    *string `json:"degree"`
	StartYear *int    `json:"start_year"`
	EndYear   *int    `json:"end_year"`
}

func (req educationRequest) input() service.EducationInput {
	return service.EducationInput{
		School:    req.School,
		Degree:    req.Degree,
		StartYear: req.StartYear,
		EndYear:   req.EndYear,
	}
}

func (h *EducationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.AuthService, w, r)
	if !ok {
		return
	}

	items, err := h.EducationService.List(r.Context(), p.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]educationResponse, 0, len(items))
	for _, e := range items {
		out = append(out, toEducationResponse(e))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *EducationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.AuthService, w, r)
	if !ok {
		return
	}

	var req educationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}
	if req.School == "" {
		httpx.WriteError(w, http.StatusBadRequest, "school is required")
		return
	}

	created, err := h.EducationService.Create(r.Context(), p, req.input())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toEducationResponse(created))
}

func (h *EducationsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.AuthService, w, r)
	if !ok {
		return
	}

	var req educationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}
	if req.School == "" {
		httpx.WriteError(w, http.StatusBadRequest, "school is required")
		return
	}

	updated, err := h.EducationService.Update(r.Context(), p, r.PathValue("id"), req.input())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toEducationResponse(updated))
}

func (h *EducationsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.AuthService, w, r)
	if !ok {
		return
	}

	if err := h.EducationService.Delete(r.Context(), p, r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
