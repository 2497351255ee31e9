package http

import (
	"net/http"
	"time"

	"github.com/showcasify/showcasify/internal/domain"
	"github.com/showcasify/showcasify/internal/service"
	"github.com/showcasify/showcasify/pkg/httpx"
)

type PreferencesHandler struct {
	AuthService       *service.AuthService
	PreferenceService *service.PreferenceService
}

type preferenceResponse struct {
	ID             string    `json:"id,omitempty"`
	UserID         string    `json:"user_id"`
	PrimaryColor   *string   `json:"primary_color,omitempty"`
	SecondaryColor *string   `json:"secondary_color,omitempty"`
	FontStyle      *string   `json:"font_style,omitempty"`
	LayoutOption   *string   `json:"layout_option,omitempty"`
	Theme          string    `json:"theme"`
	Language       string    `json:"language"`
	CreatedAt      time.Time `json:"created_at,omitzero"`
	UpdatedAt      time.Time `json:"updated_at,omitzero"`
}

func toPreferenceResponse(p domain.Preference) preferenceResponse {
	return preferenceResponse{
		ID:             p.ID,
		UserID:         p.UserID,
		PrimaryColor:   p.PrimaryColor,
		SecondaryColor: p.SecondaryColor,
		FontStyle:      p.FontStyle,
		LayoutOption:   p.LayoutOption,
		Theme:          p.Theme,
		Language:       p.Language,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

type preferenceRequest struct {
	PrimaryColor   *string `json:"primary_color"`
	SecondaryColor *string `json:"secondary_color"`
	FontStyle      *string `json:"font_style"`
	LayoutOption   *string `json:"layout_option"`
	Theme          string  `json:"theme"`
	Language       string  `json:"language"`
}

// HandleGet returns the principal's preferences, falling back to defaults
// when none are stored yet.
func (h *PreferencesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.AuthService, w, r)
	if !ok {
		return
	}

	pref, err := h.PreferenceService.Get(r.Context(), p.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPreferenceResponse(pref))
}

func (h *PreferencesHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.AuthService, w, r)
	if !ok {
		return
	}

	var req preferenceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	pref, err := h.PreferenceService.Put(r.Context(), p, service.PreferenceInput{
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		FontStyle:      req.FontStyle,
		LayoutOption:   req.LayoutOption,
		Theme:          req.Theme,
		Language:       req.Language,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPreferenceResponse(pref))
}
