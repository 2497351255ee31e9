package http

import (
	"net/http"
	"time"

	"github.com/showcasify/showcasify/internal/domain"
	"github.com/showcasify/showcasify/internal/service"
	"github.com/showcasify/showcasify/pkg/httpx"
)

type ProfileHandler struct {
	AuthService    *service.AuthService
	ProfileService *service.ProfileService
}

type profileResponse struct {
	ID                string            `json:"id"`
	UserID            string            `json:"user_id"`
	FullName          string            `json:"full_name"`
	ProfessionalTitle *string           `json:"professional_title,omitempty"`
	Bio               *string           `json:"bio,omitempty"`
	ContactInfo       map[string]string `json:"contact_info,omitempty"`
	SocialLinks       map[string]string `json:"social_links,omitempty"`
	Skills            []string          `json:"skills,omitempty"`
	ProfileImageURL   *string           `json:"profile_image_url,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

func toProfileResponse(p domain.ProfessionalInfo) profileResponse {
	return profileResponse{
		ID:                p.ID,
		UserID:            p.UserID,
		FullName:          p.FullName,
		ProfessionalTitle: p.ProfessionalTitle,
		Bio:               p.Bio,
		ContactInfo:       p.ContactInfo,
		SocialLinks:       p.SocialLinks,
		Skills:            p.Skills,
		ProfileImageURL:   p.ProfileImageURL,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

type profileRequest struct {
	FullName          string            `json:"full_name"`
	ProfessionalTitle *string           `json:"professional_title"`
	Bio               *string           `json:"bio"`
	ContactInfo       map[string]string `json:"contact_info"`
	SocialLinks       map[string]string `json:"social_links"`
	Skills            []string          `json:"skills"`
	ProfileImageURL   *string           `json:"profile_image_url"`
}

func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.AuthService, w, r)
	if !ok {
		return
	}

	info, err := h.ProfileService.Get(r.Context(), p.ID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProfileResponse(info))
}

func (h *ProfileHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.AuthService, w, r)
	if !ok {
		return
	}

	var req profileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}
	if req.FullName == "" {
		httpx.WriteError(w, http.StatusBadRequest, "full_name is required")
		return
	}

	info, err := h.ProfileService.Put(r.Context(), p, service.ProfileInput{
		FullName:          req.FullName,
		ProfessionalTitle: req.ProfessionalTitle,
		Bio:               req.Bio,
		ContactInfo:       req.ContactInfo,
		SocialLinks:       req.SocialLinks,
		Skills:            req.Skills,
		ProfileImageURL:   req.ProfileImageURL,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProfileResponse(info))
}

func (h *ProfileHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(h.AuthService, w, r)
	if !ok {
		return
	}

	if err := h.ProfileService.Delete(r.Context(), p, p.ID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
