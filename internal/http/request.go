package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/showcasify/showcasify/internal/domain"
	"github.com/showcasify/showcasify/internal/service"
	"github.com/showcasify/showcasify/internal/store"
	"github.com/showcasify/showcasify/pkg/cryptox"
	"github.com/showcasify/showcasify/pkg/httpx"
	"github.com/showcasify/showcasify/pkg/slogx"
)

// maxBodyBytes caps request bodies; every payload here is small JSON.
const maxBodyBytes = 1 << 20

// decodeJSON parses the request body into dst, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return err
	}
	return nil
}

// principal loads the authenticated user behind the verified token subject.
// It writes the uniform challenge response itself when resolution fails, so
// callers just return on !ok.
func principal(auth *service.AuthService, w http.ResponseWriter, r *http.Request) (domain.User, bool) {
	ctx := r.Context()

	subject, ok := httpx.SubjectFromContext(ctx)
	if !ok {
		httpx.WriteBearerError(w)
		return domain.User{}, false
	}

	user, err := auth.ResolveSubject(ctx, subject)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			httpx.WriteBearerError(w)
		} else {
			slogx.FromContext(ctx).Error("failed to resolve principal", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
		}
		return domain.User{}, false
	}
	return user, true
}

// writeServiceError maps service and store errors onto HTTP responses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		httpx.WriteForbidden(w)
	case errors.Is(err, service.ErrDuplicateEmail):
		httpx.WriteError(w, http.StatusConflict, service.ErrDuplicateEmail.Error())
	case errors.Is(err, service.ErrInvalidResetToken):
		httpx.WriteError(w, http.StatusBadRequest, service.ErrInvalidResetToken.Error())
	case errors.Is(err, cryptox.ErrPasswordTooLong):
		httpx.WriteError(w, http.StatusBadRequest, "password must be at most 72 bytes")
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not found")
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
