package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/showcasify/showcasify/pkg/jwtx"
	"github.com/showcasify/showcasify/pkg/slogx"
)

// AuthnMiddleware verifies the bearer token and injects the verified subject
// into the request context. Missing header, malformed token, bad signature
// and expired token all produce the same challenge response; the true cause
// is logged, never returned.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				WriteBearerError(w)
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			subject, err := v.Verify(raw)
			if err != nil {
				log.Warn("bearer token rejected", "err", err)
				WriteBearerError(w)
				return
			}

			ctx = context.WithValue(ctx, CtxKeySubject, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WriteBearerError writes the uniform RFC 6750 unauthenticated response with
// a re-authentication challenge.
func WriteBearerError(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="could not validate credentials"`)
	WriteError(w, http.StatusUnauthorized, "could not validate credentials")
}
