package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/showcasify/showcasify/internal/service"
	"github.com/showcasify/showcasify/internal/store"
	"github.com/showcasify/showcasify/pkg/httpx"
	"github.com/showcasify/showcasify/pkg/jwtx"
	"github.com/showcasify/showcasify/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AuthService       *service.AuthService
	UserService       *service.UserService
	PasswordService   *service.PasswordService
	ProfileService    *service.ProfileService
	EducationService  *service.EducationService
	ExperienceService *service.ExperienceService
	ProjectService    *service.ProjectService
	PreferenceService *service.PreferenceService
	TodoService       *service.TodoService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerPassword()
	r.registerUsers()
	r.registerProfile()
	r.registerEducations()
	r.registerExperiences()
	r.registerProjects()
	r.registerPreferences()
	r.registerTodos()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps h with bearer authentication and a per-subject rate limit.
func (r *Router) secured(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitBySubject(limit),
	)
}

func (r *Router) registerAuth() {
	tokenHandler := &TokenHandler{AuthService: r.AuthService}

	// Credential endpoint: strict limit by IP to slow brute force.
	r.Mux.Handle("POST /v1/auth/token",
		httpx.Chain(tokenHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerPassword() {
	h := &PasswordHandler{PasswordService: r.PasswordService}

	// Both legs are unauthenticated credential endpoints.
	r.Mux.Handle("POST /v1/password/reset",
		httpx.Chain(http.HandlerFunc(h.HandleRequest),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/password/reset/confirm",
		httpx.Chain(http.HandlerFunc(h.HandleConfirm),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{
		AuthService: r.AuthService,
		UserService: r.UserService,
	}

	// Public registration, strict limit by IP.
	r.Mux.Handle("POST /v1/users",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /v1/users", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/users/{id}", r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/users/{id}", r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/users/{id}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))

	me := &MeHandler{
		AuthService: r.AuthService,
		UserService: r.UserService,
	}
	r.Mux.Handle("GET /v1/me", r.secured(http.HandlerFunc(me.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/me", r.secured(http.HandlerFunc(me.HandleUpdate), httpx.ModerateLimit))
}

func (r *Router) registerProfile() {
	h := &ProfileHandler{
		AuthService:    r.AuthService,
		ProfileService: r.ProfileService,
	}

	r.Mux.Handle("GET /v1/profile", r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/profile", r.secured(http.HandlerFunc(h.HandlePut), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/profile", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerEducations() {
	h := &EducationsHandler{
		AuthService:      r.AuthService,
		EducationService: r.EducationService,
	}

	r.Mux.Handle("GET /v1/educations", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/educations", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/educations/{id}", r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/educations/{id}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerExperiences() {
	h := &ExperiencesHandler{
		AuthService:       r.AuthService,
		ExperienceService: r.ExperienceService,
	}

	r.Mux.Handle("GET /v1/experiences", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/experiences", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/experiences/{id}", r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/experiences/{id}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerProjects() {
	h := &ProjectsHandler{
		AuthService:    r.AuthService,
		ProjectService: r.ProjectService,
	}

	r.Mux.Handle("GET /v1/projects", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/projects", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/projects/{id}", r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/projects/{id}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerPreferences() {
	h := &PreferencesHandler{
		AuthService:       r.AuthService,
		PreferenceService: r.PreferenceService,
	}

	r.Mux.Handle("GET /v1/preferences", r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/preferences", r.secured(http.HandlerFunc(h.HandlePut), httpx.ModerateLimit))
}

func (r *Router) registerTodos() {
	h := &TodosHandler{
		AuthService: r.AuthService,
		TodoService: r.TodoService,
	}

	r.Mux.Handle("GET /v1/todos", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/todos", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/todos/{id}", r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/todos/{id}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
