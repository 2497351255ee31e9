package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/showcasify/showcasify/internal/http"
	"github.com/showcasify/showcasify/internal/mail"
	"github.com/showcasify/showcasify/internal/service"
	"github.com/showcasify/showcasify/internal/store"
	"github.com/showcasify/showcasify/internal/store/drivers/sqlite"
	"github.com/showcasify/showcasify/pkg/jwtx"
	"github.com/showcasify/showcasify/pkg/slogx"
)

// BuildVersion should be set at build time via ldflags.
const BuildVersion = "v0.1.0"

// Application wires the portfolio backend together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	codec  *jwtx.Codec
	mailer mail.Mailer

	authService       *service.AuthService
	userService       *service.UserService
	passwordService   *service.PasswordService
	profileService    *service.ProfileService
	educationService  *service.EducationService
	experienceService *service.ExperienceService
	projectService    *service.ProjectService
	preferenceService *service.PreferenceService
	todoService       *service.TodoService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "showcasify",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.SecretKey == devSecretKey && cfg.Env != "dev" {
		return nil, fmt.Errorf("SECRET_KEY must be set outside dev environments")
	}

	codec, err := jwtx.New(jwtx.Config{
		Secret:    []byte(cfg.SecretKey),
		Algorithm: cfg.TokenAlgorithm,
		Issuer:    cfg.TokenIssuer,
		TTL:       cfg.AccessTokenExpiry,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token codec: %w", err)
	}
	app.codec = codec

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("showcasify starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("showcasify stopped")
	return nil
}

// initDatabase opens the database and applies migrations.
func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)",
		app.cfg.DatabaseFile,
	)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	app.mailer = &mail.LogMailer{
		Logger:  app.logger,
		BaseURL: app.cfg.FrontendBaseURL,
	}

	app.authService = &service.AuthService{Store: app.db, Codec: app.codec}
	app.userService = &service.UserService{Store: app.db}
	app.passwordService = &service.PasswordService{
		Store:    app.db,
		Mailer:   app.mailer,
		TokenTTL: app.cfg.ResetTokenExpiry,
	}
	app.profileService = &service.ProfileService{Store: app.db}
	app.educationService = &service.EducationService{Store: app.db}
	app.experienceService = &service.ExperienceService{Store: app.db}
	app.projectService = &service.ProjectService{Store: app.db}
	app.preferenceService = &service.PreferenceService{Store: app.db}
	app.todoService = &service.TodoService{Store: app.db}
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.codec, BuildVersion, app.db, app.logger)

	router.AuthService = app.authService
	router.UserService = app.userService
	router.PasswordService = app.passwordService
	router.ProfileService = app.profileService
	router.EducationService = app.educationService
	router.ExperienceService = app.experienceService
	router.ProjectService = app.projectService
	router.PreferenceService = app.preferenceService
	router.TodoService = app.todoService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
