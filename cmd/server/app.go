package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/Marcosdev03/projeto-checklistv02/internal/config"
	"github.com/Marcosdev03/projeto-checklistv02/internal/platform/logger"
	"github.com/Marcosdev03/projeto-checklistv02/internal/platform/mail"
	"github.com/Marcosdev03/projeto-checklistv02/internal/platform/postgres"
	"github.com/Marcosdev03/projeto-checklistv02/internal/service"
	"github.com/Marcosdev03/projeto-checklistv02/internal/service/auth"
	"github.com/Marcosdev03/projeto-checklistv02/internal/store"
)

// application holds the initialized dependencies of the server process.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore  store.UserStore
	taskStore  store.TaskStore
	tokenStore store.RecoveryTokenStore

	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier

	userService  *service.UserService
	taskService  *service.TaskService
	resetService *service.PasswordResetService
}

// newApplication loads configuration, sets up logging and the database
// connection, and wires stores and services together.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(logger.Config{Level: cfg.Server.LogLevel})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	userStore := postgres.NewUserStore(db, appLogger)
	taskStore := postgres.NewTaskStore(db, appLogger)
	tokenStore := postgres.NewRecoveryTokenStore(db, appLogger)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	userService, err := service.NewUserService(userStore, hasher, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	taskService, err := service.NewTaskService(taskStore, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	mailer := mail.NewSMTPMailer(cfg.Mail, appLogger)
	resetService, err := service.NewPasswordResetService(
		db,
		userStore,
		tokenStore,
		hasher,
		mailer,
		cfg.Mail.FrontendBaseURL,
		appLogger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create password reset service: %w", err)
	}

	return &application{
		config:           cfg,
		logger:           appLogger,
		db:               db,
		userStore:        userStore,
		taskStore:        taskStore,
		tokenStore:       tokenStore,
		jwtService:       jwtService,
		passwordHasher:   hasher,
		passwordVerifier: hasher,
		userService:      userService,
		taskService:      taskService,
		resetService:     resetService,
	}, nil
}

// runMigrations executes the given goose command against the database.
func (app *application) runMigrations(ctx context.Context, command string) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	app.logger.Info("Running database migrations", "command", command)
	if err := postgres.Migrate(ctx, app.db, command); err != nil {
		return err
	}
	app.logger.Info("Database migration command finished", "command", command)
	return nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}

// accessTokenLifetime returns the configured access token lifetime.
func (app *application) accessTokenLifetime() time.Duration {
	return time.Duration(app.config.Auth.TokenLifetimeMinutes) * time.Minute
}
