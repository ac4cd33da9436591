package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/myworld/myworld-api/internal/config"
	"github.com/myworld/myworld-api/internal/platform/postgres"
	"github.com/myworld/myworld-api/internal/service"
	"github.com/myworld/myworld-api/internal/service/auth"
	"github.com/myworld/myworld-api/internal/store"
)

// application holds the wired dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier

	userService        service.UserService
	catalogService     service.CatalogService
	sessionService     service.SessionService
	appointmentService service.AppointmentService
	reminderService    service.ReminderService
}

// newApplication wires stores and services over the given database
// connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	userStore := postgres.NewPostgresUserStore(db, logger)
	dimensionStore := postgres.NewPostgresDimensionStore(db, logger)
	questionStore := postgres.NewPostgresQuestionStore(db, logger)
	answerOptionStore := postgres.NewPostgresAnswerOptionStore(db, logger)
	sessionStore := postgres.NewPostgresSessionStore(db, logger)
	responseStore := postgres.NewPostgresResponseStore(db, logger)
	appointmentStore := postgres.NewPostgresAppointmentStore(db, logger)
	reminderStore := postgres.NewPostgresReminderStore(db, logger)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	hasher := auth.NewBcryptHasher()

	userService, err := service.NewUserService(userStore, hasher, hasher, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	catalogService, err := service.NewCatalogService(db, dimensionStore, questionStore, answerOptionStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog service: %w", err)
	}

	sessionService, err := service.NewSessionService(sessionStore, responseStore, questionStore, dimensionStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create session service: %w", err)
	}

	appointmentService, err := service.NewAppointmentService(appointmentStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment service: %w", err)
	}

	reminderService, err := service.NewReminderService(reminderStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create reminder service: %w", err)
	}

	return &application{
		config:             cfg,
		logger:             logger,
		db:                 db,
		userStore:          userStore,
		jwtService:         jwtService,
		passwordVerifier:   hasher,
		userService:        userService,
		catalogService:     catalogService,
		sessionService:     sessionService,
		appointmentService: appointmentService,
		reminderService:    reminderService,
	}, nil
}

// cleanup releases application resources during shutdown.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
