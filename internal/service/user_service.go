package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/myworld/myworld-api/internal/domain"
	"github.com/myworld/myworld-api/internal/platform/logger"
	"github.com/myworld/myworld-api/internal/service/auth"
	"github.com/myworld/myworld-api/internal/store"
)

// UserService provides registration and credential verification.
// Email uniqueness is enforced here (backed by the store's unique
// constraint), not by the assessment or scheduling services.
type UserService interface {
	// Register creates a new user with a hashed credential.
	// Returns store.ErrEmailExists if the email is already in use.
	Register(ctx context.Context, email, password, firstName, lastName string) (*domain.User, error)

	// Verify checks an email/password pair. On success it updates the
	// user's LastLoginAt and returns the user.
	// Returns store.ErrUserNotFound for an unknown email and
	// domain.ErrUnauthorized for a wrong password.
	Verify(ctx context.Context, email, password string) (*domain.User, error)
}

// userServiceImpl implements UserService.
type userServiceImpl struct {
	users  store.UserStore
	hasher auth.PasswordHasher
	verify auth.PasswordVerifier
	logger *slog.Logger
}

var _ UserService = (*userServiceImpl)(nil)

// NewUserService creates a UserService.
func NewUserService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	log *slog.Logger,
) (UserService, error) {
	if users == nil {
		return nil, domain.NewValidationError("users", "cannot be nil", nil)
	}
	if hasher == nil {
		return nil, domain.NewValidationError("hasher", "cannot be nil", nil)
	}
	if verifier == nil {
		return nil, domain.NewValidationError("verifier", "cannot be nil", nil)
	}
	if log == nil {
		log = slog.Default()
	}

	return &userServiceImpl{
		users:  users,
		hasher: hasher,
		verify: verifier,
		logger: log.With(slog.String("component", "user_service")),
	}, nil
}

// Register implements UserService.Register.
func (s *userServiceImpl) Register(
	ctx context.Context,
	email, password, firstName, lastName string,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(email, password, firstName, lastName)
	if err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := s.users.Create(ctx, user); err != nil {
		if store.IsDuplicateError(err) {
			log.Debug("registration rejected: email already in use",
				slog.String("user_id", user.ID.String()))
			return nil, store.ErrEmailExists
		}
		log.Error("failed to create user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info("user registered", slog.String("user_id", user.ID.String()))
	return user, nil
}

// Verify implements UserService.Verify.
func (s *userServiceImpl) Verify(ctx context.Context, email, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}

	if err := s.verify.Compare(user.HashedPassword, password); err != nil {
		log.Debug("credential verification failed",
			slog.String("user_id", user.ID.String()))
		return nil, domain.ErrUnauthorized
	}

	now := time.Now().UTC()
	user.LastLoginAt = &now
	if err := s.users.Update(ctx, user); err != nil {
		// Login still succeeds; the timestamp is best effort.
		log.Warn("failed to update last login time",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
	}

	return user, nil
}
