package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/myworld/myworld-api/internal/domain"
	"github.com/myworld/myworld-api/internal/platform/logger"
	"github.com/myworld/myworld-api/internal/store"
)

// SessionStart is the result of starting an assessment session.
type SessionStart struct {
	SessionID uuid.UUID `json:"session_id"`
	StartedAt time.Time `json:"started_at"`
}

// SessionCompletion is the result of completing an assessment session.
// Repeated completions of the same session return the same CompletedAt.
type SessionCompletion struct {
	SessionID   uuid.UUID `json:"session_id"`
	CompletedAt time.Time `json:"completed_at"`
}

// DimensionScore is one entry of a session result: the average of all
// numeric answers recorded for questions of one dimension.
type DimensionScore struct {
	DimensionID   uuid.UUID `json:"dimension_id"`
	DimensionName string    `json:"dimension"`
	Average       float64   `json:"average"`
}

// SessionService owns the assessment-session lifecycle: start, answer
// recording, idempotent completion, and result computation.
type SessionService interface {
	// Start creates a new session for the user.
	Start(ctx context.Context, userID uuid.UUID) (*SessionStart, error)

	// SubmitAnswer records an answer for a question within a session.
	// At least one of value/text must be provided. Answers are appended;
	// answering the same question twice keeps both records. The session
	// is not required to be open: answers recorded after completion are
	// accepted.
	// Returns store.ErrSessionNotFound if the session does not exist.
	SubmitAnswer(ctx context.Context, sessionID, questionID uuid.UUID, value *int, text *string) (*domain.Response, error)

	// Complete marks the session completed. Completing an already
	// completed session is a no-op returning the stored timestamp.
	// Returns store.ErrSessionNotFound if the session does not exist.
	Complete(ctx context.Context, sessionID uuid.UUID) (*SessionCompletion, error)

	// GetResult computes the per-dimension averages for the session's
	// numeric answers. It may be called at any time, including before
	// completion, and always reflects the currently stored responses.
	// Entry order is unspecified.
	GetResult(ctx context.Context, sessionID uuid.UUID) ([]DimensionScore, error)
}

// sessionServiceImpl implements SessionService.
type sessionServiceImpl struct {
	sessionStore   store.SessionStore
	responseStore  store.ResponseStore
	questionStore  store.QuestionStore
	dimensionStore store.DimensionStore
	logger         *slog.Logger
}

var _ SessionService = (*sessionServiceImpl)(nil)

// NewSessionService creates a SessionService.
// It returns an error if any of the required stores are nil.
func NewSessionService(
	sessionStore store.SessionStore,
	responseStore store.ResponseStore,
	questionStore store.QuestionStore,
	dimensionStore store.DimensionStore,
	log *slog.Logger,
) (SessionService, error) {
	if sessionStore == nil {
		return nil, domain.NewValidationError("sessionStore", "cannot be nil", nil)
	}
	if responseStore == nil {
		return nil, domain.NewValidationError("responseStore", "cannot be nil", nil)
	}
	if questionStore == nil {
		return nil, domain.NewValidationError("questionStore", "cannot be nil", nil)
	}
	if dimensionStore == nil {
		return nil, domain.NewValidationError("dimensionStore", "cannot be nil", nil)
	}
	if log == nil {
		log = slog.Default()
	}

	return &sessionServiceImpl{
		sessionStore:   sessionStore,
		responseStore:  responseStore,
		questionStore:  questionStore,
		dimensionStore: dimensionStore,
		logger:         log.With(slog.String("component", "session_service")),
	}, nil
}

// Start implements SessionService.Start.
func (s *sessionServiceImpl) Start(ctx context.Context, userID uuid.UUID) (*SessionStart, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "is required", nil)
	}

	session, err := domain.NewAssessmentSession(userID)
	if err != nil {
		return nil, err
	}

	if err := s.sessionStore.Create(ctx, session); err != nil {
		log.Error("failed to create session",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	log.Info("session started",
		slog.String("session_id", session.ID.String()),
		slog.String("user_id", userID.String()))

	return &SessionStart{SessionID: session.ID, StartedAt: session.StartedAt}, nil
}

// SubmitAnswer implements SessionService.SubmitAnswer.
func (s *sessionServiceImpl) SubmitAnswer(
	ctx context.Context,
	sessionID, questionID uuid.UUID,
	value *int,
	text *string,
) (*domain.Response, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if sessionID == uuid.Nil {
		return nil, domain.NewValidationError("session_id", "is required", nil)
	}
	if questionID == uuid.Nil {
		return nil, domain.NewValidationError("question_id", "is required", nil)
	}
	if value == nil && (text == nil || *text == "") {
		return nil, domain.NewValidationError("answer", domain.ErrAnswerContentMissing.Error(), nil)
	}

	// Existence check only. Answers submitted after completion are
	// accepted; the session state machine does not gate writes.
	if _, err := s.sessionStore.GetByID(ctx, sessionID); err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("answer submitted for unknown session",
				slog.String("session_id", sessionID.String()))
			return nil, store.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	response, err := domain.NewResponse(sessionID, questionID, value, text)
	if err != nil {
		return nil, err
	}

	if err := s.responseStore.Create(ctx, response); err != nil {
		log.Error("failed to record answer",
			slog.String("error", err.Error()),
			slog.String("session_id", sessionID.String()),
			slog.String("question_id", questionID.String()))
		return nil, fmt.Errorf("failed to record answer: %w", err)
	}

	log.Debug("answer recorded",
		slog.String("session_id", sessionID.String()),
		slog.String("question_id", questionID.String()),
		slog.Bool("scored", response.IsScored()))

	return response, nil
}

// Complete implements SessionService.Complete.
func (s *sessionServiceImpl) Complete(ctx context.Context, sessionID uuid.UUID) (*SessionCompletion, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if sessionID == uuid.Nil {
		return nil, domain.NewValidationError("session_id", "is required", nil)
	}

	// The store guards the nil-to-timestamp transition so racing
	// completions converge on a single stored value.
	completedAt, err := s.sessionStore.Complete(ctx, sessionID, time.Now().UTC())
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrSessionNotFound
		}
		log.Error("failed to complete session",
			slog.String("error", err.Error()),
			slog.String("session_id", sessionID.String()))
		return nil, fmt.Errorf("failed to complete session: %w", err)
	}

	log.Info("session completed",
		slog.String("session_id", sessionID.String()),
		slog.Time("completed_at", completedAt))

	return &SessionCompletion{SessionID: sessionID, CompletedAt: completedAt}, nil
}

// GetResult implements SessionService.GetResult.
func (s *sessionServiceImpl) GetResult(ctx context.Context, sessionID uuid.UUID) ([]DimensionScore, error) {
	if sessionID == uuid.Nil {
		return nil, domain.NewValidationError("session_id", "is required", nil)
	}

	return s.computeResult(ctx, sessionID)
}
