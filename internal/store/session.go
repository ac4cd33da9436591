package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/myworld/myworld-api/internal/domain"
)

// SessionStore defines the interface for assessment-session persistence.
type SessionStore interface {
	// Create saves a new session.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, session *domain.AssessmentSession) error

	// GetByID retrieves a session by ID.
	// Returns ErrSessionNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AssessmentSession, error)

	// ListByUser returns the sessions started by one user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.AssessmentSession, error)

	// Complete marks the session completed at the given time. The
	// nil-to-timestamp transition happens at most once: when racing calls
	// collide, or the session is already completed, every caller observes
	// the single stored completion timestamp. Returns that timestamp, or
	// ErrSessionNotFound if the session does not exist.
	Complete(ctx context.Context, id uuid.UUID, completedAt time.Time) (time.Time, error)

	// WithTx returns a SessionStore bound to the provided transaction.
	WithTx(tx *sql.Tx) SessionStore
}

// ResponseStore defines the interface for recorded-answer persistence.
// Responses are append-only; there is no update.
type ResponseStore interface {
	// Create appends a new response.
	// Returns ErrInvalidEntity if the session or question does not exist.
	Create(ctx context.Context, response *domain.Response) error

	// ListBySession returns all responses recorded for one session in
	// insertion order.
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*domain.Response, error)

	// WithTx returns a ResponseStore bound to the provided transaction.
	WithTx(tx *sql.Tx) ResponseStore
}
