package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/myworld/myworld-api/internal/domain"
	"github.com/myworld/myworld-api/internal/platform/logger"
	"github.com/myworld/myworld-api/internal/store"
)

// PostgresSessionStore implements the store.SessionStore interface
// using a PostgreSQL database as the storage backend.
type PostgresSessionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSessionStore creates a new PostgreSQL implementation of the
// SessionStore interface.
func NewPostgresSessionStore(db store.DBTX, log *slog.Logger) *PostgresSessionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresSessionStore{
		db:     db,
		logger: log.With(slog.String("component", "session_store")),
	}
}

var _ store.SessionStore = (*PostgresSessionStore)(nil)

// WithTx implements store.SessionStore.WithTx.
func (s *PostgresSessionStore) WithTx(tx *sql.Tx) store.SessionStore {
	return &PostgresSessionStore{db: tx, logger: s.logger}
}

// Create implements store.SessionStore.Create.
func (s *PostgresSessionStore) Create(ctx context.Context, session *domain.AssessmentSession) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := session.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO assessment_sessions (id, user_id, started_at, completed_at)
		VALUES ($1, $2, $3, $4)`

	_, err := s.db.ExecContext(ctx, query,
		session.ID,
		session.UserID,
		session.StartedAt,
		session.CompletedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: user %s does not exist",
				store.ErrInvalidEntity, session.UserID)
		}
		log.Error("failed to create session",
			slog.String("error", err.Error()),
			slog.String("session_id", session.ID.String()))
		return err
	}

	return nil
}

// GetByID implements store.SessionStore.GetByID.
func (s *PostgresSessionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.AssessmentSession, error) {
	query := `
		SELECT id, user_id, started_at, completed_at
		FROM assessment_sessions
		WHERE id = $1`

	var session domain.AssessmentSession
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&session.ID,
		&session.UserID,
		&session.StartedAt,
		&session.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrSessionNotFound
		}
		return nil, err
	}

	return &session, nil
}

// ListByUser implements store.SessionStore.ListByUser.
func (s *PostgresSessionStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.AssessmentSession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, started_at, completed_at
		FROM assessment_sessions
		WHERE user_id = $1
		ORDER BY started_at DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	sessions := []*domain.AssessmentSession{}
	for rows.Next() {
		var session domain.AssessmentSession
		err := rows.Scan(&session.ID, &session.UserID, &session.StartedAt, &session.CompletedAt)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, &session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

// Complete implements store.SessionStore.Complete.
//
// The conditional UPDATE only fires while completed_at is NULL, so the
// transition happens at most once no matter how many callers race. The
// follow-up SELECT returns whichever timestamp actually won, which is also
// the answer for a session completed long ago.
func (s *PostgresSessionStore) Complete(ctx context.Context, id uuid.UUID, completedAt time.Time) (time.Time, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	updateQuery := `
		UPDATE assessment_sessions
		SET completed_at = $1
		WHERE id = $2 AND completed_at IS NULL`

	if _, err := s.db.ExecContext(ctx, updateQuery, completedAt, id); err != nil {
		log.Error("failed to complete session",
			slog.String("error", err.Error()),
			slog.String("session_id", id.String()))
		return time.Time{}, err
	}

	var stored sql.NullTime
	selectQuery := `SELECT completed_at FROM assessment_sessions WHERE id = $1`
	if err := s.db.QueryRowContext(ctx, selectQuery, id).Scan(&stored); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, store.ErrSessionNotFound
		}
		return time.Time{}, err
	}
	if !stored.Valid {
		// Unreachable unless completed_at was reset between the two
		// statements; treat it as a failed transition.
		return time.Time{}, store.NewStoreError("session", "complete",
			"completion timestamp missing after update", nil)
	}

	return stored.Time, nil
}
