package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/myworld/myworld-api/internal/domain"
	"github.com/myworld/myworld-api/internal/platform/logger"
	"github.com/myworld/myworld-api/internal/store"
)

// PostgresResponseStore implements the store.ResponseStore interface
// using a PostgreSQL database as the storage backend.
type PostgresResponseStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresResponseStore creates a new PostgreSQL implementation of the
// ResponseStore interface.
func NewPostgresResponseStore(db store.DBTX, log *slog.Logger) *PostgresResponseStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresResponseStore{
		db:     db,
		logger: log.With(slog.String("component", "response_store")),
	}
}

var _ store.ResponseStore = (*PostgresResponseStore)(nil)

// WithTx implements store.ResponseStore.WithTx.
func (s *PostgresResponseStore) WithTx(tx *sql.Tx) store.ResponseStore {
	return &PostgresResponseStore{db: tx, logger: s.logger}
}

// Create implements store.ResponseStore.Create. Responses are append-only:
// a repeated answer to the same question inserts a new row.
func (s *PostgresResponseStore) Create(ctx context.Context, response *domain.Response) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := response.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO responses (id, session_id, question_id, answer_value, answer_text)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.db.ExecContext(ctx, query,
		response.ID,
		response.SessionID,
		response.QuestionID,
		response.AnswerValue,
		response.AnswerText,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: session or question does not exist", store.ErrInvalidEntity)
		}
		log.Error("failed to create response",
			slog.String("error", err.Error()),
			slog.String("response_id", response.ID.String()))
		return err
	}

	return nil
}

// ListBySession implements store.ResponseStore.ListBySession. The insertion
// sequence column keeps the listing in submission order.
func (s *PostgresResponseStore) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*domain.Response, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, session_id, question_id, answer_value, answer_text
		FROM responses
		WHERE session_id = $1
		ORDER BY seq`

	rows, err := s.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	responses := []*domain.Response{}
	for rows.Next() {
		var response domain.Response
		err := rows.Scan(
			&response.ID,
			&response.SessionID,
			&response.QuestionID,
			&response.AnswerValue,
			&response.AnswerText,
		)
		if err != nil {
			return nil, err
		}
		responses = append(responses, &response)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
