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

// PostgresAnswerOptionStore implements the store.AnswerOptionStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAnswerOptionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAnswerOptionStore creates a new PostgreSQL implementation of
// the AnswerOptionStore interface.
func NewPostgresAnswerOptionStore(db store.DBTX, log *slog.Logger) *PostgresAnswerOptionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresAnswerOptionStore{
		db:     db,
		logger: log.With(slog.String("component", "answer_option_store")),
	}
}

var _ store.AnswerOptionStore = (*PostgresAnswerOptionStore)(nil)

// WithTx implements store.AnswerOptionStore.WithTx.
func (s *PostgresAnswerOptionStore) WithTx(tx *sql.Tx) store.AnswerOptionStore {
	return &PostgresAnswerOptionStore{db: tx, logger: s.logger}
}

// Create implements store.AnswerOptionStore.Create.
func (s *PostgresAnswerOptionStore) Create(ctx context.Context, option *domain.AnswerOption) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := option.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO answer_options (id, question_id, text, value)
		VALUES ($1, $2, $3, $4)`

	_, err := s.db.ExecContext(ctx, query, option.ID, option.QuestionID, option.Text, option.Value)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: question %s does not exist",
				store.ErrInvalidEntity, option.QuestionID)
		}
		log.Error("failed to create answer option",
			slog.String("error", err.Error()),
			slog.String("option_id", option.ID.String()))
		return err
	}

	return nil
}

// ListByQuestion implements store.AnswerOptionStore.ListByQuestion.
func (s *PostgresAnswerOptionStore) ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]*domain.AnswerOption, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, question_id, text, value
		FROM answer_options
		WHERE question_id = $1
		ORDER BY value`

	rows, err := s.db.QueryContext(ctx, query, questionID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	options := []*domain.AnswerOption{}
	for rows.Next() {
		var option domain.AnswerOption
		if err := rows.Scan(&option.ID, &option.QuestionID, &option.Text, &option.Value); err != nil {
			return nil, err
		}
		options = append(options, &option)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return options, nil
}

// Delete implements store.AnswerOptionStore.Delete.
func (s *PostgresAnswerOptionStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM answer_options WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrAnswerOptionNotFound
	}

	return nil
}
