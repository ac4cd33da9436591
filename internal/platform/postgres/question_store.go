package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/myworld/myworld-api/internal/domain"
	"github.com/myworld/myworld-api/internal/platform/logger"
	"github.com/myworld/myworld-api/internal/store"
)

// PostgresQuestionStore implements the store.QuestionStore interface
// using a PostgreSQL database as the storage backend.
type PostgresQuestionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresQuestionStore creates a new PostgreSQL implementation of the
// QuestionStore interface.
func NewPostgresQuestionStore(db store.DBTX, log *slog.Logger) *PostgresQuestionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresQuestionStore{
		db:     db,
		logger: log.With(slog.String("component", "question_store")),
	}
}

var _ store.QuestionStore = (*PostgresQuestionStore)(nil)

// WithTx implements store.QuestionStore.WithTx.
func (s *PostgresQuestionStore) WithTx(tx *sql.Tx) store.QuestionStore {
	return &PostgresQuestionStore{db: tx, logger: s.logger}
}

// Create implements store.QuestionStore.Create.
func (s *PostgresQuestionStore) Create(ctx context.Context, question *domain.Question) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := question.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO questions (id, dimension_id, text, display_order, type)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.db.ExecContext(ctx, query,
		question.ID,
		question.DimensionID,
		question.Text,
		question.Order,
		question.Type,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: dimension %s does not exist",
				store.ErrInvalidEntity, question.DimensionID)
		}
		log.Error("failed to create question",
			slog.String("error", err.Error()),
			slog.String("question_id", question.ID.String()))
		return err
	}

	return nil
}

const questionColumns = "id, dimension_id, text, display_order, type"

func scanQuestion(row interface{ Scan(dest ...any) error }) (*domain.Question, error) {
	var question domain.Question
	err := row.Scan(
		&question.ID,
		&question.DimensionID,
		&question.Text,
		&question.Order,
		&question.Type,
	)
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// GetByID implements store.QuestionStore.GetByID.
func (s *PostgresQuestionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id = $1`

	question, err := scanQuestion(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrQuestionNotFound
		}
		return nil, err
	}

	return question, nil
}

// List implements store.QuestionStore.List.
func (s *PostgresQuestionStore) List(ctx context.Context) ([]*domain.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions ORDER BY dimension_id, display_order`
	return s.queryQuestions(ctx, query)
}

// ListByDimension implements store.QuestionStore.ListByDimension.
func (s *PostgresQuestionStore) ListByDimension(ctx context.Context, dimensionID uuid.UUID) ([]*domain.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE dimension_id = $1 ORDER BY display_order`
	return s.queryQuestions(ctx, query, dimensionID)
}

func (s *PostgresQuestionStore) queryQuestions(ctx context.Context, query string, args ...any) ([]*domain.Question, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	questions := []*domain.Question{}
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return questions, nil
}

// Update implements store.QuestionStore.Update.
func (s *PostgresQuestionStore) Update(ctx context.Context, question *domain.Question) error {
	if err := question.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE questions
		SET dimension_id = $1, text = $2, display_order = $3, type = $4
		WHERE id = $5`

	result, err := s.db.ExecContext(ctx, query,
		question.DimensionID,
		question.Text,
		question.Order,
		question.Type,
		question.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: dimension %s does not exist",
				store.ErrInvalidEntity, question.DimensionID)
		}
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrQuestionNotFound
	}

	return nil
}

// Delete implements store.QuestionStore.Delete.
func (s *PostgresQuestionStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrQuestionNotFound
	}

	return nil
}
