package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/myworld/myworld-api/internal/domain"
)

// DimensionStore defines the interface for scoring-category persistence.
type DimensionStore interface {
	// Create saves a new dimension.
	Create(ctx context.Context, dimension *domain.Dimension) error

	// GetByID retrieves a dimension by ID.
	// Returns ErrDimensionNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Dimension, error)

	// List returns all dimensions ordered by name.
	List(ctx context.Context) ([]*domain.Dimension, error)

	// Update modifies an existing dimension.
	// Returns ErrDimensionNotFound if it does not exist.
	Update(ctx context.Context, dimension *domain.Dimension) error

	// Delete removes a dimension by ID.
	// Returns ErrDimensionNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a DimensionStore bound to the provided transaction.
	WithTx(tx *sql.Tx) DimensionStore
}

// QuestionStore defines the interface for question persistence.
type QuestionStore interface {
	// Create saves a new question.
	// Returns ErrInvalidEntity if the referenced dimension does not exist.
	Create(ctx context.Context, question *domain.Question) error

	// GetByID retrieves a question by ID.
	// Returns ErrQuestionNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)

	// List returns all questions ordered by dimension and presentation order.
	List(ctx context.Context) ([]*domain.Question, error)

	// ListByDimension returns the questions of one dimension in
	// presentation order.
	ListByDimension(ctx context.Context, dimensionID uuid.UUID) ([]*domain.Question, error)

	// Update modifies an existing question.
	// Returns ErrQuestionNotFound if it does not exist.
	Update(ctx context.Context, question *domain.Question) error

	// Delete removes a question by ID.
	// Returns ErrQuestionNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a QuestionStore bound to the provided transaction.
	WithTx(tx *sql.Tx) QuestionStore
}

// AnswerOptionStore defines the interface for answer-option persistence.
type AnswerOptionStore interface {
	// Create saves a new answer option.
	// Returns ErrInvalidEntity if the referenced question does not exist.
	Create(ctx context.Context, option *domain.AnswerOption) error

	// ListByQuestion returns the options of one question ordered by value.
	ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]*domain.AnswerOption, error)

	// Delete removes an answer option by ID.
	// Returns ErrAnswerOptionNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns an AnswerOptionStore bound to the provided transaction.
	WithTx(tx *sql.Tx) AnswerOptionStore
}
