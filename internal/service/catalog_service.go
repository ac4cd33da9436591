package service

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

// AnswerOptionInput carries one predefined option for a choice question.
type AnswerOptionInput struct {
	Text  string
	Value int
}

// CatalogService manages the questionnaire catalog: dimensions, their
// questions, and the predefined answer options of choice questions. The
// catalog is global, not owner-scoped.
type CatalogService interface {
	ListDimensions(ctx context.Context) ([]*domain.Dimension, error)
	CreateDimension(ctx context.Context, name, description string) (*domain.Dimension, error)
	UpdateDimension(ctx context.Context, id uuid.UUID, name, description string) (*domain.Dimension, error)
	DeleteDimension(ctx context.Context, id uuid.UUID) error

	ListQuestions(ctx context.Context) ([]*domain.Question, error)
	GetQuestion(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	CreateQuestion(ctx context.Context, dimensionID uuid.UUID, text string, order int, qType domain.QuestionType) (*domain.Question, error)

	// CreateChoiceQuestion creates a choice question together with its
	// predefined answer options in one transaction. At least one option
	// is required; a failed option insert leaves no question behind.
	CreateChoiceQuestion(ctx context.Context, dimensionID uuid.UUID, text string, order int, options []AnswerOptionInput) (*domain.Question, []*domain.AnswerOption, error)

	UpdateQuestion(ctx context.Context, question *domain.Question) error
	DeleteQuestion(ctx context.Context, id uuid.UUID) error

	ListAnswerOptions(ctx context.Context, questionID uuid.UUID) ([]*domain.AnswerOption, error)
	CreateAnswerOption(ctx context.Context, questionID uuid.UUID, text string, value int) (*domain.AnswerOption, error)
}

// catalogServiceImpl implements CatalogService.
type catalogServiceImpl struct {
	db         *sql.DB
	dimensions store.DimensionStore
	questions  store.QuestionStore
	options    store.AnswerOptionStore
	logger     *slog.Logger
}

var _ CatalogService = (*catalogServiceImpl)(nil)

// NewCatalogService creates a CatalogService. The db handle is used for
// multi-store transactions.
func NewCatalogService(
	db *sql.DB,
	dimensions store.DimensionStore,
	questions store.QuestionStore,
	options store.AnswerOptionStore,
	log *slog.Logger,
) (CatalogService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", nil)
	}
	if dimensions == nil {
		return nil, domain.NewValidationError("dimensions", "cannot be nil", nil)
	}
	if questions == nil {
		return nil, domain.NewValidationError("questions", "cannot be nil", nil)
	}
	if options == nil {
		return nil, domain.NewValidationError("options", "cannot be nil", nil)
	}
	if log == nil {
		log = slog.Default()
	}

	return &catalogServiceImpl{
		db:         db,
		dimensions: dimensions,
		questions:  questions,
		options:    options,
		logger:     log.With(slog.String("component", "catalog_service")),
	}, nil
}

func (s *catalogServiceImpl) ListDimensions(ctx context.Context) ([]*domain.Dimension, error) {
	return s.dimensions.List(ctx)
}

func (s *catalogServiceImpl) CreateDimension(ctx context.Context, name, description string) (*domain.Dimension, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	dimension, err := domain.NewDimension(name, description)
	if err != nil {
		return nil, err
	}

	if err := s.dimensions.Create(ctx, dimension); err != nil {
		log.Error("failed to create dimension", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create dimension: %w", err)
	}

	return dimension, nil
}

func (s *catalogServiceImpl) UpdateDimension(
	ctx context.Context,
	id uuid.UUID,
	name, description string,
) (*domain.Dimension, error) {
	dimension, err := s.dimensions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dimension.Name = name
	dimension.Description = description

	if err := dimension.Validate(); err != nil {
		return nil, err
	}

	if err := s.dimensions.Update(ctx, dimension); err != nil {
		return nil, fmt.Errorf("failed to update dimension: %w", err)
	}

	return dimension, nil
}

func (s *catalogServiceImpl) DeleteDimension(ctx context.Context, id uuid.UUID) error {
	return s.dimensions.Delete(ctx, id)
}

func (s *catalogServiceImpl) ListQuestions(ctx context.Context) ([]*domain.Question, error) {
	return s.questions.List(ctx)
}

func (s *catalogServiceImpl) GetQuestion(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	return s.questions.GetByID(ctx, id)
}

func (s *catalogServiceImpl) CreateQuestion(
	ctx context.Context,
	dimensionID uuid.UUID,
	text string,
	order int,
	qType domain.QuestionType,
) (*domain.Question, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	question, err := domain.NewQuestion(dimensionID, text, order, qType)
	if err != nil {
		return nil, err
	}

	if err := s.questions.Create(ctx, question); err != nil {
		log.Error("failed to create question",
			slog.String("error", err.Error()),
			slog.String("dimension_id", dimensionID.String()))
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	return question, nil
}

func (s *catalogServiceImpl) CreateChoiceQuestion(
	ctx context.Context,
	dimensionID uuid.UUID,
	text string,
	order int,
	options []AnswerOptionInput,
) (*domain.Question, []*domain.AnswerOption, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if len(options) == 0 {
		return nil, nil, domain.NewValidationError("options", "at least one option is required", nil)
	}

	question, err := domain.NewQuestion(dimensionID, text, order, domain.QuestionTypeChoice)
	if err != nil {
		return nil, nil, err
	}

	created := make([]*domain.AnswerOption, 0, len(options))
	for _, in := range options {
		option, err := domain.NewAnswerOption(question.ID, in.Text, in.Value)
		if err != nil {
			return nil, nil, err
		}
		created = append(created, option)
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.questions.WithTx(tx).Create(ctx, question); err != nil {
			return fmt.Errorf("failed to create question: %w", err)
		}

		txOptions := s.options.WithTx(tx)
		for _, option := range created {
			if err := txOptions.Create(ctx, option); err != nil {
				return fmt.Errorf("failed to create answer option: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		log.Error("failed to create choice question",
			slog.String("error", err.Error()),
			slog.String("dimension_id", dimensionID.String()))
		return nil, nil, err
	}

	return question, created, nil
}

func (s *catalogServiceImpl) UpdateQuestion(ctx context.Context, question *domain.Question) error {
	if err := question.Validate(); err != nil {
		return err
	}

	return s.questions.Update(ctx, question)
}

func (s *catalogServiceImpl) DeleteQuestion(ctx context.Context, id uuid.UUID) error {
	return s.questions.Delete(ctx, id)
}

func (s *catalogServiceImpl) ListAnswerOptions(ctx context.Context, questionID uuid.UUID) ([]*domain.AnswerOption, error) {
	if questionID == uuid.Nil {
		return nil, domain.NewValidationError("question_id", "is required", nil)
	}

	return s.options.ListByQuestion(ctx, questionID)
}

func (s *catalogServiceImpl) CreateAnswerOption(
	ctx context.Context,
	questionID uuid.UUID,
	text string,
	value int,
) (*domain.AnswerOption, error) {
	option, err := domain.NewAnswerOption(questionID, text, value)
	if err != nil {
		return nil, err
	}

	if err := s.options.Create(ctx, option); err != nil {
		return nil, fmt.Errorf("failed to create answer option: %w", err)
	}

	return option, nil
}
