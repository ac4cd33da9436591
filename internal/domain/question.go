package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Question validation errors
var (
	ErrQuestionIDEmpty          = errors.New("question ID cannot be empty")
	ErrQuestionDimensionIDEmpty = errors.New("question dimension ID cannot be empty")
	ErrQuestionTextEmpty        = errors.New("question text cannot be empty")
	ErrInvalidQuestionType      = errors.New("invalid question type")
)

// QuestionType determines how a question is answered and whether it
// participates in scoring.
type QuestionType string

const (
	// QuestionTypeScale is a numeric scale question. Only scale answers
	// feed the per-dimension averages.
	QuestionTypeScale QuestionType = "scale"

	// QuestionTypeText is a free-form text question, excluded from scoring.
	QuestionTypeText QuestionType = "text"

	// QuestionTypeChoice is a single-choice question with predefined
	// answer options.
	QuestionTypeChoice QuestionType = "choice"
)

// Question belongs to a dimension and is presented in Order within it.
// Order is a presentation hint only; duplicates are allowed.
type Question struct {
	ID          uuid.UUID    `json:"id"`
	DimensionID uuid.UUID    `json:"dimension_id"`
	Text        string       `json:"text"`
	Order       int          `json:"order"`
	Type        QuestionType `json:"type"`
}

// NewQuestion creates a Question with a fresh UUID.
// Returns an error if validation fails.
func NewQuestion(dimensionID uuid.UUID, text string, order int, qType QuestionType) (*Question, error) {
	q := &Question{
		ID:          uuid.New(),
		DimensionID: dimensionID,
		Text:        text,
		Order:       order,
		Type:        qType,
	}

	if err := q.Validate(); err != nil {
		return nil, err
	}

	return q, nil
}

// Validate checks if the Question has valid data.
func (q *Question) Validate() error {
	if q.ID == uuid.Nil {
		return ErrQuestionIDEmpty
	}

	if q.DimensionID == uuid.Nil {
		return ErrQuestionDimensionIDEmpty
	}

	if q.Text == "" {
		return ErrQuestionTextEmpty
	}

	switch q.Type {
	case QuestionTypeScale, QuestionTypeText, QuestionTypeChoice:
		return nil
	default:
		return ErrInvalidQuestionType
	}
}
