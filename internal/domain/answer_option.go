package domain

import (
	"errors"

	"github.com/google/uuid"
)

// AnswerOption validation errors
var (
	ErrAnswerOptionIDEmpty         = errors.New("answer option ID cannot be empty")
	ErrAnswerOptionQuestionIDEmpty = errors.New("answer option question ID cannot be empty")
	ErrAnswerOptionTextEmpty       = errors.New("answer option text cannot be empty")
)

// AnswerOption is a predefined answer for a choice question. Value is the
// numeric score recorded when the option is selected.
type AnswerOption struct {
	ID         uuid.UUID `json:"id"`
	QuestionID uuid.UUID `json:"question_id"`
	Text       string    `json:"text"`
	Value      int       `json:"value"`
}

// NewAnswerOption creates an AnswerOption with a fresh UUID.
func NewAnswerOption(questionID uuid.UUID, text string, value int) (*AnswerOption, error) {
	o := &AnswerOption{
		ID:         uuid.New(),
		QuestionID: questionID,
		Text:       text,
		Value:      value,
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate checks if the AnswerOption has valid data.
func (o *AnswerOption) Validate() error {
	if o.ID == uuid.Nil {
		return ErrAnswerOptionIDEmpty
	}

	if o.QuestionID == uuid.Nil {
		return ErrAnswerOptionQuestionIDEmpty
	}

	if o.Text == "" {
		return ErrAnswerOptionTextEmpty
	}

	return nil
}
