package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Response validation errors
var (
	ErrResponseIDEmpty         = errors.New("response ID cannot be empty")
	ErrResponseSessionIDEmpty  = errors.New("response session ID cannot be empty")
	ErrResponseQuestionIDEmpty = errors.New("response question ID cannot be empty")
	ErrAnswerContentMissing    = errors.New("either a numeric value or a text answer must be provided")
)

// Response is one recorded answer to one question within a session.
// Exactly one of AnswerValue/AnswerText is set at creation time. Responses
// are append-only: answering the same question again records a new Response
// rather than replacing the old one.
type Response struct {
	ID          uuid.UUID `json:"id"`
	SessionID   uuid.UUID `json:"session_id"`
	QuestionID  uuid.UUID `json:"question_id"`
	AnswerValue *int      `json:"answer_value,omitempty"`
	AnswerText  *string   `json:"answer_text,omitempty"`
}

// NewResponse creates a Response with a fresh UUID. At least one of value
// and text must be non-nil. Returns an error if validation fails.
func NewResponse(sessionID, questionID uuid.UUID, value *int, text *string) (*Response, error) {
	r := &Response{
		ID:          uuid.New(),
		SessionID:   sessionID,
		QuestionID:  questionID,
		AnswerValue: value,
		AnswerText:  text,
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate checks if the Response has valid data.
func (r *Response) Validate() error {
	if r.ID == uuid.Nil {
		return ErrResponseIDEmpty
	}

	if r.SessionID == uuid.Nil {
		return ErrResponseSessionIDEmpty
	}

	if r.QuestionID == uuid.Nil {
		return ErrResponseQuestionIDEmpty
	}

	if r.AnswerValue == nil && (r.AnswerText == nil || *r.AnswerText == "") {
		return ErrAnswerContentMissing
	}

	return nil
}

// IsScored reports whether the response carries a numeric value and
// therefore participates in scoring.
func (r *Response) IsScored() bool {
	return r.AnswerValue != nil
}
