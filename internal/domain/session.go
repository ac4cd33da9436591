package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Session validation errors
var (
	ErrSessionIDEmpty     = errors.New("session ID cannot be empty")
	ErrSessionUserIDEmpty = errors.New("session user ID cannot be empty")
)

// AssessmentSession is one run of the questionnaire by one user.
// CompletedAt transitions once from nil to a timestamp and is never reset;
// a session with a nil CompletedAt is still open.
type AssessmentSession struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// NewAssessmentSession creates a session in the started state for the given
// user. Returns an error if validation fails.
func NewAssessmentSession(userID uuid.UUID) (*AssessmentSession, error) {
	s := &AssessmentSession{
		ID:        uuid.New(),
		UserID:    userID,
		StartedAt: time.Now().UTC(),
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks if the AssessmentSession has valid data.
func (s *AssessmentSession) Validate() error {
	if s.ID == uuid.Nil {
		return ErrSessionIDEmpty
	}

	if s.UserID == uuid.Nil {
		return ErrSessionUserIDEmpty
	}

	return nil
}

// IsCompleted reports whether the session has been completed.
func (s *AssessmentSession) IsCompleted() bool {
	return s.CompletedAt != nil
}
