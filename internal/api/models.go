package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/myworld/myworld-api/internal/domain"
	"github.com/myworld/myworld-api/internal/service"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name"  validate:"max=100"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	AccessToken  string    `json:"token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    string    `json:"expires_at,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// SubmitAnswerRequest defines the payload for recording an answer within a
// session. At least one of AnswerValue and AnswerText must be present.
type SubmitAnswerRequest struct {
	QuestionID  uuid.UUID `json:"question_id" validate:"required"`
	AnswerValue *int      `json:"answer_value,omitempty"`
	AnswerText  *string   `json:"answer_text,omitempty"`
}

// SessionResultResponse defines the computed result of a session.
type SessionResultResponse struct {
	SessionID uuid.UUID                `json:"session_id"`
	Scores    []service.DimensionScore `json:"scores"`
}

// AppointmentRequest defines the payload for creating or updating an
// appointment. UserID is the optional inline owner; on create it is
// resolved against the authenticated caller.
type AppointmentRequest struct {
	UserID      uuid.UUID  `json:"user_id,omitempty"`
	Title       string     `json:"title"       validate:"required,min=1,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	StartTime   time.Time  `json:"start_time"  validate:"required"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Location    string     `json:"location"    validate:"max=500"`
}

// ReminderRequest defines the payload for creating or updating a reminder.
type ReminderRequest struct {
	UserID               uuid.UUID  `json:"user_id,omitempty"`
	RelatedAppointmentID *uuid.UUID `json:"related_appointment_id,omitempty"`
	Message              string     `json:"message"   validate:"required,min=1,max=1000"`
	RemindAt             time.Time  `json:"remind_at" validate:"required"`
	IsSent               bool       `json:"is_sent,omitempty"`
}

// DimensionRequest defines the payload for creating or updating a dimension.
type DimensionRequest struct {
	Name        string `json:"name"        validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

// QuestionRequest defines the payload for creating or updating a question.
type QuestionRequest struct {
	DimensionID uuid.UUID           `json:"dimension_id" validate:"required"`
	Text        string              `json:"text"         validate:"required,min=1,max=2000"`
	Order       int                 `json:"order"        validate:"min=0"`
	Type        domain.QuestionType `json:"type"         validate:"required,oneof=scale text choice"`

	// Options may accompany a choice question; the question and its
	// options are then created together.
	Options []AnswerOptionRequest `json:"options,omitempty" validate:"omitempty,dive"`
}

// QuestionWithOptionsResponse is returned when a choice question is created
// together with its answer options.
type QuestionWithOptionsResponse struct {
	Question *domain.Question       `json:"question"`
	Options  []*domain.AnswerOption `json:"options"`
}

// AnswerOptionRequest defines the payload for creating an answer option.
type AnswerOptionRequest struct {
	Text  string `json:"text" validate:"required,min=1,max=500"`
	Value int    `json:"value"`
}
