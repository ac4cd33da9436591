package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Reminder validation errors
var (
	ErrReminderIDEmpty      = errors.New("reminder ID cannot be empty")
	ErrReminderUserIDEmpty  = errors.New("reminder user ID cannot be empty")
	ErrReminderMessageEmpty = errors.New("reminder message cannot be empty")
)

// Reminder is a scheduled note owned by one user. RelatedAppointmentID is a
// soft reference: it is not validated against the appointment store and may
// dangle. IsSent is set by an external delivery collaborator; this service
// only stores it.
type Reminder struct {
	ID                   uuid.UUID  `json:"id"`
	UserID               uuid.UUID  `json:"user_id"`
	RelatedAppointmentID *uuid.UUID `json:"related_appointment_id,omitempty"`
	Message              string     `json:"message"`
	RemindAt             time.Time  `json:"remind_at"`
	IsSent               bool       `json:"is_sent"`
}

// NewReminder creates an unsent Reminder with a fresh UUID.
// Returns an error if validation fails.
func NewReminder(
	userID uuid.UUID,
	relatedAppointmentID *uuid.UUID,
	message string,
	remindAt time.Time,
) (*Reminder, error) {
	r := &Reminder{
		ID:                   uuid.New(),
		UserID:               userID,
		RelatedAppointmentID: relatedAppointmentID,
		Message:              message,
		RemindAt:             remindAt,
		IsSent:               false,
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate checks if the Reminder has valid data.
func (r *Reminder) Validate() error {
	if r.ID == uuid.Nil {
		return ErrReminderIDEmpty
	}

	if r.UserID == uuid.Nil {
		return ErrReminderUserIDEmpty
	}

	if r.Message == "" {
		return ErrReminderMessageEmpty
	}

	return nil
}
