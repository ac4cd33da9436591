package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Appointment validation errors
var (
	ErrAppointmentIDEmpty     = errors.New("appointment ID cannot be empty")
	ErrAppointmentUserIDEmpty = errors.New("appointment user ID cannot be empty")
	ErrAppointmentTitleEmpty  = errors.New("appointment title cannot be empty")
	ErrAppointmentEndNotAfter = errors.New("appointment end time must be after the start time")
)

// Appointment is a free-form calendar entry owned by one user. EndTime and
// Location are optional; when EndTime is present it must be after StartTime.
type Appointment struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Location    string     `json:"location,omitempty"`
}

// NewAppointment creates an Appointment with a fresh UUID.
// Returns an error if validation fails.
func NewAppointment(
	userID uuid.UUID,
	title, description string,
	startTime time.Time,
	endTime *time.Time,
	location string,
) (*Appointment, error) {
	a := &Appointment{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: description,
		StartTime:   startTime,
		EndTime:     endTime,
		Location:    location,
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate checks if the Appointment has valid data, including the schedule
// ordering invariant.
func (a *Appointment) Validate() error {
	if a.ID == uuid.Nil {
		return ErrAppointmentIDEmpty
	}

	if a.UserID == uuid.Nil {
		return ErrAppointmentUserIDEmpty
	}

	if a.Title == "" {
		return ErrAppointmentTitleEmpty
	}

	return ValidateSchedule(a.StartTime, a.EndTime)
}

// ValidateSchedule enforces the ordering invariant for an appointment window:
// an absent end time is always valid, a present one must fall strictly after
// the start.
func ValidateSchedule(start time.Time, end *time.Time) error {
	if end != nil && !end.After(start) {
		return ErrAppointmentEndNotAfter
	}
	return nil
}
