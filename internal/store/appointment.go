package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/myworld/myworld-api/internal/domain"
)

// AppointmentStore defines the interface for appointment persistence.
type AppointmentStore interface {
	// Create saves a new appointment.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, appointment *domain.Appointment) error

	// GetByID retrieves an appointment by ID regardless of owner; the
	// service layer compares the owner before exposing it.
	// Returns ErrAppointmentNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)

	// ListByUser returns all appointments owned by one user ordered by
	// start time.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Appointment, error)

	// Update modifies an existing appointment.
	// Returns ErrAppointmentNotFound if it does not exist.
	Update(ctx context.Context, appointment *domain.Appointment) error

	// Delete removes an appointment by ID.
	// Returns ErrAppointmentNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns an AppointmentStore bound to the provided transaction.
	WithTx(tx *sql.Tx) AppointmentStore
}
