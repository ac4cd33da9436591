package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/myworld/myworld-api/internal/domain"
)

// ReminderFilter narrows reminder listings.
type ReminderFilter struct {
	// OnlyUpcoming limits the listing to unsent reminders whose RemindAt
	// is at or after Now.
	OnlyUpcoming bool

	// Now is the reference time for the upcoming filter. The zero value
	// means time.Now().UTC() at query time.
	Now time.Time
}

// ReminderStore defines the interface for reminder persistence.
type ReminderStore interface {
	// Create saves a new reminder.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, reminder *domain.Reminder) error

	// GetByID retrieves a reminder by ID regardless of owner; the service
	// layer compares the owner before exposing it.
	// Returns ErrReminderNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reminder, error)

	// ListByUser returns reminders owned by one user ordered by remind
	// time, optionally filtered to upcoming unsent ones.
	ListByUser(ctx context.Context, userID uuid.UUID, filter ReminderFilter) ([]*domain.Reminder, error)

	// Update modifies an existing reminder, including its IsSent flag.
	// Returns ErrReminderNotFound if it does not exist.
	Update(ctx context.Context, reminder *domain.Reminder) error

	// Delete removes a reminder by ID.
	// Returns ErrReminderNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a ReminderStore bound to the provided transaction.
	WithTx(tx *sql.Tx) ReminderStore
}
