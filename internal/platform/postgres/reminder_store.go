package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/myworld/myworld-api/internal/domain"
	"github.com/myworld/myworld-api/internal/platform/logger"
	"github.com/myworld/myworld-api/internal/store"
)

// PostgresReminderStore implements the store.ReminderStore interface
// using a PostgreSQL database as the storage backend.
type PostgresReminderStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresReminderStore creates a new PostgreSQL implementation of the
// ReminderStore interface.
func NewPostgresReminderStore(db store.DBTX, log *slog.Logger) *PostgresReminderStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresReminderStore{
		db:     db,
		logger: log.With(slog.String("component", "reminder_store")),
	}
}

var _ store.ReminderStore = (*PostgresReminderStore)(nil)

// WithTx implements store.ReminderStore.WithTx.
func (s *PostgresReminderStore) WithTx(tx *sql.Tx) store.ReminderStore {
	return &PostgresReminderStore{db: tx, logger: s.logger}
}

const reminderColumns = "id, user_id, related_appointment_id, message, remind_at, is_sent"

func scanReminder(row interface{ Scan(dest ...any) error }) (*domain.Reminder, error) {
	var reminder domain.Reminder
	err := row.Scan(
		&reminder.ID,
		&reminder.UserID,
		&reminder.RelatedAppointmentID,
		&reminder.Message,
		&reminder.RemindAt,
		&reminder.IsSent,
	)
	if err != nil {
		return nil, err
	}
	return &reminder, nil
}

// Create implements store.ReminderStore.Create. RelatedAppointmentID is a
// soft reference and is stored as-is, without a foreign key check.
func (s *PostgresReminderStore) Create(ctx context.Context, reminder *domain.Reminder) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := reminder.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO reminders (id, user_id, related_appointment_id, message, remind_at, is_sent)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.db.ExecContext(ctx, query,
		reminder.ID,
		reminder.UserID,
		reminder.RelatedAppointmentID,
		reminder.Message,
		reminder.RemindAt,
		reminder.IsSent,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: user %s does not exist",
				store.ErrInvalidEntity, reminder.UserID)
		}
		log.Error("failed to create reminder",
			slog.String("error", err.Error()),
			slog.String("reminder_id", reminder.ID.String()))
		return err
	}

	return nil
}

// GetByID implements store.ReminderStore.GetByID.
func (s *PostgresReminderStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE id = $1`

	reminder, err := scanReminder(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrReminderNotFound
		}
		return nil, err
	}

	return reminder, nil
}

// ListByUser implements store.ReminderStore.ListByUser.
func (s *PostgresReminderStore) ListByUser(ctx context.Context, userID uuid.UUID, filter store.ReminderFilter) ([]*domain.Reminder, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE user_id = $1`
	args := []any{userID}

	if filter.OnlyUpcoming {
		now := filter.Now
		if now.IsZero() {
			now = time.Now().UTC()
		}
		query += ` AND remind_at >= $2 AND NOT is_sent`
		args = append(args, now)
	}

	query += ` ORDER BY remind_at`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	reminders := []*domain.Reminder{}
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, reminder)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reminders, nil
}

// Update implements store.ReminderStore.Update.
func (s *PostgresReminderStore) Update(ctx context.Context, reminder *domain.Reminder) error {
	if err := reminder.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE reminders
		SET related_appointment_id = $1, message = $2, remind_at = $3, is_sent = $4
		WHERE id = $5`

	result, err := s.db.ExecContext(ctx, query,
		reminder.RelatedAppointmentID,
		reminder.Message,
		reminder.RemindAt,
		reminder.IsSent,
		reminder.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrReminderNotFound
	}

	return nil
}

// Delete implements store.ReminderStore.Delete.
func (s *PostgresReminderStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrReminderNotFound
	}

	return nil
}
