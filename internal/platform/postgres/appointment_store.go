package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/myworld/myworld-api/internal/domain"
	"github.com/myworld/myworld-api/internal/platform/logger"
	"github.com/myworld/myworld-api/internal/store"
)

// PostgresAppointmentStore implements the store.AppointmentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAppointmentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAppointmentStore creates a new PostgreSQL implementation of
// the AppointmentStore interface.
func NewPostgresAppointmentStore(db store.DBTX, log *slog.Logger) *PostgresAppointmentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresAppointmentStore{
		db:     db,
		logger: log.With(slog.String("component", "appointment_store")),
	}
}

var _ store.AppointmentStore = (*PostgresAppointmentStore)(nil)

// WithTx implements store.AppointmentStore.WithTx.
func (s *PostgresAppointmentStore) WithTx(tx *sql.Tx) store.AppointmentStore {
	return &PostgresAppointmentStore{db: tx, logger: s.logger}
}

const appointmentColumns = "id, user_id, title, description, start_time, end_time, location"

func scanAppointment(row interface{ Scan(dest ...any) error }) (*domain.Appointment, error) {
	var appointment domain.Appointment
	err := row.Scan(
		&appointment.ID,
		&appointment.UserID,
		&appointment.Title,
		&appointment.Description,
		&appointment.StartTime,
		&appointment.EndTime,
		&appointment.Location,
	)
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// Create implements store.AppointmentStore.Create.
func (s *PostgresAppointmentStore) Create(ctx context.Context, appointment *domain.Appointment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := appointment.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO appointments (id, user_id, title, description, start_time, end_time, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.ExecContext(ctx, query,
		appointment.ID,
		appointment.UserID,
		appointment.Title,
		appointment.Description,
		appointment.StartTime,
		appointment.EndTime,
		appointment.Location,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: user %s does not exist",
				store.ErrInvalidEntity, appointment.UserID)
		}
		log.Error("failed to create appointment",
			slog.String("error", err.Error()),
			slog.String("appointment_id", appointment.ID.String()))
		return err
	}

	return nil
}

// GetByID implements store.AppointmentStore.GetByID.
func (s *PostgresAppointmentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`

	appointment, err := scanAppointment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAppointmentNotFound
		}
		return nil, err
	}

	return appointment, nil
}

// ListByUser implements store.AppointmentStore.ListByUser.
func (s *PostgresAppointmentStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Appointment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE user_id = $1 ORDER BY start_time`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	appointments := []*domain.Appointment{}
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return appointments, nil
}

// Update implements store.AppointmentStore.Update.
func (s *PostgresAppointmentStore) Update(ctx context.Context, appointment *domain.Appointment) error {
	if err := appointment.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE appointments
		SET title = $1, description = $2, start_time = $3, end_time = $4, location = $5
		WHERE id = $6`

	result, err := s.db.ExecContext(ctx, query,
		appointment.Title,
		appointment.Description,
		appointment.StartTime,
		appointment.EndTime,
		appointment.Location,
		appointment.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrAppointmentNotFound
	}

	return nil
}

// Delete implements store.AppointmentStore.Delete.
func (s *PostgresAppointmentStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrAppointmentNotFound
	}

	return nil
}
