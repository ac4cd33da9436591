package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/myworld/myworld-api/internal/domain"
	"github.com/myworld/myworld-api/internal/platform/logger"
	"github.com/myworld/myworld-api/internal/store"
)

// AppointmentCreate carries the fields for creating an appointment.
// OwnerID is the optional body-supplied owner; the authoritative owner is
// resolved against the caller by ResolveOwner.
type AppointmentCreate struct {
	OwnerID     uuid.UUID
	Title       string
	Description string
	StartTime   time.Time
	EndTime     *time.Time
	Location    string
}

// AppointmentUpdate carries the fields for updating an appointment.
// All mutable fields are replaced.
type AppointmentUpdate struct {
	ID          uuid.UUID
	Title       string
	Description string
	StartTime   time.Time
	EndTime     *time.Time
	Location    string
}

// AppointmentService provides owner-scoped appointment operations.
//
// A target that exists but belongs to someone else is reported with the same
// not-found signal as a missing one, so callers cannot probe for other
// users' resources.
type AppointmentService interface {
	// ListForOwner returns the caller's appointments ordered by start time.
	ListForOwner(ctx context.Context, callerID uuid.UUID) ([]*domain.Appointment, error)

	// GetByID retrieves one appointment owned by the caller.
	GetByID(ctx context.Context, callerID, appointmentID uuid.UUID) (*domain.Appointment, error)

	// Create stores a new appointment. The owner is resolved from
	// callerID and the payload's OwnerID.
	Create(ctx context.Context, callerID uuid.UUID, req AppointmentCreate) (*domain.Appointment, error)

	// Update replaces an appointment's mutable fields.
	Update(ctx context.Context, callerID uuid.UUID, req AppointmentUpdate) (*domain.Appointment, error)

	// Delete removes an appointment owned by the caller.
	Delete(ctx context.Context, callerID, appointmentID uuid.UUID) error
}

// appointmentServiceImpl implements AppointmentService.
type appointmentServiceImpl struct {
	appointments store.AppointmentStore
	logger       *slog.Logger
}

var _ AppointmentService = (*appointmentServiceImpl)(nil)

// NewAppointmentService creates an AppointmentService.
func NewAppointmentService(appointments store.AppointmentStore, log *slog.Logger) (AppointmentService, error) {
	if appointments == nil {
		return nil, domain.NewValidationError("appointments", "cannot be nil", nil)
	}
	if log == nil {
		log = slog.Default()
	}

	return &appointmentServiceImpl{
		appointments: appointments,
		logger:       log.With(slog.String("component", "appointment_service")),
	}, nil
}

// ListForOwner implements AppointmentService.ListForOwner.
func (s *appointmentServiceImpl) ListForOwner(ctx context.Context, callerID uuid.UUID) ([]*domain.Appointment, error) {
	if callerID == uuid.Nil {
		return nil, domain.ErrOwnerRequired
	}

	return s.appointments.ListByUser(ctx, callerID)
}

// GetByID implements AppointmentService.GetByID.
func (s *appointmentServiceImpl) GetByID(ctx context.Context, callerID, appointmentID uuid.UUID) (*domain.Appointment, error) {
	if callerID == uuid.Nil {
		return nil, domain.ErrOwnerRequired
	}
	if appointmentID == uuid.Nil {
		return nil, domain.NewValidationError("appointment_id", "is required", nil)
	}

	appointment, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if appointment.UserID != callerID {
		// Indistinguishable from absent.
		return nil, store.ErrAppointmentNotFound
	}

	return appointment, nil
}

// Create implements AppointmentService.Create.
func (s *appointmentServiceImpl) Create(
	ctx context.Context,
	callerID uuid.UUID,
	req AppointmentCreate,
) (*domain.Appointment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	ownerID, err := ResolveOwner(callerID, req.OwnerID)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateSchedule(req.StartTime, req.EndTime); err != nil {
		return nil, domain.NewValidationError("end_time", err.Error(), nil)
	}

	appointment, err := domain.NewAppointment(
		ownerID, req.Title, req.Description, req.StartTime, req.EndTime, req.Location)
	if err != nil {
		return nil, err
	}

	if err := s.appointments.Create(ctx, appointment); err != nil {
		log.Error("failed to create appointment",
			slog.String("error", err.Error()),
			slog.String("user_id", ownerID.String()))
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	log.Info("appointment created",
		slog.String("appointment_id", appointment.ID.String()),
		slog.String("user_id", ownerID.String()))

	return appointment, nil
}

// Update implements AppointmentService.Update.
func (s *appointmentServiceImpl) Update(
	ctx context.Context,
	callerID uuid.UUID,
	req AppointmentUpdate,
) (*domain.Appointment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if callerID == uuid.Nil {
		return nil, domain.ErrOwnerRequired
	}
	if req.ID == uuid.Nil {
		return nil, domain.NewValidationError("appointment_id", "is required", nil)
	}

	if err := domain.ValidateSchedule(req.StartTime, req.EndTime); err != nil {
		return nil, domain.NewValidationError("end_time", err.Error(), nil)
	}

	appointment, err := s.appointments.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if appointment.UserID != callerID {
		return nil, store.ErrAppointmentNotFound
	}

	appointment.Title = req.Title
	appointment.Description = req.Description
	appointment.StartTime = req.StartTime
	appointment.EndTime = req.EndTime
	appointment.Location = req.Location

	if err := appointment.Validate(); err != nil {
		return nil, err
	}

	if err := s.appointments.Update(ctx, appointment); err != nil {
		log.Error("failed to update appointment",
			slog.String("error", err.Error()),
			slog.String("appointment_id", req.ID.String()))
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}

	return appointment, nil
}

// Delete implements AppointmentService.Delete.
func (s *appointmentServiceImpl) Delete(ctx context.Context, callerID, appointmentID uuid.UUID) error {
	if callerID == uuid.Nil {
		return domain.ErrOwnerRequired
	}
	if appointmentID == uuid.Nil {
		return domain.NewValidationError("appointment_id", "is required", nil)
	}

	appointment, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment.UserID != callerID {
		return store.ErrAppointmentNotFound
	}

	return s.appointments.Delete(ctx, appointmentID)
}
