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

// ReminderCreate carries the fields for creating a reminder. OwnerID is the
// optional body-supplied owner, resolved against the caller by ResolveOwner.
type ReminderCreate struct {
	OwnerID              uuid.UUID
	RelatedAppointmentID *uuid.UUID
	Message              string
	RemindAt             time.Time
}

// ReminderUpdate carries the fields for updating a reminder. IsSent is
// replaced along with everything else: flipping the flag goes through the
// ordinary update, there is no separate mark-sent operation.
type ReminderUpdate struct {
	ID                   uuid.UUID
	RelatedAppointmentID *uuid.UUID
	Message              string
	RemindAt             time.Time
	IsSent               bool
}

// ReminderService provides owner-scoped reminder operations with the same
// anti-enumeration policy as AppointmentService.
type ReminderService interface {
	// ListForOwner returns the caller's reminders ordered by remind time.
	// With onlyUpcoming set, only unsent reminders due now or later are
	// returned.
	ListForOwner(ctx context.Context, callerID uuid.UUID, onlyUpcoming bool) ([]*domain.Reminder, error)

	// GetByID retrieves one reminder owned by the caller.
	GetByID(ctx context.Context, callerID, reminderID uuid.UUID) (*domain.Reminder, error)

	// Create stores a new unsent reminder. The owner is resolved from
	// callerID and the payload's OwnerID.
	Create(ctx context.Context, callerID uuid.UUID, req ReminderCreate) (*domain.Reminder, error)

	// Update replaces a reminder's mutable fields, including IsSent.
	Update(ctx context.Context, callerID uuid.UUID, req ReminderUpdate) (*domain.Reminder, error)

	// Delete removes a reminder owned by the caller.
	Delete(ctx context.Context, callerID, reminderID uuid.UUID) error
}

// reminderServiceImpl implements ReminderService.
type reminderServiceImpl struct {
	reminders store.ReminderStore
	logger    *slog.Logger
}

var _ ReminderService = (*reminderServiceImpl)(nil)

// NewReminderService creates a ReminderService.
func NewReminderService(reminders store.ReminderStore, log *slog.Logger) (ReminderService, error) {
	if reminders == nil {
		return nil, domain.NewValidationError("reminders", "cannot be nil", nil)
	}
	if log == nil {
		log = slog.Default()
	}

	return &reminderServiceImpl{
		reminders: reminders,
		logger:    log.With(slog.String("component", "reminder_service")),
	}, nil
}

// ListForOwner implements ReminderService.ListForOwner.
func (s *reminderServiceImpl) ListForOwner(
	ctx context.Context,
	callerID uuid.UUID,
	onlyUpcoming bool,
) ([]*domain.Reminder, error) {
	if callerID == uuid.Nil {
		return nil, domain.ErrOwnerRequired
	}

	return s.reminders.ListByUser(ctx, callerID, store.ReminderFilter{OnlyUpcoming: onlyUpcoming})
}

// GetByID implements ReminderService.GetByID.
func (s *reminderServiceImpl) GetByID(ctx context.Context, callerID, reminderID uuid.UUID) (*domain.Reminder, error) {
	if callerID == uuid.Nil {
		return nil, domain.ErrOwnerRequired
	}
	if reminderID == uuid.Nil {
		return nil, domain.NewValidationError("reminder_id", "is required", nil)
	}

	reminder, err := s.reminders.GetByID(ctx, reminderID)
	if err != nil {
		return nil, err
	}

	if reminder.UserID != callerID {
		// Indistinguishable from absent.
		return nil, store.ErrReminderNotFound
	}

	return reminder, nil
}

// Create implements ReminderService.Create.
func (s *reminderServiceImpl) Create(
	ctx context.Context,
	callerID uuid.UUID,
	req ReminderCreate,
) (*domain.Reminder, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	ownerID, err := ResolveOwner(callerID, req.OwnerID)
	if err != nil {
		return nil, err
	}

	reminder, err := domain.NewReminder(ownerID, req.RelatedAppointmentID, req.Message, req.RemindAt)
	if err != nil {
		return nil, err
	}

	if err := s.reminders.Create(ctx, reminder); err != nil {
		log.Error("failed to create reminder",
			slog.String("error", err.Error()),
			slog.String("user_id", ownerID.String()))
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	log.Info("reminder created",
		slog.String("reminder_id", reminder.ID.String()),
		slog.String("user_id", ownerID.String()),
		slog.Time("remind_at", reminder.RemindAt))

	return reminder, nil
}

// Update implements ReminderService.Update.
func (s *reminderServiceImpl) Update(
	ctx context.Context,
	callerID uuid.UUID,
	req ReminderUpdate,
) (*domain.Reminder, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if callerID == uuid.Nil {
		return nil, domain.ErrOwnerRequired
	}
	if req.ID == uuid.Nil {
		return nil, domain.NewValidationError("reminder_id", "is required", nil)
	}

	reminder, err := s.reminders.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if reminder.UserID != callerID {
		return nil, store.ErrReminderNotFound
	}

	reminder.RelatedAppointmentID = req.RelatedAppointmentID
	reminder.Message = req.Message
	reminder.RemindAt = req.RemindAt
	reminder.IsSent = req.IsSent

	if err := reminder.Validate(); err != nil {
		return nil, err
	}

	if err := s.reminders.Update(ctx, reminder); err != nil {
		log.Error("failed to update reminder",
			slog.String("error", err.Error()),
			slog.String("reminder_id", req.ID.String()))
		return nil, fmt.Errorf("failed to update reminder: %w", err)
	}

	return reminder, nil
}

// Delete implements ReminderService.Delete.
func (s *reminderServiceImpl) Delete(ctx context.Context, callerID, reminderID uuid.UUID) error {
	if callerID == uuid.Nil {
		return domain.ErrOwnerRequired
	}
	if reminderID == uuid.Nil {
		return domain.NewValidationError("reminder_id", "is required", nil)
	}

	reminder, err := s.reminders.GetByID(ctx, reminderID)
	if err != nil {
		return err
	}
	if reminder.UserID != callerID {
		return store.ErrReminderNotFound
	}

	return s.reminders.Delete(ctx, reminderID)
}
