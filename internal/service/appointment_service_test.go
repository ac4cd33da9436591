package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/myworld/myworld-api/internal/domain"
	"github.com/myworld/myworld-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAppointmentService(t *testing.T, appointments *MockAppointmentStore) AppointmentService {
	t.Helper()

	svc, err := NewAppointmentService(appointments, slog.Default())
	require.NoError(t, err)
	return svc
}

func TestAppointmentService_Create(t *testing.T) {
	callerID := uuid.New()
	start := time.Now().UTC().Add(time.Hour)

	t.Run("owner resolved from caller", func(t *testing.T) {
		appointments := &MockAppointmentStore{}
		appointments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Appointment")).Return(nil)

		svc := newAppointmentService(t, appointments)

		appointment, err := svc.Create(context.Background(), callerID, AppointmentCreate{
			Title:     "Checkup",
			StartTime: start,
		})
		require.NoError(t, err)
		assert.Equal(t, callerID, appointment.UserID)
	})

	t.Run("conflicting owner rejected", func(t *testing.T) {
		svc := newAppointmentService(t, &MockAppointmentStore{})

		_, err := svc.Create(context.Background(), callerID, AppointmentCreate{
			OwnerID:   uuid.New(),
			Title:     "Checkup",
			StartTime: start,
		})
		assert.ErrorIs(t, err, domain.ErrOwnerConflict)
	})

	t.Run("no owner at all rejected", func(t *testing.T) {
		svc := newAppointmentService(t, &MockAppointmentStore{})

		_, err := svc.Create(context.Background(), uuid.Nil, AppointmentCreate{
			Title:     "Checkup",
			StartTime: start,
		})
		assert.ErrorIs(t, err, domain.ErrOwnerRequired)
	})

	t.Run("end before start rejected", func(t *testing.T) {
		svc := newAppointmentService(t, &MockAppointmentStore{})

		end := start.Add(-time.Minute)
		_, err := svc.Create(context.Background(), callerID, AppointmentCreate{
			Title:     "Checkup",
			StartTime: start,
			EndTime:   &end,
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("end equal to start rejected", func(t *testing.T) {
		svc := newAppointmentService(t, &MockAppointmentStore{})

		end := start
		_, err := svc.Create(context.Background(), callerID, AppointmentCreate{
			Title:     "Checkup",
			StartTime: start,
			EndTime:   &end,
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("open-ended appointment allowed", func(t *testing.T) {
		appointments := &MockAppointmentStore{}
		appointments.On("Create", mock.Anything, mock.Anything).Return(nil)

		svc := newAppointmentService(t, appointments)

		appointment, err := svc.Create(context.Background(), callerID, AppointmentCreate{
			Title:     "Open ended",
			StartTime: start,
		})
		require.NoError(t, err)
		assert.Nil(t, appointment.EndTime)
	})
}

func TestAppointmentService_OwnershipPolicy(t *testing.T) {
	callerID := uuid.New()
	strangerID := uuid.New()
	appointmentID := uuid.New()

	foreign := &domain.Appointment{
		ID:        appointmentID,
		UserID:    strangerID,
		Title:     "Private",
		StartTime: time.Now().UTC(),
	}

	t.Run("foreign get reports not found", func(t *testing.T) {
		appointments := &MockAppointmentStore{}
		appointments.On("GetByID", mock.Anything, appointmentID).Return(foreign, nil)

		svc := newAppointmentService(t, appointments)

		_, err := svc.GetByID(context.Background(), callerID, appointmentID)
		assert.ErrorIs(t, err, store.ErrAppointmentNotFound)
	})

	t.Run("foreign delete reports not found", func(t *testing.T) {
		appointments := &MockAppointmentStore{}
		appointments.On("GetByID", mock.Anything, appointmentID).Return(foreign, nil)

		svc := newAppointmentService(t, appointments)

		err := svc.Delete(context.Background(), callerID, appointmentID)
		assert.ErrorIs(t, err, store.ErrAppointmentNotFound)
		appointments.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("foreign update reports not found", func(t *testing.T) {
		appointments := &MockAppointmentStore{}
		appointments.On("GetByID", mock.Anything, appointmentID).Return(foreign, nil)

		svc := newAppointmentService(t, appointments)

		_, err := svc.Update(context.Background(), callerID, AppointmentUpdate{
			ID:        appointmentID,
			Title:     "Hijack",
			StartTime: time.Now().UTC(),
		})
		assert.ErrorIs(t, err, store.ErrAppointmentNotFound)
	})

	t.Run("owned get succeeds", func(t *testing.T) {
		owned := &domain.Appointment{
			ID:        appointmentID,
			UserID:    callerID,
			Title:     "Mine",
			StartTime: time.Now().UTC(),
		}
		appointments := &MockAppointmentStore{}
		appointments.On("GetByID", mock.Anything, appointmentID).Return(owned, nil)

		svc := newAppointmentService(t, appointments)

		appointment, err := svc.GetByID(context.Background(), callerID, appointmentID)
		require.NoError(t, err)
		assert.Equal(t, "Mine", appointment.Title)
	})
}

func TestAppointmentService_Update(t *testing.T) {
	callerID := uuid.New()
	appointmentID := uuid.New()
	start := time.Now().UTC()

	t.Run("replaces mutable fields", func(t *testing.T) {
		owned := &domain.Appointment{
			ID:        appointmentID,
			UserID:    callerID,
			Title:     "Old title",
			StartTime: start,
		}
		appointments := &MockAppointmentStore{}
		appointments.On("GetByID", mock.Anything, appointmentID).Return(owned, nil)
		appointments.On("Update", mock.Anything, mock.Anything).Return(nil)

		svc := newAppointmentService(t, appointments)

		newStart := start.Add(2 * time.Hour)
		updated, err := svc.Update(context.Background(), callerID, AppointmentUpdate{
			ID:        appointmentID,
			Title:     "New title",
			StartTime: newStart,
			Location:  "Office",
		})
		require.NoError(t, err)
		assert.Equal(t, "New title", updated.Title)
		assert.Equal(t, newStart, updated.StartTime)
		assert.Equal(t, "Office", updated.Location)
		assert.Equal(t, callerID, updated.UserID)
	})

	t.Run("schedule invariant enforced on update", func(t *testing.T) {
		svc := newAppointmentService(t, &MockAppointmentStore{})

		end := start.Add(-time.Hour)
		_, err := svc.Update(context.Background(), callerID, AppointmentUpdate{
			ID:        appointmentID,
			Title:     "Broken window",
			StartTime: start,
			EndTime:   &end,
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
