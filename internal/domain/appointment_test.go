package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewAppointment(t *testing.T) {
	userID := uuid.New()
	start := time.Now().UTC()
	end := start.Add(time.Hour)

	appt, err := NewAppointment(userID, "Dentist", "Annual checkup", start, &end, "Main St 1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if appt.ID == uuid.Nil {
		t.Error("Expected non-nil UUID")
	}
	if appt.UserID != userID {
		t.Errorf("Expected UserID %v, got %v", userID, appt.UserID)
	}

	// Missing owner
	if _, err := NewAppointment(uuid.Nil, "Dentist", "", start, nil, ""); err != ErrAppointmentUserIDEmpty {
		t.Errorf("Expected ErrAppointmentUserIDEmpty, got %v", err)
	}

	// Empty title
	if _, err := NewAppointment(userID, "", "", start, nil, ""); err != ErrAppointmentTitleEmpty {
		t.Errorf("Expected ErrAppointmentTitleEmpty, got %v", err)
	}
}

func TestValidateSchedule(t *testing.T) {
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	t.Run("OpenEnded", func(t *testing.T) {
		if err := ValidateSchedule(start, nil); err != nil {
			t.Errorf("Expected nil end time to be valid, got %v", err)
		}
	})

	t.Run("EndAfterStart", func(t *testing.T) {
		end := start.Add(30 * time.Minute)
		if err := ValidateSchedule(start, &end); err != nil {
			t.Errorf("Expected end after start to be valid, got %v", err)
		}
	})

	t.Run("EndEqualsStart", func(t *testing.T) {
		end := start
		if err := ValidateSchedule(start, &end); err != ErrAppointmentEndNotAfter {
			t.Errorf("Expected ErrAppointmentEndNotAfter, got %v", err)
		}
	})

	t.Run("EndBeforeStart", func(t *testing.T) {
		end := start.Add(-time.Minute)
		if err := ValidateSchedule(start, &end); err != ErrAppointmentEndNotAfter {
			t.Errorf("Expected ErrAppointmentEndNotAfter, got %v", err)
		}
	})
}
