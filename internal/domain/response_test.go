package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewResponse(t *testing.T) {
	sessionID := uuid.New()
	questionID := uuid.New()
	value := 7
	text := "Mostly satisfied"

	t.Run("NumericAnswer", func(t *testing.T) {
		resp, err := NewResponse(sessionID, questionID, &value, nil)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if resp.ID == uuid.Nil {
			t.Error("Expected non-nil UUID")
		}
		if !resp.IsScored() {
			t.Error("Expected numeric answer to be scored")
		}
	})

	t.Run("TextAnswer", func(t *testing.T) {
		resp, err := NewResponse(sessionID, questionID, nil, &text)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if resp.IsScored() {
			t.Error("Expected text answer not to be scored")
		}
	})

	t.Run("BothAnswers", func(t *testing.T) {
		if _, err := NewResponse(sessionID, questionID, &value, &text); err != nil {
			t.Errorf("Expected value plus text to be valid, got %v", err)
		}
	})

	t.Run("NoContent", func(t *testing.T) {
		if _, err := NewResponse(sessionID, questionID, nil, nil); err != ErrAnswerContentMissing {
			t.Errorf("Expected ErrAnswerContentMissing, got %v", err)
		}
	})

	t.Run("EmptyTextOnly", func(t *testing.T) {
		empty := ""
		if _, err := NewResponse(sessionID, questionID, nil, &empty); err != ErrAnswerContentMissing {
			t.Errorf("Expected ErrAnswerContentMissing, got %v", err)
		}
	})

	t.Run("MissingSessionID", func(t *testing.T) {
		if _, err := NewResponse(uuid.Nil, questionID, &value, nil); err != ErrResponseSessionIDEmpty {
			t.Errorf("Expected ErrResponseSessionIDEmpty, got %v", err)
		}
	})

	t.Run("MissingQuestionID", func(t *testing.T) {
		if _, err := NewResponse(sessionID, uuid.Nil, &value, nil); err != ErrResponseQuestionIDEmpty {
			t.Errorf("Expected ErrResponseQuestionIDEmpty, got %v", err)
		}
	})
}
