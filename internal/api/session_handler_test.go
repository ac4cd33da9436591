package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/myworld/myworld-api/internal/api/shared"
	"github.com/myworld/myworld-api/internal/domain"
	"github.com/myworld/myworld-api/internal/service"
	"github.com/myworld/myworld-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockSessionService is a mock implementation of service.SessionService for testing
type MockSessionService struct {
	StartFn        func(ctx context.Context, userID uuid.UUID) (*service.SessionStart, error)
	SubmitAnswerFn func(ctx context.Context, sessionID, questionID uuid.UUID, value *int, text *string) (*domain.Response, error)
	CompleteFn     func(ctx context.Context, sessionID uuid.UUID) (*service.SessionCompletion, error)
	GetResultFn    func(ctx context.Context, sessionID uuid.UUID) ([]service.DimensionScore, error)
}

func (m *MockSessionService) Start(ctx context.Context, userID uuid.UUID) (*service.SessionStart, error) {
	if m.StartFn != nil {
		return m.StartFn(ctx, userID)
	}
	return nil, nil
}

func (m *MockSessionService) SubmitAnswer(
	ctx context.Context,
	sessionID, questionID uuid.UUID,
	value *int,
	text *string,
) (*domain.Response, error) {
	if m.SubmitAnswerFn != nil {
		return m.SubmitAnswerFn(ctx, sessionID, questionID, value, text)
	}
	return nil, nil
}

func (m *MockSessionService) Complete(
	ctx context.Context,
	sessionID uuid.UUID,
) (*service.SessionCompletion, error) {
	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, sessionID)
	}
	return nil, nil
}

func (m *MockSessionService) GetResult(
	ctx context.Context,
	sessionID uuid.UUID,
) ([]service.DimensionScore, error) {
	if m.GetResultFn != nil {
		return m.GetResultFn(ctx, sessionID)
	}
	return nil, nil
}

// withUserID returns a request carrying the authenticated caller's ID.
func withUserID(req *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
	return req.WithContext(ctx)
}

// withPathParam returns a request carrying a chi URL parameter.
func withPathParam(req *http.Request, name, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestSessionHandler_Start(t *testing.T) {
	fixedUserID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	fixedSessionID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	fixedTime := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	t.Run("successful start", func(t *testing.T) {
		mockService := &MockSessionService{
			StartFn: func(ctx context.Context, userID uuid.UUID) (*service.SessionStart, error) {
				assert.Equal(t, fixedUserID, userID)
				return &service.SessionStart{SessionID: fixedSessionID, StartedAt: fixedTime}, nil
			},
		}
		handler := NewSessionHandler(mockService)

		req := withUserID(httptest.NewRequest("POST", "/api/sessions/start", nil), fixedUserID)
		recorder := httptest.NewRecorder()

		handler.Start(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var resp service.SessionStart
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, fixedSessionID, resp.SessionID)
	})

	t.Run("missing user ID", func(t *testing.T) {
		handler := NewSessionHandler(&MockSessionService{})

		req := httptest.NewRequest("POST", "/api/sessions/start", nil)
		recorder := httptest.NewRecorder()

		handler.Start(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("service failure", func(t *testing.T) {
		mockService := &MockSessionService{
			StartFn: func(ctx context.Context, userID uuid.UUID) (*service.SessionStart, error) {
				return nil, errors.New("db down")
			},
		}
		handler := NewSessionHandler(mockService)

		req := withUserID(httptest.NewRequest("POST", "/api/sessions/start", nil), fixedUserID)
		recorder := httptest.NewRecorder()

		handler.Start(recorder, req)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), "db down")
	})
}

func TestSessionHandler_SubmitAnswer(t *testing.T) {
	fixedUserID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	fixedSessionID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	fixedQuestionID := uuid.MustParse("33333333-3333-3333-3333-333333333333")

	newRequest := func(body interface{}, sessionID string) *http.Request {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		req := httptest.NewRequest(
			"POST",
			"/api/sessions/"+sessionID+"/answers",
			bytes.NewReader(payload),
		)
		req.Header.Set("Content-Type", "application/json")
		req = withUserID(req, fixedUserID)
		return withPathParam(req, "id", sessionID)
	}

	t.Run("numeric answer recorded", func(t *testing.T) {
		value := 7
		mockService := &MockSessionService{
			SubmitAnswerFn: func(ctx context.Context, sessionID, questionID uuid.UUID, v *int, text *string) (*domain.Response, error) {
				assert.Equal(t, fixedSessionID, sessionID)
				assert.Equal(t, fixedQuestionID, questionID)
				require.NotNil(t, v)
				assert.Equal(t, 7, *v)
				return &domain.Response{
					ID:          uuid.New(),
					SessionID:   sessionID,
					QuestionID:  questionID,
					AnswerValue: v,
				}, nil
			},
		}
		handler := NewSessionHandler(mockService)

		req := newRequest(SubmitAnswerRequest{
			QuestionID:  fixedQuestionID,
			AnswerValue: &value,
		}, fixedSessionID.String())
		recorder := httptest.NewRecorder()

		handler.SubmitAnswer(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var resp domain.Response
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, fixedSessionID, resp.SessionID)
	})

	t.Run("unknown session", func(t *testing.T) {
		value := 7
		mockService := &MockSessionService{
			SubmitAnswerFn: func(ctx context.Context, sessionID, questionID uuid.UUID, v *int, text *string) (*domain.Response, error) {
				return nil, store.ErrSessionNotFound
			},
		}
		handler := NewSessionHandler(mockService)

		req := newRequest(SubmitAnswerRequest{
			QuestionID:  fixedQuestionID,
			AnswerValue: &value,
		}, fixedSessionID.String())
		recorder := httptest.NewRecorder()

		handler.SubmitAnswer(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("malformed session ID", func(t *testing.T) {
		value := 7
		handler := NewSessionHandler(&MockSessionService{})

		req := newRequest(SubmitAnswerRequest{
			QuestionID:  fixedQuestionID,
			AnswerValue: &value,
		}, "not-a-uuid")
		recorder := httptest.NewRecorder()

		handler.SubmitAnswer(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("missing question ID", func(t *testing.T) {
		value := 7
		handler := NewSessionHandler(&MockSessionService{})

		req := newRequest(SubmitAnswerRequest{AnswerValue: &value}, fixedSessionID.String())
		recorder := httptest.NewRecorder()

		handler.SubmitAnswer(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("invalid JSON body", func(t *testing.T) {
		handler := NewSessionHandler(&MockSessionService{})

		req := httptest.NewRequest(
			"POST",
			"/api/sessions/"+fixedSessionID.String()+"/answers",
			bytes.NewReader([]byte("{not json")),
		)
		req = withUserID(req, fixedUserID)
		req = withPathParam(req, "id", fixedSessionID.String())
		recorder := httptest.NewRecorder()

		handler.SubmitAnswer(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestSessionHandler_Complete(t *testing.T) {
	fixedUserID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	fixedSessionID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	fixedTime := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	t.Run("completion returns stored timestamp", func(t *testing.T) {
		mockService := &MockSessionService{
			CompleteFn: func(ctx context.Context, sessionID uuid.UUID) (*service.SessionCompletion, error) {
				return &service.SessionCompletion{SessionID: sessionID, CompletedAt: fixedTime}, nil
			},
		}
		handler := NewSessionHandler(mockService)

		req := withUserID(httptest.NewRequest("POST", "/api/sessions/"+fixedSessionID.String()+"/complete", nil), fixedUserID)
		req = withPathParam(req, "id", fixedSessionID.String())
		recorder := httptest.NewRecorder()

		handler.Complete(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp service.SessionCompletion
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.True(t, fixedTime.Equal(resp.CompletedAt))
	})

	t.Run("unknown session", func(t *testing.T) {
		mockService := &MockSessionService{
			CompleteFn: func(ctx context.Context, sessionID uuid.UUID) (*service.SessionCompletion, error) {
				return nil, store.ErrSessionNotFound
			},
		}
		handler := NewSessionHandler(mockService)

		req := withUserID(httptest.NewRequest("POST", "/api/sessions/"+fixedSessionID.String()+"/complete", nil), fixedUserID)
		req = withPathParam(req, "id", fixedSessionID.String())
		recorder := httptest.NewRecorder()

		handler.Complete(recorder, req)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestSessionHandler_GetResult(t *testing.T) {
	fixedUserID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	fixedSessionID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	healthID := uuid.MustParse("44444444-4444-4444-4444-444444444444")

	mockService := &MockSessionService{
		GetResultFn: func(ctx context.Context, sessionID uuid.UUID) ([]service.DimensionScore, error) {
			return []service.DimensionScore{
				{DimensionID: healthID, DimensionName: "Health", Average: 6.5},
			}, nil
		},
	}
	handler := NewSessionHandler(mockService)

	req := withUserID(httptest.NewRequest("GET", "/api/sessions/"+fixedSessionID.String()+"/result", nil), fixedUserID)
	req = withPathParam(req, "id", fixedSessionID.String())
	recorder := httptest.NewRecorder()

	handler.GetResult(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp SessionResultResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, fixedSessionID, resp.SessionID)
	require.Len(t, resp.Scores, 1)
	assert.Equal(t, "Health", resp.Scores[0].DimensionName)
	assert.Equal(t, 6.5, resp.Scores[0].Average)
}
