package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/myworld/myworld-api/internal/api/shared"
	"github.com/myworld/myworld-api/internal/service"
)

// SessionHandler handles assessment-session API requests.
type SessionHandler struct {
	sessionService service.SessionService
	validator      *validator.Validate
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		validator:      validator.New(),
	}
}

// Start handles POST /api/sessions/start requests.
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	started, err := h.sessionService.Start(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, started)
}

// SubmitAnswer handles POST /api/sessions/{id}/answers requests.
func (h *SessionHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	_, sessionID, ok := requireUserAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req SubmitAnswerRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	response, err := h.sessionService.SubmitAnswer(r.Context(), sessionID, req.QuestionID, req.AnswerValue, req.AnswerText)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, response)
}

// Complete handles POST /api/sessions/{id}/complete requests. Completing an
// already completed session returns the original completion timestamp with
// a 200.
func (h *SessionHandler) Complete(w http.ResponseWriter, r *http.Request) {
	_, sessionID, ok := requireUserAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	completion, err := h.sessionService.Complete(r.Context(), sessionID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, completion)
}

// GetResult handles GET /api/sessions/{id}/result requests.
func (h *SessionHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	_, sessionID, ok := requireUserAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	scores, err := h.sessionService.GetResult(r.Context(), sessionID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SessionResultResponse{
		SessionID: sessionID,
		Scores:    scores,
	})
}
