package api

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/myworld/myworld-api/internal/api/shared"
	"github.com/myworld/myworld-api/internal/service"
)

// ReminderHandler handles reminder API requests. All operations are scoped
// to the authenticated caller.
type ReminderHandler struct {
	reminderService service.ReminderService
	validator       *validator.Validate
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(reminderService service.ReminderService) *ReminderHandler {
	return &ReminderHandler{
		reminderService: reminderService,
		validator:       validator.New(),
	}
}

// List handles GET /api/reminders requests. The onlyUpcoming query
// parameter limits the listing to unsent reminders due now or later.
func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	onlyUpcoming := strings.EqualFold(r.URL.Query().Get("onlyUpcoming"), "true")

	reminders, err := h.reminderService.ListForOwner(r.Context(), userID, onlyUpcoming)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reminders)
}

// Get handles GET /api/reminders/{id} requests.
func (h *ReminderHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, reminderID, ok := requireUserAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	reminder, err := h.reminderService.GetByID(r.Context(), userID, reminderID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reminder)
}

// Create handles POST /api/reminders requests.
func (h *ReminderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req ReminderRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	reminder, err := h.reminderService.Create(r.Context(), userID, service.ReminderCreate{
		OwnerID:              req.UserID,
		RelatedAppointmentID: req.RelatedAppointmentID,
		Message:              req.Message,
		RemindAt:             req.RemindAt,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, reminder)
}

// Update handles PUT /api/reminders/{id} requests. IsSent is replaced along
// with the other fields.
func (h *ReminderHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, reminderID, ok := requireUserAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req ReminderRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	reminder, err := h.reminderService.Update(r.Context(), userID, service.ReminderUpdate{
		ID:                   reminderID,
		RelatedAppointmentID: req.RelatedAppointmentID,
		Message:              req.Message,
		RemindAt:             req.RemindAt,
		IsSent:               req.IsSent,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reminder)
}

// Delete handles DELETE /api/reminders/{id} requests.
func (h *ReminderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, reminderID, ok := requireUserAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.reminderService.Delete(r.Context(), userID, reminderID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
