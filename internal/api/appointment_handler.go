package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/myworld/myworld-api/internal/api/shared"
	"github.com/myworld/myworld-api/internal/service"
)

// AppointmentHandler handles appointment API requests. All operations are
// scoped to the authenticated caller.
type AppointmentHandler struct {
	appointmentService service.AppointmentService
	validator          *validator.Validate
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(appointmentService service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
		validator:          validator.New(),
	}
}

// List handles GET /api/appointments requests.
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	appointments, err := h.appointmentService.ListForOwner(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, appointments)
}

// Get handles GET /api/appointments/{id} requests.
func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, appointmentID, ok := requireUserAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	appointment, err := h.appointmentService.GetByID(r.Context(), userID, appointmentID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, appointment)
}

// Create handles POST /api/appointments requests.
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req AppointmentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	appointment, err := h.appointmentService.Create(r.Context(), userID, service.AppointmentCreate{
		OwnerID:     req.UserID,
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, appointment)
}

// Update handles PUT /api/appointments/{id} requests.
func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, appointmentID, ok := requireUserAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req AppointmentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	appointment, err := h.appointmentService.Update(r.Context(), userID, service.AppointmentUpdate{
		ID:          appointmentID,
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, appointment)
}

// Delete handles DELETE /api/appointments/{id} requests.
func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, appointmentID, ok := requireUserAndPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.appointmentService.Delete(r.Context(), userID, appointmentID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
