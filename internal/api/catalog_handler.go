package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/myworld/myworld-api/internal/api/shared"
	"github.com/myworld/myworld-api/internal/domain"
	"github.com/myworld/myworld-api/internal/service"
)

// CatalogHandler handles questionnaire catalog API requests: dimensions,
// questions, and answer options.
type CatalogHandler struct {
	catalogService service.CatalogService
	validator      *validator.Validate
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		validator:      validator.New(),
	}
}

// ListDimensions handles GET /api/dimensions requests.
func (h *CatalogHandler) ListDimensions(w http.ResponseWriter, r *http.Request) {
	dimensions, err := h.catalogService.ListDimensions(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, dimensions)
}

// CreateDimension handles POST /api/dimensions requests.
func (h *CatalogHandler) CreateDimension(w http.ResponseWriter, r *http.Request) {
	var req DimensionRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	dimension, err := h.catalogService.CreateDimension(r.Context(), req.Name, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, dimension)
}

// UpdateDimension handles PUT /api/dimensions/{id} requests.
func (h *CatalogHandler) UpdateDimension(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req DimensionRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	dimension, err := h.catalogService.UpdateDimension(r.Context(), id, req.Name, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, dimension)
}

// DeleteDimension handles DELETE /api/dimensions/{id} requests.
func (h *CatalogHandler) DeleteDimension(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.catalogService.DeleteDimension(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListQuestions handles GET /api/questions requests. Questions come back
// ordered by dimension and presentation order, ready for the questionnaire.
func (h *CatalogHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.catalogService.ListQuestions(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, questions)
}

// CreateQuestion handles POST /api/questions requests.
func (h *CatalogHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req QuestionRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if req.Type == domain.QuestionTypeChoice && len(req.Options) > 0 {
		options := make([]service.AnswerOptionInput, 0, len(req.Options))
		for _, o := range req.Options {
			options = append(options, service.AnswerOptionInput{Text: o.Text, Value: o.Value})
		}

		question, created, err := h.catalogService.CreateChoiceQuestion(
			r.Context(), req.DimensionID, req.Text, req.Order, options)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}

		shared.RespondWithJSON(w, r, http.StatusCreated, QuestionWithOptionsResponse{
			Question: question,
			Options:  created,
		})
		return
	}

	question, err := h.catalogService.CreateQuestion(r.Context(), req.DimensionID, req.Text, req.Order, req.Type)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, question)
}

// UpdateQuestion handles PUT /api/questions/{id} requests.
func (h *CatalogHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req QuestionRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	question := &domain.Question{
		ID:          id,
		DimensionID: req.DimensionID,
		Text:        req.Text,
		Order:       req.Order,
		Type:        req.Type,
	}
	if err := h.catalogService.UpdateQuestion(r.Context(), question); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, question)
}

// DeleteQuestion handles DELETE /api/questions/{id} requests.
func (h *CatalogHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.catalogService.DeleteQuestion(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListAnswerOptions handles GET /api/questions/{id}/options requests.
func (h *CatalogHandler) ListAnswerOptions(w http.ResponseWriter, r *http.Request) {
	questionID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	options, err := h.catalogService.ListAnswerOptions(r.Context(), questionID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, options)
}

// CreateAnswerOption handles POST /api/questions/{id}/options requests.
func (h *CatalogHandler) CreateAnswerOption(w http.ResponseWriter, r *http.Request) {
	questionID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req AnswerOptionRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	option, err := h.catalogService.CreateAnswerOption(r.Context(), questionID, req.Text, req.Value)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, option)
}

// decodeAndValidate decodes the request body into v and validates it,
// writing the error response on failure. Reports whether to proceed.
func (h *CatalogHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return false
	}

	if err := h.validator.Struct(v); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return false
	}

	return true
}
