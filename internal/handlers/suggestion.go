package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/pfm-advisor/internal/dto"
	"github.com/GregMSThompson/pfm-advisor/internal/errs"
	"github.com/GregMSThompson/pfm-advisor/internal/response"
)

type suggestionHandlers struct {
	ResponseHandler response.ResponseHandler
	SuggestionSvc   SuggestionService
}

func NewSuggestionHandlers(deps *Deps) *suggestionHandlers {
	return &suggestionHandlers{
		ResponseHandler: deps.ResponseHandler,
		SuggestionSvc:   deps.SuggestionSvc,
	}
}

func (h *suggestionHandlers) SuggestionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Suggest)
	return r
}

func (h *suggestionHandlers) Suggest(w http.ResponseWriter, r *http.Request) {
	var req dto.SuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	if req.Balance == nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("balance is required"))
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.SuggestionSvc.Suggest(r.Context(), *req.Balance))
}
