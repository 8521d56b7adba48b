package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/pfm-advisor/internal/dto"
	"github.com/GregMSThompson/pfm-advisor/internal/response"
	"github.com/GregMSThompson/pfm-advisor/pkg/logger"
)

type recommendationHandlers struct {
	ResponseHandler   response.ResponseHandler
	RecommendationSvc RecommendationService
}

func NewRecommendationHandlers(deps *Deps) *recommendationHandlers {
	return &recommendationHandlers{
		ResponseHandler:   deps.ResponseHandler,
		RecommendationSvc: deps.RecommendationSvc,
	}
}

func (h *recommendationHandlers) RecommendationRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Recommend)
	return r
}

// Recommend never fails at the HTTP level: clients read the error field of
// a 200 response.
func (h *recommendationHandlers) Recommend(w http.ResponseWriter, r *http.Request) {
	var req dto.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeFailure(w, r, err)
		return
	}

	resp, err := h.RecommendationSvc.Recommend(r.Context(), req.Transactions)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}

func (h *recommendationHandlers) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromContext(r.Context()).Error("recommendations failed", "error", err)
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.RecommendationErrorResponse{
		Error:           err.Error(),
		Recommendations: []dto.Card{},
	})
}
