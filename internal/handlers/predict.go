package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/pfm-advisor/internal/dto"
	"github.com/GregMSThompson/pfm-advisor/internal/errs"
	"github.com/GregMSThompson/pfm-advisor/internal/response"
)

type predictHandlers struct {
	ResponseHandler response.ResponseHandler
	PredictSvc      PredictService
}

func NewPredictHandlers(deps *Deps) *predictHandlers {
	return &predictHandlers{
		ResponseHandler: deps.ResponseHandler,
		PredictSvc:      deps.PredictSvc,
	}
}

func (h *predictHandlers) PredictRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Predict)
	return r
}

func (h *predictHandlers) Predict(w http.ResponseWriter, r *http.Request) {
	var req dto.PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	resp, err := h.PredictSvc.Predict(r.Context(), req.Description)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}

func (h *predictHandlers) Home(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, h.PredictSvc.Home())
}
