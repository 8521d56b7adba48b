package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/pfm-advisor/internal/errs"
	"github.com/GregMSThompson/pfm-advisor/internal/models"
	"github.com/GregMSThompson/pfm-advisor/internal/response"
)

type dashboardHandlers struct {
	ResponseHandler response.ResponseHandler
	DashboardSvc    DashboardService
}

func NewDashboardHandlers(deps *Deps) *dashboardHandlers {
	return &dashboardHandlers{
		ResponseHandler: deps.ResponseHandler,
		DashboardSvc:    deps.DashboardSvc,
	}
}

func (h *dashboardHandlers) DashboardRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.DashboardImage)
	return r
}

// DashboardImage expects a bare JSON array of transactions. Anything else
// is treated the same as an empty batch.
func (h *dashboardHandlers) DashboardImage(w http.ResponseWriter, r *http.Request) {
	var raw []models.RawTransaction
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("No transactions provided."))
		return
	}

	img, err := h.DashboardSvc.DashboardImage(r.Context(), raw)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, img)
}
