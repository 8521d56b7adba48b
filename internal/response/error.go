package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/GregMSThompson/pfm-advisor/internal/errs"
	"github.com/GregMSThompson/pfm-advisor/pkg/logger"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: message}); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to encode error response", "error", err, "status", status)
	}
}

// HandleError maps typed errors to a status. Only the message text reaches
// the caller.
func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	switch e := err.(type) {
	case *errs.ValidationError:
		log.Warn("validation failed", "error", e.Message)
		h.WriteError(w, r, http.StatusBadRequest, e.Message)

	case *errs.RenderError:
		log.Error("chart render failed", "error", e.Message)
		h.WriteError(w, r, http.StatusInternalServerError, e.Message)

	case *errs.PipelineError:
		log.Error("pipeline failed", "stage", e.Stage, "error", e.Message)
		h.WriteError(w, r, http.StatusInternalServerError, e.Message)

	case *errs.CatalogError:
		log.Error("catalog unavailable", "error", e.Message)
		h.WriteError(w, r, http.StatusInternalServerError, e.Message)

	default:
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		h.WriteError(w, r, http.StatusInternalServerError, err.Error())
	}
}
