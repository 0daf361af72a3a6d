package list_courts

import (
	"net/http"

	"github.com/m04kA/CourtBookingService/internal/api/handlers"
)

type Handler struct {
	service CourtService
	logger  Logger
}

func NewHandler(service CourtService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListActive(r.Context())
	if err != nil {
		h.logger.Error("GET /courts - Failed to list courts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /courts - Courts retrieved successfully: count=%d", len(result.Courts))
	handlers.RespondJSON(w, http.StatusOK, result)
}
