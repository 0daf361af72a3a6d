package create_backup

import (
	"net/http"

	"github.com/m04kA/CourtBookingService/internal/api/handlers"
)

type Handler struct {
	service MaintenanceService
	logger  Logger
}

func NewHandler(service MaintenanceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/backup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Backup(r.Context())
	if err != nil {
		h.logger.Error("POST /admin/backup - Failed to create backup: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/backup - Backup created: %s", result.FileName)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
