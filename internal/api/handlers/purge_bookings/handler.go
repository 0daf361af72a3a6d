package purge_bookings

import (
	"net/http"

	"github.com/m04kA/CourtBookingService/internal/api/handlers"
	"github.com/m04kA/CourtBookingService/internal/api/middleware"
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

// Handle POST /api/v1/admin/bookings/purge
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.PurgeOld(r.Context())
	if err != nil {
		h.logger.Error("POST /admin/bookings/purge - Failed to purge bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	admin, _ := middleware.GetAdminSubject(r.Context())
	h.logger.Info("POST /admin/bookings/purge - Deleted %d bookings before %s, by=%s", result.Deleted, result.Before, admin)
	handlers.RespondJSON(w, http.StatusOK, result)
}
