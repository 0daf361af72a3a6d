package get_daily_report

import (
	"errors"
	"net/http"

	"github.com/m04kA/CourtBookingService/internal/api/handlers"
	"github.com/m04kA/CourtBookingService/internal/service/reports"
)

const (
	msgInvalidDate = "formato de fecha inválido, se espera AAAA-MM-DD"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/reports/daily
// Query params: date (optional, YYYY-MM-DD, по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	result, err := h.service.Daily(r.Context(), date)
	if err != nil {
		if errors.Is(err, reports.ErrInvalidInput) {
			h.logger.Warn("GET /admin/reports/daily - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("GET /admin/reports/daily - Failed to build report: date=%q, error=%v", date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/reports/daily - Report built: date=%s, bookings=%d", result.Date, result.TotalBookings)
	handlers.RespondJSON(w, http.StatusOK, result)
}
