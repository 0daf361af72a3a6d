package update_booking_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CourtBookingService/internal/api/handlers"
	"github.com/m04kA/CourtBookingService/internal/api/middleware"
	"github.com/m04kA/CourtBookingService/internal/service/bookings"
	"github.com/m04kA/CourtBookingService/internal/service/bookings/models"
)

const (
	msgInvalidBookingID   = "ID de reserva inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidStatus      = "estado inválido, valores permitidos: pending, confirmed, completed, cancelled"
	msgNotFound           = "reserva no encontrada"
	msgSlotTaken          = "Este horario ya está reservado"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), bookingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid status: booking_id=%d, status=%q",
				bookingID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrSlotTaken):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Slot already taken: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("PATCH /admin/bookings/{id}/status - Failed to update status: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	admin, _ := middleware.GetAdminSubject(r.Context())
	h.logger.Info("PATCH /admin/bookings/{id}/status - Status updated successfully: booking_id=%d, status=%s, by=%s",
		bookingID, result.Status, admin)
	handlers.RespondJSON(w, http.StatusOK, result)
}
