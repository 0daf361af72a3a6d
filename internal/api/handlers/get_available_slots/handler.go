package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CourtBookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/CourtBookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidCourtID = "ID de cancha inválido"
	msgInvalidDate    = "formato de fecha inválido, se espera AAAA-MM-DD"
	msgCourtNotFound  = "cancha no encontrada"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/availability
// Query params: date (optional, YYYY-MM-DD, по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courtID, err := strconv.ParseInt(mux.Vars(r)["courtId"], 10, 64)
	if err != nil || courtID <= 0 {
		h.logger.Warn("GET /courts/{id}/availability - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(courtID, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /courts/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrCourtNotFound):
			h.logger.Warn("GET /courts/{id}/availability - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /courts/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCourtID)

		default:
			h.logger.Error("GET /courts/{id}/availability - Failed to get slots: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts/{id}/availability - Slots retrieved successfully: court_id=%d, available=%d",
		courtID, len(result.Available))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
