package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/CourtBookingService/internal/api/handlers"
	createBooking "github.com/m04kA/CourtBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgMissingFields      = "faltan campos obligatorios"
	msgInvalidFields      = "hay campos con valores inválidos"
	msgInvalidDate        = "formato de fecha inválido, se espera AAAA-MM-DD"
	msgSlotNotAvailable   = "Este horario ya está reservado"
	msgCourtNotFound      = "cancha no encontrada"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		var validationErr *createBooking.ValidationError
		if !errors.As(err, &validationErr) {
			h.logger.Error("POST /bookings - Failed to convert request: %v", err)
			handlers.RespondInternalError(w)
			return
		}
		h.logger.Warn("POST /bookings - Invalid request fields: %v", validationErr)
		msg := msgInvalidFields
		if len(validationErr.Fields) == 1 && validationErr.HasField(createBooking.FieldDate) {
			msg = msgInvalidDate
		}
		handlers.RespondValidationError(w, msg, validationErr.Fields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *createBooking.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /bookings - Validation failed: %v", validationErr)
			msg := msgInvalidFields
			if validationErr.Reason == createBooking.ReasonMissing {
				msg = msgMissingFields
			}
			handlers.RespondValidationError(w, msg, validationErr.Fields)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: court_id=%d, date=%s, slot=%s",
				useCaseReq.CourtID, req.Date, req.Slot)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrCourtNotFound):
			h.logger.Warn("POST /bookings - Court not found: court_id=%d", useCaseReq.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: court_id=%d, error=%v", useCaseReq.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, client_id=%d, court_id=%d",
		result.ID, result.ClientID, result.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
