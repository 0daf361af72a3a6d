package assistant_message

import (
	"net/http"
	"strings"

	"github.com/m04kA/CourtBookingService/internal/api/handlers"
	"github.com/m04kA/CourtBookingService/internal/service/assistant"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgEmptyMessage       = "el mensaje no puede estar vacío"
)

type Handler struct {
	service AssistantService
	logger  Logger
}

func NewHandler(service AssistantService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/assistant/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req assistant.MessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /assistant/messages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		handlers.RespondBadRequest(w, msgEmptyMessage)
		return
	}

	result, err := h.service.Reply(r.Context(), &req)
	if err != nil {
		h.logger.Error("POST /assistant/messages - Failed to reply: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
