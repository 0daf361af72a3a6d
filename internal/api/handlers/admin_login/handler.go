package admin_login

import (
	"errors"
	"net/http"

	"github.com/m04kA/CourtBookingService/internal/api/handlers"
	"github.com/m04kA/CourtBookingService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidCredentials = "contraseña incorrecta"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.logger.Warn("POST /admin/login - Invalid credentials from %s", r.RemoteAddr)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
			return
		}
		h.logger.Error("POST /admin/login - Failed to login: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/login - Admin logged in")
	handlers.RespondJSON(w, http.StatusOK, result)
}
