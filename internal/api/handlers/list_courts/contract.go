package list_courts

import (
	"context"

	"github.com/m04kA/CourtBookingService/internal/service/courts/models"
)

type CourtService interface {
	ListActive(ctx context.Context) (*models.CourtListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
