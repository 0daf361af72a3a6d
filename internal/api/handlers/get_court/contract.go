package get_court

import (
	"context"

	"github.com/m04kA/CourtBookingService/internal/service/courts/models"
)

type CourtService interface {
	GetByID(ctx context.Context, id int64) (*models.CourtResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
