package purge_bookings

import (
	"context"

	"github.com/m04kA/CourtBookingService/internal/service/maintenance/models"
)

type MaintenanceService interface {
	PurgeOld(ctx context.Context) (*models.PurgeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
