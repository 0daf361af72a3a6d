package create_backup

import (
	"context"

	"github.com/m04kA/CourtBookingService/internal/service/maintenance/models"
)

type MaintenanceService interface {
	Backup(ctx context.Context) (*models.BackupResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
