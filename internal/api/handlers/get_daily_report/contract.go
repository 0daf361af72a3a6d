package get_daily_report

import (
	"context"

	"github.com/m04kA/CourtBookingService/internal/service/reports/models"
)

type ReportService interface {
	Daily(ctx context.Context, date string) (*models.DailyReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
