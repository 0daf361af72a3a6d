package assistant

import (
	"context"

	"github.com/m04kA/CourtBookingService/internal/domain"
	"github.com/m04kA/CourtBookingService/internal/usecase/get_available_slots"
)

// CourtLister источник списка активных кортов
type CourtLister interface {
	ActiveCourts(ctx context.Context) ([]*domain.Court, error)
}

// SlotsFinder источник свободных слотов корта
type SlotsFinder interface {
	Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
