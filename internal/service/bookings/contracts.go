package bookings

import (
	"context"

	"github.com/m04kA/CourtBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetDetailsByID(ctx context.Context, id int64) (*domain.BookingDetails, error)
	ListDetails(ctx context.Context, filter domain.BookingFilter) ([]*domain.BookingDetails, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// EventPublisher интерфейс публикации событий бронирований
type EventPublisher interface {
	PublishBookingStatusChanged(ctx context.Context, bookingID int64, status domain.BookingStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
