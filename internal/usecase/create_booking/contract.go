package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/CourtBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	HasActiveBooking(ctx context.Context, key domain.SlotKey) (bool, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	FindOrCreate(ctx context.Context, client *domain.Client) (*domain.Client, error)
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// SlotLocker блокировка по ключу слота внутри процесса
type SlotLocker interface {
	Lock(key string) (unlock func())
}

// EventPublisher публикация событий о бронированиях
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, booking *domain.Booking) error
}

// MetricsRecorder учёт исходов попыток бронирования
type MetricsRecorder interface {
	ObserveReservation(result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени в часовом поясе комплекса
type RealTimeProvider struct {
	loc *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.loc == nil {
		return time.Now()
	}
	return time.Now().In(p.loc)
}
