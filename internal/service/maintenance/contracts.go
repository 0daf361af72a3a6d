package maintenance

import (
	"context"
	"time"

	"github.com/m04kA/CourtBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	DeleteBefore(ctx context.Context, before time.Time) (int64, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	List(ctx context.Context) ([]*domain.Client, error)
}

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	List(ctx context.Context, onlyActive bool) ([]*domain.Court, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
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

type realTimeProvider struct {
	loc *time.Location
}

func (p realTimeProvider) Now() time.Time {
	if p.loc == nil {
		return time.Now()
	}
	return time.Now().In(p.loc)
}
