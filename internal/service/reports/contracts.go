package reports

import (
	"context"
	"time"

	"github.com/m04kA/CourtBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Count(ctx context.Context, filter domain.BookingFilter) (int64, error)
	ListRecent(ctx context.Context, limit uint64) ([]*domain.BookingDetails, error)
	ListDetails(ctx context.Context, filter domain.BookingFilter) ([]*domain.BookingDetails, error)
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
