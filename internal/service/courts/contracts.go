package courts

import (
	"context"

	"github.com/m04kA/CourtBookingService/internal/domain"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Court, error)
}

// CourtCache кэш списка активных кортов.
// GetActive возвращает ошибку при промахе, сервис в этом случае идёт в БД.
type CourtCache interface {
	GetActive(ctx context.Context) ([]*domain.Court, error)
	SetActive(ctx context.Context, courts []*domain.Court) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
