package get_available_slots

import (
	"time"

	"github.com/m04kA/CourtBookingService/internal/domain"
)

// Request модель запроса свободных слотов
type Request struct {
	CourtID int64
	Date    time.Time // без времени, нулевое значение - сегодня
}

// Response свободные и занятые слоты корта на дату.
// Вместе Available и Occupied дают всё расписание без пересечений.
type Response struct {
	CourtID   int64
	CourtName string
	Date      time.Time
	Available []domain.Slot
	Occupied  []domain.Slot
}
