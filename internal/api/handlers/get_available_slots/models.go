package get_available_slots

import (
	"github.com/m04kA/CourtBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/CourtBookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	CourtID   int64    `json:"courtId"`
	CourtName string   `json:"courtName"`
	Date      string   `json:"date"`
	Available []string `json:"available"`
	Occupied  []string `json:"occupied"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	return &AvailableSlotsResponse{
		CourtID:   resp.CourtID,
		CourtName: resp.CourtName,
		Date:      resp.Date.Format(domain.DateFormat),
		Available: slotLabels(resp.Available),
		Occupied:  slotLabels(resp.Occupied),
	}
}

// ToUseCaseRequest создает запрос use case, пустая дата - сегодня
func ToUseCaseRequest(courtID int64, dateStr string) (*getAvailableSlots.Request, error) {
	req := &getAvailableSlots.Request{CourtID: courtID}
	if dateStr == "" {
		return req, nil
	}

	date, err := domain.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}
	req.Date = date

	return req, nil
}

func slotLabels(slots []domain.Slot) []string {
	labels := make([]string, len(slots))
	for i, slot := range slots {
		labels[i] = slot.String()
	}
	return labels
}
