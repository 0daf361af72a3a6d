package create_booking

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/CourtBookingService/internal/domain"
	createBooking "github.com/m04kA/CourtBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model, поля формы бронирования
type CreateBookingRequest struct {
	FirstName      string       `json:"nombre"`
	LastName       string       `json:"apellido"`
	DocumentNumber string       `json:"cedula"`
	Phone          string       `json:"telefono"`
	Email          string       `json:"email"`
	CourtID        CourtIDValue `json:"cancha_id"`
	Date           string       `json:"fecha"`   // "2025-10-15", пусто - сегодня
	Slot           string       `json:"horario"` // "17:00 - 18:00"
	PaymentMethod  string       `json:"metodo_pago"`
	Notes          string       `json:"notas"`
}

// CourtIDValue id корта из формы: число или строка ("2", " 2 ").
// Пустое значение и null означают отсутствие поля.
type CourtIDValue string

func (v *CourtIDValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = CourtIDValue(strings.TrimSpace(s))
		return nil
	}
	// числа и прочие значения сохраняются как есть и проверяются в ToUseCaseRequest
	*v = CourtIDValue(data)
	return nil
}

// Int64 возвращает 0 для пустого значения
func (v CourtIDValue) Int64() (int64, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.ParseInt(string(v), 10, 64)
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	ClientID      int64   `json:"clientId"`
	CourtID       int64   `json:"courtId"`
	CourtName     string  `json:"courtName"`
	BookingDate   string  `json:"bookingDate"`
	Slot          string  `json:"slot"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"paymentMethod"`
	TotalAmount   int64   `json:"totalAmount"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Возвращает *createBooking.ValidationError, если cancha_id не число или дата в неверном формате.
// Пустой cancha_id передаётся как 0, его отсутствие сообщает валидация use case.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	req := &createBooking.Request{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		DocumentNumber: r.DocumentNumber,
		Phone:          r.Phone,
		Email:          r.Email,
		Slot:           r.Slot,
		PaymentMethod:  r.PaymentMethod,
		Notes:          r.Notes,
	}

	var invalid []string

	courtID, err := r.CourtID.Int64()
	if err != nil {
		invalid = append(invalid, createBooking.FieldCourtID)
	}
	req.CourtID = courtID

	if date := strings.TrimSpace(r.Date); date != "" {
		parsed, err := domain.ParseDate(date)
		if err != nil {
			invalid = append(invalid, createBooking.FieldDate)
		}
		req.Date = parsed
	}

	if len(invalid) > 0 {
		return nil, &createBooking.ValidationError{Fields: invalid, Reason: createBooking.ReasonInvalid}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		ClientID:      resp.ClientID,
		CourtID:       resp.CourtID,
		CourtName:     resp.CourtName,
		BookingDate:   resp.BookingDate.Format(domain.DateFormat),
		Slot:          resp.Slot,
		Status:        resp.Status,
		PaymentMethod: resp.PaymentMethod,
		TotalAmount:   resp.TotalAmount,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
