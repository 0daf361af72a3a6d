package models

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/CourtBookingService/internal/domain"
)

// StatusAll значение фильтра, означающее "все статусы"
const StatusAll = "todas"

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidDate возвращается при некорректной дате фильтра
	ErrInvalidDate = errors.New("invalid date")
)

// Request модели

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListBookingsRequest фильтр списка бронирований для администратора
type ListBookingsRequest struct {
	Status *string `json:"status,omitempty"` // пусто или "todas" - все статусы
	Date   *string `json:"date,omitempty"`   // YYYY-MM-DD
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingFilter, error) {
	var filter domain.BookingFilter

	if r.Status != nil {
		raw := strings.TrimSpace(*r.Status)
		if raw != "" && !strings.EqualFold(raw, StatusAll) {
			status, err := domain.ParseBookingStatus(raw)
			if err != nil {
				return filter, ErrInvalidStatus
			}
			filter.Status = &status
		}
	}

	if r.Date != nil && strings.TrimSpace(*r.Date) != "" {
		date, err := domain.ParseDate(strings.TrimSpace(*r.Date))
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.Date = &date
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования, клиента и корта
type BookingResponse struct {
	ID            int64   `json:"id"`
	CourtID       int64   `json:"courtId"`
	BookingDate   string  `json:"bookingDate"` // "2025-10-15"
	Slot          string  `json:"slot"`        // "17:00 - 18:00"
	DurationHours int     `json:"durationHours"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"paymentMethod"`
	TotalAmount   int64   `json:"totalAmount"`
	Notes         *string `json:"notes,omitempty"`

	// Денормализованные данные
	ClientID       int64   `json:"clientId"`
	ClientName     string  `json:"clientName"`
	ClientDocument string  `json:"clientDocument"`
	ClientPhone    string  `json:"clientPhone"`
	ClientEmail    *string `json:"clientEmail,omitempty"`
	CourtName      string  `json:"courtName"`
	CourtKind      string  `json:"courtKind"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.BookingDetails) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:             b.ID,
		CourtID:        b.CourtID,
		BookingDate:    b.BookingDate.Format(domain.DateFormat),
		Slot:           b.Slot.String(),
		DurationHours:  b.DurationHours,
		Status:         string(b.Status),
		PaymentMethod:  b.PaymentMethod,
		TotalAmount:    b.TotalAmount,
		Notes:          b.Notes,
		ClientID:       b.ClientID,
		ClientName:     b.ClientFullName(),
		ClientDocument: b.ClientDocument,
		ClientPhone:    b.ClientPhone,
		ClientEmail:    b.ClientEmail,
		CourtName:      b.CourtName,
		CourtKind:      b.CourtKind,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.BookingDetails) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}
