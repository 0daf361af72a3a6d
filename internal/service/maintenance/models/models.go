package models

import (
	"time"

	"github.com/m04kA/CourtBookingService/internal/domain"
)

// Snapshot содержимое файла резервной копии
type Snapshot struct {
	CreatedAt time.Time     `json:"createdAt"`
	Bookings  []BookingDump `json:"bookings"`
	Clients   []ClientDump  `json:"clients"`
	Courts    []CourtDump   `json:"courts"`
}

// BookingDump бронирование в резервной копии
type BookingDump struct {
	ID            int64     `json:"id"`
	ClientID      int64     `json:"clientId"`
	CourtID       int64     `json:"courtId"`
	BookingDate   string    `json:"bookingDate"`
	Slot          string    `json:"slot"`
	DurationHours int       `json:"durationHours"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	TotalAmount   int64     `json:"totalAmount"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ClientDump клиент в резервной копии
type ClientDump struct {
	ID             int64     `json:"id"`
	DocumentNumber string    `json:"documentNumber"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Phone          string    `json:"phone"`
	Email          *string   `json:"email,omitempty"`
	RegisteredAt   time.Time `json:"registeredAt"`
}

// CourtDump корт в резервной копии
type CourtDump struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	HourlyPrice int64  `json:"hourlyPrice"`
	IsActive    bool   `json:"isActive"`
}

// BackupResponse результат создания резервной копии
type BackupResponse struct {
	FileName string      `json:"fileName"`
	Counts   BackupCount `json:"counts"`
}

// BackupCount количество записей в копии
type BackupCount struct {
	Bookings int `json:"bookings"`
	Clients  int `json:"clients"`
	Courts   int `json:"courts"`
}

// PurgeResponse результат удаления старых бронирований
type PurgeResponse struct {
	Deleted int64  `json:"deleted"`
	Before  string `json:"before"` // YYYY-MM-DD, удалены брони строго раньше этой даты
}

// NewSnapshot собирает копию из domain моделей
func NewSnapshot(now time.Time, bookings []*domain.Booking, clients []*domain.Client, courts []*domain.Court) *Snapshot {
	s := &Snapshot{
		CreatedAt: now,
		Bookings:  make([]BookingDump, 0, len(bookings)),
		Clients:   make([]ClientDump, 0, len(clients)),
		Courts:    make([]CourtDump, 0, len(courts)),
	}

	for _, b := range bookings {
		s.Bookings = append(s.Bookings, BookingDump{
			ID:            b.ID,
			ClientID:      b.ClientID,
			CourtID:       b.CourtID,
			BookingDate:   b.BookingDate.Format(domain.DateFormat),
			Slot:          b.Slot.String(),
			DurationHours: b.DurationHours,
			Status:        string(b.Status),
			PaymentMethod: b.PaymentMethod,
			TotalAmount:   b.TotalAmount,
			Notes:         b.Notes,
			CreatedAt:     b.CreatedAt,
			UpdatedAt:     b.UpdatedAt,
		})
	}

	for _, c := range clients {
		s.Clients = append(s.Clients, ClientDump{
			ID:             c.ID,
			DocumentNumber: c.DocumentNumber,
			FirstName:      c.FirstName,
			LastName:       c.LastName,
			Phone:          c.Phone,
			Email:          c.Email,
			RegisteredAt:   c.RegisteredAt,
		})
	}

	for _, c := range courts {
		s.Courts = append(s.Courts, CourtDump{
			ID:          c.ID,
			Name:        c.Name,
			Kind:        c.Kind,
			HourlyPrice: c.HourlyPrice,
			IsActive:    c.IsActive,
		})
	}

	return s
}
