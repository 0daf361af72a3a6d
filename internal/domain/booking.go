package domain

import (
	"errors"
	"strings"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// ErrUnknownStatus возвращается ParseBookingStatus для неизвестного статуса
var ErrUnknownStatus = errors.New("domain: unknown booking status")

// Booking represents a court reservation
type Booking struct {
	ID            int64
	ClientID      int64
	CourtID       int64
	BookingDate   time.Time // civil date, see DateOnly
	Slot          Slot
	DurationHours int
	Status        BookingStatus
	PaymentMethod string
	TotalAmount   int64
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking holds its slot
func (b *Booking) IsActive() bool {
	return b.Status.IsActive()
}

// Key returns the (court, date, slot) key of the booking
func (b *Booking) Key() SlotKey {
	return SlotKey{CourtID: b.CourtID, Date: b.BookingDate, Slot: b.Slot}
}

// IsActive returns true for statuses that count against slot availability
func (s BookingStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// IsValid returns true for known statuses
func (s BookingStatus) IsValid() bool {
	for _, status := range AllStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// ParseBookingStatus парсит статус без учёта регистра и пробелов
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", ErrUnknownStatus
	}
	return status, nil
}

// BookingDetails booking joined with its client and court, used by listings and confirmations
type BookingDetails struct {
	Booking

	ClientDocument  string
	ClientFirstName string
	ClientLastName  string
	ClientPhone     string
	ClientEmail     *string

	CourtName string
	CourtKind string
}

// ClientFullName returns "first last"
func (d *BookingDetails) ClientFullName() string {
	return strings.TrimSpace(d.ClientFirstName + " " + d.ClientLastName)
}

// BookingFilter фильтр списка бронирований, nil поля не ограничивают выборку
type BookingFilter struct {
	Status *BookingStatus
	Date   *time.Time
	Limit  uint64
}
