package events

import (
	"time"

	"github.com/m04kA/CourtBookingService/internal/domain"
)

// Routing keys
const (
	RoutingKeyBookingCreated       = "booking.created"
	RoutingKeyBookingStatusChanged = "booking.status_changed"
)

// BookingCreatedEvent публикуется после фиксации новой брони
type BookingCreatedEvent struct {
	BookingID     int64     `json:"bookingId"`
	ClientID      int64     `json:"clientId"`
	CourtID       int64     `json:"courtId"`
	BookingDate   string    `json:"bookingDate"`
	Slot          string    `json:"slot"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	TotalAmount   int64     `json:"totalAmount"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// BookingStatusChangedEvent публикуется после смены статуса брони
type BookingStatusChangedEvent struct {
	BookingID  int64     `json:"bookingId"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

func newBookingCreatedEvent(b *domain.Booking, now time.Time) BookingCreatedEvent {
	return BookingCreatedEvent{
		BookingID:     b.ID,
		ClientID:      b.ClientID,
		CourtID:       b.CourtID,
		BookingDate:   b.BookingDate.Format(domain.DateFormat),
		Slot:          string(b.Slot),
		Status:        string(b.Status),
		PaymentMethod: b.PaymentMethod,
		TotalAmount:   b.TotalAmount,
		OccurredAt:    now.UTC(),
	}
}
