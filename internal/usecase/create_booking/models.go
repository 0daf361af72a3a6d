package create_booking

import (
	"strings"
	"time"
)

// Имена полей формы бронирования, используются в ValidationError
const (
	FieldFirstName     = "nombre"
	FieldLastName      = "apellido"
	FieldDocument      = "cedula"
	FieldPhone         = "telefono"
	FieldEmail         = "email"
	FieldCourtID       = "cancha_id"
	FieldDate          = "fecha"
	FieldSlot          = "horario"
	FieldPaymentMethod = "metodo_pago"
	FieldNotes         = "notas"
)

// Request модель запроса на бронирование
type Request struct {
	FirstName      string    `field:"nombre" validate:"required,max=100"`
	LastName       string    `field:"apellido" validate:"required,max=100"`
	DocumentNumber string    `field:"cedula" validate:"required,max=20"`
	Phone          string    `field:"telefono" validate:"required,max=20"`
	Email          string    `field:"email" validate:"omitempty,email,max=100"`
	CourtID        int64     `field:"cancha_id" validate:"required,gt=0"`
	Date           time.Time `field:"fecha"` // без времени, нулевое значение - сегодня
	Slot           string    `field:"horario" validate:"required"`
	PaymentMethod  string    `field:"metodo_pago" validate:"required,max=20"`
	Notes          string    `field:"notas" validate:"max=500"`
}

// trimmed возвращает копию запроса без пробелов по краям строк
func (r *Request) trimmed() *Request {
	out := *r
	out.FirstName = strings.TrimSpace(r.FirstName)
	out.LastName = strings.TrimSpace(r.LastName)
	out.DocumentNumber = strings.TrimSpace(r.DocumentNumber)
	out.Phone = strings.TrimSpace(r.Phone)
	out.Email = strings.TrimSpace(r.Email)
	out.Slot = strings.TrimSpace(r.Slot)
	out.PaymentMethod = strings.TrimSpace(r.PaymentMethod)
	out.Notes = strings.TrimSpace(r.Notes)
	return &out
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64
	ClientID      int64
	CourtID       int64
	CourtName     string
	BookingDate   time.Time
	Slot          string
	Status        string
	PaymentMethod string
	TotalAmount   int64
	Notes         *string
	CreatedAt     time.Time
}
