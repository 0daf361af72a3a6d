package create_booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных (см. ValidationError)
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrCourtNotFound возвращается, когда корт не существует или выключен
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrSlotNotAvailable возвращается, когда на слот уже есть активная бронь
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// Причины ошибки валидации
const (
	ReasonMissing = "missing"
	ReasonInvalid = "invalid"
)

// ValidationError перечисляет поля запроса (в именах формы), не прошедшие проверку
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s field(s): %s", ErrInvalidInput, e.Reason, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// HasField сообщает, упомянуто ли поле в ошибке
func (e *ValidationError) HasField(name string) bool {
	for _, f := range e.Fields {
		if f == name {
			return true
		}
	}
	return false
}
