package create_booking

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/CourtBookingService/internal/domain"
)

var validate = newValidator()

// newValidator возвращает валидатор, который называет поля по тегу field
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("field"); name != "" {
			return name
		}
		return fld.Name
	})
	return v
}

// validateRequest проверяет обязательные поля, формат и слот.
// Возвращает разобранный слот и дату брони (сегодня, если дата не указана).
func validateRequest(req *Request, today time.Time) (domain.Slot, time.Time, error) {
	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return "", time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return "", time.Time{}, toValidationError(fieldErrs)
	}

	slot, err := domain.ParseSlot(req.Slot)
	if err != nil {
		return "", time.Time{}, &ValidationError{Fields: []string{FieldSlot}, Reason: ReasonInvalid}
	}

	date := today
	if !req.Date.IsZero() {
		date = domain.DateOnly(req.Date)
	}
	if date.Before(today) {
		return "", time.Time{}, &ValidationError{Fields: []string{FieldDate}, Reason: ReasonInvalid}
	}

	return slot, date, nil
}

// toValidationError сообщает сначала об отсутствующих полях, потом о некорректных
func toValidationError(fieldErrs validator.ValidationErrors) *ValidationError {
	var missing, invalid []string
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		} else {
			invalid = append(invalid, fe.Field())
		}
	}

	if len(missing) > 0 {
		return &ValidationError{Fields: missing, Reason: ReasonMissing}
	}
	return &ValidationError{Fields: invalid, Reason: ReasonInvalid}
}
