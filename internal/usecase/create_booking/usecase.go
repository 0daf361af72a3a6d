package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/CourtBookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/CourtBookingService/pkg/metrics"
)

// UseCase use case для бронирования слота корта
type UseCase struct {
	bookingRepo  BookingRepository
	clientRepo   ClientRepository
	courtRepo    CourtRepository
	txManager    TransactionManager
	locker       SlotLocker
	publisher    EventPublisher
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// loc - часовой пояс комплекса, по нему считается "сегодня".
func NewUseCase(
	bookingRepo BookingRepository,
	clientRepo ClientRepository,
	courtRepo CourtRepository,
	txManager TransactionManager,
	locker SlotLocker,
	publisher EventPublisher,
	metrics MetricsRecorder,
	loc *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		clientRepo:   clientRepo,
		courtRepo:    courtRepo,
		txManager:    txManager,
		locker:       locker,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{loc: loc},
		logger:       logger,
	}
}

// Execute выполняет бронирование.
//
// Клиент создаётся (или находится) до проверки слота и остаётся в базе,
// даже если бронь не получилась. Проверка занятости и вставка выполняются
// под блокировкой ключа слота и в одной транзакции; от гонки между процессами
// защищает частичный уникальный индекс bookings_active_slot_key.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, err := uc.execute(ctx, req.trimmed())
	uc.metrics.ObserveReservation(outcome(err))
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: document=%s, court=%d, date=%s, slot=%s",
		req.DocumentNumber, req.CourtID, req.Date.Format(domain.DateFormat), req.Slot)

	// 1. Валидация входных данных
	today := domain.DateOnly(uc.timeProvider.Now())
	slot, date, err := validateRequest(req, today)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Находим или создаём клиента по номеру документа
	client, err := uc.clientRepo.FindOrCreate(ctx, &domain.Client{
		DocumentNumber: req.DocumentNumber,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Email:          optional(req.Email),
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to find or create client document=%s: %v", req.DocumentNumber, err)
		return nil, fmt.Errorf("%w: failed to find or create client: %v", ErrInternal, err)
	}

	// 3. Получаем корт, он должен существовать и быть активным
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("CreateBooking: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateBooking: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}
	if !court.IsActive {
		uc.logger.Warn("CreateBooking: court id=%d is inactive", req.CourtID)
		return nil, ErrCourtNotFound
	}

	// 4. Стоимость: почасовая цена за фиксированную длительность
	booking := &domain.Booking{
		ClientID:      client.ID,
		CourtID:       court.ID,
		BookingDate:   date,
		Slot:          slot,
		DurationHours: domain.BookingDurationHours,
		Status:        domain.StatusPending,
		PaymentMethod: req.PaymentMethod,
		TotalAmount:   court.PriceFor(domain.BookingDurationHours),
		Notes:         optional(req.Notes),
	}

	// 5-6. Проверка занятости и вставка
	created, err := uc.claimSlot(ctx, booking)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d for client id=%d, amount=%d",
		created.ID, client.ID, created.TotalAmount)

	if err := uc.publisher.PublishBookingCreated(ctx, created); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish booking.created for id=%d: %v", created.ID, err)
	}

	return &Response{
		ID:            created.ID,
		ClientID:      created.ClientID,
		CourtID:       created.CourtID,
		CourtName:     court.Name,
		BookingDate:   created.BookingDate,
		Slot:          string(created.Slot),
		Status:        string(created.Status),
		PaymentMethod: created.PaymentMethod,
		TotalAmount:   created.TotalAmount,
		Notes:         created.Notes,
		CreatedAt:     created.CreatedAt,
	}, nil
}

// claimSlot атомарно проверяет, что слот свободен, и вставляет бронь
func (uc *UseCase) claimSlot(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	key := booking.Key()

	unlock := uc.locker.Lock(key.String())
	defer unlock()

	var result *domain.Booking
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		taken, err := uc.bookingRepo.HasActiveBooking(txCtx, key)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check slot %s: %v", key, err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		if taken {
			uc.logger.Warn("CreateBooking: slot %s already booked", key)
			return ErrSlotNotAvailable
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot %s taken by a concurrent request", key)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed for slot %s: %v", key, err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	return result, nil
}

func outcome(err error) string {
	var validationErr *ValidationError
	switch {
	case err == nil:
		return metrics.ReservationCreated
	case errors.As(err, &validationErr):
		return metrics.ReservationInvalid
	case errors.Is(err, ErrSlotNotAvailable):
		return metrics.ReservationConflict
	case errors.Is(err, ErrCourtNotFound):
		return metrics.ReservationNotFound
	default:
		return metrics.ReservationFailed
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
