package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/CourtBookingService/internal/domain"
	courtRepo "github.com/m04kA/CourtBookingService/internal/infra/storage/court"
)

// UseCase use case для получения свободных слотов корта
type UseCase struct {
	bookingRepo  BookingRepository
	courtRepo    CourtRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	loc *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		courtRepo:    courtRepo,
		timeProvider: &RealTimeProvider{loc: loc},
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.CourtID <= 0 {
		uc.logger.Warn("GetAvailableSlots: invalid court id=%d", req.CourtID)
		return nil, fmt.Errorf("%w: court id must be positive", ErrInvalidInput)
	}

	date := domain.DateOnly(uc.timeProvider.Now())
	if !req.Date.IsZero() {
		date = domain.DateOnly(req.Date)
	}

	uc.logger.Info("GetAvailableSlots: court=%d, date=%s", req.CourtID, date.Format(domain.DateFormat))

	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("GetAvailableSlots: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}
	if !court.IsActive {
		uc.logger.Warn("GetAvailableSlots: court id=%d is inactive", req.CourtID)
		return nil, ErrCourtNotFound
	}

	taken, err := uc.bookingRepo.ListActiveSlots(ctx, court.ID, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list active slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list active slots: %v", ErrInternal, err)
	}

	available, occupied := domain.SplitSlots(taken)

	uc.logger.Info("GetAvailableSlots: court=%d, date=%s, available=%d, occupied=%d",
		court.ID, date.Format(domain.DateFormat), len(available), len(occupied))

	return &Response{
		CourtID:   court.ID,
		CourtName: court.Name,
		Date:      date,
		Available: available,
		Occupied:  occupied,
	}, nil
}
