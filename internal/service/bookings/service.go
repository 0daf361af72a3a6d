package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/CourtBookingService/internal/infra/storage/booking"
	"github.com/m04kA/CourtBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	publisher   EventPublisher
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// GetByID получает бронирование вместе с клиентом и кортом (страница подтверждения)
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	details, err := s.bookingRepo.GetDetailsByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(details), nil
}

// List возвращает бронирования, начиная с самых новых.
// Фильтры по статусу и дате необязательны.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	logMsg := "List: fetching bookings"
	if filter.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *filter.Status)
	}
	if filter.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", filter.Date.Format(domain.DateFormat))
	}
	s.logger.Info(logMsg)

	bookings, err := s.bookingRepo.ListDetails(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus меняет статус бронирования.
// Отмена освобождает слот. Возврат отменённой брони в pending/confirmed
// невозможен, если её слот уже занят (ErrSlotTaken).
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", id, req.Status)

	status, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%q for booking id=%d", req.Status, id)
		return nil, ErrInvalidStatus
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("UpdateStatus: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrSlotTaken):
			s.logger.Warn("UpdateStatus: slot of booking id=%d is already taken", id)
			return nil, ErrSlotTaken
		default:
			s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}
	}

	if err := s.publisher.PublishBookingStatusChanged(ctx, id, status); err != nil {
		s.logger.Warn("UpdateStatus: failed to publish booking.status_changed for id=%d: %v", id, err)
	}

	details, err := s.bookingRepo.GetDetailsByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to reload booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - reload: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%d is now %s", id, status)
	return models.FromDomainBooking(details), nil
}
