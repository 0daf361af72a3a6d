package courts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CourtBookingService/internal/domain"
	courtsCache "github.com/m04kA/CourtBookingService/internal/infra/cache/courts"
	courtRepo "github.com/m04kA/CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/CourtBookingService/internal/service/courts/models"
)

// Service сервис справочника кортов
type Service struct {
	courtRepo CourtRepository
	cache     CourtCache // nil, если redis выключен
	logger    Logger
}

// NewService создает новый экземпляр сервиса кортов
func NewService(courtRepo CourtRepository, cache CourtCache, logger Logger) *Service {
	return &Service{
		courtRepo: courtRepo,
		cache:     cache,
		logger:    logger,
	}
}

// ListActive возвращает активные корты по возрастанию id.
// Сначала читает кэш, при промахе идёт в БД и заполняет кэш.
func (s *Service) ListActive(ctx context.Context) (*models.CourtListResponse, error) {
	courts, err := s.listActive(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainCourtList(courts), nil
}

// ActiveCourts то же, что ListActive, но в domain моделях (для ассистента)
func (s *Service) ActiveCourts(ctx context.Context) ([]*domain.Court, error) {
	return s.listActive(ctx)
}

func (s *Service) listActive(ctx context.Context) ([]*domain.Court, error) {
	if s.cache != nil {
		courts, err := s.cache.GetActive(ctx)
		if err == nil {
			return courts, nil
		}
		if !errors.Is(err, courtsCache.ErrCacheMiss) {
			s.logger.Warn("ListActive: cache read failed: %v", err)
		}
	}

	courts, err := s.courtRepo.List(ctx, true)
	if err != nil {
		s.logger.Error("ListActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActive - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.SetActive(ctx, courts); err != nil {
			s.logger.Warn("ListActive: cache write failed: %v", err)
		}
	}

	return courts, nil
}

// GetByID возвращает корт, в том числе выключенный
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CourtResponse, error) {
	court, err := s.courtRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			s.logger.Warn("GetByID: court id=%d not found", id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("GetByID: repository error for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCourt(court), nil
}
