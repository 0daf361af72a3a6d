package reports

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/CourtBookingService/internal/domain"
	"github.com/m04kA/CourtBookingService/internal/service/reports/models"
	"github.com/m04kA/CourtBookingService/pkg/ptr"
)

// Service сервис отчётов для администратора
type Service struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса отчётов.
// loc - часовой пояс комплекса, по нему считается "сегодня".
func NewService(bookingRepo BookingRepository, txManager TransactionManager, loc *time.Location, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: realTimeProvider{loc: loc},
		logger:       logger,
	}
}

// Dashboard собирает счётчики и последние бронирования в одном снимке данных
func (s *Service) Dashboard(ctx context.Context) (*models.DashboardResponse, error) {
	today := domain.DateOnly(s.timeProvider.Now())
	stats := &domain.DashboardStats{}

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		counters := []struct {
			name   string
			filter domain.BookingFilter
			dst    *int64
		}{
			{name: "total", dst: &stats.TotalBookings},
			{name: "today", filter: domain.BookingFilter{Date: &today}, dst: &stats.TodayBookings},
			{name: "pending", filter: domain.BookingFilter{Status: ptr.Ptr(domain.StatusPending)}, dst: &stats.PendingBookings},
			{name: "confirmed", filter: domain.BookingFilter{Status: ptr.Ptr(domain.StatusConfirmed)}, dst: &stats.ConfirmedBookings},
		}

		for _, c := range counters {
			count, err := s.bookingRepo.Count(txCtx, c.filter)
			if err != nil {
				return fmt.Errorf("count %s: %v", c.name, err)
			}
			*c.dst = count
		}

		recent, err := s.bookingRepo.ListRecent(txCtx, domain.DashboardRecentLimit)
		if err != nil {
			return fmt.Errorf("list recent: %v", err)
		}
		stats.Recent = recent

		return nil
	})
	if err != nil {
		s.logger.Error("Dashboard: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - %v", ErrInternal, err)
	}

	s.logger.Info("Dashboard: total=%d, today=%d, pending=%d, confirmed=%d",
		stats.TotalBookings, stats.TodayBookings, stats.PendingBookings, stats.ConfirmedBookings)
	return models.FromDomainDashboard(stats), nil
}

// Daily отчёт за дату в формате YYYY-MM-DD, пустая строка - сегодня
func (s *Service) Daily(ctx context.Context, rawDate string) (*models.DailyReportResponse, error) {
	date := domain.DateOnly(s.timeProvider.Now())
	if raw := strings.TrimSpace(rawDate); raw != "" {
		parsed, err := domain.ParseDate(raw)
		if err != nil {
			s.logger.Warn("Daily: invalid date=%q", rawDate)
			return nil, fmt.Errorf("%w: invalid date", ErrInvalidInput)
		}
		date = parsed
	}

	bookings, err := s.bookingRepo.ListDetails(ctx, domain.BookingFilter{Date: &date})
	if err != nil {
		s.logger.Error("Daily: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Daily - repository error: %v", ErrInternal, err)
	}

	report := domain.NewDailyReport(date, bookings)

	s.logger.Info("Daily: date=%s, bookings=%d, revenue=%d",
		date.Format(domain.DateFormat), report.TotalBookings, report.Revenue)
	return models.FromDomainDailyReport(report), nil
}
