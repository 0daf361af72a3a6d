package models

import (
	"github.com/m04kA/CourtBookingService/internal/domain"
	bookingModels "github.com/m04kA/CourtBookingService/internal/service/bookings/models"
)

// DashboardResponse сводка для главной страницы администратора
type DashboardResponse struct {
	TotalBookings     int64                           `json:"totalBookings"`
	TodayBookings     int64                           `json:"todayBookings"`
	PendingBookings   int64                           `json:"pendingBookings"`
	ConfirmedBookings int64                           `json:"confirmedBookings"`
	RecentBookings    []bookingModels.BookingResponse `json:"recentBookings"`
}

// DailyReportResponse отчёт за день
type DailyReportResponse struct {
	Date          string                          `json:"date"`
	TotalBookings int                             `json:"totalBookings"`
	Revenue       int64                           `json:"revenue"`
	ByStatus      map[string]int                  `json:"byStatus"`
	Bookings      []bookingModels.BookingResponse `json:"bookings"`
}

// FromDomainDashboard конвертирует domain модель в DTO
func FromDomainDashboard(stats *domain.DashboardStats) *DashboardResponse {
	return &DashboardResponse{
		TotalBookings:     stats.TotalBookings,
		TodayBookings:     stats.TodayBookings,
		PendingBookings:   stats.PendingBookings,
		ConfirmedBookings: stats.ConfirmedBookings,
		RecentBookings:    bookingModels.FromDomainBookingList(stats.Recent).Bookings,
	}
}

// FromDomainDailyReport конвертирует domain модель в DTO.
// В ByStatus присутствуют все статусы, включая нулевые.
func FromDomainDailyReport(report *domain.DailyReport) *DailyReportResponse {
	byStatus := make(map[string]int, len(domain.AllStatuses))
	for _, status := range domain.AllStatuses {
		byStatus[string(status)] = report.ByStatus[status]
	}

	return &DailyReportResponse{
		Date:          report.Date.Format(domain.DateFormat),
		TotalBookings: report.TotalBookings,
		Revenue:       report.Revenue,
		ByStatus:      byStatus,
		Bookings:      bookingModels.FromDomainBookingList(report.Bookings).Bookings,
	}
}
