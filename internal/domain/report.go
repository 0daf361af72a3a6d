package domain

import "time"

// DashboardStats summary shown on the admin dashboard
type DashboardStats struct {
	TotalBookings     int64
	TodayBookings     int64
	PendingBookings   int64
	ConfirmedBookings int64
	Recent            []*BookingDetails
}

// DailyReport bookings and revenue of one day
type DailyReport struct {
	Date          time.Time
	TotalBookings int
	Revenue       int64
	ByStatus      map[BookingStatus]int
	Bookings      []*BookingDetails
}

// NewDailyReport aggregates bookings of a day.
// Revenue counts only confirmed and completed bookings.
func NewDailyReport(date time.Time, bookings []*BookingDetails) *DailyReport {
	report := &DailyReport{
		Date:          date,
		TotalBookings: len(bookings),
		ByStatus:      make(map[BookingStatus]int, len(AllStatuses)),
		Bookings:      bookings,
	}

	for _, b := range bookings {
		report.ByStatus[b.Status]++
		for _, status := range RevenueStatuses {
			if b.Status == status {
				report.Revenue += b.TotalAmount
			}
		}
	}

	return report
}
