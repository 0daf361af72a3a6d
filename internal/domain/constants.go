package domain

import "time"

// Business constants
const (
	BookingDurationHours = 1
	DefaultRetentionDays = 30
	MaxNotesLength       = 500
	DashboardRecentLimit = 5
)

// Time format constants
const (
	DateFormat        = "2006-01-02" // YYYY-MM-DD
	DisplayDateFormat = "02/01/2006" // DD/MM/YYYY
)

// ActiveStatuses statuses that hold a slot
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// RevenueStatuses statuses counted as revenue in reports
var RevenueStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCompleted,
}

// AllStatuses every known status, in lifecycle order
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// DateOnly normalizes t to a civil date (midnight UTC) keeping the calendar day of t's location
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses YYYY-MM-DD into a civil date
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOnly(t), nil
}
