package list_bookings

import (
	"net/url"

	"github.com/m04kA/CourtBookingService/internal/service/bookings/models"
)

// ToServiceRequest собирает фильтр из query параметров status и date
func ToServiceRequest(query url.Values) *models.ListBookingsRequest {
	req := &models.ListBookingsRequest{}
	if query.Has("status") {
		status := query.Get("status")
		req.Status = &status
	}
	if query.Has("date") {
		date := query.Get("date")
		req.Date = &date
	}
	return req
}
