package courts

import "github.com/m04kA/CourtBookingService/internal/domain"

// courtEntry формат хранения корта в redis
type courtEntry struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	HourlyPrice int64  `json:"hourlyPrice"`
	IsActive    bool   `json:"isActive"`
}

func fromDomain(courts []*domain.Court) []courtEntry {
	entries := make([]courtEntry, 0, len(courts))
	for _, c := range courts {
		entries = append(entries, courtEntry{
			ID:          c.ID,
			Name:        c.Name,
			Kind:        c.Kind,
			HourlyPrice: c.HourlyPrice,
			IsActive:    c.IsActive,
		})
	}
	return entries
}

func toDomain(entries []courtEntry) []*domain.Court {
	courts := make([]*domain.Court, 0, len(entries))
	for _, e := range entries {
		courts = append(courts, &domain.Court{
			ID:          e.ID,
			Name:        e.Name,
			Kind:        e.Kind,
			HourlyPrice: e.HourlyPrice,
			IsActive:    e.IsActive,
		})
	}
	return courts
}
