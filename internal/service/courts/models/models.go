package models

import "github.com/m04kA/CourtBookingService/internal/domain"

// CourtResponse ответ с данными корта
type CourtResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	HourlyPrice int64  `json:"hourlyPrice"`
	IsActive    bool   `json:"isActive"`
}

// CourtListResponse ответ со списком кортов
type CourtListResponse struct {
	Courts []CourtResponse `json:"courts"`
}

// FromDomainCourt конвертирует domain модель в DTO
func FromDomainCourt(c *domain.Court) *CourtResponse {
	if c == nil {
		return nil
	}
	return &CourtResponse{
		ID:          c.ID,
		Name:        c.Name,
		Kind:        c.Kind,
		HourlyPrice: c.HourlyPrice,
		IsActive:    c.IsActive,
	}
}

// FromDomainCourtList конвертирует список domain моделей в DTO
func FromDomainCourtList(courts []*domain.Court) *CourtListResponse {
	resp := &CourtListResponse{Courts: make([]CourtResponse, 0, len(courts))}
	for _, c := range courts {
		resp.Courts = append(resp.Courts, *FromDomainCourt(c))
	}
	return resp
}
