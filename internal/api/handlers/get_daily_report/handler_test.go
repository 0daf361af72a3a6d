package get_daily_report

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/CourtBookingService/internal/service/reports"
	"github.com/m04kA/CourtBookingService/internal/service/reports/models"
)

type stubService struct {
	err     error
	gotDate string
}

func (s *stubService) Daily(_ context.Context, date string) (*models.DailyReportResponse, error) {
	s.gotDate = date
	if s.err != nil {
		return nil, s.err
	}
	return &models.DailyReportResponse{Date: date}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
		wantDate   string
	}{
		{name: "with date", target: "/api/v1/admin/reports/daily?date=2025-10-20", wantStatus: http.StatusOK, wantDate: "2025-10-20"},
		{name: "without date", target: "/api/v1/admin/reports/daily", wantStatus: http.StatusOK, wantDate: ""},
		{name: "invalid date", target: "/api/v1/admin/reports/daily?date=ayer", err: reports.ErrInvalidInput, wantStatus: http.StatusBadRequest, wantDate: "ayer"},
		{name: "internal", target: "/api/v1/admin/reports/daily", err: reports.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{err: tt.err}
			rec := httptest.NewRecorder()

			NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantDate, svc.gotDate)
		})
	}
}
