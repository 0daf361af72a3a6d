package get_dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CourtBookingService/internal/service/reports"
	"github.com/m04kA/CourtBookingService/internal/service/reports/models"
)

type stubService struct {
	err error
}

func (s stubService) Dashboard(_ context.Context) (*models.DashboardResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.DashboardResponse{TotalBookings: 42}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_OK(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHandler(stubService{}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.DashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(42), body.TotalBookings)
}

func TestHandle_InternalError(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHandler(stubService{err: reports.ErrInternal}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
