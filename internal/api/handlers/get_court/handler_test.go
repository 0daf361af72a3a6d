package get_court

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CourtBookingService/internal/service/courts"
	"github.com/m04kA/CourtBookingService/internal/service/courts/models"
)

type stubService struct {
	err error
}

func (s stubService) GetByID(_ context.Context, id int64) (*models.CourtResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.CourtResponse{ID: id, Name: "Cancha 1", HourlyPrice: 70000, IsActive: true}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc CourtService, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/courts/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"courtId": id})
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	rec := serve(stubService{}, "3")

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.CourtResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(3), body.ID)
	assert.Equal(t, int64(70000), body.HourlyPrice)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		err        error
		wantStatus int
	}{
		{name: "not a number", id: "abc", wantStatus: http.StatusBadRequest},
		{name: "zero", id: "0", wantStatus: http.StatusBadRequest},
		{name: "not found", id: "9", err: courts.ErrCourtNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", id: "1", err: errors.Join(courts.ErrInternal, errors.New("db down")), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, serve(stubService{err: tt.err}, tt.id).Code)
		})
	}
}
