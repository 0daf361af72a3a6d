package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CourtBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/CourtBookingService/internal/usecase/get_available_slots"
)

type stubUseCase struct {
	taken []domain.Slot
	err   error

	got *getAvailableSlots.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	available, occupied := domain.SplitSlots(s.taken)
	return &getAvailableSlots.Response{
		CourtID:   req.CourtID,
		CourtName: "Cancha 1",
		Date:      req.Date,
		Available: available,
		Occupied:  occupied,
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(uc *stubUseCase, courtID, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/courts/"+courtID+"/availability"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"courtId": courtID})
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &stubUseCase{taken: []domain.Slot{"19:00 - 20:00"}}

	rec := serve(uc, "1", "?date=2025-10-20")
	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-10-20", body.Date)
	assert.Equal(t, []string{"19:00 - 20:00"}, body.Occupied)
	assert.Len(t, body.Available, 5)
	assert.Equal(t, time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC), uc.got.Date)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&stubUseCase{}, "x", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&stubUseCase{}, "1", "?date=tomorrow").Code)
	assert.Equal(t, http.StatusNotFound, serve(&stubUseCase{err: getAvailableSlots.ErrCourtNotFound}, "9", "").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&stubUseCase{err: getAvailableSlots.ErrInternal}, "1", "").Code)
}
