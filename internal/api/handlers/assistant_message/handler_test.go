package assistant_message

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CourtBookingService/internal/service/assistant"
)

type stubService struct {
	err    error
	called bool
}

func (s *stubService) Reply(_ context.Context, req *assistant.MessageRequest) (*assistant.MessageResponse, error) {
	s.called = true
	if s.err != nil {
		return nil, s.err
	}
	return &assistant.MessageResponse{Intent: assistant.IntentGreeting, Reply: "¡Hola! " + req.Message}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *stubService, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/messages", strings.NewReader(body))
	NewHandler(svc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	rec := serve(&stubService{}, `{"message":"hola"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body assistant.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, assistant.IntentGreeting, body.Intent)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantCalled bool
	}{
		{name: "bad body", body: `[`, wantStatus: http.StatusBadRequest},
		{name: "blank message", body: `{"message":"   "}`, wantStatus: http.StatusBadRequest},
		{name: "internal", body: `{"message":"precio"}`, err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{err: tt.err}

			rec := serve(svc, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, svc.called)
		})
	}
}
