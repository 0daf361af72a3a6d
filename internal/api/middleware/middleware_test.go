package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CourtBookingService/internal/service/auth"
	"github.com/m04kA/CourtBookingService/pkg/metrics"
)

type stubVerifier struct {
	valid string
}

func (v stubVerifier) Verify(token string) (*auth.Claims, error) {
	if token != v.valid {
		return nil, auth.ErrInvalidToken
	}
	claims := &auth.Claims{Role: "admin"}
	claims.Subject = auth.AdminSubject
	return claims, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestAdminAuth(t *testing.T) {
	var gotSubject string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubject, _ = GetAdminSubject(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := AdminAuth(stubVerifier{valid: "good"}, nopLogger{})(next)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "no header", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic good", want: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", want: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer bad", want: http.StatusUnauthorized},
		{name: "valid", header: "Bearer good", want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSubject = ""
			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusNoContent {
				assert.Equal(t, auth.AdminSubject, gotSubject)
			}
		})
	}
}

func TestRequestLogging_AssignsRequestID(t *testing.T) {
	var gotID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = GetRequestID(r.Context())
	})
	handler := RequestLogging(nopLogger{})(next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/courts", nil))

	_, err := uuid.Parse(gotID)
	require.NoError(t, err)
	assert.Equal(t, gotID, rec.Header().Get(RequestIDHeader))

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/courts", nil)
	req.Header.Set(RequestIDHeader, incoming)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, incoming, gotID)
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegisterer("test", reg)

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/api/v1/courts/{courtId}/availability", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/courts/7/availability", nil))

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, family := range families {
		if family.GetName() != "http_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			labels := map[string]string{}
			for _, label := range metric.GetLabel() {
				labels[label.GetName()] = label.GetValue()
			}
			if labels["route"] == "/api/v1/courts/{courtId}/availability" && labels["status"] == "404" {
				found = true
				assert.Equal(t, float64(1), metric.GetCounter().GetValue())
			}
		}
	}
	assert.True(t, found, "http_requests_total for route template not found")
}
