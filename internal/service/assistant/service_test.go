package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CourtBookingService/internal/domain"
	"github.com/m04kA/CourtBookingService/internal/usecase/get_available_slots"
)

type stubCourts struct {
	courts []*domain.Court
	err    error
}

func (s stubCourts) ActiveCourts(context.Context) ([]*domain.Court, error) {
	return s.courts, s.err
}

type stubSlots struct {
	taken map[int64][]domain.Slot
}

func (s stubSlots) Execute(_ context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error) {
	available, occupied := domain.SplitSlots(s.taken[req.CourtID])
	return &get_available_slots.Response{CourtID: req.CourtID, Available: available, Occupied: occupied}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const bookingURL = "https://canchas.example.com/reservar"

func newService(courts stubCourts) *Service {
	slots := stubSlots{taken: map[int64][]domain.Slot{
		1: {"17:00 - 18:00", "18:00 - 19:00"},
	}}
	return NewService(courts, slots, bookingURL, nopLogger{})
}

func defaultCourts() stubCourts {
	return stubCourts{courts: []*domain.Court{
		{ID: 1, Name: "Cancha 1", Kind: "Fútbol 5vs5", HourlyPrice: 70000, IsActive: true},
		{ID: 4, Name: "Cancha 4", Kind: "Fútbol 7vs7", HourlyPrice: 140000, IsActive: true},
	}}
}

func TestDetectIntent(t *testing.T) {
	tests := map[string]string{
		"Hola!":                        IntentGreeting,
		"buenas tardes":                IntentGreeting,
		"cual es el PRECIO":            IntentPrices,
		"cuánto cuesta? tarifa":        IntentPrices,
		"hay disponibilidad hoy?":      IntentAvailability,
		"que horarios tienen":          IntentAvailability,
		"quiero reservar":              IntentBooking,
		"gracias":                      IntentMenu,
		"":                             IntentMenu,
		"hola, quiero saber el precio": IntentGreeting,
	}

	for text, want := range tests {
		assert.Equal(t, want, detectIntent(text), text)
	}
}

func TestReply_Prices(t *testing.T) {
	resp, err := newService(defaultCourts()).Reply(context.Background(), &MessageRequest{Message: "precios?"})
	require.NoError(t, err)

	assert.Equal(t, IntentPrices, resp.Intent)
	assert.Contains(t, resp.Reply, "Cancha 1 (Fútbol 5vs5): 70.000 Gs por hora")
	assert.Contains(t, resp.Reply, "Cancha 4 (Fútbol 7vs7): 140.000 Gs por hora")
	assert.Contains(t, resp.Reply, bookingURL)
}

func TestReply_Availability(t *testing.T) {
	resp, err := newService(defaultCourts()).Reply(context.Background(), &MessageRequest{Message: "disponible?"})
	require.NoError(t, err)

	assert.Equal(t, IntentAvailability, resp.Intent)
	assert.Contains(t, resp.Reply, "Cancha 1: 4 horarios disponibles")
	assert.Contains(t, resp.Reply, "Cancha 4: 6 horarios disponibles")
	assert.NotContains(t, resp.Reply, "17:00 - 18:00, 18:00")
}

func TestReply_StaticReplies(t *testing.T) {
	svc := newService(defaultCourts())

	for message, intent := range map[string]string{
		"hola":     IntentGreeting,
		"reservar": IntentBooking,
		"?":        IntentMenu,
	} {
		resp, err := svc.Reply(context.Background(), &MessageRequest{Message: message})
		require.NoError(t, err)
		assert.Equal(t, intent, resp.Intent)
		assert.Contains(t, resp.Reply, bookingURL)
	}
}

func TestReply_CourtListFailure(t *testing.T) {
	svc := newService(stubCourts{err: errors.New("db down")})

	_, err := svc.Reply(context.Background(), &MessageRequest{Message: "precio"})
	assert.Error(t, err)
}
