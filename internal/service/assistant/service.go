package assistant

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/m04kA/CourtBookingService/internal/domain"
	"github.com/m04kA/CourtBookingService/internal/usecase/get_available_slots"
)

const schedule = "17:00 - 23:00 hs"

// Ключевые слова проверяются по порядку, первое совпадение определяет намерение
var intents = []struct {
	intent   string
	keywords []string
}{
	{intent: IntentGreeting, keywords: []string{"hola", "buenas", "buenos"}},
	{intent: IntentPrices, keywords: []string{"precio", "costo", "tarifa"}},
	{intent: IntentAvailability, keywords: []string{"disponib", "horario"}},
	{intent: IntentBooking, keywords: []string{"reserv"}},
}

// Service ассистент с заготовленными ответами на испанском
type Service struct {
	courts     CourtLister
	slots      SlotsFinder
	bookingURL string
	printer    *message.Printer
	logger     Logger
}

// NewService создает новый экземпляр ассистента
func NewService(courts CourtLister, slots SlotsFinder, bookingURL string, logger Logger) *Service {
	return &Service{
		courts:     courts,
		slots:      slots,
		bookingURL: bookingURL,
		printer:    message.NewPrinter(language.Spanish),
		logger:     logger,
	}
}

// Reply отвечает на сообщение
func (s *Service) Reply(ctx context.Context, req *MessageRequest) (*MessageResponse, error) {
	intent := detectIntent(req.Message)
	s.logger.Info("Reply: intent=%s", intent)

	var (
		reply string
		err   error
	)

	switch intent {
	case IntentGreeting:
		reply = s.greeting()
	case IntentPrices:
		reply, err = s.prices(ctx)
	case IntentAvailability:
		reply, err = s.availabilityToday(ctx)
	case IntentBooking:
		reply = s.bookingLink()
	default:
		reply = s.menu()
	}

	if err != nil {
		s.logger.Error("Reply: failed to build %s reply: %v", intent, err)
		return nil, err
	}

	return &MessageResponse{Intent: intent, Reply: reply}, nil
}

func detectIntent(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	for _, candidate := range intents {
		for _, keyword := range candidate.keywords {
			if strings.Contains(text, keyword) {
				return candidate.intent
			}
		}
	}
	return IntentMenu
}

func (s *Service) greeting() string {
	return fmt.Sprintf("¡Hola! Soy el asistente del complejo deportivo.\n\n"+
		"Horarios: %s (reservas de 1 hora)\n\n"+
		"Para reservar directamente: %s\n\n"+
		"¿En qué más puedo ayudarte?\n"+
		"• Precios\n"+
		"• Disponibilidad\n"+
		"• Reservar", schedule, s.bookingURL)
}

func (s *Service) prices(ctx context.Context) (string, error) {
	courts, err := s.courts.ActiveCourts(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("PRECIOS DE CANCHAS\n\n")
	for _, court := range courts {
		b.WriteString(s.printer.Sprintf("• %s (%s): %d Gs por hora\n", court.Name, court.Kind, court.HourlyPrice))
	}
	fmt.Fprintf(&b, "\nHorario: %s\n\nReservar ahora: %s", schedule, s.bookingURL)
	return b.String(), nil
}

func (s *Service) availabilityToday(ctx context.Context) (string, error) {
	courts, err := s.courts.ActiveCourts(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("DISPONIBILIDAD HOY\n\n")
	for _, court := range courts {
		resp, err := s.slots.Execute(ctx, &get_available_slots.Request{CourtID: court.ID})
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%s: %d horarios disponibles\n", court.Name, len(resp.Available))
		if len(resp.Available) > 0 {
			fmt.Fprintf(&b, "  %s\n", joinSlots(resp.Available))
		}
	}
	fmt.Fprintf(&b, "\nVer disponibilidad completa y reservar: %s", s.bookingURL)
	return b.String(), nil
}

func (s *Service) bookingLink() string {
	return fmt.Sprintf("RESERVA EN LÍNEA\n\n"+
		"Enlace directo: %s\n\n"+
		"Podrás ver los horarios disponibles, elegir tu cancha, completar tus datos "+
		"y seleccionar el método de pago.\n\n"+
		"Horarios: %s\n"+
		"Duración: %d hora por reserva", s.bookingURL, schedule, domain.BookingDurationHours)
}

func (s *Service) menu() string {
	return fmt.Sprintf("¿Quieres reservar una cancha?\n\n"+
		"Enlace directo para reservar: %s\n\n"+
		"O pregúntame sobre:\n"+
		"• Precios - ver tarifas\n"+
		"• Disponibilidad - horarios libres\n"+
		"• Reservar - volver a ver el enlace\n\n"+
		"Horarios: %s", s.bookingURL, schedule)
}

func joinSlots(slots []domain.Slot) string {
	labels := make([]string, 0, len(slots))
	for _, slot := range slots {
		labels = append(labels, slot.String())
	}
	return strings.Join(labels, ", ")
}
