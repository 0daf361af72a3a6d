package assistant

// MessageRequest входящее сообщение пользователя
type MessageRequest struct {
	Message string `json:"message"`
}

// MessageResponse ответ ассистента
type MessageResponse struct {
	Intent string `json:"intent"`
	Reply  string `json:"reply"`
}

// Распознанные намерения
const (
	IntentGreeting     = "greeting"
	IntentPrices       = "prices"
	IntentAvailability = "availability"
	IntentBooking      = "booking"
	IntentMenu         = "menu"
)
