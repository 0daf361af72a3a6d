package assistant_message

import (
	"context"

	"github.com/m04kA/CourtBookingService/internal/service/assistant"
)

type AssistantService interface {
	Reply(ctx context.Context, req *assistant.MessageRequest) (*assistant.MessageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
