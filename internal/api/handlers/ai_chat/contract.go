package ai_chat

import (
	"context"

	"github.com/abarriera/CPA-BookingService/internal/integrations/openrouter"
)

type ChatClient interface {
	ChatCompletion(ctx context.Context, messages []openrouter.Message) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
