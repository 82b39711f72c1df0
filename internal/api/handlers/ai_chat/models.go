package ai_chat

import (
	"github.com/abarriera/CPA-BookingService/internal/integrations/openrouter"
)

// historyLimit сколько последних сообщений истории уходит в контекст
const historyLimit = 10

// ChatMessage одно сообщение истории диалога
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest HTTP request model
type ChatRequest struct {
	Messages    []ChatMessage `json:"messages"`
	UserMessage string        `json:"userMessage"`
}

// ChatResponse HTTP response model
type ChatResponse struct {
	Response    string `json:"response"`
	ShowBooking bool   `json:"showBooking"`
	ShowContact bool   `json:"showContact"`
	Model       string `json:"model,omitempty"`
	Error       bool   `json:"error,omitempty"`
}

// ToMessages собирает контекст генерации: системный промпт, хвост
// истории и новое сообщение клиента. Любая незнакомая роль в истории
// считается ролью клиента.
func (r *ChatRequest) ToMessages() []openrouter.Message {
	history := r.Messages
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}

	out := make([]openrouter.Message, 0, len(history)+2)
	out = append(out, openrouter.Message{Role: "system", Content: systemPrompt})
	for _, msg := range history {
		role := "user"
		if msg.Role == "assistant" {
			role = "assistant"
		}
		out = append(out, openrouter.Message{Role: role, Content: msg.Content})
	}
	out = append(out, openrouter.Message{Role: "user", Content: r.UserMessage})
	return out
}
