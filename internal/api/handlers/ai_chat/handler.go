package ai_chat

import (
	"math/rand"
	"net/http"

	"github.com/abarriera/CPA-BookingService/internal/api/handlers"
	"github.com/abarriera/CPA-BookingService/internal/integrations/openrouter"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMessageRequired    = "Message is required"

	modelLabel = "llama-3.3-70b"
)

type Handler struct {
	chat   ChatClient
	logger Logger
}

func NewHandler(chat ChatClient, logger Logger) *Handler {
	return &Handler{
		chat:   chat,
		logger: logger,
	}
}

// Handle POST /api/v1/ai-chat
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /ai-chat - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.UserMessage == "" {
		h.logger.Warn("POST /ai-chat - Empty user message")
		handlers.RespondBadRequest(w, msgMessageRequired)
		return
	}

	reply, err := h.chat.ChatCompletion(r.Context(), req.ToMessages())
	if err != nil {
		// Чат не ломаем, отдаем запасной ответ со статусом 200
		h.logger.Error("POST /ai-chat - Completion failed: %v", err)
		handlers.RespondJSON(w, http.StatusOK, ChatResponse{
			Response:    fallbackResponses[rand.Intn(len(fallbackResponses))],
			ShowContact: true,
			Error:       true,
		})
		return
	}

	hints := openrouter.DeriveHints(reply)
	h.logger.Info("POST /ai-chat - Reply generated show_booking=%t show_contact=%t",
		hints.SuggestBooking, hints.SuggestContact)
	handlers.RespondJSON(w, http.StatusOK, ChatResponse{
		Response:    reply,
		ShowBooking: hints.SuggestBooking,
		ShowContact: hints.SuggestContact,
		Model:       modelLabel,
	})
}
