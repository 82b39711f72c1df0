package contact

import (
	"net/http"

	"github.com/abarriera/CPA-BookingService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"

	msgSent          = "Your message has been sent successfully!"
	msgMissingFields = "Missing required fields"
	msgSendFailed    = "Failed to send message"
)

type Handler struct {
	email        EmailClient
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(email EmailClient, timeProvider TimeProvider, logger Logger) *Handler {
	return &Handler{
		email:        email,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Handle POST /api/v1/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		h.logger.Warn("POST /contact - Missing required fields")
		handlers.RespondJSON(w, http.StatusBadRequest, ContactErrorResponse{
			Error:    msgMissingFields,
			Required: []string{"name", "email", "message"},
		})
		return
	}

	sub := req.ToSubmission(h.timeProvider.Now())
	if err := h.email.SendContactEmail(r.Context(), sub); err != nil {
		h.logger.Error("POST /contact - Failed to send email from=%s: %v", req.Email, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgSendFailed)
		return
	}

	h.logger.Info("POST /contact - Message relayed from=%s", req.Email)
	handlers.RespondJSON(w, http.StatusOK, ContactResponse{
		Success: true,
		Message: msgSent,
	})
}
