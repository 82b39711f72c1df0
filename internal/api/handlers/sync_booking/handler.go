package sync_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/abarriera/CPA-BookingService/internal/api/handlers"
	"github.com/abarriera/CPA-BookingService/internal/integrations/googlecalendar"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBooking     = "некорректные данные записи"

	msgConfirmed      = "Booking confirmed and added to calendar!"
	msgNotConfigured  = "Server configuration error: Missing credentials"
	msgAccessDenied   = "Calendar access denied. Please ensure the calendar is shared with the service account."
	msgNotFound       = "Calendar not found. Please check the calendar ID."
	msgSyncFailedTmpl = "Failed to sync with calendar: %v"
)

type Handler struct {
	calendar CalendarClient
	logger   Logger
}

func NewHandler(calendar CalendarClient, logger Logger) *Handler {
	return &Handler{
		calendar: calendar,
		logger:   logger,
	}
}

// Handle POST /api/v1/booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SyncBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking := req.Booking.ToDomain()
	h.logger.Info("POST /booking - Processing booking id=%s date=%s time=%q", booking.ID, booking.Date, booking.Time)

	event, err := h.calendar.CreateEvent(r.Context(), booking)
	if err != nil {
		switch {
		case errors.Is(err, googlecalendar.ErrInvalidBooking):
			h.logger.Warn("POST /booking - Invalid booking payload id=%s: %v", booking.ID, err)
			handlers.RespondBadRequest(w, msgInvalidBooking)

		case errors.Is(err, googlecalendar.ErrNotConfigured):
			h.logger.Error("POST /booking - Calendar integration is not configured")
			handlers.RespondError(w, http.StatusInternalServerError, msgNotConfigured)

		case errors.Is(err, googlecalendar.ErrAccessDenied):
			h.logger.Error("POST /booking - Calendar access denied: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgAccessDenied)

		case errors.Is(err, googlecalendar.ErrCalendarNotFound):
			h.logger.Error("POST /booking - Calendar not found: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgNotFound)

		default:
			h.logger.Error("POST /booking - Calendar sync error for booking id=%s: %v", booking.ID, err)
			handlers.RespondError(w, http.StatusInternalServerError, fmt.Sprintf(msgSyncFailedTmpl, err))
		}
		return
	}

	h.logger.Info("POST /booking - Event created id=%s for booking id=%s", event.ID, booking.ID)
	handlers.RespondJSON(w, http.StatusOK, SyncBookingResponse{
		Success:   true,
		EventID:   event.ID,
		EventLink: event.HTMLLink,
		Message:   msgConfirmed,
	})
}
